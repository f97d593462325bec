package brokerController

import (
	"log"
	"time"

	"folio/database"
	"folio/middleware"
	"folio/models"
	brokerValidator "folio/validators/broker"

	"github.com/gofiber/fiber/v2"
)

// BrokerWithCount is a broker row decorated with its transaction count
type BrokerWithCount struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	TransactionCount int64     `json:"transactionCount"`
}

// ListBrokers returns all brokers ordered by name, each with the number of
// transactions executed through it
func ListBrokers(c *fiber.Ctx) error {
	db := database.Database.Db

	var brokers []BrokerWithCount
	if err := db.Model(&models.Broker{}).
		Select("brokers.id, brokers.name, brokers.code, brokers.is_active, brokers.created_at, count(transactions.id) AS transaction_count").
		Joins("LEFT JOIN transactions ON transactions.broker_id = brokers.id AND transactions.is_deleted = false").
		Where("brokers.is_deleted = false").
		Group("brokers.id, brokers.name, brokers.code, brokers.is_active, brokers.created_at").
		Order("brokers.name ASC").
		Scan(&brokers).Error; err != nil {
		log.Printf("Error fetching brokers: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch brokers")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, brokers)
}

// ListActiveBrokers returns only active brokers, projected for selection lists
func ListActiveBrokers(c *fiber.Ctx) error {
	db := database.Database.Db

	var brokers []models.ActiveBroker
	if err := db.Model(&models.Broker{}).
		Select("id, name, code").
		Where("is_active = ? AND is_deleted = false", true).
		Order("name ASC").
		Scan(&brokers).Error; err != nil {
		log.Printf("Error fetching active brokers: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch brokers")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, brokers)
}

// CreateBroker inserts a new broker after a duplicate check on name and code
func CreateBroker(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBroker").(*brokerValidator.CreateBrokerRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	db := database.Database.Db

	// Friendly duplicate check; the unique constraints are the real guard
	var existing models.Broker
	if err := db.Where("name = ? OR code = ?", reqData.Name, reqData.Code).
		First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "A broker with this name or code already exists")
	}

	broker := models.Broker{
		Name:     reqData.Name,
		Code:     reqData.Code,
		IsActive: true,
	}
	if reqData.IsActive != nil {
		broker.IsActive = *reqData.IsActive
	}

	if err := db.Create(&broker).Error; err != nil {
		log.Printf("Error saving broker: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "A broker with this name or code already exists")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, broker)
}
