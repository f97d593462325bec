package userController

import (
	"log"

	"folio/database"
	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
)

// BrokerAssociation pairs an association id with the broker record
type BrokerAssociation struct {
	ID     uint                `json:"id"`
	Broker models.ActiveBroker `json:"broker"`
}

// GetUserBrokers resolves the session user by email and returns the active
// broker list reshaped as {id, broker} associations. Every active broker is
// returned for every user; no per-user linkage table exists yet.
func GetUserBrokers(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.Unauthorized(c)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	var brokers []models.Broker
	if err := db.Where("is_active = ? AND is_deleted = false", true).
		Order("name ASC").
		Find(&brokers).Error; err != nil {
		log.Printf("Error fetching brokers for user %d: %v", user.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch brokers")
	}

	associations := make([]BrokerAssociation, 0, len(brokers))
	for _, b := range brokers {
		associations = append(associations, BrokerAssociation{
			ID: b.ID,
			Broker: models.ActiveBroker{
				ID:   b.ID,
				Name: b.Name,
				Code: b.Code,
			},
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, associations)
}
