package clientController

import (
	"log"

	"folio/database"
	"folio/middleware"
	"folio/models"
	clientValidator "folio/validators/client"

	"github.com/gofiber/fiber/v2"
)

// CreateClient creates a brokerage customer owned by the session user
func CreateClient(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedClient").(*clientValidator.CreateClientRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	client := models.Client{
		Name:   reqData.Name,
		Email:  reqData.Email,
		UserID: userId,
	}

	if err := database.Database.Db.Create(&client).Error; err != nil {
		log.Printf("Error saving client: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create client")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, client)
}

// ListClients returns the session user's clients ordered by name
func ListClients(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var clients []models.Client
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		log.Printf("Error fetching clients for user %d: %v", userId, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch clients")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, clients)
}

// Holding is a client's net position in one stock
type Holding struct {
	StockID  uint    `json:"stockId"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// GetClientHoldings aggregates the client's transactions into per-stock net
// positions: BUY quantities add, SELL quantities subtract.
func GetClientHoldings(c *fiber.Ctx) error {
	client := c.Locals("client").(*models.Client)

	db := database.Database.Db

	var holdings []Holding
	if err := db.Model(&models.Transaction{}).
		Select("stocks.id AS stock_id, stocks.symbol, stocks.name, "+
			"sum(CASE WHEN transactions.type = ? THEN transactions.quantity ELSE -transactions.quantity END) AS quantity",
			models.TransactionTypeBuy).
		Joins("JOIN stocks ON stocks.id = transactions.stock_id").
		Where("transactions.client_id = ? AND transactions.is_deleted = false", client.ID).
		Group("stocks.id, stocks.symbol, stocks.name").
		Order("stocks.symbol ASC").
		Scan(&holdings).Error; err != nil {
		log.Printf("Error computing holdings for client %d: %v", client.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch holdings")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, holdings)
}
