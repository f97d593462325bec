package transactionController

import (
	"log"
	"time"

	"folio/database"
	"folio/middleware"
	"folio/models"
	transactionValidator "folio/validators/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// ListClientTransactions returns the client's transactions, newest first,
// optionally filtered by type and a from/to date range. SELL rows carry the
// originating BUY and its stock.
func ListClientTransactions(c *fiber.Ctx) error {
	client := c.Locals("client").(*models.Client)

	db := database.Database.Db

	query := db.Model(&models.Transaction{}).
		Where("transactions.client_id = ? AND transactions.is_deleted = false", client.ID)

	if txType := c.Query("type"); txType != "" {
		query = query.Where("transactions.type = ?", txType)
	}

	// Range bounds snap to day boundaries so a plain date matches the whole day
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("transactions.date >= ?", now.New(t).BeginningOfDay())
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("transactions.date <= ?", now.New(t).EndOfDay())
		}
	}

	var transactions []models.Transaction
	if err := query.
		Preload("Client").
		Preload("Stock").
		Preload("Broker").
		Preload("BuyTransaction").
		Preload("BuyTransaction.Stock").
		Order("transactions.date DESC").
		Find(&transactions).Error; err != nil {
		log.Printf("Error fetching transactions for client %d: %v", client.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch transactions")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, transactions)
}

// ListClientBuyTransactions returns only the client's BUY transactions.
// Global access: shared read-only view, no session required.
func ListClientBuyTransactions(c *fiber.Ctx) error {
	clientID, err := c.ParamsInt("id")
	if err != nil || clientID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid client id")
	}

	db := database.Database.Db

	var transactions []models.Transaction
	if err := db.
		Where("client_id = ? AND type = ? AND is_deleted = false", clientID, models.TransactionTypeBuy).
		Preload("Client").
		Preload("Stock").
		Preload("Broker").
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		log.Printf("Error fetching buy transactions for client %d: %v", clientID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch transactions")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, transactions)
}

// CreateTransaction records a BUY or SELL for the client. A SELL may link
// the originating BUY, which must exist, be a BUY, and belong to the same
// client.
func CreateTransaction(c *fiber.Ctx) error {
	client := c.Locals("client").(*models.Client)

	reqData, ok := c.Locals("validatedTransaction").(*transactionValidator.CreateTransactionRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	db := database.Database.Db

	var stock models.Stock
	if err := db.Where("id = ? AND is_deleted = false", reqData.StockID).First(&stock).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Stock not found")
	}

	var broker models.Broker
	if err := db.Where("id = ? AND is_deleted = false", reqData.BrokerID).First(&broker).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Broker not found")
	}

	txType := models.TransactionType(reqData.Type)

	if txType == models.TransactionTypeSell && reqData.BuyTransactionID != nil {
		var buyTx models.Transaction
		err := db.Where("id = ? AND is_deleted = false", *reqData.BuyTransactionID).First(&buyTx).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Referenced buy transaction not found")
			}
			log.Printf("Error loading buy transaction %d: %v", *reqData.BuyTransactionID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create transaction")
		}
		if buyTx.Type != models.TransactionTypeBuy {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Referenced transaction is not a BUY")
		}
		if buyTx.ClientID != client.ID {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Referenced buy transaction belongs to another client")
		}
	}

	transaction := models.Transaction{
		Reference:        uuid.NewString(),
		Type:             txType,
		ClientID:         client.ID,
		StockID:          reqData.StockID,
		BrokerID:         reqData.BrokerID,
		Quantity:         reqData.Quantity,
		Price:            reqData.Price,
		Date:             reqData.ParsedDate,
		BuyTransactionID: reqData.BuyTransactionID,
	}

	if err := db.Create(&transaction).Error; err != nil {
		log.Printf("Error saving transaction for client %d: %v", client.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create transaction")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, transaction)
}
