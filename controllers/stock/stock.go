package stockController

import (
	"log"

	"folio/database"
	"folio/middleware"
	"folio/models"
	"folio/utils"
	stockValidator "folio/validators/stock"

	"github.com/gofiber/fiber/v2"
)

// ListStocks returns the full instrument catalog ordered by symbol.
// Global access: the catalog is public, no session required.
func ListStocks(c *fiber.Ctx) error {
	db := database.Database.Db

	var stocks []models.Stock
	if err := db.Where("is_deleted = false").
		Order("symbol ASC").
		Find(&stocks).Error; err != nil {
		log.Printf("Error fetching stocks: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch stocks")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, stocks)
}

// CreateStock inserts a new instrument after a duplicate check on symbol
func CreateStock(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStock").(*stockValidator.CreateStockRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	db := database.Database.Db

	// Friendly duplicate check; the unique constraint is the real guard
	var existing models.Stock
	if err := db.Where("symbol = ?", reqData.Symbol).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "A stock with this symbol already exists")
	}

	stock := models.Stock{
		Symbol: reqData.Symbol,
		Name:   reqData.Name,
		Sector: reqData.Sector,
	}

	if err := db.Create(&stock).Error; err != nil {
		log.Printf("Error saving stock: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "A stock with this symbol already exists")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, stock)
}

// GetStockQuote returns a live quote for a listed stock
func GetStockQuote(c *fiber.Ctx) error {
	symbol := c.Params("symbol")

	db := database.Database.Db

	var stock models.Stock
	if err := db.Where("symbol = ? AND is_deleted = false", symbol).First(&stock).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Stock not found")
	}

	quote, err := utils.FetchQuote(stock.Symbol)
	if err != nil {
		log.Printf("Error fetching quote for %s: %v", stock.Symbol, err)
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "Quote service unavailable")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"symbol": stock.Symbol,
		"name":   stock.Name,
		"quote":  quote,
	})
}
