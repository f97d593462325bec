package stockRoutes

import (
	stockController "folio/controllers/stock"
	"folio/middleware"
	stockValidator "folio/validators/stock"

	"github.com/gofiber/fiber/v2"
)

func SetupStockRoutes(app *fiber.App) {
	stockGroup := app.Group("/api/stocks")

	// Global access: the instrument catalog is public
	stockGroup.Get("/", stockController.ListStocks)
	stockGroup.Post("/", stockValidator.CreateStock(), stockController.CreateStock)

	stockGroup.Get("/:symbol/quote", middleware.JWTMiddleware, stockController.GetStockQuote)
}
