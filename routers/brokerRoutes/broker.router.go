package brokerRoutes

import (
	brokerController "folio/controllers/broker"
	"folio/middleware"
	brokerValidator "folio/validators/broker"

	"github.com/gofiber/fiber/v2"
)

func SetupBrokerRoutes(app *fiber.App) {
	brokerGroup := app.Group("/api/brokers")

	brokerGroup.Get("/", middleware.JWTMiddleware, brokerController.ListBrokers)
	brokerGroup.Post("/", middleware.JWTMiddleware, brokerValidator.CreateBroker(), brokerController.CreateBroker)
	brokerGroup.Get("/all", middleware.JWTMiddleware, brokerController.ListActiveBrokers)
}
