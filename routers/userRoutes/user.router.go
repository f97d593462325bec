package userRoutes

import (
	userController "folio/controllers/user"
	"folio/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/brokers", middleware.JWTMiddleware, userController.GetUserBrokers)
}
