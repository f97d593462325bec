package clientRoutes

import (
	clientController "folio/controllers/client"
	transactionController "folio/controllers/transaction"
	"folio/middleware"
	clientValidator "folio/validators/client"
	transactionValidator "folio/validators/transaction"

	"github.com/gofiber/fiber/v2"
)

func SetupClientRoutes(app *fiber.App) {
	clientGroup := app.Group("/api/clients")

	clientGroup.Post("/", middleware.JWTMiddleware, clientValidator.CreateClient(), clientController.CreateClient)
	clientGroup.Get("/", middleware.JWTMiddleware, clientController.ListClients)

	// Global access: shared read-only view of a client's purchases
	clientGroup.Get("/:id/buy-transactions", transactionController.ListClientBuyTransactions)

	clientGroup.Get("/:id/transactions",
		middleware.JWTMiddleware, middleware.ClientOwnership(),
		transactionValidator.ListTransactions(), transactionController.ListClientTransactions)
	clientGroup.Post("/:id/transactions",
		middleware.JWTMiddleware, transactionValidator.CreateTransaction(),
		middleware.ClientOwnership(), transactionController.CreateTransaction)
	clientGroup.Get("/:id/holdings",
		middleware.JWTMiddleware, middleware.ClientOwnership(),
		clientController.GetClientHoldings)
}
