package main

import (
	"log"

	"folio/config"
	"folio/database"
	authRoutes "folio/routers/authRoutes"
	brokerRoutes "folio/routers/brokerRoutes"
	clientRoutes "folio/routers/clientRoutes"
	stockRoutes "folio/routers/stockRoutes"
	userRoutes "folio/routers/userRoutes"
	"folio/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	brokerRoutes.SetupBrokerRoutes(app)
	stockRoutes.SetupStockRoutes(app)
	clientRoutes.SetupClientRoutes(app)
	userRoutes.SetupUserRoutes(app)

	utils.InitializeMaintenanceScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
