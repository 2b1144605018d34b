package main

import (
	"internhub/config"
	"internhub/database"
	applicationRoutes "internhub/routers/applicationRoutes"
	internshipRoutes "internhub/routers/internshipRoutes"
	learningpathRoutes "internhub/routers/learningpathRoutes"
	progressRoutes "internhub/routers/progressRoutes"
	submissionRoutes "internhub/routers/submissionRoutes"
	"internhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
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

	internshipRoutes.SetupInternshipRoutes(app)
	learningpathRoutes.SetupLearningPathRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	submissionRoutes.SetupSubmissionRoutes(app)
	progressRoutes.SetupProgressRoutes(app)

	utils.InitializeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
