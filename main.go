package main

import (
	"log"
	"net/http"
	"os"

	"travelapp/config"

	"travelapp/jobs"
	"travelapp/middleware"
	"travelapp/models"
	"travelapp/routes"
	"travelapp/services"
	"travelapp/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Listing{},
		&models.ListingImage{},
		&models.Booking{},
		&models.Review{},
		&models.Favorite{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandler())

	if err := validator.RegisterCustomValidations(); err != nil {
		log.Fatalf("Failed to register validations: %v", err)
	}

	migrateTables()

	jobs.SetBookingSweeper(services.NewBookingSweeper(config.DB))

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
