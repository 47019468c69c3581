package main

import (
	"fmt"
	"log"
	"nexora-backend/config"
	"nexora-backend/models"
	"nexora-backend/routes"
	"nexora-backend/services"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Service{},
		&models.Order{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	summary := services.NewSummaryService(config.DB)
	summary.StartScheduler()

	r := routes.SetupRouter(config.DB)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
