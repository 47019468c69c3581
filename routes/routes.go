package routes

import (
	"log"
	"net/http"
	"os"

	"nexora-backend/config"
	"nexora-backend/controllers"
	"nexora-backend/store"
	"nexora-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter assembles the request pipeline: request logging, panic
// recovery, CORS, the API routes, and the catch-all 404.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(config.PerformanceLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("API Error: %v", recovered)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
	}))

	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{origin}
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	s := store.New(db)
	serviceController := &controllers.ServiceController{Catalog: s}
	orderController := &controllers.OrderController{Ledger: s}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Nexora Backend Service")
	})

	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)

		// Service routes
		services := api.Group("/services")
		{
			services.GET("", serviceController.GetServices)
			services.POST("", serviceController.CreateService)
			services.PUT("/:id", serviceController.UpdateService)
			services.DELETE("/:id", serviceController.DeleteService)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.GET("", orderController.GetOrders)
			orders.POST("", orderController.CreateOrder)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found."})
	})

	return r
}
