// controllers/health.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness for load balancers and the frontend banner.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Nexora Backend is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
