// controllers/order.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nexora-backend/models"
	"nexora-backend/store"
	"nexora-backend/utils"
)

// CreateOrderInput defines the expected JSON structure for placing an order.
// ServiceID stays untyped until validated so numeric strings are coerced and
// bad values get the ledger's own message.
type CreateOrderInput struct {
	CustomerName *string `json:"customerName"`
	Email        *string `json:"email"`
	ServiceID    any     `json:"serviceId"`
}

type OrderController struct {
	Ledger store.Ledger
}

// GetOrders retrieves all orders, newest first, each joined with the current
// state of its service.
func (oc *OrderController) GetOrders(c *gin.Context) {
	orders, err := oc.Ledger.ListOrders()
	if err != nil {
		log.Printf("API Error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder records a purchase of one service. The referenced service must
// exist at write time; a dangling reference is the caller's error, not the
// server's.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if input.CustomerName == nil || strings.TrimSpace(*input.CustomerName) == "" ||
		input.Email == nil || strings.TrimSpace(*input.Email) == "" ||
		input.ServiceID == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "customerName, email, and serviceId are required.")
		return
	}

	serviceID, ok := utils.CoerceID(input.ServiceID)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "serviceId must be a number.")
		return
	}

	order := models.Order{
		CustomerName: *input.CustomerName,
		Email:        *input.Email,
		ServiceID:    serviceID,
	}

	if err := oc.Ledger.CreateOrder(&order); err != nil {
		if errors.Is(err, store.ErrReferentialViolation) {
			utils.RespondWithError(c, http.StatusBadRequest, "serviceId does not exist.")
			return
		}
		log.Printf("API Error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusCreated, order)
}
