// controllers/service.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"nexora-backend/models"
	"nexora-backend/store"
	"nexora-backend/utils"
)

// CreateServiceInput defines the expected JSON structure for publishing a
// service. Price stays untyped until validated so a quoted number is still
// coerced and a bad value yields the catalog's own message instead of a
// binder error.
type CreateServiceInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
}

// UpdateServiceInput defines the expected JSON structure for a partial
// update. Absent fields are left untouched.
type UpdateServiceInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
}

type ServiceController struct {
	Catalog store.Catalog
}

// GetServices retrieves all published services, newest first.
func (sc *ServiceController) GetServices(c *gin.Context) {
	services, err := sc.Catalog.ListServices()
	if err != nil {
		log.Printf("API Error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// CreateService publishes a new service. Presence is checked before the
// price rule so the error messages stay deterministic.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if input.Title == nil || strings.TrimSpace(*input.Title) == "" ||
		input.Description == nil || strings.TrimSpace(*input.Description) == "" ||
		input.Price == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "title, description, and price are required.")
		return
	}

	price, ok := utils.CoerceNumber(input.Price)
	if !ok || price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "price must be a non-negative number.")
		return
	}

	service := models.Service{
		Title:       *input.Title,
		Description: *input.Description,
		Price:       price,
	}

	if err := sc.Catalog.CreateService(&service); err != nil {
		log.Printf("API Error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// UpdateService applies a partial update to an existing service.
func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service id.")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	patch := store.ServicePatch{
		Title:       input.Title,
		Description: input.Description,
	}
	if input.Price != nil {
		price, ok := utils.CoerceNumber(input.Price)
		if !ok || price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "price must be a non-negative number.")
			return
		}
		patch.Price = &price
	}

	service, err := sc.Catalog.UpdateService(uint(id), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found.")
			return
		}
		log.Printf("API Error: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service. Services with existing orders are kept
// and the conflict is reported to the caller.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service id.")
		return
	}

	if err := sc.Catalog.DeleteService(uint(id)); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Service not found.")
		case errors.Is(err, store.ErrReferentialViolation):
			utils.RespondWithError(c, http.StatusConflict, "Service has existing orders and cannot be deleted.")
		default:
			log.Printf("API Error: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
