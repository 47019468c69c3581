// Package store owns persistence for the service catalog and the order
// ledger. Callers depend on the Catalog and Ledger capabilities and on the
// named error kinds; backend-specific failures never leak past this package.
package store

import (
	"errors"

	"nexora-backend/models"
)

var (
	// ErrNotFound means the identifier was well-formed but no row matched.
	ErrNotFound = errors.New("record not found")
	// ErrReferentialViolation means a foreign reference points at a missing
	// row, or a row cannot be removed while other rows still reference it.
	ErrReferentialViolation = errors.New("referential integrity violation")
)

// ServicePatch carries a partial update. Nil fields are left untouched.
type ServicePatch struct {
	Title       *string
	Description *string
	Price       *float64
}

// Catalog manages the set of published services.
type Catalog interface {
	ListServices() ([]models.Service, error)
	CreateService(service *models.Service) error
	UpdateService(id uint, patch ServicePatch) (*models.Service, error)
	DeleteService(id uint) error
}

// Ledger manages the set of submitted orders. Orders are insert-only.
type Ledger interface {
	ListOrders() ([]models.Order, error)
	CreateOrder(order *models.Order) error
}
