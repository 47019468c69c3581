package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"nexora-backend/models"
)

// Store implements Catalog and Ledger on top of a GORM connection.
type Store struct {
	db *gorm.DB
}

var (
	_ Catalog = (*Store)(nil)
	_ Ledger  = (*Store)(nil)
)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListServices returns every published service, newest first. The id
// tie-break keeps the order deterministic when rows share a timestamp.
func (s *Store) ListServices() ([]models.Service, error) {
	var services []models.Service
	if err := s.db.Order("created_at DESC, id DESC").Find(&services).Error; err != nil {
		return nil, classify(err)
	}
	return services, nil
}

func (s *Store) CreateService(service *models.Service) error {
	if err := s.db.Create(service).Error; err != nil {
		return classify(err)
	}
	return nil
}

// UpdateService applies the non-nil patch fields to an existing service.
func (s *Store) UpdateService(id uint, patch ServicePatch) (*models.Service, error) {
	var service models.Service
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&service, id).Error; err != nil {
			return classify(err)
		}

		if patch.Title != nil {
			service.Title = *patch.Title
		}
		if patch.Description != nil {
			service.Description = *patch.Description
		}
		if patch.Price != nil {
			service.Price = *patch.Price
		}

		if err := tx.Save(&service).Error; err != nil {
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService removes a service. Deletion is restricted while any order
// still references the service.
func (s *Store) DeleteService(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.Order{}).Where("service_id = ?", id).Count(&refs).Error; err != nil {
			return classify(err)
		}
		if refs > 0 {
			return ErrReferentialViolation
		}

		result := tx.Delete(&models.Service{}, id)
		if result.Error != nil {
			return classify(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ListOrders returns every order, newest first, each joined with the current
// state of its service.
func (s *Store) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Service").Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, classify(err)
	}
	return orders, nil
}

// CreateOrder persists an order after verifying, inside the same transaction,
// that the referenced service exists. The in-transaction check keeps the
// behavior identical across backends; the schema-level foreign key remains as
// a backstop and is mapped by classify when it fires first.
func (s *Store) CreateOrder(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Service{}).Where("id = ?", order.ServiceID).Count(&exists).Error; err != nil {
			return classify(err)
		}
		if exists == 0 {
			return ErrReferentialViolation
		}

		if err := tx.Omit("Service").Create(order).Error; err != nil {
			return classify(err)
		}
		return nil
	})
}

// classify maps driver-native failures into the store's named error kinds.
func classify(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	// 23503 is the Postgres foreign_key_violation SQLSTATE.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrReferentialViolation
	}

	return err
}
