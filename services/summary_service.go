// services/summary_service.go
package services

import (
	"log"

	"nexora-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SummaryService logs a daily snapshot of the catalog and the order ledger.
type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

func (s *SummaryService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	if _, err := c.AddFunc("0 9 * * *", s.LogDailySummary); err != nil {
		log.Printf("Failed to schedule daily summary: %v", err)
		return
	}

	c.Start()
	log.Println("Summary scheduler started")
}

// LogDailySummary counts live services and booked orders and totals the
// revenue of the referenced services at their current prices.
func (s *SummaryService) LogDailySummary() {
	var serviceCount int64
	if err := s.db.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		log.Printf("Daily summary failed: %v", err)
		return
	}

	var orderCount int64
	if err := s.db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		log.Printf("Daily summary failed: %v", err)
		return
	}

	var revenue float64
	row := s.db.Model(&models.Order{}).
		Joins("JOIN services ON services.id = orders.service_id").
		Select("COALESCE(SUM(services.price), 0)").
		Row()
	if err := row.Scan(&revenue); err != nil {
		log.Printf("Daily summary failed: %v", err)
		return
	}

	log.Printf("Daily summary: %d services live | %d orders booked | %.2f booked revenue",
		serviceCount, orderCount, revenue)
}
