package models

import "time"

// Order records one purchase of one service. Orders are insert-only: there is
// no update or delete path, and the joined Service is read at list time, not
// snapshotted at order time.
type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"not null" json:"customerName"`
	Email        string    `gorm:"not null" json:"email"`
	ServiceID    uint      `gorm:"index;not null" json:"serviceId"`
	Service      *Service  `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"service,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
