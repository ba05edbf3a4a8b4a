package model

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	Id                      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerId              uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShopId                  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceId               uuid.UUID  `gorm:"type:uuid;not null"`
	WorkerId                *uuid.UUID `gorm:"type:uuid;index"`
	Status                  string     `gorm:"type:varchar(20);not null;default:'pending';index"` // pending, confirmed, assigned, started, completed, cancelled
	ServiceCost             float64    `gorm:"type:decimal(10,2);not null"`
	ExtraCharges            float64    `gorm:"type:decimal(10,2);not null;default:0"`
	TotalCost               *float64   `gorm:"type:decimal(10,2)"` // set at completion only
	CreatedAt               time.Time  `gorm:"not null;index"`
	StartedAt               *time.Time
	CompletedAt             *time.Time
	EstimatedCompletionTime *time.Time
	UpdatedAt               time.Time `gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}
