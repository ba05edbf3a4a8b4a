package model

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingId          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"` // at most one invoice per booking
	BaseCost           float64   `gorm:"type:decimal(10,2);not null"`
	ExtraCharges       float64   `gorm:"type:decimal(10,2);not null;default:0"`
	TotalAmount        float64   `gorm:"type:decimal(10,2);not null"`
	PlatformCommission float64   `gorm:"type:decimal(10,2);not null"`
	ShopCommission     float64   `gorm:"type:decimal(10,2);not null"`
	Status             string    `gorm:"type:varchar(20);not null;default:'issued'"`
	IssuedDate         time.Time `gorm:"not null"`
}

func (Invoice) TableName() string {
	return "invoices"
}
