// FILE: internal/model/cancellation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CancellationToken GORM model, one row per customer
type CancellationToken struct {
	CustomerId      uuid.UUID `gorm:"type:uuid;primaryKey"`
	TokensAvailable int       `gorm:"not null;default:3"`
	TokensUsed      int       `gorm:"not null;default:0"`
	LastResetDate   time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (CancellationToken) TableName() string {
	return "cancellation_tokens"
}

// CancellationRecord GORM model, never updated after insert
type CancellationRecord struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CancelledAt    time.Time `gorm:"not null;index"`
	TokensDeducted int       `gorm:"not null;default:1"`
	RefundAmount   float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Reason         string    `gorm:"type:text"`
}

func (CancellationRecord) TableName() string {
	return "cancellation_records"
}
