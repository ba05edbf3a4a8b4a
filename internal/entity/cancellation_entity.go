// FILE: internal/entity/cancellation_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CancellationToken is the monthly cancellation quota of a customer
type CancellationToken struct {
	CustomerId      uuid.UUID
	TokensAvailable int
	TokensUsed      int
	LastResetDate   time.Time
	UpdatedAt       time.Time
}

// CancellationRecord is the immutable audit row written once per cancellation
type CancellationRecord struct {
	Id             uuid.UUID
	BookingId      uuid.UUID
	CustomerId     uuid.UUID
	CancelledAt    time.Time
	TokensDeducted int
	RefundAmount   float64
	Reason         string
}
