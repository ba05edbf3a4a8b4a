package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusAssigned  BookingStatus = "assigned"
	BookingStatusStarted   BookingStatus = "started"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"

	// BookingStatusNoShow only appears on imported historical rows.
	// No transition produces it, but abuse scoring counts it.
	BookingStatusNoShow BookingStatus = "no-show"
)

type Booking struct {
	Id                      uuid.UUID
	CustomerId              uuid.UUID
	ShopId                  uuid.UUID
	ServiceId               uuid.UUID
	WorkerId                *uuid.UUID
	Status                  BookingStatus
	ServiceCost             float64
	ExtraCharges            float64
	TotalCost               *float64
	CreatedAt               time.Time
	StartedAt               *time.Time
	CompletedAt             *time.Time
	EstimatedCompletionTime *time.Time
	UpdatedAt               time.Time
}

// HasWorker reports whether the booking is assigned to the given worker.
func (b *Booking) HasWorker(workerId uuid.UUID) bool {
	return b.WorkerId != nil && *b.WorkerId == workerId
}

// BookingChanges carries the columns a status transition writes.
// Nil fields are left untouched.
type BookingChanges struct {
	Status                  BookingStatus
	WorkerId                *uuid.UUID
	ExtraCharges            *float64
	TotalCost               *float64
	StartedAt               *time.Time
	CompletedAt             *time.Time
	EstimatedCompletionTime *time.Time
}
