package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Requests ---

type CreateBookingRequest struct {
	ShopId    uuid.UUID `json:"shop_id" validate:"required"`
	ServiceId uuid.UUID `json:"service_id" validate:"required"`
}

type CompleteBookingRequest struct {
	// ExtraCharges replaces the stored extra charges when present
	ExtraCharges *float64 `json:"extra_charges" validate:"omitempty,gte=0"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// --- Responses ---

type BookingResponse struct {
	Id                      uuid.UUID  `json:"id"`
	CustomerId              uuid.UUID  `json:"customer_id"`
	ShopId                  uuid.UUID  `json:"shop_id"`
	ServiceId               uuid.UUID  `json:"service_id"`
	WorkerId                *uuid.UUID `json:"worker_id"`
	Status                  string     `json:"status"`
	ServiceCost             float64    `json:"service_cost"`
	ExtraCharges            float64    `json:"extra_charges"`
	TotalCost               *float64   `json:"total_cost"`
	CreatedAt               time.Time  `json:"created_at"`
	StartedAt               *time.Time `json:"started_at,omitempty"`
	CompletedAt             *time.Time `json:"completed_at,omitempty"`
	EstimatedCompletionTime *time.Time `json:"estimated_completion_time,omitempty"`
}

// ConfirmBookingResponse tells whether automatic assignment found a worker.
type ConfirmBookingResponse struct {
	Booking  BookingResponse `json:"booking"`
	Assigned bool            `json:"assigned"`
}

type CompleteBookingResponse struct {
	Booking         BookingResponse `json:"booking"`
	Invoice         InvoiceResponse `json:"invoice"`
	DurationMinutes int             `json:"duration_minutes"`
}

type InvoiceResponse struct {
	Id                 uuid.UUID `json:"id"`
	BookingId          uuid.UUID `json:"booking_id"`
	BaseCost           float64   `json:"base_cost"`
	ExtraCharges       float64   `json:"extra_charges"`
	TotalAmount        float64   `json:"total_amount"`
	PlatformCommission float64   `json:"platform_commission"`
	ShopCommission     float64   `json:"shop_commission"`
	Status             string    `json:"status"`
	IssuedDate         time.Time `json:"issued_date"`
}

// SweepResponse summarizes one assignment sweep.
type SweepResponse struct {
	Scanned  int  `json:"scanned"`
	Assigned int  `json:"assigned"`
	Skipped  bool `json:"skipped"` // another replica holds the sweep lease
}
