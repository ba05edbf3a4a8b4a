package entity

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusIssued InvoiceStatus = "issued"
)

type Invoice struct {
	Id                 uuid.UUID
	BookingId          uuid.UUID
	BaseCost           float64
	ExtraCharges       float64
	TotalAmount        float64
	PlatformCommission float64
	ShopCommission     float64
	Status             InvoiceStatus
	IssuedDate         time.Time
}
