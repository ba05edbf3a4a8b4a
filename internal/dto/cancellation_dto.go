package dto

import (
	"time"

	"github.com/google/uuid"
)

type CancelBookingResponse struct {
	Booking         BookingResponse `json:"booking"`
	RecordId        uuid.UUID       `json:"record_id"`
	RefundAmount    float64         `json:"refund_amount"`
	TokensDeducted  int             `json:"tokens_deducted"`
	TokensAvailable int             `json:"tokens_available"`
}

type CancellationStatusResponse struct {
	TokensAvailable          int       `json:"tokens_available"`
	TokensUsed               int       `json:"tokens_used"`
	LastResetDate            time.Time `json:"last_reset_date"`
	ConsecutiveCancellations int64     `json:"consecutive_cancellations"`
	CanCancel                bool      `json:"can_cancel"`
}
