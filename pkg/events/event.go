package events

import "time"

// Event is anything published on the outbound bus.
type Event interface {
	// EventType is the subject suffix, e.g. "BOOKING_CONFIRMED".
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

const (
	TypeBookingConfirmed = "BOOKING_CONFIRMED"
	TypeBookingAssigned  = "BOOKING_ASSIGNED"
	TypeBookingStarted   = "BOOKING_STARTED"
	TypeBookingCompleted = "BOOKING_COMPLETED"
	TypeBookingCancelled = "BOOKING_CANCELLED"
	TypeInvoiceIssued    = "INVOICE_ISSUED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
