package nats

import (
	"encoding/json"
	"testing"
	"time"

	"motoservice-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "booking.INVOICE_ISSUED", Subject(events.TypeInvoiceIssued))
}

func TestEncode(t *testing.T) {
	at := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	raw, err := Encode(events.BaseEvent{
		Type:       events.TypeBookingCompleted,
		Data:       map[string]interface{}{"booking_id": "b-1", "total_cost": 1000.0},
		OccurredAt: at,
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "BOOKING_COMPLETED", decoded["type"])
	assert.Equal(t, "2025-05-01T08:30:00Z", decoded["occurred_at"])
	assert.Equal(t, map[string]interface{}{"booking_id": "b-1", "total_cost": 1000.0}, decoded["data"])
}
