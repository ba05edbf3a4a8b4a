package events

import (
	"context"
	"errors"
	"testing"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/logger"
	pkgEvents "motoservice-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []pkgEvents.Event
	err    error
}

func (s *recordingSink) Publish(_ context.Context, event pkgEvents.Event) error {
	s.events = append(s.events, event)
	return s.err
}

func TestNatsPublisher_InvoiceIssued(t *testing.T) {
	sink := &recordingSink{}
	p := NewNatsPublisher(sink, logger.NewNopLogger())

	invoice := &entity.Invoice{Id: uuid.New(), BookingId: uuid.New(), TotalAmount: 1000, PlatformCommission: 300, ShopCommission: 700}
	customerId := uuid.New()
	p.PublishInvoiceIssued(context.Background(), invoice, customerId)

	require.Len(t, sink.events, 1)
	evt := sink.events[0]
	assert.Equal(t, pkgEvents.TypeInvoiceIssued, evt.EventType())
	assert.Equal(t, customerId.String(), evt.Payload()["customer_id"])
	assert.Equal(t, 300.0, evt.Payload()["platform_commission"])
	assert.False(t, evt.Timestamp().IsZero())
}

func TestNatsPublisher_AssignedCarriesWorker(t *testing.T) {
	sink := &recordingSink{}
	p := NewNatsPublisher(sink, logger.NewNopLogger())
	workerId := uuid.New()

	p.PublishBookingAssigned(context.Background(), &entity.Booking{Id: uuid.New(), Status: entity.BookingStatusAssigned}, workerId)

	require.Len(t, sink.events, 1)
	assert.Equal(t, workerId.String(), sink.events[0].Payload()["worker_id"])
	assert.Equal(t, "assigned", sink.events[0].Payload()["status"])
}

func TestNatsPublisher_NilSinkAndFailuresAreSilent(t *testing.T) {
	booking := &entity.Booking{Id: uuid.New()}

	assert.NotPanics(t, func() {
		NewNatsPublisher(nil, logger.NewNopLogger()).PublishBookingConfirmed(context.Background(), booking)
	})

	failing := &recordingSink{err: errors.New("nats: no responders")}
	assert.NotPanics(t, func() {
		NewNatsPublisher(failing, logger.NewNopLogger()).PublishBookingStarted(context.Background(), booking)
	})
	assert.Len(t, failing.events, 1)
}
