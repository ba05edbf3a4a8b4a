package events

import (
	"context"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/logger"
	pkgEvents "motoservice-be/pkg/events"

	"github.com/google/uuid"
)

// EventSink is the outbound bus, satisfied by *nats.Publisher.
type EventSink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

// Publisher emits fire-and-forget booking notifications.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, booking *entity.Booking)
	PublishBookingAssigned(ctx context.Context, booking *entity.Booking, workerId uuid.UUID)
	PublishBookingStarted(ctx context.Context, booking *entity.Booking)
	PublishBookingCompleted(ctx context.Context, booking *entity.Booking, durationMinutes int)
	PublishInvoiceIssued(ctx context.Context, invoice *entity.Invoice, customerId uuid.UUID)
	PublishBookingCancelled(ctx context.Context, record *entity.CancellationRecord, tokensLeft int)
}

// NatsPublisher implements Publisher. A nil sink turns every call into a no-op.
type NatsPublisher struct {
	sink   EventSink
	logger logger.ILogger
}

func NewNatsPublisher(sink EventSink, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		sink:   sink,
		logger: logger,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.sink == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}

	if err := p.sink.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func bookingData(b *entity.Booking) map[string]interface{} {
	data := map[string]interface{}{
		"booking_id":  b.Id.String(),
		"customer_id": b.CustomerId.String(),
		"shop_id":     b.ShopId.String(),
		"status":      string(b.Status),
		"entity_type": "booking",
		"entity_id":   b.Id.String(),
	}
	if b.WorkerId != nil {
		data["worker_id"] = b.WorkerId.String()
	}
	return data
}

func (p *NatsPublisher) PublishBookingConfirmed(ctx context.Context, booking *entity.Booking) {
	p.publish(ctx, pkgEvents.TypeBookingConfirmed, bookingData(booking))
}

func (p *NatsPublisher) PublishBookingAssigned(ctx context.Context, booking *entity.Booking, workerId uuid.UUID) {
	data := bookingData(booking)
	data["worker_id"] = workerId.String()
	p.publish(ctx, pkgEvents.TypeBookingAssigned, data)
}

func (p *NatsPublisher) PublishBookingStarted(ctx context.Context, booking *entity.Booking) {
	data := bookingData(booking)
	if booking.EstimatedCompletionTime != nil {
		data["estimated_completion_time"] = booking.EstimatedCompletionTime
	}
	p.publish(ctx, pkgEvents.TypeBookingStarted, data)
}

func (p *NatsPublisher) PublishBookingCompleted(ctx context.Context, booking *entity.Booking, durationMinutes int) {
	data := bookingData(booking)
	data["duration_minutes"] = durationMinutes
	if booking.TotalCost != nil {
		data["total_cost"] = *booking.TotalCost
	}
	p.publish(ctx, pkgEvents.TypeBookingCompleted, data)
}

// PublishInvoiceIssued is the hook external mailers use to send the invoice email.
func (p *NatsPublisher) PublishInvoiceIssued(ctx context.Context, invoice *entity.Invoice, customerId uuid.UUID) {
	p.publish(ctx, pkgEvents.TypeInvoiceIssued, map[string]interface{}{
		"invoice_id":          invoice.Id.String(),
		"booking_id":          invoice.BookingId.String(),
		"customer_id":         customerId.String(),
		"total_amount":        invoice.TotalAmount,
		"platform_commission": invoice.PlatformCommission,
		"shop_commission":     invoice.ShopCommission,
		"issued_date":         invoice.IssuedDate,
		"entity_type":         "invoice",
		"entity_id":           invoice.Id.String(),
	})
}

func (p *NatsPublisher) PublishBookingCancelled(ctx context.Context, record *entity.CancellationRecord, tokensLeft int) {
	p.publish(ctx, pkgEvents.TypeBookingCancelled, map[string]interface{}{
		"booking_id":    record.BookingId.String(),
		"customer_id":   record.CustomerId.String(),
		"refund_amount": record.RefundAmount,
		"tokens_left":   tokensLeft,
		"reason":        record.Reason,
		"entity_type":   "booking",
		"entity_id":     record.BookingId.String(),
	})
}
