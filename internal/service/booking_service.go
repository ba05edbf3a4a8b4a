package service

import (
	"context"
	"time"

	"motoservice-be/internal/dto"
	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/pkg/logger"
	"motoservice-be/internal/repository/specification"
	"motoservice-be/internal/repository/unitofwork"
	"motoservice-be/pkg/access"
	"motoservice-be/pkg/admin/audit"
	adminEvents "motoservice-be/pkg/admin/events"
	"motoservice-be/pkg/booking/commission"
	"motoservice-be/pkg/booking/ledger"
	"motoservice-be/pkg/booking/lifecycle"

	"github.com/google/uuid"
)

type IBookingService interface {
	Create(ctx context.Context, actor entity.Actor, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	Get(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.BookingResponse, error)
	Confirm(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.ConfirmBookingResponse, error)
	Start(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.BookingResponse, error)
	Complete(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.CompleteBookingRequest) (*dto.CompleteBookingResponse, error)
	Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.CancelBookingRequest) (*dto.CancelBookingResponse, error)
	GetInvoice(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.InvoiceResponse, error)
}

type bookingService struct {
	uowFactory unitofwork.RepositoryFactory
	assigner   IAssignmentService
	ledger     *ledger.Ledger
	recorder   audit.Recorder
	publisher  adminEvents.Publisher
	logger     logger.ILogger
	now        func() time.Time
}

func NewBookingService(
	uowFactory unitofwork.RepositoryFactory,
	assigner IAssignmentService,
	ledger *ledger.Ledger,
	recorder audit.Recorder,
	publisher adminEvents.Publisher,
	logger logger.ILogger,
	now func() time.Time,
) IBookingService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &bookingService{
		uowFactory: uowFactory,
		assigner:   assigner,
		ledger:     ledger,
		recorder:   recorder,
		publisher:  publisher,
		logger:     logger,
		now:        now,
	}
}

// authorize evaluates rule once, loading the shop only when the actor's role needs it.
func (s *bookingService) authorize(ctx context.Context, uow unitofwork.UnitOfWork, rule access.Rule, actor entity.Actor, booking *entity.Booking) error {
	subject := access.Subject{Booking: booking}
	if rule.NeedsShop(actor.Role) {
		shop, err := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: booking.ShopId})
		if err != nil {
			return apperror.DependencyFailure("failed to load shop", err)
		}
		subject.Shop = shop
	}
	if !rule.Allows(actor, subject) {
		return apperror.AuthorizationDenied("you are not allowed to act on this booking")
	}
	return nil
}

// load fetches the booking and checks access in one step.
func (s *bookingService) load(ctx context.Context, uow unitofwork.UnitOfWork, rule access.Rule, actor entity.Actor, id uuid.UUID) (*entity.Booking, error) {
	booking, err := findBooking(ctx, uow.BookingRepository(), id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, uow, rule, actor, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Create(ctx context.Context, actor entity.Actor, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if !access.CreateBooking.Allows(actor, access.Subject{}) {
		return nil, apperror.AuthorizationDenied("only customers can create bookings")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	shop, err := uow.ShopRepository().FindOne(ctx, specification.ByID{ID: req.ShopId})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load shop", err)
	}
	if shop == nil {
		return nil, apperror.NotFound("shop not found")
	}

	svc, err := uow.ShopRepository().FindOneService(ctx, specification.ByID{ID: req.ServiceId})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load service", err)
	}
	if svc == nil {
		return nil, apperror.NotFound("service not found")
	}
	if svc.ShopId != shop.Id {
		return nil, apperror.ValidationFailure("service is not offered by this shop")
	}

	booking := &entity.Booking{
		Id:           uuid.New(),
		CustomerId:   actor.Id,
		ShopId:       shop.Id,
		ServiceId:    svc.Id,
		Status:       entity.BookingStatusPending,
		ServiceCost:  svc.Price,
		ExtraCharges: 0,
		CreatedAt:    s.now(),
	}
	if err := uow.BookingRepository().Create(ctx, booking); err != nil {
		return nil, apperror.DependencyFailure("failed to create booking", err)
	}

	s.logger.Info("BOOKING", "Booking created", map[string]interface{}{
		"booking_id":  booking.Id.String(),
		"customer_id": actor.Id.String(),
		"shop_id":     shop.Id.String(),
	})
	s.recorder.Record(ctx, actor, "booking.create", booking.Id, map[string]interface{}{
		"shop_id":      shop.Id.String(),
		"service_id":   svc.Id.String(),
		"service_cost": svc.Price,
	})

	res := toBookingResponse(booking)
	return &res, nil
}

func (s *bookingService) Get(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := s.load(ctx, uow, access.ViewBooking, actor, id)
	if err != nil {
		return nil, err
	}

	res := toBookingResponse(booking)
	return &res, nil
}

func (s *bookingService) Confirm(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.ConfirmBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := s.load(ctx, uow, access.ConfirmBooking, actor, id)
	if err != nil {
		return nil, err
	}
	next, ok := lifecycle.Next(lifecycle.ActionConfirm, booking.Status)
	if !ok {
		return nil, invalidTransition(lifecycle.ActionConfirm, booking.Status)
	}

	updated, err := uow.BookingRepository().Transition(ctx, id, booking.Status, entity.BookingChanges{Status: next})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to confirm booking", err)
	}
	if !updated {
		return nil, transitionConflict(ctx, uow.BookingRepository(), id, lifecycle.ActionConfirm)
	}

	from := booking.Status
	booking.Status = next
	s.logger.Info("BOOKING", "Booking confirmed", map[string]interface{}{
		"booking_id": id.String(),
	})
	s.recorder.Record(ctx, actor, lifecycle.AuditAction(lifecycle.ActionConfirm), id, map[string]interface{}{
		"from": string(from),
		"to":   string(next),
	})
	s.publisher.PublishBookingConfirmed(ctx, booking)

	// Assignment failure leaves the booking confirmed for the next sweep
	assigned, err := s.assigner.Assign(ctx, id)
	if err != nil {
		s.logger.Warn("ASSIGNMENT", "Automatic assignment failed", map[string]interface{}{
			"booking_id": id.String(),
			"error":      err.Error(),
		})
	} else {
		booking = assigned
	}

	return &dto.ConfirmBookingResponse{
		Booking:  toBookingResponse(booking),
		Assigned: booking.Status == entity.BookingStatusAssigned,
	}, nil
}

func (s *bookingService) Start(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := s.load(ctx, uow, access.StartBooking, actor, id)
	if err != nil {
		return nil, err
	}
	next, ok := lifecycle.Next(lifecycle.ActionStart, booking.Status)
	if !ok {
		return nil, invalidTransition(lifecycle.ActionStart, booking.Status)
	}

	now := s.now()
	eta := now.Add(lifecycle.EstimatedDuration)
	updated, err := uow.BookingRepository().Transition(ctx, id, booking.Status, entity.BookingChanges{
		Status:                  next,
		StartedAt:               &now,
		EstimatedCompletionTime: &eta,
	})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to start booking", err)
	}
	if !updated {
		return nil, transitionConflict(ctx, uow.BookingRepository(), id, lifecycle.ActionStart)
	}

	from := booking.Status
	booking.Status = next
	booking.StartedAt = &now
	booking.EstimatedCompletionTime = &eta

	s.logger.Info("BOOKING", "Job started", map[string]interface{}{
		"booking_id": id.String(),
		"worker_id":  actor.Id.String(),
	})
	s.recorder.Record(ctx, actor, lifecycle.AuditAction(lifecycle.ActionStart), id, map[string]interface{}{
		"from":                      string(from),
		"to":                        string(next),
		"estimated_completion_time": eta,
	})
	s.publisher.PublishBookingStarted(ctx, booking)

	res := toBookingResponse(booking)
	return &res, nil
}

func (s *bookingService) Complete(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.CompleteBookingRequest) (*dto.CompleteBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := s.load(ctx, uow, access.CompleteBooking, actor, id)
	if err != nil {
		return nil, err
	}
	next, ok := lifecycle.Next(lifecycle.ActionComplete, booking.Status)
	if !ok {
		return nil, invalidTransition(lifecycle.ActionComplete, booking.Status)
	}

	extra := booking.ExtraCharges
	if req != nil && req.ExtraCharges != nil {
		extra = *req.ExtraCharges
	}
	split := commission.Calculate(booking.ServiceCost, extra)
	now := s.now()

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.DependencyFailure("failed to begin transaction", err)
	}
	defer uow.Rollback()

	updated, err := uow.BookingRepository().Transition(ctx, id, booking.Status, entity.BookingChanges{
		Status:       next,
		ExtraCharges: &extra,
		TotalCost:    &split.Total,
		CompletedAt:  &now,
	})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to complete booking", err)
	}
	if !updated {
		_ = uow.Rollback()
		return nil, transitionConflict(ctx, uow.BookingRepository(), id, lifecycle.ActionComplete)
	}

	invoice := &entity.Invoice{
		Id:                 uuid.New(),
		BookingId:          id,
		BaseCost:           booking.ServiceCost,
		ExtraCharges:       extra,
		TotalAmount:        split.Total,
		PlatformCommission: split.Platform,
		ShopCommission:     split.Shop,
		Status:             entity.InvoiceStatusIssued,
		IssuedDate:         now,
	}
	if err := uow.InvoiceRepository().Create(ctx, invoice); err != nil {
		return nil, apperror.DependencyFailure("failed to issue invoice", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.DependencyFailure("failed to commit completion", err)
	}

	from := booking.Status
	booking.Status = next
	booking.ExtraCharges = extra
	booking.TotalCost = &split.Total
	booking.CompletedAt = &now

	duration := 0
	if booking.StartedAt != nil {
		duration = lifecycle.DurationMinutes(*booking.StartedAt, now)
	}

	s.logger.Info("BOOKING", "Booking completed", map[string]interface{}{
		"booking_id":       id.String(),
		"invoice_id":       invoice.Id.String(),
		"total":            split.Total,
		"duration_minutes": duration,
	})
	s.recorder.Record(ctx, actor, lifecycle.AuditAction(lifecycle.ActionComplete), id, map[string]interface{}{
		"from":             string(from),
		"to":               string(next),
		"invoice_id":       invoice.Id.String(),
		"total_cost":       split.Total,
		"duration_minutes": duration,
	})
	s.publisher.PublishBookingCompleted(ctx, booking, duration)
	s.publisher.PublishInvoiceIssued(ctx, invoice, booking.CustomerId)

	return &dto.CompleteBookingResponse{
		Booking:         toBookingResponse(booking),
		Invoice:         toInvoiceResponse(invoice),
		DurationMinutes: duration,
	}, nil
}

func (s *bookingService) Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.CancelBookingRequest) (*dto.CancelBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := s.load(ctx, uow, access.CancelBooking, actor, id)
	if err != nil {
		return nil, err
	}
	next, ok := lifecycle.Next(lifecycle.ActionCancel, booking.Status)
	if !ok {
		return nil, invalidTransition(lifecycle.ActionCancel, booking.Status)
	}

	reason := ""
	if req != nil {
		reason = req.Reason
	}
	now := s.now()

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.DependencyFailure("failed to begin transaction", err)
	}
	defer uow.Rollback()

	token, err := s.ledger.Consume(ctx, uow, booking.CustomerId, now)
	if err != nil {
		return nil, err
	}

	updated, err := uow.BookingRepository().Transition(ctx, id, booking.Status, entity.BookingChanges{Status: next})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to cancel booking", err)
	}
	if !updated {
		// Undo the token spend before reporting the conflict
		_ = uow.Rollback()
		return nil, transitionConflict(ctx, uow.BookingRepository(), id, lifecycle.ActionCancel)
	}

	record := &entity.CancellationRecord{
		Id:             uuid.New(),
		BookingId:      id,
		CustomerId:     booking.CustomerId,
		CancelledAt:    now,
		TokensDeducted: 1,
		RefundAmount:   booking.ServiceCost,
		Reason:         reason,
	}
	if err := uow.CancellationRepository().CreateRecord(ctx, record); err != nil {
		return nil, apperror.DependencyFailure("failed to record cancellation", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.DependencyFailure("failed to commit cancellation", err)
	}

	from := booking.Status
	booking.Status = next

	s.logger.Info("LEDGER", "Booking cancelled with token", map[string]interface{}{
		"booking_id":       id.String(),
		"customer_id":      booking.CustomerId.String(),
		"tokens_available": token.TokensAvailable,
	})
	s.recorder.Record(ctx, actor, lifecycle.AuditAction(lifecycle.ActionCancel), id, map[string]interface{}{
		"from":             string(from),
		"to":               string(next),
		"refund_amount":    record.RefundAmount,
		"tokens_available": token.TokensAvailable,
		"reason":           reason,
	})
	s.publisher.PublishBookingCancelled(ctx, record, token.TokensAvailable)

	return &dto.CancelBookingResponse{
		Booking:         toBookingResponse(booking),
		RecordId:        record.Id,
		RefundAmount:    record.RefundAmount,
		TokensDeducted:  record.TokensDeducted,
		TokensAvailable: token.TokensAvailable,
	}, nil
}

func (s *bookingService) GetInvoice(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.load(ctx, uow, access.ViewBooking, actor, id); err != nil {
		return nil, err
	}

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByBookingID{BookingID: id})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load invoice", err)
	}
	if invoice == nil {
		return nil, apperror.NotFound("invoice not issued yet")
	}

	res := toInvoiceResponse(invoice)
	return &res, nil
}
