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
	"motoservice-be/pkg/admin/audit"
	adminEvents "motoservice-be/pkg/admin/events"
	"motoservice-be/pkg/booking/assignment"
	"motoservice-be/pkg/booking/lifecycle"

	"github.com/google/uuid"
)

// SweepLease lets one replica at a time run the periodic sweep.
type SweepLease interface {
	Acquire(ctx context.Context) (bool, error)
}

type IAssignmentService interface {
	// Assign moves a confirmed booking to assigned. When no worker is available
	// the booking is returned unchanged, still confirmed.
	Assign(ctx context.Context, bookingId uuid.UUID) (*entity.Booking, error)
	// Sweep retries assignment for the oldest confirmed bookings, guarded by the lease.
	Sweep(ctx context.Context) (*dto.SweepResponse, error)
	// SweepShop retries assignment for one shop, e.g. after a worker became available.
	SweepShop(ctx context.Context, shopId uuid.UUID) (*dto.SweepResponse, error)
}

type assignmentService struct {
	uowFactory unitofwork.RepositoryFactory
	policy     *assignment.Policy
	recorder   audit.Recorder
	publisher  adminEvents.Publisher
	lease      SweepLease
	batchSize  int
	logger     logger.ILogger
}

func NewAssignmentService(
	uowFactory unitofwork.RepositoryFactory,
	policy *assignment.Policy,
	recorder audit.Recorder,
	publisher adminEvents.Publisher,
	lease SweepLease,
	batchSize int,
	logger logger.ILogger,
) IAssignmentService {
	return &assignmentService{
		uowFactory: uowFactory,
		policy:     policy,
		recorder:   recorder,
		publisher:  publisher,
		lease:      lease,
		batchSize:  batchSize,
		logger:     logger,
	}
}

func (s *assignmentService) Assign(ctx context.Context, bookingId uuid.UUID) (*entity.Booking, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := findBooking(ctx, uow.BookingRepository(), bookingId)
	if err != nil {
		return nil, err
	}
	next, ok := lifecycle.Next(lifecycle.ActionAssign, booking.Status)
	if !ok {
		return nil, invalidTransition(lifecycle.ActionAssign, booking.Status)
	}

	worker, err := s.policy.Select(ctx, uow, booking.ShopId)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load workers", err)
	}
	if worker == nil {
		s.logger.Info("ASSIGNMENT", "No available worker, assignment deferred", map[string]interface{}{
			"booking_id": booking.Id.String(),
			"shop_id":    booking.ShopId.String(),
		})
		return booking, nil
	}

	updated, err := uow.BookingRepository().Transition(ctx, booking.Id, booking.Status, entity.BookingChanges{
		Status:   next,
		WorkerId: &worker.Id,
	})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to assign booking", err)
	}
	if !updated {
		return nil, transitionConflict(ctx, uow.BookingRepository(), booking.Id, lifecycle.ActionAssign)
	}

	from := booking.Status
	booking.Status = next
	booking.WorkerId = &worker.Id

	s.logger.Info("ASSIGNMENT", "Booking assigned", map[string]interface{}{
		"booking_id": booking.Id.String(),
		"worker_id":  worker.Id.String(),
		"rating":     worker.Rating,
	})
	s.recorder.Record(ctx, entity.SystemActor, lifecycle.AuditAction(lifecycle.ActionAssign), booking.Id, map[string]interface{}{
		"from":      string(from),
		"to":        string(next),
		"worker_id": worker.Id.String(),
	})
	s.publisher.PublishBookingAssigned(ctx, booking, worker.Id)

	return booking, nil
}

func (s *assignmentService) Sweep(ctx context.Context) (*dto.SweepResponse, error) {
	acquired, err := s.lease.Acquire(ctx)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to acquire sweep lease", err)
	}
	if !acquired {
		return &dto.SweepResponse{Skipped: true}, nil
	}
	return s.sweep(ctx)
}

func (s *assignmentService) SweepShop(ctx context.Context, shopId uuid.UUID) (*dto.SweepResponse, error) {
	return s.sweep(ctx, specification.ByShopID{ShopID: shopId})
}

func (s *assignmentService) sweep(ctx context.Context, filters ...specification.Specification) (*dto.SweepResponse, error) {
	started := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := append([]specification.Specification{
		specification.ByStatus{Status: entity.BookingStatusConfirmed},
		specification.OrderBy{Field: "created_at"},
		specification.Limit{N: s.batchSize},
	}, filters...)

	pending, err := uow.BookingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load confirmed bookings", err)
	}

	res := &dto.SweepResponse{Scanned: len(pending)}
	for _, b := range pending {
		if ctx.Err() != nil {
			break
		}
		assigned, err := s.Assign(ctx, b.Id)
		if err != nil {
			// Lost a race with a cancel or another sweep, move on
			s.logger.Warn("SWEEPER", "Assignment retry failed", map[string]interface{}{
				"booking_id": b.Id.String(),
				"error":      err.Error(),
			})
			continue
		}
		if assigned.Status == entity.BookingStatusAssigned {
			res.Assigned++
		}
	}

	if res.Scanned > 0 {
		s.logger.Info("SWEEPER", "Assignment sweep finished", map[string]interface{}{
			"scanned":     res.Scanned,
			"assigned":    res.Assigned,
			"duration_ms": time.Since(started).Milliseconds(),
		})
	}
	return res, nil
}
