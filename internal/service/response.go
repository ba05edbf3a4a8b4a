package service

import (
	"context"
	"fmt"

	"motoservice-be/internal/dto"
	"motoservice-be/internal/entity"
	"motoservice-be/internal/pkg/apperror"
	"motoservice-be/internal/repository/contract"
	"motoservice-be/internal/repository/specification"
	"motoservice-be/pkg/booking/lifecycle"

	"github.com/google/uuid"
)

func toBookingResponse(b *entity.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		Id:                      b.Id,
		CustomerId:              b.CustomerId,
		ShopId:                  b.ShopId,
		ServiceId:               b.ServiceId,
		WorkerId:                b.WorkerId,
		Status:                  string(b.Status),
		ServiceCost:             b.ServiceCost,
		ExtraCharges:            b.ExtraCharges,
		TotalCost:               b.TotalCost,
		CreatedAt:               b.CreatedAt,
		StartedAt:               b.StartedAt,
		CompletedAt:             b.CompletedAt,
		EstimatedCompletionTime: b.EstimatedCompletionTime,
	}
}

func toInvoiceResponse(i *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		Id:                 i.Id,
		BookingId:          i.BookingId,
		BaseCost:           i.BaseCost,
		ExtraCharges:       i.ExtraCharges,
		TotalAmount:        i.TotalAmount,
		PlatformCommission: i.PlatformCommission,
		ShopCommission:     i.ShopCommission,
		Status:             string(i.Status),
		IssuedDate:         i.IssuedDate,
	}
}

func toWorkerResponse(w *entity.Worker) dto.WorkerResponse {
	return dto.WorkerResponse{
		Id:          w.Id,
		ShopId:      w.ShopId,
		Name:        w.Name,
		Rating:      w.Rating,
		IsAvailable: w.IsAvailable,
	}
}

func toAdminLogResponse(l *entity.AdminLog) dto.AdminLogResponse {
	return dto.AdminLogResponse{
		Id:        l.Id,
		ActorId:   l.ActorId,
		ActorRole: string(l.ActorRole),
		Action:    l.Action,
		SubjectId: l.SubjectId,
		Details:   l.Details,
		CreatedAt: l.CreatedAt,
	}
}

func findBooking(ctx context.Context, repo contract.BookingRepository, id uuid.UUID) (*entity.Booking, error) {
	booking, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.DependencyFailure("failed to load booking", err)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking not found")
	}
	return booking, nil
}

// transitionConflict re-reads the booking after a conditional update matched no row.
func transitionConflict(ctx context.Context, repo contract.BookingRepository, id uuid.UUID, action lifecycle.Action) error {
	current, err := findBooking(ctx, repo, id)
	if err != nil {
		return err
	}
	return invalidTransition(action, current.Status)
}

func invalidTransition(action lifecycle.Action, current entity.BookingStatus) error {
	return apperror.InvalidStateTransition(fmt.Sprintf("cannot %s a %s booking", action, current), string(current))
}
