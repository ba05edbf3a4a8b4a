package contract

import (
	"context"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Transition applies changes only while the row still has the expected status.
	// It reports false when no row matched (missing booking or status moved on).
	Transition(ctx context.Context, id uuid.UUID, expected entity.BookingStatus, changes entity.BookingChanges) (bool, error)
}
