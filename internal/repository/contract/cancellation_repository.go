// FILE: internal/repository/contract/cancellation_repository.go
package contract

import (
	"context"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/repository/specification"

	"github.com/google/uuid"
)

// CancellationRepository defines operations for the token ledger and cancellation records
type CancellationRepository interface {
	// Ledger
	FindToken(ctx context.Context, customerId uuid.UUID) (*entity.CancellationToken, error)
	CreateToken(ctx context.Context, token *entity.CancellationToken) error
	// ResetToken refills the quota unless the row was already reset in at's month.
	ResetToken(ctx context.Context, customerId uuid.UUID, quota int, at time.Time) error
	// ConsumeToken decrements tokens_available only while it is above zero.
	ConsumeToken(ctx context.Context, customerId uuid.UUID) (bool, error)

	// Records (insert only)
	CreateRecord(ctx context.Context, record *entity.CancellationRecord) error
	FindRecords(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRecord, error)
	CountRecords(ctx context.Context, specs ...specification.Specification) (int64, error)
}
