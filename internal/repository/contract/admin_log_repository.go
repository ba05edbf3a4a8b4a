package contract

import (
	"context"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/repository/specification"
)

// AdminLogRepository is append-only, it has no Update or Delete.
type AdminLogRepository interface {
	Create(ctx context.Context, log *entity.AdminLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
