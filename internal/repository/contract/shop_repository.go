package contract

import (
	"context"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error)

	// Catalog
	CreateService(ctx context.Context, service *entity.ShopService) error
	FindOneService(ctx context.Context, specs ...specification.Specification) (*entity.ShopService, error)
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Worker, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Worker, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error
}
