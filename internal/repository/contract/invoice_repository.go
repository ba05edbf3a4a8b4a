package contract

import (
	"context"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/repository/specification"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
