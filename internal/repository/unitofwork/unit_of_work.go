package unitofwork

import (
	"context"

	"motoservice-be/internal/repository/contract"
)

// RepositoryFactory hands out a fresh UnitOfWork per request or job run.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

// UnitOfWork scopes repositories to one optional transaction.
// Repositories obtained after Begin run inside it until Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BookingRepository() contract.BookingRepository
	ShopRepository() contract.ShopRepository
	WorkerRepository() contract.WorkerRepository
	CancellationRepository() contract.CancellationRepository
	InvoiceRepository() contract.InvoiceRepository
	AdminLogRepository() contract.AdminLogRepository
}
