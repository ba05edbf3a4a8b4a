package unitofwork

import (
	"context"
	"fmt"

	"motoservice-be/internal/repository/contract"
	"motoservice-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // nil outside a transaction
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) BookingRepository() contract.BookingRepository {
	return implementation.NewBookingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ShopRepository() contract.ShopRepository {
	return implementation.NewShopRepository(u.getDB())
}

func (u *UnitOfWorkImpl) WorkerRepository() contract.WorkerRepository {
	return implementation.NewWorkerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CancellationRepository() contract.CancellationRepository {
	return implementation.NewCancellationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InvoiceRepository() contract.InvoiceRepository {
	return implementation.NewInvoiceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdminLogRepository() contract.AdminLogRepository {
	return implementation.NewAdminLogRepository(u.getDB())
}
