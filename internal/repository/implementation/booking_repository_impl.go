package implementation

import (
	"context"
	"errors"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/mapper"
	"motoservice-be/internal/model"
	"motoservice-be/internal/repository/contract"
	"motoservice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookingMapper
}

func NewBookingRepository(db *gorm.DB) contract.BookingRepository {
	return &BookingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookingMapper(),
	}
}

func (r *BookingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *entity.Booking) error {
	m := r.mapper.ToModel(booking)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error) {
	var m model.Booking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	var models []*model.Booking
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Booking{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) Transition(ctx context.Context, id uuid.UUID, expected entity.BookingStatus, changes entity.BookingChanges) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(r.mapper.ToColumns(changes))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
