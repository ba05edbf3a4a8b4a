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

type WorkerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkerMapper
}

func NewWorkerRepository(db *gorm.DB) contract.WorkerRepository {
	return &WorkerRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkerMapper(),
	}
}

func (r *WorkerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WorkerRepositoryImpl) Create(ctx context.Context, worker *entity.Worker) error {
	m := r.mapper.ToModel(worker)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	// Select("*") so a worker created as unavailable keeps is_available = false
	if err := r.db.WithContext(ctx).Select("*").Create(m).Error; err != nil {
		return err
	}
	*worker = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Worker, error) {
	var m model.Worker
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WorkerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Worker, error) {
	var models []*model.Worker
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WorkerRepositoryImpl) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Worker{}).
		Where("id = ?", id).
		Update("is_available", available).Error
}
