package implementation

import (
	"context"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/mapper"
	"motoservice-be/internal/model"
	"motoservice-be/internal/repository/contract"
	"motoservice-be/internal/repository/scope"
	"motoservice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminLogMapper
}

func NewAdminLogRepository(db *gorm.DB) contract.AdminLogRepository {
	return &AdminLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminLogMapper(),
	}
}

func (r *AdminLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdminLogRepositoryImpl) Create(ctx context.Context, log *entity.AdminLog) error {
	m, err := r.mapper.ToModel(log)
	if err != nil {
		return err
	}
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

// FindAll returns newest entries first.
func (r *AdminLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminLog, error) {
	var models []*model.AdminLog
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AdminLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AdminLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
