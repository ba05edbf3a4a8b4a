package implementation

import (
	"context"
	"errors"
	"time"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/mapper"
	"motoservice-be/internal/model"
	"motoservice-be/internal/repository/contract"
	"motoservice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CancellationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CancellationMapper
}

func NewCancellationRepository(db *gorm.DB) contract.CancellationRepository {
	return &CancellationRepositoryImpl{
		db:     db,
		mapper: mapper.NewCancellationMapper(),
	}
}

func (r *CancellationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CancellationRepositoryImpl) FindToken(ctx context.Context, customerId uuid.UUID) (*entity.CancellationToken, error) {
	var m model.CancellationToken
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TokenToEntity(&m), nil
}

func (r *CancellationRepositoryImpl) CreateToken(ctx context.Context, token *entity.CancellationToken) error {
	m := r.mapper.TokenToModel(token)
	// A concurrent first read may have created the row already
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Select("*").Create(m).Error; err != nil {
		return err
	}
	*token = *r.mapper.TokenToEntity(m)
	return nil
}

func (r *CancellationRepositoryImpl) ResetToken(ctx context.Context, customerId uuid.UUID, quota int, at time.Time) error {
	monthStart := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location())
	return r.db.WithContext(ctx).
		Model(&model.CancellationToken{}).
		Where("customer_id = ? AND last_reset_date < ?", customerId, monthStart).
		Updates(map[string]interface{}{
			"tokens_available": quota,
			"tokens_used":      0,
			"last_reset_date":  at,
		}).Error
}

func (r *CancellationRepositoryImpl) ConsumeToken(ctx context.Context, customerId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CancellationToken{}).
		Where("customer_id = ? AND tokens_available > 0", customerId).
		Updates(map[string]interface{}{
			"tokens_available": gorm.Expr("tokens_available - 1"),
			"tokens_used":      gorm.Expr("tokens_used + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CancellationRepositoryImpl) CreateRecord(ctx context.Context, record *entity.CancellationRecord) error {
	m := r.mapper.RecordToModel(record)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.RecordToEntity(m)
	return nil
}

func (r *CancellationRepositoryImpl) FindRecords(ctx context.Context, specs ...specification.Specification) ([]*entity.CancellationRecord, error) {
	var models []*model.CancellationRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.RecordsToEntities(models), nil
}

func (r *CancellationRepositoryImpl) CountRecords(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CancellationRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
