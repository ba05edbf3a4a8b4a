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

type ShopRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShopMapper
}

func NewShopRepository(db *gorm.DB) contract.ShopRepository {
	return &ShopRepositoryImpl{
		db:     db,
		mapper: mapper.NewShopMapper(),
	}
}

func (r *ShopRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShopRepositoryImpl) Create(ctx context.Context, shop *entity.Shop) error {
	m := r.mapper.ToModel(shop)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*shop = *r.mapper.ToEntity(m)
	return nil
}

func (r *ShopRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error) {
	var m model.Shop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ShopRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error) {
	var models []*model.Shop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ShopRepositoryImpl) CreateService(ctx context.Context, service *entity.ShopService) error {
	m := r.mapper.ServiceToModel(service)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ServiceToEntity(m)
	return nil
}

func (r *ShopRepositoryImpl) FindOneService(ctx context.Context, specs ...specification.Specification) (*entity.ShopService, error) {
	var m model.ShopService
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ServiceToEntity(&m), nil
}
