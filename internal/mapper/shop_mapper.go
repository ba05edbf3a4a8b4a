package mapper

import (
	"motoservice-be/internal/entity"
	"motoservice-be/internal/model"
)

type ShopMapper struct{}

func NewShopMapper() *ShopMapper {
	return &ShopMapper{}
}

func (m *ShopMapper) ToEntity(s *model.Shop) *entity.Shop {
	if s == nil {
		return nil
	}
	return &entity.Shop{
		Id:        s.Id,
		OwnerId:   s.OwnerId,
		Name:      s.Name,
		Rating:    s.Rating,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ShopMapper) ToModel(s *entity.Shop) *model.Shop {
	if s == nil {
		return nil
	}
	return &model.Shop{
		Id:        s.Id,
		OwnerId:   s.OwnerId,
		Name:      s.Name,
		Rating:    s.Rating,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ShopMapper) ServiceToEntity(s *model.ShopService) *entity.ShopService {
	if s == nil {
		return nil
	}
	return &entity.ShopService{
		Id:     s.Id,
		ShopId: s.ShopId,
		Name:   s.Name,
		Price:  s.Price,
	}
}

func (m *ShopMapper) ServiceToModel(s *entity.ShopService) *model.ShopService {
	if s == nil {
		return nil
	}
	return &model.ShopService{
		Id:     s.Id,
		ShopId: s.ShopId,
		Name:   s.Name,
		Price:  s.Price,
	}
}

type WorkerMapper struct{}

func NewWorkerMapper() *WorkerMapper {
	return &WorkerMapper{}
}

func (m *WorkerMapper) ToEntity(w *model.Worker) *entity.Worker {
	if w == nil {
		return nil
	}
	return &entity.Worker{
		Id:          w.Id,
		ShopId:      w.ShopId,
		Name:        w.Name,
		Rating:      w.Rating,
		IsAvailable: w.IsAvailable,
		Phone:       w.Phone,
		Location:    w.Location,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *WorkerMapper) ToModel(w *entity.Worker) *model.Worker {
	if w == nil {
		return nil
	}
	return &model.Worker{
		Id:          w.Id,
		ShopId:      w.ShopId,
		Name:        w.Name,
		Rating:      w.Rating,
		IsAvailable: w.IsAvailable,
		Phone:       w.Phone,
		Location:    w.Location,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *ShopMapper) ToEntities(models []*model.Shop) []*entity.Shop {
	entities := make([]*entity.Shop, len(models))
	for i, s := range models {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *WorkerMapper) ToEntities(models []*model.Worker) []*entity.Worker {
	entities := make([]*entity.Worker, len(models))
	for i, w := range models {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
