package mapper

import (
	"motoservice-be/internal/entity"
	"motoservice-be/internal/model"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.Booking) *entity.Booking {
	if b == nil {
		return nil
	}
	return &entity.Booking{
		Id:                      b.Id,
		CustomerId:              b.CustomerId,
		ShopId:                  b.ShopId,
		ServiceId:               b.ServiceId,
		WorkerId:                b.WorkerId,
		Status:                  entity.BookingStatus(b.Status),
		ServiceCost:             b.ServiceCost,
		ExtraCharges:            b.ExtraCharges,
		TotalCost:               b.TotalCost,
		CreatedAt:               b.CreatedAt,
		StartedAt:               b.StartedAt,
		CompletedAt:             b.CompletedAt,
		EstimatedCompletionTime: b.EstimatedCompletionTime,
		UpdatedAt:               b.UpdatedAt,
	}
}

func (m *BookingMapper) ToModel(b *entity.Booking) *model.Booking {
	if b == nil {
		return nil
	}
	return &model.Booking{
		Id:                      b.Id,
		CustomerId:              b.CustomerId,
		ShopId:                  b.ShopId,
		ServiceId:               b.ServiceId,
		WorkerId:                b.WorkerId,
		Status:                  string(b.Status),
		ServiceCost:             b.ServiceCost,
		ExtraCharges:            b.ExtraCharges,
		TotalCost:               b.TotalCost,
		CreatedAt:               b.CreatedAt,
		StartedAt:               b.StartedAt,
		CompletedAt:             b.CompletedAt,
		EstimatedCompletionTime: b.EstimatedCompletionTime,
		UpdatedAt:               b.UpdatedAt,
	}
}

// ToColumns turns a transition into the column map handed to Updates.
// Only non-nil fields are written so a transition never clobbers unrelated columns.
func (m *BookingMapper) ToColumns(c entity.BookingChanges) map[string]interface{} {
	cols := map[string]interface{}{
		"status": string(c.Status),
	}
	if c.WorkerId != nil {
		cols["worker_id"] = *c.WorkerId
	}
	if c.ExtraCharges != nil {
		cols["extra_charges"] = *c.ExtraCharges
	}
	if c.TotalCost != nil {
		cols["total_cost"] = *c.TotalCost
	}
	if c.StartedAt != nil {
		cols["started_at"] = *c.StartedAt
	}
	if c.CompletedAt != nil {
		cols["completed_at"] = *c.CompletedAt
	}
	if c.EstimatedCompletionTime != nil {
		cols["estimated_completion_time"] = *c.EstimatedCompletionTime
	}
	return cols
}

func (m *BookingMapper) ToEntities(models []*model.Booking) []*entity.Booking {
	entities := make([]*entity.Booking, len(models))
	for i, b := range models {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
