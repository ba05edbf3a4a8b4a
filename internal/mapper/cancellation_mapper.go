package mapper

import (
	"motoservice-be/internal/entity"
	"motoservice-be/internal/model"
)

type CancellationMapper struct{}

func NewCancellationMapper() *CancellationMapper {
	return &CancellationMapper{}
}

func (m *CancellationMapper) TokenToEntity(t *model.CancellationToken) *entity.CancellationToken {
	if t == nil {
		return nil
	}
	return &entity.CancellationToken{
		CustomerId:      t.CustomerId,
		TokensAvailable: t.TokensAvailable,
		TokensUsed:      t.TokensUsed,
		LastResetDate:   t.LastResetDate,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (m *CancellationMapper) TokenToModel(t *entity.CancellationToken) *model.CancellationToken {
	if t == nil {
		return nil
	}
	return &model.CancellationToken{
		CustomerId:      t.CustomerId,
		TokensAvailable: t.TokensAvailable,
		TokensUsed:      t.TokensUsed,
		LastResetDate:   t.LastResetDate,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (m *CancellationMapper) RecordToEntity(r *model.CancellationRecord) *entity.CancellationRecord {
	if r == nil {
		return nil
	}
	return &entity.CancellationRecord{
		Id:             r.Id,
		BookingId:      r.BookingId,
		CustomerId:     r.CustomerId,
		CancelledAt:    r.CancelledAt,
		TokensDeducted: r.TokensDeducted,
		RefundAmount:   r.RefundAmount,
		Reason:         r.Reason,
	}
}

func (m *CancellationMapper) RecordToModel(r *entity.CancellationRecord) *model.CancellationRecord {
	if r == nil {
		return nil
	}
	return &model.CancellationRecord{
		Id:             r.Id,
		BookingId:      r.BookingId,
		CustomerId:     r.CustomerId,
		CancelledAt:    r.CancelledAt,
		TokensDeducted: r.TokensDeducted,
		RefundAmount:   r.RefundAmount,
		Reason:         r.Reason,
	}
}

func (m *CancellationMapper) RecordsToEntities(models []*model.CancellationRecord) []*entity.CancellationRecord {
	entities := make([]*entity.CancellationRecord, len(models))
	for i, r := range models {
		entities[i] = m.RecordToEntity(r)
	}
	return entities
}
