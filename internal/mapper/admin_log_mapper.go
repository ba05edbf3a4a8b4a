package mapper

import (
	"encoding/json"

	"motoservice-be/internal/entity"
	"motoservice-be/internal/model"

	"gorm.io/datatypes"
)

type AdminLogMapper struct{}

func NewAdminLogMapper() *AdminLogMapper {
	return &AdminLogMapper{}
}

func (m *AdminLogMapper) ToEntity(l *model.AdminLog) *entity.AdminLog {
	if l == nil {
		return nil
	}
	var details map[string]interface{}
	if len(l.Details) > 0 {
		// Unreadable details still yield the rest of the entry
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.AdminLog{
		Id:        l.Id,
		ActorId:   l.ActorId,
		ActorRole: entity.Role(l.ActorRole),
		Action:    l.Action,
		SubjectId: l.SubjectId,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AdminLogMapper) ToModel(l *entity.AdminLog) (*model.AdminLog, error) {
	if l == nil {
		return nil, nil
	}
	var details datatypes.JSON
	if l.Details != nil {
		raw, err := json.Marshal(l.Details)
		if err != nil {
			return nil, err
		}
		details = datatypes.JSON(raw)
	}
	return &model.AdminLog{
		Id:        l.Id,
		ActorId:   l.ActorId,
		ActorRole: string(l.ActorRole),
		Action:    l.Action,
		SubjectId: l.SubjectId,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}, nil
}

func (m *AdminLogMapper) ToEntities(models []*model.AdminLog) []*entity.AdminLog {
	entities := make([]*entity.AdminLog, len(models))
	for i, l := range models {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
