package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AdminLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ActorId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	ActorRole string         `gorm:"type:varchar(20);not null"`
	Action    string         `gorm:"type:varchar(50);not null;index"`
	SubjectId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Details   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"not null;index"`
}

func (AdminLog) TableName() string {
	return "admin_logs"
}
