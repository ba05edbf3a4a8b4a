// FILE: internal/entity/admin_entities.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminLog is one append-only audit entry
type AdminLog struct {
	Id        uuid.UUID
	ActorId   uuid.UUID
	ActorRole Role
	Action    string
	SubjectId uuid.UUID
	Details   map[string]interface{} // JSONB
	CreatedAt time.Time
}
