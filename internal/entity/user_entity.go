// FILE: internal/entity/user_entity.go
package entity

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOwner    Role = "owner"
	RoleWorker   Role = "worker"
	RoleCustomer Role = "customer"

	// RoleSystem marks actions taken by the platform itself (automatic assignment, sweeps).
	RoleSystem Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleWorker, RoleCustomer:
		return true
	}
	return false
}

// Actor is the verified identity behind a request.
// For workers Id is the worker id, for owners it matches Shop.OwnerId.
type Actor struct {
	Id   uuid.UUID
	Role Role
}

// SystemActor is used for audit entries written by background assignment.
var SystemActor = Actor{Id: uuid.Nil, Role: RoleSystem}
