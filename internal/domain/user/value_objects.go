package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManage reports whether the actor owns the resource or is an admin.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.IsAdmin() || (a.ID != uuid.Nil && a.ID == ownerID)
}
