package user

import "github.com/google/uuid"

type Role string

const (
	RoleClient Role = "client"
	RoleOwner  Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleOwner:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated identity of the current request.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func NewActor(userID uuid.UUID, role Role) Actor {
	return Actor{UserID: userID, Role: role}
}

func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != uuid.Nil && a.Role.IsValid()
}
