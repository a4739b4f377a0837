package shared

import (
	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ServiceSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
}

type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         string
	PasswordHash string
}
