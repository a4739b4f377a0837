package shared

import (
	"context"
	"time"

	"beauty-booking/internal/domain/appointment"
	"beauty-booking/internal/domain/user"
	sqlc "beauty-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Appointments() AppointmentRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	// FindByIDForUpdate locks the row until the transaction ends
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	// MarkCompleted reports false when the row was already completed
	MarkCompleted(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (bool, error)
	TakenSlots(ctx context.Context, tx sqlc.DBTX, serviceID uuid.UUID, day appointment.Day) ([]appointment.Slot, error)
}
