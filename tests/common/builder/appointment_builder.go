//go:build unit || e2e

package builder

import (
	"time"

	"beauty-booking/internal/domain/appointment"
	reqdto "beauty-booking/internal/handler/dto/request"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/usecase/commands"
	"beauty-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	PriceCents  int64
	Date        string
	Slot        string
	CompletedAt *time.Time
	CreatedAt   time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Manicure",
		PriceCents:  5000,
		Date:        "2024-06-10",
		Slot:        "10:00",
		CreatedAt:   time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	day, err := appointment.ParseDay(b.Date)
	if err != nil {
		return nil, err
	}
	slot, err := appointment.ParseSlot(b.Slot)
	if err != nil {
		return nil, err
	}
	return appointment.ReconstructAppointment(
		b.ID, b.UserID, b.ServiceID, day, slot,
		b.CompletedAt != nil, b.CompletedAt, b.CreatedAt,
	), nil
}

func (b *AppointmentBuilder) BuildInfra() sqlc.Appointments {
	day, _ := time.Parse(time.DateOnly, b.Date)
	completedAt := pgtype.Timestamptz{}
	if b.CompletedAt != nil {
		completedAt = Timestamptz(*b.CompletedAt)
	}
	return sqlc.Appointments{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceID:       b.ServiceID,
		AppointmentDate: pgtype.Date{Time: day, Valid: true},
		Slot:            b.Slot,
		Completed:       b.CompletedAt != nil,
		CompletedAt:     completedAt,
		CreatedAt:       Timestamptz(b.CreatedAt),
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:          b.ID,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		PriceCents:  b.PriceCents,
		Date:        b.Date,
		Slot:        b.Slot,
		Completed:   b.CompletedAt != nil,
		CompletedAt: b.CompletedAt,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildAdminView() *queries.AppointmentAdminView {
	return &queries.AppointmentAdminView{
		ID:          b.ID,
		UserID:      b.UserID,
		ClientName:  "Maria Silva",
		ClientEmail: "maria@example.com",
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		PriceCents:  b.PriceCents,
		Date:        b.Date,
		Slot:        b.Slot,
		Completed:   b.CompletedAt != nil,
		CompletedAt: b.CompletedAt,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildResult() *commands.AppointmentResult {
	return &commands.AppointmentResult{
		ID:          b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		Date:        b.Date,
		Slot:        b.Slot,
		Completed:   b.CompletedAt != nil,
		CompletedAt: b.CompletedAt,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		ServicoID: b.ServiceID,
		Data:      b.Date,
		Horario:   b.Slot,
	}
}

func (b *AppointmentBuilder) BuildCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		ServiceID: b.ServiceID,
		Date:      b.Date,
		Slot:      b.Slot,
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithUserID(id uuid.UUID) *AppointmentBuilder {
	b.UserID = id
	return b
}

func (b *AppointmentBuilder) WithServiceID(id uuid.UUID) *AppointmentBuilder {
	b.ServiceID = id
	return b
}

func (b *AppointmentBuilder) WithSlot(slot string) *AppointmentBuilder {
	b.Slot = slot
	return b
}

func (b *AppointmentBuilder) AsCompleted() *AppointmentBuilder {
	at := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)
	b.CompletedAt = &at
	return b
}
