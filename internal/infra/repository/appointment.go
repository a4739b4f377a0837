package repository

import (
	"context"

	"beauty-booking/internal/domain/appointment"
	"beauty-booking/internal/infra"
	"beauty-booking/internal/infra/repository/converter"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (sqlc.Appointments, error)
	FindAppointmentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	CompleteAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteAppointmentParams) (int64, error)
	ListTakenSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTakenSlotsParams) ([]string, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
}

func NewAppointmentRepository(queries AppointmentWriteQueries) *AppointmentRepository {
	return &AppointmentRepository{queries: queries}
}

const (
	slotUniqueConstraint  = "appointments_service_date_slot_key"
	appointmentPrimaryKey = "appointments_pkey"
)

// Create fails with KindDuplicateKey only when the service, day and slot are already held.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	_, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToInfra(a))
	if err == nil {
		return nil
	}

	switch infra.ConstraintName(err) {
	case slotUniqueConstraint:
		return infra.WrapRepoErr("slot already held", err, infra.KindDuplicateKey)
	case appointmentPrimaryKey:
		return infra.WrapRepoErr("appointment id collision", err, infra.KindDBFailure)
	}
	return infra.WrapRepoErr("failed to create appointment", err)
}

func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.FindAppointmentByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err, infra.KindDBFailure)
	}
	return converter.AppointmentFromInfra(row), nil
}

func (r *AppointmentRepository) MarkCompleted(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (bool, error) {
	if !a.IsCompleted() || a.CompletedAt() == nil {
		return false, nil
	}

	n, err := r.queries.CompleteAppointment(ctx, tx, sqlc.CompleteAppointmentParams{
		ID:          a.ID(),
		CompletedAt: pgconv.TimeToPgtype(*a.CompletedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete appointment", err, infra.KindDBFailure)
	}
	return n > 0, nil
}

func (r *AppointmentRepository) TakenSlots(ctx context.Context, tx sqlc.DBTX, serviceID uuid.UUID, day appointment.Day) ([]appointment.Slot, error) {
	rows, err := r.queries.ListTakenSlots(ctx, tx, sqlc.ListTakenSlotsParams{
		ServiceID:       serviceID,
		AppointmentDate: pgconv.DateToPgtype(day.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list taken slots", err, infra.KindDBFailure)
	}
	return converter.SlotsFromInfra(rows), nil
}
