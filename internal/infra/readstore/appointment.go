package readstore

import (
	"context"

	"beauty-booking/internal/domain/appointment"
	"beauty-booking/internal/infra"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/pkg/pgconv"
	"beauty-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentReadQueries interface {
	ListTakenSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTakenSlotsParams) ([]string, error)
	ListAppointmentsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListAppointmentsByUserRow, error)
	ListAllAppointments(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListAllAppointmentsRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) TakenSlots(ctx context.Context, serviceID uuid.UUID, day appointment.Day) ([]appointment.Slot, error) {
	rows, err := r.queries.ListTakenSlots(ctx, r.db, sqlc.ListTakenSlotsParams{
		ServiceID:       serviceID,
		AppointmentDate: pgconv.DateToPgtype(day.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list taken slots", err)
	}

	slots := make([]appointment.Slot, len(rows))
	for i, s := range rows {
		slots[i] = appointment.Slot(s)
	}
	return slots, nil
}

func (r *AppointmentReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by user", err)
	}

	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = &queries.AppointmentView{
			ID:          row.ID,
			ServiceID:   row.ServiceID,
			ServiceName: row.ServiceName,
			PriceCents:  row.PriceCents,
			Date:        formatDate(row.AppointmentDate),
			Slot:        row.Slot,
			Completed:   row.Completed,
			CompletedAt: pgconv.TimePtrFromPgtype(row.CompletedAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *AppointmentReadStore) ListAll(ctx context.Context) ([]*queries.AppointmentAdminView, error) {
	rows, err := r.queries.ListAllAppointments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}

	result := make([]*queries.AppointmentAdminView, len(rows))
	for i, row := range rows {
		result[i] = &queries.AppointmentAdminView{
			ID:          row.ID,
			UserID:      row.UserID,
			ClientName:  row.ClientName,
			ClientEmail: row.ClientEmail,
			ServiceID:   row.ServiceID,
			ServiceName: row.ServiceName,
			PriceCents:  row.PriceCents,
			Date:        formatDate(row.AppointmentDate),
			Slot:        row.Slot,
			Completed:   row.Completed,
			CompletedAt: pgconv.TimePtrFromPgtype(row.CompletedAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func formatDate(d pgtype.Date) string {
	return appointment.DayOf(pgconv.DateFromPgtype(d)).String()
}
