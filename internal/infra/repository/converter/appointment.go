package converter

import (
	"beauty-booking/internal/domain/appointment"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/pkg/pgconv"
)

func AppointmentToInfra(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ID:              a.ID(),
		UserID:          a.UserID(),
		ServiceID:       a.ServiceID(),
		AppointmentDate: pgconv.DateToPgtype(a.Day().Time()),
		Slot:            a.Slot().String(),
		CreatedAt:       pgconv.TimeToPgtype(a.CreatedAt()),
	}
}

func AppointmentFromInfra(row sqlc.Appointments) *appointment.Appointment {
	return appointment.ReconstructAppointment(
		row.ID,
		row.UserID,
		row.ServiceID,
		appointment.DayOf(pgconv.DateFromPgtype(row.AppointmentDate)),
		appointment.Slot(row.Slot),
		row.Completed,
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func SlotsFromInfra(rows []string) []appointment.Slot {
	slots := make([]appointment.Slot, 0, len(rows))
	for _, r := range rows {
		slots = append(slots, appointment.Slot(r))
	}
	return slots
}
