package request

import (
	"beauty-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Field names follow the public booking API.
type CreateAppointmentRequest struct {
	ServicoID uuid.UUID `json:"servicoId" binding:"required"`
	Data      string    `json:"data" binding:"required"`
	Horario   string    `json:"horario" binding:"required"`
}

func (r CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		ServiceID: r.ServicoID,
		Date:      r.Data,
		Slot:      r.Horario,
	}
}

type CompleteAppointmentRequest struct {
	AppointmentID uuid.UUID `json:"appointmentId" binding:"required"`
}

// ServicoID is parsed with uuid.Parse so it accepts the same spellings as the JSON body of a booking.
type AvailableSlotsQuery struct {
	ServicoID string `form:"servicoId" binding:"required"`
	Data      string `form:"data" binding:"required"`
}

func (q AvailableSlotsQuery) ServiceID() (uuid.UUID, error) {
	return uuid.Parse(q.ServicoID)
}
