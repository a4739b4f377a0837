package response

import (
	"time"

	"beauty-booking/internal/usecase/commands"
	"beauty-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	ServiceID   uuid.UUID  `json:"servicoId"`
	Date        string     `json:"data"`
	Slot        string     `json:"horario"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type AppointmentListResponse struct {
	ID          uuid.UUID  `json:"id"`
	ServiceID   uuid.UUID  `json:"servicoId"`
	ServiceName string     `json:"serviceName"`
	PriceCents  int64      `json:"priceCents"`
	Date        string     `json:"data"`
	Slot        string     `json:"horario"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type AppointmentAdminResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	ClientName  string     `json:"clientName"`
	ClientEmail string     `json:"clientEmail"`
	ServiceID   uuid.UUID  `json:"servicoId"`
	ServiceName string     `json:"serviceName"`
	PriceCents  int64      `json:"priceCents"`
	Date        string     `json:"data"`
	Slot        string     `json:"horario"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromAppointmentResult(r *commands.AppointmentResult) (*AppointmentResponse, error) {
	var resp AppointmentResponse
	if err := copier.Copy(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromAppointmentViews(views []*queries.AppointmentView) ([]*AppointmentListResponse, error) {
	result := make([]*AppointmentListResponse, 0, len(views))
	if err := copier.Copy(&result, &views); err != nil {
		return nil, err
	}
	return result, nil
}

func FromAppointmentAdminViews(views []*queries.AppointmentAdminView) ([]*AppointmentAdminResponse, error) {
	result := make([]*AppointmentAdminResponse, 0, len(views))
	if err := copier.Copy(&result, &views); err != nil {
		return nil, err
	}
	return result, nil
}
