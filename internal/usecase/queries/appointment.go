package queries

import (
	"context"

	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error)
	ListAll(ctx context.Context) ([]*AppointmentAdminView, error)
}

type AppointmentQueries interface {
	ListMine(ctx context.Context, actor user.Actor) ([]*AppointmentView, error)
	ListAll(ctx context.Context, actor user.Actor) ([]*AppointmentAdminView, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentReadStore
}

func NewAppointmentQueries(repo AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo}
}

func (q *appointmentQueriesImpl) ListMine(ctx context.Context, actor user.Actor) ([]*AppointmentView, error) {
	return q.repo.ListByUser(ctx, actor.UserID)
}

func (q *appointmentQueriesImpl) ListAll(ctx context.Context, actor user.Actor) ([]*AppointmentAdminView, error) {
	if !actor.IsOwner() {
		return nil, errs.Wrap(errs.ErrPermissionDenied, "list all appointments")
	}
	return q.repo.ListAll(ctx)
}
