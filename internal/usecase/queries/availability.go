package queries

import (
	"context"

	"beauty-booking/internal/domain/appointment"
	"beauty-booking/internal/infra"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnknownService = errs.New("unknown service")
)

type AvailabilityQueries interface {
	// AvailableSlots answers for any day, past ones included.
	// An empty result means the day is fully booked.
	AvailableSlots(ctx context.Context, serviceID uuid.UUID, date string) ([]appointment.Slot, error)
}

type SlotReadStore interface {
	TakenSlots(ctx context.Context, serviceID uuid.UUID, day appointment.Day) ([]appointment.Slot, error)
}

// AvailabilityStores binds the stores an availability lookup reads to one connection.
type AvailabilityStores func(db sqlc.DBTX) (ServiceReadStore, SlotReadStore)

type availabilityQueriesImpl struct {
	uow    shared.UnitOfWork
	stores AvailabilityStores
}

func NewAvailabilityQueries(uow shared.UnitOfWork, stores AvailabilityStores) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, stores: stores}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, serviceID uuid.UUID, date string) ([]appointment.Slot, error) {
	day, err := appointment.ParseDay(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var available []appointment.Slot
	// service lookup and taken slots come from the same snapshot
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		services, slots := q.stores(db)

		if _, err := services.FindByID(ctx, serviceID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrUnknownService, errs.ErrDomainValidation)
			}
			return err
		}

		taken, err := slots.TakenSlots(ctx, serviceID, day)
		if err != nil {
			return err
		}
		available = appointment.AvailableSlots(taken)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return available, nil
}
