package commands

import (
	"context"
	"slices"
	"time"

	"beauty-booking/internal/domain/appointment"
	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/infra"
	"beauty-booking/internal/pkg/clock"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/pkg/metrics"
	"beauty-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotTaken           = errs.New("slot already taken")
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrUnknownService      = errs.New("unknown service")
)

type CreateAppointmentRequest struct {
	ServiceID uuid.UUID
	Date      string
	Slot      string
}

type AppointmentResult struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ServiceID   uuid.UUID
	Date        string
	Slot        string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

type AppointmentCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateAppointmentRequest) (*AppointmentResult, error)
	// Complete is idempotent: completing twice leaves the first completion in place.
	Complete(ctx context.Context, actor user.Actor, appointmentID uuid.UUID) (*AppointmentResult, error)
}

type appointmentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAppointmentCommands(uow shared.UnitOfWork, clk clock.Clock) AppointmentCommands {
	return &appointmentCommandsImpl{uow: uow, clock: clk}
}

func (uc *appointmentCommandsImpl) Create(ctx context.Context, actor user.Actor, req CreateAppointmentRequest) (*AppointmentResult, error) {
	apt, err := uc.validateBooking(ctx, actor, req)
	if err != nil {
		metrics.IncBooking(metrics.BookingRejected)
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Appointments().TakenSlots(ctx, tx.DB(), apt.ServiceID(), apt.Day())
		if derr != nil {
			return derr
		}
		if slices.Contains(taken, apt.Slot()) {
			return ErrSlotTaken
		}

		// a concurrent booking can still win between the check and the insert;
		// the unique constraint decides
		if derr = tx.Appointments().Create(ctx, tx.DB(), apt); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrSlotTaken
			}
			return derr
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrSlotTaken) {
			metrics.IncBooking(metrics.BookingSlotTaken)
		} else {
			metrics.IncBooking(metrics.BookingFailed)
		}
		return nil, err
	}

	metrics.IncBooking(metrics.BookingCreated)
	return toAppointmentResult(apt), nil
}

func (uc *appointmentCommandsImpl) validateBooking(ctx context.Context, actor user.Actor, req CreateAppointmentRequest) (*appointment.Appointment, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.Wrap(errs.ErrPermissionDenied, "book appointment")
	}

	slot, err := appointment.ParseSlot(req.Slot)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	day, err := appointment.ParseDay(req.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if _, err := uc.uow.CommandReads().ServiceByID(ctx, req.ServiceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrUnknownService, errs.ErrDomainValidation)
		}
		return nil, err
	}

	apt, err := appointment.NewAppointment(actor.UserID, req.ServiceID, day, slot, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return apt, nil
}

func (uc *appointmentCommandsImpl) Complete(ctx context.Context, actor user.Actor, appointmentID uuid.UUID) (*AppointmentResult, error) {
	if !actor.IsOwner() {
		return nil, errs.Wrap(errs.ErrPermissionDenied, "complete appointment")
	}

	var (
		apt     *appointment.Appointment
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Appointments().FindByIDForUpdate(ctx, tx.DB(), appointmentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return derr
		}

		changed = found.Complete(uc.clock.Now())
		if changed {
			if _, derr = tx.Appointments().MarkCompleted(ctx, tx.DB(), found); derr != nil {
				return derr
			}
		}
		apt = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		metrics.IncCompletion(metrics.CompletionDone)
	} else {
		metrics.IncCompletion(metrics.CompletionNoop)
	}
	return toAppointmentResult(apt), nil
}

func toAppointmentResult(a *appointment.Appointment) *AppointmentResult {
	return &AppointmentResult{
		ID:          a.ID(),
		UserID:      a.UserID(),
		ServiceID:   a.ServiceID(),
		Date:        a.Day().String(),
		Slot:        a.Slot().String(),
		Completed:   a.IsCompleted(),
		CompletedAt: a.CompletedAt(),
		CreatedAt:   a.CreatedAt(),
	}
}
