package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment holds one slot of one service on one day for a user.
// The only mutation is the one-way transition to completed.
type Appointment struct {
	id          uuid.UUID
	userID      uuid.UUID
	serviceID   uuid.UUID
	day         Day
	slot        Slot
	completed   bool
	completedAt *time.Time
	createdAt   time.Time
}

func NewAppointment(userID, serviceID uuid.UUID, day Day, slot Slot, now time.Time) (*Appointment, error) {
	if !slot.IsValid() {
		return nil, ErrInvalidSlot
	}
	if day.IsZero() {
		return nil, ErrInvalidDate
	}

	return &Appointment{
		id:        uuid.New(),
		userID:    userID,
		serviceID: serviceID,
		day:       day,
		slot:      slot,
		createdAt: now,
	}, nil
}

func ReconstructAppointment(
	id, userID, serviceID uuid.UUID,
	day Day,
	slot Slot,
	completed bool,
	completedAt *time.Time,
	createdAt time.Time,
) *Appointment {
	return &Appointment{
		id:          id,
		userID:      userID,
		serviceID:   serviceID,
		day:         day,
		slot:        slot,
		completed:   completed,
		completedAt: completedAt,
		createdAt:   createdAt,
	}
}

// Complete marks the appointment completed. It returns false when it already was.
func (a *Appointment) Complete(now time.Time) bool {
	if a.completed {
		return false
	}
	a.completed = true
	a.completedAt = &now
	return true
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) UserID() uuid.UUID       { return a.userID }
func (a *Appointment) ServiceID() uuid.UUID    { return a.serviceID }
func (a *Appointment) Day() Day                { return a.day }
func (a *Appointment) Slot() Slot              { return a.slot }
func (a *Appointment) IsCompleted() bool       { return a.completed }
func (a *Appointment) CompletedAt() *time.Time { return a.completedAt }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
