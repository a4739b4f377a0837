package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents the public profile of an account
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
}

// AppointmentView is an appointment as seen by the client who booked it
type AppointmentView struct {
	ID          uuid.UUID  `json:"id"`
	ServiceID   uuid.UUID  `json:"service_id"`
	ServiceName string     `json:"service_name"`
	PriceCents  int64      `json:"price_cents"`
	Date        string     `json:"date"`
	Slot        string     `json:"slot"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AppointmentAdminView adds the client to AppointmentView for the owner's listing
type AppointmentAdminView struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
	ServiceID   uuid.UUID  `json:"service_id"`
	ServiceName string     `json:"service_name"`
	PriceCents  int64      `json:"price_cents"`
	Date        string     `json:"date"`
	Slot        string     `json:"slot"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type MonthlyRevenueView struct {
	Month          string `json:"month"`
	RevenueCents   int64  `json:"revenue_cents"`
	CompletedCount int64  `json:"completed_count"`
}

type RevenueReport struct {
	Months            []*MonthlyRevenueView `json:"months"`
	TotalRevenueCents int64                 `json:"total_revenue_cents"`
	TotalCompleted    int64                 `json:"total_completed"`
}
