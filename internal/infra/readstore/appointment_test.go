//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"beauty-booking/internal/domain/appointment"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/usecase/queries"
	"beauty-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentReadQueries struct {
	mock.Mock
}

func (m *MockAppointmentReadQueries) ListTakenSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTakenSlotsParams) ([]string, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAppointmentReadQueries) ListAppointmentsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListAppointmentsByUserRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.ListAppointmentsByUserRow), args.Error(1)
}

func (m *MockAppointmentReadQueries) ListAllAppointments(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListAllAppointmentsRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.ListAllAppointmentsRow), args.Error(1)
}

type MockRevenueReadQueries struct {
	mock.Mock
}

func (m *MockRevenueReadQueries) MonthlyRevenue(ctx context.Context, db sqlc.DBTX) ([]sqlc.MonthlyRevenueRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.MonthlyRevenueRow), args.Error(1)
}

func TestTakenSlots(t *testing.T) {
	serviceID := uuid.New()
	day, err := appointment.ParseDay("2024-06-10")
	require.NoError(t, err)

	q := new(MockAppointmentReadQueries)
	q.On("ListTakenSlots", mock.Anything, mock.Anything, sqlc.ListTakenSlotsParams{
		ServiceID:       serviceID,
		AppointmentDate: pgtype.Date{Time: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Valid: true},
	}).Return([]string{"09:00", "16:00"}, nil)

	got, err := NewAppointmentReadStore(q, nil).TakenSlots(context.Background(), serviceID, day)

	require.NoError(t, err)
	assert.Equal(t, []appointment.Slot{appointment.Slot0900, appointment.Slot1600}, got)
	q.AssertExpectations(t)
}

func TestListByUser(t *testing.T) {
	userID := uuid.New()
	row := builder.NewAppointmentBuilder().BuildInfra()
	completedAt := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)

	q := new(MockAppointmentReadQueries)
	q.On("ListAppointmentsByUser", mock.Anything, mock.Anything, userID).Return([]sqlc.ListAppointmentsByUserRow{
		{
			ID:              row.ID,
			ServiceID:       row.ServiceID,
			ServiceName:     "Manicure",
			PriceCents:      5000,
			AppointmentDate: row.AppointmentDate,
			Slot:            row.Slot,
			Completed:       true,
			CompletedAt:     builder.Timestamptz(completedAt),
			CreatedAt:       row.CreatedAt,
		},
	}, nil)

	got, err := NewAppointmentReadStore(q, nil).ListByUser(context.Background(), userID)
	require.NoError(t, err)

	want := []*queries.AppointmentView{
		{
			ID:          row.ID,
			ServiceID:   row.ServiceID,
			ServiceName: "Manicure",
			PriceCents:  5000,
			Date:        "2024-06-10",
			Slot:        "10:00",
			Completed:   true,
			CompletedAt: &completedAt,
			CreatedAt:   row.CreatedAt.Time,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListByUser mismatch (-want +got):\n%s", diff)
	}
}

func TestListAllEmpty(t *testing.T) {
	q := new(MockAppointmentReadQueries)
	q.On("ListAllAppointments", mock.Anything, mock.Anything).Return([]sqlc.ListAllAppointmentsRow{}, nil)

	got, err := NewAppointmentReadStore(q, nil).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMonthlyRevenue(t *testing.T) {
	q := new(MockRevenueReadQueries)
	q.On("MonthlyRevenue", mock.Anything, mock.Anything).Return([]sqlc.MonthlyRevenueRow{
		{Month: "2024-05", RevenueCents: 12000, CompletedCount: 1},
		{Month: "2024-06", RevenueCents: 11000, CompletedCount: 2},
	}, nil)

	got, err := NewRevenueReadStore(q, nil).MonthlyRevenue(context.Background())
	require.NoError(t, err)

	want := []*queries.MonthlyRevenueView{
		{Month: "2024-05", RevenueCents: 12000, CompletedCount: 1},
		{Month: "2024-06", RevenueCents: 11000, CompletedCount: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MonthlyRevenue mismatch (-want +got):\n%s", diff)
	}
}

func TestMonthlyRevenueError(t *testing.T) {
	q := new(MockRevenueReadQueries)
	q.On("MonthlyRevenue", mock.Anything, mock.Anything).Return([]sqlc.MonthlyRevenueRow(nil), assert.AnError)

	_, err := NewRevenueReadStore(q, nil).MonthlyRevenue(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
