//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"beauty-booking/internal/domain/user"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/queries"
	queriesmock "beauty-booking/tests/mock/queries"
	sharedmock "beauty-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDashboard(ctrl *gomock.Controller, store queries.RevenueReadStore) (queries.DashboardQueries, *sharedmock.MockUnitOfWork) {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	return queries.NewDashboardQueries(uow, func(sqlc.DBTX) queries.RevenueReadStore { return store }), uow
}

func runReadOnly(uow *sharedmock.MockUnitOfWork) {
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func TestMonthlyRevenue(t *testing.T) {
	owner := user.NewActor(uuid.New(), user.RoleOwner)
	client := user.NewActor(uuid.New(), user.RoleClient)

	t.Run("totals sum the months", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRevenueReadStore(ctrl)
		dashboard, uow := newDashboard(ctrl, store)
		runReadOnly(uow)
		store.EXPECT().MonthlyRevenue(gomock.Any()).Return([]*queries.MonthlyRevenueView{
			{Month: "2024-04", RevenueCents: 5000, CompletedCount: 1},
			{Month: "2024-06", RevenueCents: 21000, CompletedCount: 3},
		}, nil)

		report, err := dashboard.MonthlyRevenue(context.Background(), owner)

		require.NoError(t, err)
		assert.Len(t, report.Months, 2, "months without completions are not zero-filled")
		assert.Equal(t, int64(26000), report.TotalRevenueCents)
		assert.Equal(t, int64(4), report.TotalCompleted)
	})

	t.Run("no completions is an empty report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRevenueReadStore(ctrl)
		dashboard, uow := newDashboard(ctrl, store)
		runReadOnly(uow)
		store.EXPECT().MonthlyRevenue(gomock.Any()).Return(nil, nil)

		report, err := dashboard.MonthlyRevenue(context.Background(), owner)

		require.NoError(t, err)
		assert.NotNil(t, report.Months)
		assert.Empty(t, report.Months)
		assert.Zero(t, report.TotalRevenueCents)
	})

	t.Run("transaction failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRevenueReadStore(ctrl)
		dashboard, uow := newDashboard(ctrl, store)
		begin := errors.New("begin failed")
		uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).Return(begin)

		_, err := dashboard.MonthlyRevenue(context.Background(), owner)
		assert.ErrorIs(t, err, begin)
	})

	t.Run("clients are denied without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockRevenueReadStore(ctrl)
		dashboard, _ := newDashboard(ctrl, store)

		_, err := dashboard.MonthlyRevenue(context.Background(), client)
		assert.True(t, errs.Is(err, errs.ErrPermissionDenied))
	})
}
