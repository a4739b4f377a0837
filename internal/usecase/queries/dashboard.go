package queries

import (
	"context"

	"beauty-booking/internal/domain/user"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/shared"
)

type RevenueReadStore interface {
	// MonthlyRevenue returns one row per month with completed appointments, oldest first
	MonthlyRevenue(ctx context.Context) ([]*MonthlyRevenueView, error)
}

type DashboardQueries interface {
	MonthlyRevenue(ctx context.Context, actor user.Actor) (*RevenueReport, error)
}

type RevenueStore func(db sqlc.DBTX) RevenueReadStore

type dashboardQueriesImpl struct {
	uow     shared.UnitOfWork
	revenue RevenueStore
}

func NewDashboardQueries(uow shared.UnitOfWork, revenue RevenueStore) DashboardQueries {
	return &dashboardQueriesImpl{uow: uow, revenue: revenue}
}

// Months without completed appointments are absent, not zero-filled.
func (q *dashboardQueriesImpl) MonthlyRevenue(ctx context.Context, actor user.Actor) (*RevenueReport, error) {
	if !actor.IsOwner() {
		return nil, errs.Wrap(errs.ErrPermissionDenied, "read revenue")
	}

	var months []*MonthlyRevenueView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		months, err = q.revenue(db).MonthlyRevenue(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{Months: months}
	for _, m := range months {
		report.TotalRevenueCents += m.RevenueCents
		report.TotalCompleted += m.CompletedCount
	}
	if report.Months == nil {
		report.Months = []*MonthlyRevenueView{}
	}
	return report, nil
}
