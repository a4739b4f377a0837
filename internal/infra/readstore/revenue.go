package readstore

import (
	"context"

	"beauty-booking/internal/infra"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/usecase/queries"
)

type RevenueReadQueries interface {
	MonthlyRevenue(ctx context.Context, db sqlc.DBTX) ([]sqlc.MonthlyRevenueRow, error)
}

type RevenueReadStore struct {
	queries RevenueReadQueries
	db      sqlc.DBTX
}

func NewRevenueReadStore(queries RevenueReadQueries, db sqlc.DBTX) *RevenueReadStore {
	return &RevenueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RevenueReadStore) MonthlyRevenue(ctx context.Context) ([]*queries.MonthlyRevenueView, error) {
	rows, err := r.queries.MonthlyRevenue(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate monthly revenue", err)
	}

	result := make([]*queries.MonthlyRevenueView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MonthlyRevenueView{
			Month:          row.Month,
			RevenueCents:   row.RevenueCents,
			CompletedCount: row.CompletedCount,
		}
	}
	return result, nil
}
