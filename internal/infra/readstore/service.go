package readstore

import (
	"context"

	"beauty-booking/internal/domain/catalog"
	"beauty-booking/internal/infra"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/pkg/pgconv"
	"beauty-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	ListServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Services, error)
	FindServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) List(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}

	result := make([]*queries.ServiceView, len(rows))
	for i, row := range rows {
		v, err := toServiceView(row)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.FindServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	return toServiceView(row)
}

// Rows pass through the catalog entity so a stored service always satisfies its invariants.
func toServiceView(row sqlc.Services) (*queries.ServiceView, error) {
	svc, err := catalog.NewService(row.ID, row.Name, row.Description, row.PriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid service row", err, infra.KindDBFailure)
	}

	return &queries.ServiceView{
		ID:          svc.ID(),
		Name:        svc.Name(),
		Description: svc.Description(),
		PriceCents:  svc.Price().Cents(),
	}, nil
}
