package queries

import (
	"context"

	"beauty-booking/internal/infra"
	"beauty-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errs.New("service not found")
)

type ServiceReadStore interface {
	List(ctx context.Context) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type catalogQueriesImpl struct {
	services ServiceReadStore
}

func NewCatalogQueries(services ServiceReadStore) CatalogQueries {
	return &catalogQueriesImpl{services: services}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.services.List(ctx)
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	s, err := q.services.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return s, nil
}
