//go:build unit

package queries_test

import (
	"context"
	"testing"

	"beauty-booking/internal/infra"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/queries"
	queriesmock "beauty-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogQueries_ListServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockServiceReadStore(ctrl)
	views := []*queries.ServiceView{
		{ID: uuid.New(), Name: "Manicure", PriceCents: 5000},
		{ID: uuid.New(), Name: "Pedicure", PriceCents: 6000},
	}
	store.EXPECT().List(gomock.Any()).Return(views, nil)

	got, err := queries.NewCatalogQueries(store).ListServices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, views, got)
}

func TestCatalogQueries_GetService(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{name: "found"},
		{
			name:     "unknown id",
			storeErr: infra.WrapRepoErr("find service", pgx.ErrNoRows),
			wantErr:  queries.ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockServiceReadStore(ctrl)
			var view *queries.ServiceView
			if tt.storeErr == nil {
				view = &queries.ServiceView{ID: id, Name: "Manicure", PriceCents: 5000}
			}
			store.EXPECT().FindByID(gomock.Any(), id).Return(view, tt.storeErr)

			got, err := queries.NewCatalogQueries(store).GetService(context.Background(), id)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}
