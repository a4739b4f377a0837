//go:build unit

package readstore

import (
	"context"
	"testing"

	"beauty-booking/internal/domain/catalog"
	"beauty-booking/internal/infra"
	sqlc "beauty-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceReadQueries struct {
	mock.Mock
}

func (m *MockServiceReadQueries) ListServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.Services, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Services), args.Error(1)
}

func (m *MockServiceReadQueries) FindServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Services), args.Error(1)
}

func TestServiceReadStore_List(t *testing.T) {
	t.Run("rows are normalized through the catalog entity", func(t *testing.T) {
		id := uuid.New()
		q := new(MockServiceReadQueries)
		q.On("ListServices", mock.Anything, mock.Anything).Return([]sqlc.Services{
			{ID: id, Name: " Manicure ", Description: "Cutilagem ", PriceCents: 5000},
		}, nil)

		got, err := NewServiceReadStore(q, nil).List(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, id, got[0].ID)
		assert.Equal(t, "Manicure", got[0].Name)
		assert.Equal(t, "Cutilagem", got[0].Description)
		assert.Equal(t, int64(5000), got[0].PriceCents)
		q.AssertExpectations(t)
	})

	t.Run("a row breaking the catalog invariants fails the read", func(t *testing.T) {
		q := new(MockServiceReadQueries)
		q.On("ListServices", mock.Anything, mock.Anything).Return([]sqlc.Services{
			{ID: uuid.New(), Name: "Manicure", PriceCents: 5000},
			{ID: uuid.New(), Name: "Pedicure", PriceCents: -1},
		}, nil)

		got, err := NewServiceReadStore(q, nil).List(context.Background())

		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})
}

func TestServiceReadStore_FindByID(t *testing.T) {
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		q := new(MockServiceReadQueries)
		q.On("FindServiceByID", mock.Anything, mock.Anything, id).Return(sqlc.Services{}, pgx.ErrNoRows)

		_, err := NewServiceReadStore(q, nil).FindByID(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		q := new(MockServiceReadQueries)
		q.On("FindServiceByID", mock.Anything, mock.Anything, id).Return(sqlc.Services{ID: id, Name: "  ", PriceCents: 100}, nil)

		_, err := NewServiceReadStore(q, nil).FindByID(context.Background(), id)

		assert.ErrorIs(t, err, catalog.ErrInvalidServiceName)
	})
}
