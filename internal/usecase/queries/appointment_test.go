//go:build unit

package queries_test

import (
	"context"
	"testing"

	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/queries"
	"beauty-booking/tests/common/builder"
	queriesmock "beauty-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAppointmentQueries_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAppointmentReadStore(ctrl)
	client := user.NewActor(uuid.New(), user.RoleClient)

	views := []*queries.AppointmentView{builder.NewAppointmentBuilder().WithUserID(client.UserID).BuildView()}
	store.EXPECT().ListByUser(gomock.Any(), client.UserID).Return(views, nil)

	got, err := queries.NewAppointmentQueries(store).ListMine(context.Background(), client)

	require.NoError(t, err)
	assert.Equal(t, views, got)
}

func TestAppointmentQueries_ListAll(t *testing.T) {
	t.Run("owner sees everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAppointmentReadStore(ctrl)
		views := []*queries.AppointmentAdminView{builder.NewAppointmentBuilder().BuildAdminView()}
		store.EXPECT().ListAll(gomock.Any()).Return(views, nil)

		got, err := queries.NewAppointmentQueries(store).ListAll(context.Background(), user.NewActor(uuid.New(), user.RoleOwner))

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("client is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAppointmentReadStore(ctrl)

		_, err := queries.NewAppointmentQueries(store).ListAll(context.Background(), user.NewActor(uuid.New(), user.RoleClient))
		assert.True(t, errs.Is(err, errs.ErrPermissionDenied))
	})
}
