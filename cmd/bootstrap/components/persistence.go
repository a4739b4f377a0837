package components

import (
	"beauty-booking/internal/infra/readstore"
	sqlc "beauty-booking/internal/infra/sqlc/generated"
	"beauty-booking/internal/infra/uow"
	"beauty-booking/internal/pkg/config"
	"beauty-booking/internal/usecase/queries"
	"beauty-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	readOnlyStoresModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Revenue
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RevenueReadQueries)),
		),
	),
)

// stores for use cases that read inside a read-only transaction
var readOnlyStoresModule = fx.Module("persistence/readonly",
	fx.Provide(
		NewAvailabilityStores,
		NewRevenueStore,
	),
)

// write repositories are created per transaction inside the unit of work
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q,
		uow.WithMaxRetries(cfg.DB.TxMaxRetries),
		uow.WithBaseDelay(cfg.DB.TxRetryBackoff),
	)
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewAvailabilityStores(services readstore.ServiceReadQueries, appointments readstore.AppointmentReadQueries) queries.AvailabilityStores {
	return func(db sqlc.DBTX) (queries.ServiceReadStore, queries.SlotReadStore) {
		return readstore.NewServiceReadStore(services, db), readstore.NewAppointmentReadStore(appointments, db)
	}
}

func NewRevenueStore(revenue readstore.RevenueReadQueries) queries.RevenueStore {
	return func(db sqlc.DBTX) queries.RevenueReadStore {
		return readstore.NewRevenueReadStore(revenue, db)
	}
}
