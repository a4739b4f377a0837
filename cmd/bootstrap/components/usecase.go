package components

import (
	"beauty-booking/internal/infra/session"
	"beauty-booking/internal/pkg/clock"
	"beauty-booking/internal/pkg/jwt"
	"beauty-booking/internal/pkg/password"
	"beauty-booking/internal/usecase"
	"beauty-booking/internal/usecase/commands"
	"beauty-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func() *password.Hasher { return password.NewHasher(password.DefaultCost) },
		fx.As(new(commands.PasswordHasher)),
	),
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
	fx.Annotate(
		func(s *session.RedisStore) *session.RedisStore { return s },
		fx.As(new(commands.SessionRevoker)),
		fx.As(new(usecase.SessionChecker)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAppointmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
