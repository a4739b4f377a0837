package components

import (
	"beauty-booking/internal/handler"
	"beauty-booking/internal/handler/api"
	"beauty-booking/internal/handler/middleware"
	"beauty-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewAppointmentHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter { return middleware.NewRateLimiter(cfg.RateLimit) },
		func(cfg config.Config) *middleware.Logger { return middleware.NewLogger(cfg.Log) },
		func(
			auth *api.AuthHandler,
			catalog *api.CatalogHandler,
			appointment *api.AppointmentHandler,
			dashboard *api.DashboardHandler,
		) handler.Handlers {
			return handler.Handlers{Auth: auth, Catalog: catalog, Appointment: appointment, Dashboard: dashboard}
		},
		func(auth *middleware.AuthMiddleware, limiter *middleware.RateLimiter, logger *middleware.Logger) handler.Middlewares {
			return handler.Middlewares{Auth: auth, RateLimit: limiter, Logger: logger}
		},
	),
	fx.Invoke(handler.NewRouter),
)
