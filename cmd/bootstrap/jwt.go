package bootstrap

import (
	"time"

	"beauty-booking/internal/pkg/clock"
	"beauty-booking/internal/pkg/config"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}

	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
