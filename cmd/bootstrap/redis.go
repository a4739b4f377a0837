package bootstrap

import (
	"context"
	"log/slog"

	"beauty-booking/internal/infra/session"
	"beauty-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		session.NewRedisStore,
	),
	fx.Invoke(CheckSessionStore),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := session.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

// An unreachable Redis is logged, not fatal: authenticated requests then fail closed.
func CheckSessionStore(lc fx.Lifecycle, cfg config.Config, store *session.RedisStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Ping(ctx); err != nil {
				slog.Warn("Redis is not reachable", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
	})
}
