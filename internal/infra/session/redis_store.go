package session

import (
	"context"
	"time"

	"beauty-booking/internal/pkg/config"
	"beauty-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

var (
	ErrStoreUnavailable = errs.New("session store unavailable")
	ErrEmptyTokenID     = errs.New("empty token id")
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// RedisStore keeps a deny-list of logged out token IDs. Entries expire
// together with the token they revoke.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to revoke session"), ErrStoreUnavailable)
	}
	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "failed to check session"), ErrStoreUnavailable)
	}
	return n > 0, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
