//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"beauty-booking/internal/domain/user"
	"beauty-booking/internal/pkg/clock"
	"beauty-booking/internal/pkg/config"
	"beauty-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	issued, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return issued.Token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-48 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, past)
	issued, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return issued.Token
}
