//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"beauty-booking/internal/handler/middleware"
	"beauty-booking/internal/pkg/config"
	"beauty-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2})

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "burst exhausted")

	assert.True(t, rl.Allow("10.0.0.2"), "buckets are per client")
}

func TestRateLimiter_DefaultBurst(t *testing.T) {
	rl := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001})

	for i := range 5 {
		require.True(t, rl.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	rl := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1})
	router.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	httptest.AssertHeaders(t, w, map[string]string{"Retry-After": ""})

	w = httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
	httptest.AssertErrorKind(t, w, http.StatusTooManyRequests, "RATE_LIMITED")
	httptest.AssertHeaders(t, w, map[string]string{
		"Retry-After":  "1",
		"Content-Type": "application/json; charset=utf-8",
	})
}
