//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"leather-sandals-store/cmd/bootstrap"
	"leather-sandals-store/internal/handler/middleware"
	"leather-sandals-store/internal/infra/ratelimit"
	"leather-sandals-store/internal/pkg/config"
	"leather-sandals-store/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLimiter allows `limit` hits per key and records the keys it saw.
type countingLimiter struct {
	mu    sync.Mutex
	limit int
	hits  map[string]int
}

func newCountingLimiter(limit int) *countingLimiter {
	return &countingLimiter{limit: limit, hits: map[string]int{}}
}

func (l *countingLimiter) Allow(_ context.Context, key string) ratelimit.Decision {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hits[key]++
	if l.hits[key] > l.limit {
		return ratelimit.Decision{RetryAfter: 30 * time.Second}
	}
	return ratelimit.Decision{Allowed: true, Remaining: l.limit - l.hits[key]}
}

func limitedRouter(t *testing.T, cfg config.Config, limiter middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine, err := bootstrap.NewEngine(cfg)
	require.NoError(t, err)
	engine.POST("/login", middleware.RateLimit(limiter, "login"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return engine
}

func TestRateLimit(t *testing.T) {
	t.Run("blocks after the limit with Retry-After", func(t *testing.T) {
		router := limitedRouter(t, config.NewTestConfig(), newCountingLimiter(1))

		first := httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
		assert.Equal(t, http.StatusNoContent, first.Code)
		assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

		second := httptest.PerformRequest(t, router, http.MethodPost, "/login", nil, "")
		httptest.AssertErrorResponse(t, second, http.StatusTooManyRequests, "")
		assert.Equal(t, "30", second.Header().Get("Retry-After"))
	})

	t.Run("forwarding headers from an untrusted peer are ignored", func(t *testing.T) {
		limiter := newCountingLimiter(2)
		router := limitedRouter(t, config.NewTestConfig(), limiter)

		var codes []int
		for _, spoofed := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3", "203.0.113.4"} {
			w := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/login", nil,
				map[string]string{"X-Forwarded-For": spoofed, "X-Real-IP": spoofed}, nil)
			codes = append(codes, w.Code)
		}

		assert.Equal(t, []int{204, 204, 429, 429}, codes)
		assert.Equal(t, map[string]int{"login:192.0.2.1": 4}, limiter.hits)
	})

	t.Run("a trusted proxy may forward the client address", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Server.TrustedProxies = []string{"192.0.2.0/24"}
		limiter := newCountingLimiter(1)
		router := limitedRouter(t, cfg, limiter)

		for _, client := range []string{"203.0.113.1", "203.0.113.2"} {
			w := httptest.PerformRequestWithHeaders(t, router, http.MethodPost, "/login", nil,
				map[string]string{"X-Forwarded-For": client}, nil)
			assert.Equal(t, http.StatusNoContent, w.Code)
		}
		assert.Equal(t, map[string]int{"login:203.0.113.1": 1, "login:203.0.113.2": 1}, limiter.hits)
	})
}

func TestNewEngineRejectsBadProxy(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Server.TrustedProxies = []string{"not-an-ip"}

	_, err := bootstrap.NewEngine(cfg)
	assert.Error(t, err)
}
