package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"leather-sandals-store/internal/handler/httperr"
	"leather-sandals-store/internal/infra/ratelimit"
	"leather-sandals-store/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) ratelimit.Decision
}

// RateLimit counts requests per scope and client IP.
func RateLimit(limiter RateLimiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil,
				i18n.Translate(GetLanguage(c), i18n.TooManyRequests), nil)
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Next()
	}
}
