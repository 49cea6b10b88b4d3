// Package ratelimit implements fixed-window request counting.
package ratelimit

import (
	"context"
	"log/slog"
	"time"
)

// Counter increments key within a window and reports the new count and
// the time left before the window resets.
type Counter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type Limiter struct {
	counter Counter
	limit   int
	window  time.Duration
	logger  *slog.Logger
}

func NewLimiter(counter Counter, limit int, window time.Duration, logger *slog.Logger) *Limiter {
	return &Limiter{
		counter: counter,
		limit:   limit,
		window:  window,
		logger:  logger,
	}
}

// Allow fails open: a counter error lets the request through.
func (l *Limiter) Allow(ctx context.Context, key string) Decision {
	count, ttl, err := l.counter.Increment(ctx, key, l.window)
	if err != nil {
		l.logger.Error("rate limit check failed", "key", key, "error", err.Error())
		return Decision{Allowed: true, Remaining: l.limit}
	}

	if count > int64(l.limit) {
		if ttl <= 0 {
			ttl = l.window
		}
		l.logger.Debug("rate limited", "key", key, "count", count, "limit", l.limit)
		return Decision{Allowed: false, RetryAfter: ttl}
	}

	return Decision{Allowed: true, Remaining: l.limit - int(count)}
}
