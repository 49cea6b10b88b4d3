//go:build unit

package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	args := m.Called(ctx, key, window)
	return args.Get(0).(int64), args.Get(1).(time.Duration), args.Error(2)
}

func TestLimiterAllow(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name  string
		count int64
		ttl   time.Duration
		err   error
		want  Decision
	}{
		{name: "first hit", count: 1, ttl: time.Minute, want: Decision{Allowed: true, Remaining: 2}},
		{name: "at limit", count: 3, ttl: 20 * time.Second, want: Decision{Allowed: true, Remaining: 0}},
		{name: "over limit", count: 4, ttl: 20 * time.Second, want: Decision{Allowed: false, RetryAfter: 20 * time.Second}},
		{name: "over limit without ttl", count: 9, ttl: -1, want: Decision{Allowed: false, RetryAfter: time.Minute}},
		{name: "counter down fails open", err: assert.AnError, want: Decision{Allowed: true, Remaining: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := new(MockCounter)
			counter.On("Increment", mock.Anything, "coupon-validate:10.0.0.1", time.Minute).Return(tt.count, tt.ttl, tt.err)

			l := NewLimiter(counter, 3, time.Minute, logger)
			got := l.Allow(context.Background(), "coupon-validate:10.0.0.1")

			assert.Equal(t, tt.want, got)
			counter.AssertExpectations(t)
		})
	}
}
