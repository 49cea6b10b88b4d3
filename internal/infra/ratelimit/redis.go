package ratelimit

import (
	"context"
	"time"

	"leather-sandals-store/internal/infra/cache"

	"github.com/redis/go-redis/v9"
)

const keyNamespace = "ratelimit"

type RedisCounter struct {
	cache *cache.RedisCache
}

func NewRedisCounter(c *cache.RedisCache) *RedisCounter {
	return &RedisCounter{cache: c}
}

// Increment runs INCR, EXPIRE NX and PTTL in one MULTI so the first hit of a
// window sets the expiry and later hits leave it alone.
func (r *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	fullKey := r.cache.GenerateKey(keyNamespace, key)

	var incr *redis.IntCmd
	var pttl *redis.DurationCmd
	_, err := r.cache.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		pipe.ExpireNX(ctx, fullKey, window)
		pttl = pipe.PTTL(ctx, fullKey)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return incr.Val(), pttl.Val(), nil
}
