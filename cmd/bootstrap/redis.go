package bootstrap

import (
	"context"

	"leather-sandals-store/internal/infra/cache"
	"leather-sandals-store/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewRedisCache,
		func(c *cache.RedisCache) cache.Cache { return c },
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

func NewRedisCache(client *redis.Client, cfg config.Config) *cache.RedisCache {
	return cache.NewRedisCache(client, cfg.Redis.Prefix)
}
