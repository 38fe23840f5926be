package bootstrap

import (
	"context"
	"log/slog"

	"hosteed/internal/infra/cache"
	"hosteed/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when REDIS_ENABLED is false; stores then read straight from Postgres.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis cache disabled")
		return nil, nil
	}
	client, err := cache.Connect(context.Background(), cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
