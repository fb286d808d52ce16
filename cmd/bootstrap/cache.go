package bootstrap

import (
	"context"
	"log/slog"

	"rental-inventory/internal/infra/cache"
	"rental-inventory/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCache,
		func(cfg config.Config) config.CacheConfig { return cfg.Cache },
	),
)

func NewCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) cache.Cache {
	c := cache.NewCache(cfg.Cache, logger)

	if rc, ok := c.(*cache.RedisCache); ok {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return rc.Close()
			},
		})
	}

	return c
}
