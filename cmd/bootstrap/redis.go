package bootstrap

import (
	"context"
	"log/slog"

	"deals-engine/internal/handler/middleware"
	"deals-engine/internal/infra/ratelimit"
	"deals-engine/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewRateLimiter,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		// Verification stays available when Redis is down; the limiter fails open.
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, verify rate limiting disabled until it recovers",
					"addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewRateLimiter(client *redis.Client) middleware.RateLimiter {
	return ratelimit.NewFixedWindowLimiter(client)
}
