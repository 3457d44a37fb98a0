package ratelimit

import (
	"context"
	"fmt"
	"time"

	"deals-engine/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts requests per key in fixed windows aligned to the
// window length. Each window lives under its own key, so the expiry only reclaims memory.
type FixedWindowLimiter struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

func NewFixedWindowLimiter(client redis.Cmdable) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		client: client,
		prefix: "ratelimit",
		now:    time.Now,
	}
}

// Allow reports whether key may make another request in the current window.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 || window <= 0 {
		return true, nil
	}

	redisKey := l.windowKey(key, window)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window+time.Second)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, errs.Wrap(err, "failed to execute pipeline")
	}

	return incr.Val() <= int64(limit), nil
}

func (l *FixedWindowLimiter) windowKey(key string, window time.Duration) string {
	bucket := l.now().UnixNano() / int64(window)
	return fmt.Sprintf("%s:%s:%s:%d", l.prefix, key, window.String(), bucket)
}
