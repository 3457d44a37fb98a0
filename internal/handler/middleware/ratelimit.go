package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

var errRateLimited = errors.New("rate limit exceeded")

// VerifyRateLimit throttles code-guessing on the verification routes, keyed by
// the authenticated vendor (or client IP before auth). Limiter failures let the
// request through.
func VerifyRateLimit(limiter RateLimiter, cfg config.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		key := "verify:ip:" + c.ClientIP()
		if id, ok := GetUserID(c); ok {
			key = "verify:user:" + id.String()
		}

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg.VerifyLimit, cfg.VerifyWindow)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "key", key, "error", err.Error())
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(cfg.VerifyWindow.Seconds())))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many verification attempts", httperr.Detail{Code: "RATE_LIMITED"})
			return
		}

		c.Next()
	}
}
