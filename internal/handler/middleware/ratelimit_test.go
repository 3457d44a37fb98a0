//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"deals-engine/internal/domain/user"
	"deals-engine/internal/handler/middleware"
	"deals-engine/internal/pkg/config"
	"deals-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type countingLimiter struct {
	limit int
	hits  map[string]int
	err   error
}

func (l *countingLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.hits[key]++
	return l.hits[key] <= limit, nil
}

func newRateLimitedRouter(limiter middleware.RateLimiter, cfg config.RateLimitConfig, vendorID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/api/verify/claim",
		func(c *gin.Context) {
			if vendorID != uuid.Nil {
				middleware.SetPrincipal(c, user.Principal{ID: vendorID, Role: user.RoleVendor})
			}
			c.Next()
		},
		middleware.VerifyRateLimit(limiter, cfg),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)
	return r
}

func TestVerifyRateLimit(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, VerifyLimit: 2, VerifyWindow: time.Minute}

	t.Run("rejects requests over the limit per vendor", func(t *testing.T) {
		limiter := &countingLimiter{hits: map[string]int{}}
		vendorID := uuid.New()
		r := newRateLimitedRouter(limiter, cfg, vendorID)

		for i := 0; i < 2; i++ {
			rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/verify/claim", nil, "")
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		}

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/verify/claim", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many verification attempts")
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		assert.Equal(t, 3, limiter.hits["verify:user:"+vendorID.String()])
	})

	t.Run("falls back to client ip without a principal", func(t *testing.T) {
		limiter := &countingLimiter{hits: map[string]int{}}
		r := newRateLimitedRouter(limiter, cfg, uuid.Nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/verify/claim", nil, "")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		assert.Len(t, limiter.hits, 1)
		for key := range limiter.hits {
			assert.Contains(t, key, "verify:ip:")
		}
	})

	t.Run("fails open when the limiter errors", func(t *testing.T) {
		limiter := &countingLimiter{err: errors.New("dial tcp: connection refused")}
		r := newRateLimitedRouter(limiter, cfg, uuid.New())

		for i := 0; i < 5; i++ {
			rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/verify/claim", nil, "")
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		}
	})

	t.Run("disabled config skips the limiter", func(t *testing.T) {
		limiter := &countingLimiter{hits: map[string]int{}}
		r := newRateLimitedRouter(limiter, config.RateLimitConfig{Enabled: false, VerifyLimit: 1, VerifyWindow: time.Minute}, uuid.New())

		for i := 0; i < 3; i++ {
			rec := httptest.PerformRequest(t, r, http.MethodPost, "/api/verify/claim", nil, "")
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		}
		assert.Empty(t, limiter.hits)
	})
}
