//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		_ = client.Close()
	})

	return client
}

func TestFixedWindowLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewFixedWindowLimiter(client)
	fixed := time.Date(2025, 3, 14, 10, 0, 30, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "verify:user:v1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "verify:user:v1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "4th request should be denied")

	// other keys keep their own budget
	allowed, err = limiter.Allow(ctx, "verify:user:v2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	// next window starts fresh
	fixed = fixed.Add(time.Minute)
	allowed, err = limiter.Allow(ctx, "verify:user:v1", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_SetsExpiry(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewFixedWindowLimiter(client)
	now := time.Now()
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "verify:ip:10.0.0.1", 5, time.Minute)
	require.NoError(t, err)

	ttl, err := client.TTL(ctx, limiter.windowKey("verify:ip:10.0.0.1", time.Minute)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute+time.Second)
}

func TestFixedWindowLimiter_DisabledLimitAlwaysAllows(t *testing.T) {
	// no server needed: non-positive limits short-circuit
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })
	limiter := NewFixedWindowLimiter(client)

	allowed, err := limiter.Allow(context.Background(), "any", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	limiter := NewFixedWindowLimiter(client)

	allowed, err := limiter.Allow(context.Background(), "verify:user:v1", 3, time.Minute)
	require.Error(t, err)
	assert.False(t, allowed)
}
