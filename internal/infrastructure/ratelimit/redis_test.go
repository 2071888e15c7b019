package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient(context.Background(), RedisConfig{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})

	assert.ErrorContains(t, err, "ping redis")
}

func TestRedisLimiter_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLimiter(client, time.Second, zerolog.Nop())

	assert.True(t, l.Allow(context.Background(), "search:FCO-BCN-2026-07-01"))
	assert.True(t, l.Allow(context.Background(), "search:FCO-BCN-2026-07-01"))
}

// TestRedisLimiter_SharedCooldown runs against a real server when REDIS_ADDR is set.
func TestRedisLimiter_SharedCooldown(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping Redis limiter test")
	}

	client, err := NewRedisClient(context.Background(), RedisConfig{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	first := NewRedisLimiter(client, 200*time.Millisecond, zerolog.Nop())
	second := NewRedisLimiter(client, 200*time.Millisecond, zerolog.Nop())
	key := "refresh:" + uuid.NewString()

	assert.True(t, first.Allow(context.Background(), key))
	assert.False(t, second.Allow(context.Background(), key), "instances share the cooldown")

	time.Sleep(300 * time.Millisecond)
	assert.True(t, second.Allow(context.Background(), key))
}
