package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/trippulse/trippulse-api/internal/domain"
)

const redisKeyPrefix = "trippulse:cooldown:"

// RedisConfig holds the connection settings for the shared cooldown store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// DialTimeout bounds connection attempts, including the startup ping
	DialTimeout time.Duration
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisLimiter shares cooldowns across API instances. A key is claimed with
// SET NX and expires with its window.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	log    zerolog.Logger
}

// NewRedisLimiter creates a limiter over an already connected client.
func NewRedisLimiter(client *redis.Client, window time.Duration, log zerolog.Logger) *RedisLimiter {
	if window <= 0 {
		window = DefaultCooldown
	}
	return &RedisLimiter{
		client: client,
		window: window,
		log:    log.With().Str("component", "redis_limiter").Logger(),
	}
}

// Allow claims key for one window. When Redis cannot be reached the call is
// allowed, since a throttled search only ever serves a cached batch.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	ok, err := l.client.SetNX(ctx, redisKeyPrefix+key, 1, l.window).Result()
	if err != nil {
		l.log.Warn().Err(err).Str("rate_key", key).Msg("Cooldown store unavailable, allowing request")
		return true
	}
	return ok
}

var _ domain.RateLimiter = (*RedisLimiter)(nil)
