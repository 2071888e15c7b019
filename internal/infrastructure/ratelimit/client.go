package ratelimit

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// ClientConfig sizes the token bucket handed to each client.
type ClientConfig struct {
	RequestsPerSecond float64
	BurstSize         int

	// IdleTTL drops a client's bucket after it has been unused this long
	IdleTTL time.Duration
}

// DefaultClientConfig returns the default per-client allowance.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		IdleTTL:           10 * time.Minute,
	}
}

// ClientLimiter keeps one token bucket per client key, usually the remote IP.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	config   ClientConfig
}

// NewClientLimiter creates a ClientLimiter. Zero fields in config take their defaults.
func NewClientLimiter(config ClientConfig) *ClientLimiter {
	defaults := DefaultClientConfig()
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if config.BurstSize <= 0 {
		config.BurstSize = defaults.BurstSize
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = defaults.IdleTTL
	}

	return &ClientLimiter{
		limiters: cache.New(config.IdleTTL, config.IdleTTL),
		config:   config,
	}
}

// GetLimiter returns the bucket for client, creating it on first use.
// Each lookup pushes the bucket's expiry out by IdleTTL.
func (l *ClientLimiter) GetLimiter(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, found := l.limiters.Get(client); found {
		limiter := v.(*rate.Limiter)
		l.limiters.Set(client, limiter, cache.DefaultExpiration)
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.BurstSize)
	l.limiters.Set(client, limiter, cache.DefaultExpiration)
	return limiter
}

// Allow takes one token from client's bucket.
func (l *ClientLimiter) Allow(client string) bool {
	return l.GetLimiter(client).Allow()
}

// RetryAfter estimates how long client must wait for the next token.
func (l *ClientLimiter) RetryAfter(client string) time.Duration {
	r := l.GetLimiter(client).Reserve()
	defer r.Cancel()
	return r.Delay()
}
