// Package ratelimit holds the cooldown limiters that throttle offer searches and
// the per-client token buckets that guard the HTTP API.
package ratelimit

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// DefaultCooldown is how long a search or refresh key stays throttled.
const DefaultCooldown = 10 * time.Second

// WindowLimiter allows a key once per window. Keys expire with their window and
// are evicted by the cache janitor, so the key set stays bounded.
type WindowLimiter struct {
	entries *cache.Cache
	window  time.Duration
}

// NewWindowLimiter creates an in-process limiter. A non-positive window uses DefaultCooldown.
func NewWindowLimiter(window time.Duration) *WindowLimiter {
	if window <= 0 {
		window = DefaultCooldown
	}
	return &WindowLimiter{
		entries: cache.New(window, 2*window),
		window:  window,
	}
}

// Allow reports whether key is outside its cooldown and, if so, starts a new one.
// go-cache's Add is atomic, so concurrent callers for one key get exactly one true.
func (l *WindowLimiter) Allow(_ context.Context, key string) bool {
	return l.entries.Add(key, struct{}{}, l.window) == nil
}

// Len reports how many keys are currently cooling down, expired ones included
// until the janitor runs.
func (l *WindowLimiter) Len() int {
	return l.entries.ItemCount()
}

var _ domain.RateLimiter = (*WindowLimiter)(nil)
