package domain

import "context"

//go:generate mockgen -source=limiter.go -destination=mock_limiter.go -package=domain

// RateLimiter decides whether the action identified by key may run now.
// A true result consumes the key's allowance for the current window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) bool
}
