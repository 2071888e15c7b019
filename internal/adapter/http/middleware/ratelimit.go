package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/trippulse/trippulse-api/internal/adapter/http/response"
	"github.com/trippulse/trippulse-api/internal/infrastructure/ratelimit"
)

// ClientRateLimit throttles each client IP with its own token bucket and
// answers 429 with a Retry-After header once the bucket is empty.
func ClientRateLimit(limiter *ratelimit.ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			client := c.RealIP()
			if !limiter.Allow(client) {
				return response.TooManyRequests(c, limiter.RetryAfter(client))
			}
			return next(c)
		}
	}
}
