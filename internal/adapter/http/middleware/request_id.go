// Package middleware holds the Echo middleware of the TripPulse API: request
// IDs, access logging, panic recovery, bearer-token auth and per-client rate
// limiting.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = echo.HeaderXRequestID

const requestIDKey = "request_id"

// RequestID reuses an incoming X-Request-ID or mints a UUID, echoes it on the
// response and keeps it on the echo context for the logging middleware.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			c.Set(requestIDKey, id)
		},
	})
}

// GetRequestID returns the ID stored by RequestID, or "" outside of it.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
