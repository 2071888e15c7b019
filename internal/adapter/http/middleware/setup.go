package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup installs the global middleware. RequestID runs first so the access
// log can carry it; Recover is innermost so a panic still ends in a logged 500.
// Auth and client rate limiting are attached per route group.
func Setup(e *echo.Echo, log zerolog.Logger, recovery RecoveryConfig) {
	e.Use(
		RequestID(),
		RequestLogger(log),
		Recover(log, recovery),
	)
}
