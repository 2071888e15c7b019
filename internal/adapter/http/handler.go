// Package http provides the HTTP handler layer for the TripPulse API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trippulse/trippulse-api/internal/adapter/http/middleware"
	"github.com/trippulse/trippulse-api/internal/adapter/http/response"
	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"
	"github.com/trippulse/trippulse-api/internal/usecase"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps holds the use cases served over HTTP.
type Deps struct {
	Trips    usecase.TripUseCase
	Search   usecase.OfferSearchUseCase
	Offers   usecase.OfferQueryUseCase
	Saved    usecase.SavedTripUseCase
	Users    usecase.UserUseCase
	Admin    usecase.AdminUseCase
	Airports usecase.AirportDirectory
	Intake   usecase.IntakeUseCase

	// Storage names the active persistence backend in health responses
	Storage string

	// Pinger is checked by the health endpoint. Nil means always healthy.
	Pinger Pinger

	Clock timeutil.Clock
}

// Handler handles HTTP requests for every TripPulse endpoint.
type Handler struct {
	deps  Deps
	clock timeutil.Clock
}

// NewHandler creates a new Handler with the given use cases.
func NewHandler(deps Deps) *Handler {
	clock := deps.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Handler{deps: deps, clock: clock}
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.ErrorDetail "Storage unreachable"
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if h.deps.Pinger != nil {
		if err := h.deps.Pinger.Ping(c.Request().Context()); err != nil {
			zerolog.Ctx(c.Request().Context()).Warn().Err(err).Msg("Health check ping failed")
			return response.ServiceUnavailableWithMessage(c, h.deps.Storage+" storage is unreachable")
		}
	}
	return response.Health(c, h.deps.Storage)
}

// callerID returns the authenticated subject, or "" for anonymous callers.
func callerID(c echo.Context) string {
	if p, ok := middleware.GetPrincipal(c); ok {
		return p.OpenID
	}
	return ""
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c)
	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c)
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Str("path", c.Path()).Msg("Request failed")
	return response.InternalServerError(c)
}
