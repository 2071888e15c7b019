package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trippulse/trippulse-api/internal/adapter/http/response"
	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/usecase"
)

// IntakeTrip handles POST /api/v1/intake/trips
//
// @Summary Create a trip from assistant output
// @Description Accepts the extractTripParams tool-call arguments and stores them as a draft trip.
// @Tags intake
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Anonymous session"
// @Param request body usecase.IntakeParams true "Extracted trip parameters"
// @Success 201 {object} usecase.IntakeResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/intake/trips [post]
func (h *Handler) IntakeTrip(c echo.Context) error {
	var payload usecase.IntakeParams
	if err := c.Bind(&payload); err != nil {
		return response.InvalidRequestBody(c)
	}
	payload.Origin = strings.ToUpper(payload.Origin)
	payload.Destination = strings.ToUpper(payload.Destination)
	payload.Currency = strings.ToUpper(payload.Currency)

	var userID *string
	if id := callerID(c); id != "" {
		userID = &id
	}

	result, err := h.deps.Intake.CreateTrip(c.Request().Context(), payload, userID, c.Request().Header.Get(HeaderSessionID))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, result)
}

// Suggestions handles GET /api/v1/intake/suggestions
//
// @Summary Destination ideas for a trip style
// @Tags intake
// @Produce json
// @Param style query string false "sea, city, nature or mixed"
// @Success 200 {object} SuggestionListDTO
// @Router /api/v1/intake/suggestions [get]
func (h *Handler) Suggestions(c echo.Context) error {
	style := domain.TripStyle(strings.ToLower(c.QueryParam("style")))
	return response.OK(c, &SuggestionListDTO{
		Style:        style,
		Destinations: h.deps.Intake.Suggestions(style),
	})
}

// SearchAirports handles GET /api/v1/airports
//
// @Summary Airport autocomplete
// @Tags intake
// @Produce json
// @Param q query string true "IATA code, city, name or country fragment (2-50 chars)"
// @Success 200 {object} AirportListDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/airports [get]
func (h *Handler) SearchAirports(c echo.Context) error {
	req := AirportSearchRequest{Query: c.QueryParam("q")}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}
	return response.OK(c, &AirportListDTO{
		Query:    req.Query,
		Airports: h.deps.Airports.Search(req.Query),
	})
}
