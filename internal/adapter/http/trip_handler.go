package http

import (
	"github.com/labstack/echo/v4"

	"github.com/trippulse/trippulse-api/internal/adapter/http/response"
	"github.com/trippulse/trippulse-api/internal/domain"
)

// CreateTrip handles POST /api/v1/trips
//
// @Summary Create a draft trip
// @Tags trips
// @Accept json
// @Produce json
// @Param request body CreateTripRequest true "Trip draft"
// @Success 201 {object} domain.TripRequest
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/trips [post]
func (h *Handler) CreateTrip(c echo.Context) error {
	var req CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	trip, err := h.deps.Trips.Create(c.Request().Context(), ToDomainTrip(&req, callerID(c)))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, trip)
}

// GetTrip handles GET /api/v1/trips/:id
//
// @Summary Get a trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} domain.TripRequest
// @Failure 404 {object} response.ErrorDetail "Trip not found"
// @Router /api/v1/trips/{id} [get]
func (h *Handler) GetTrip(c echo.Context) error {
	trip, err := h.deps.Trips.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, trip)
}

// UpdateTrip handles PATCH /api/v1/trips/:id
//
// The body is a partial object of trip fields. A trip with an owner can only
// be patched by that owner.
//
// @Summary Patch a trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body object true "Fields to change"
// @Success 200 {object} domain.TripRequest
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 403 {object} response.ErrorDetail "Not the owner"
// @Failure 404 {object} response.ErrorDetail "Trip not found"
// @Router /api/v1/trips/{id} [patch]
func (h *Handler) UpdateTrip(c echo.Context) error {
	var patch map[string]any
	// BindBody keeps the path parameter out of the patch map.
	if err := (&echo.DefaultBinder{}).BindBody(c, &patch); err != nil {
		return response.InvalidRequestBody(c)
	}
	if len(patch) == 0 {
		return response.ValidationErrorWithMessage(c, "patch must change at least one field")
	}

	trip, err := h.deps.Trips.Update(c.Request().Context(), c.Param("id"), patch, callerID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, trip)
}

// ListMyTrips handles GET /api/v1/me/trips
//
// @Summary List the caller's trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TripListDTO
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Router /api/v1/me/trips [get]
func (h *Handler) ListMyTrips(c echo.Context) error {
	trips, err := h.deps.Trips.ListMine(c.Request().Context(), callerID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	if trips == nil {
		trips = []domain.TripRequest{}
	}
	return response.OK(c, &TripListDTO{Count: len(trips), Trips: trips})
}
