package http

import (
	"github.com/labstack/echo/v4"

	"github.com/trippulse/trippulse-api/internal/adapter/http/middleware"
	"github.com/trippulse/trippulse-api/internal/adapter/http/response"
	"github.com/trippulse/trippulse-api/internal/domain"
)

// Me handles GET /api/v1/auth/me
//
// @Summary Current user
// @Description Registers the token subject on first sight and records the sign-in.
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Router /api/v1/auth/me [get]
func (h *Handler) Me(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c)
	}

	user, err := h.deps.Users.Me(c.Request().Context(), principal)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, user)
}

// SaveTrip handles POST /api/v1/saved
//
// @Summary Save a trip
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveTripRequest true "Trip to save"
// @Success 201 {object} domain.SavedTrip
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 403 {object} response.ErrorDetail "Trip belongs to another user"
// @Failure 404 {object} response.ErrorDetail "Trip or offer not found"
// @Router /api/v1/saved [post]
func (h *Handler) SaveTrip(c echo.Context) error {
	var req SaveTripRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	saved, err := h.deps.Saved.Save(c.Request().Context(), ToSavedTrip(&req, callerID(c)))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, saved)
}

// ListSaved handles GET /api/v1/saved
//
// @Summary List saved trips
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SavedTripListDTO
// @Router /api/v1/saved [get]
func (h *Handler) ListSaved(c echo.Context) error {
	saved, err := h.deps.Saved.List(c.Request().Context(), callerID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	if saved == nil {
		saved = []domain.SavedTrip{}
	}
	return response.OK(c, &SavedTripListDTO{Count: len(saved), Saved: saved})
}

// DeleteSaved handles DELETE /api/v1/saved/:id
//
// @Summary Delete a saved trip
// @Tags account
// @Security BearerAuth
// @Param id path string true "Saved trip ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found or not owned"
// @Router /api/v1/saved/{id} [delete]
func (h *Handler) DeleteSaved(c echo.Context) error {
	if err := h.deps.Saved.Delete(c.Request().Context(), c.Param("id"), callerID(c)); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// AdminLogs handles GET /api/v1/admin/logs
//
// @Summary Recent upstream call log
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Entries to return (1-200, default 50)"
// @Success 200 {object} APILogListDTO
// @Failure 403 {object} response.ErrorDetail "Admin role required"
// @Router /api/v1/admin/logs [get]
func (h *Handler) AdminLogs(c echo.Context) error {
	req := LogsRequest{Limit: c.QueryParam("limit")}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	logs, err := h.deps.Admin.RecentLogs(c.Request().Context(), req.limit)
	if err != nil {
		return h.handleError(c, err)
	}
	if logs == nil {
		logs = []domain.APILog{}
	}
	return response.OK(c, &APILogListDTO{Count: len(logs), Logs: logs})
}
