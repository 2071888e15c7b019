package http

import (
	"github.com/labstack/echo/v4"

	"github.com/trippulse/trippulse-api/internal/adapter/http/response"
	"github.com/trippulse/trippulse-api/internal/adapter/pdf"
	"github.com/trippulse/trippulse-api/internal/domain"
)

// SearchOffers handles POST /api/v1/trips/:id/offers/search
//
// @Summary Search offers for a trip
// @Description Generates and scores a fresh offer batch. A repeated search of the
// @Description same route and date inside the cooldown returns the stored batch with cached=true.
// @Description Without an origin in the body the stored trip supplies the parameters.
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body SearchOffersRequest false "Search parameters"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Trip not found"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/trips/{id}/offers/search [post]
func (h *Handler) SearchOffers(c echo.Context) error {
	return h.runSearch(c, false)
}

// RefreshOffers handles POST /api/v1/trips/:id/offers/refresh
//
// @Summary Refresh offers for a trip
// @Description Like search, but throttled per trip. A throttled refresh returns the
// @Description stored batch with cached=true and rateLimited=true.
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body SearchOffersRequest false "Search parameters"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Trip not found"
// @Router /api/v1/trips/{id}/offers/refresh [post]
func (h *Handler) RefreshOffers(c echo.Context) error {
	return h.runSearch(c, true)
}

func (h *Handler) runSearch(c echo.Context, refresh bool) error {
	var req SearchOffersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx := c.Request().Context()
	tripID := c.Param("id")

	var params domain.TripParameters
	if req.UsesStoredTrip() {
		trip, err := h.deps.Trips.Get(ctx, tripID)
		if err != nil {
			return h.handleError(c, err)
		}
		if trip.Origin == "" || trip.Destination == "" {
			return response.ValidationErrorWithMessage(c, "trip has no route yet; send origin and destination")
		}
		params = TripParametersFromTrip(trip, &req)
	} else {
		params = ToTripParameters(&req)
	}

	search := h.deps.Search.Search
	if refresh {
		search = h.deps.Search.Refresh
	}
	result, err := search(ctx, tripID, params)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSearchResponseDTO(tripID, result))
}

// ListOffers handles GET /api/v1/trips/:id/offers
//
// @Summary List a trip's offers
// @Tags offers
// @Produce json
// @Param id path string true "Trip ID"
// @Param sortBy query string false "deal, price, total or duration"
// @Param maxStops query int false "Maximum outbound stops"
// @Param maxPrice query number false "Maximum flight price"
// @Success 200 {object} OfferListDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/trips/{id}/offers [get]
func (h *Handler) ListOffers(c echo.Context) error {
	req := ListOffersRequest{
		SortBy:   c.QueryParam("sortBy"),
		MaxStops: c.QueryParam("maxStops"),
		MaxPrice: c.QueryParam("maxPrice"),
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	tripID := c.Param("id")
	offers, err := h.deps.Offers.ListByTrip(c.Request().Context(), tripID, ToListOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToOfferListDTO(tripID, offers))
}

// GetOffer handles GET /api/v1/offers/:id
//
// @Summary Get an offer with its trip
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} usecase.OfferDetail
// @Failure 404 {object} response.ErrorDetail "Offer not found"
// @Router /api/v1/offers/{id} [get]
func (h *Handler) GetOffer(c echo.Context) error {
	detail, err := h.deps.Offers.GetDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, detail)
}

// OfferItinerary handles GET /api/v1/offers/:id/itinerary.pdf
//
// @Summary Download an offer itinerary
// @Tags offers
// @Produce application/pdf
// @Param id path string true "Offer ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorDetail "Offer not found"
// @Router /api/v1/offers/{id}/itinerary.pdf [get]
func (h *Handler) OfferItinerary(c echo.Context) error {
	detail, err := h.deps.Offers.GetDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	itinerary := pdf.Itinerary{
		Offer:              detail.Offer,
		Trip:               detail.Trip,
		BudgetUsagePercent: detail.BudgetUsagePercent,
		GeneratedAt:        h.clock.Now(),
	}
	body, err := pdf.Render(itinerary)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.PDF(c, itinerary.Filename(), body)
}

// PriceHistory handles GET /api/v1/trips/:id/price-history
//
// @Summary Price history of a trip
// @Tags offers
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} PriceHistoryDTO
// @Failure 404 {object} response.ErrorDetail "Trip not found"
// @Router /api/v1/trips/{id}/price-history [get]
func (h *Handler) PriceHistory(c echo.Context) error {
	tripID := c.Param("id")
	history, err := h.deps.Offers.PriceHistory(c.Request().Context(), tripID)
	if err != nil {
		return h.handleError(c, err)
	}
	if history == nil {
		history = []domain.PriceSnapshot{}
	}
	return response.OK(c, &PriceHistoryDTO{TripID: tripID, Snapshots: history})
}
