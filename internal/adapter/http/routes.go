package http

import (
	"github.com/labstack/echo/v4"

	"github.com/trippulse/trippulse-api/internal/adapter/http/middleware"
	"github.com/trippulse/trippulse-api/internal/infrastructure/ratelimit"
)

// HeaderSessionID carries the anonymous session of intake requests.
const HeaderSessionID = "X-Session-ID"

// RegisterRoutes registers all TripPulse API routes.
// Every /api/v1 route reads an optional bearer token; a nil client limiter
// disables per-client throttling.
func RegisterRoutes(e *echo.Echo, h *Handler, auth *middleware.Authenticator, clients *ratelimit.ClientLimiter) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	var mw []echo.MiddlewareFunc
	if clients != nil {
		mw = append(mw, middleware.ClientRateLimit(clients))
	}
	mw = append(mw, auth.OptionalAuth())

	api := e.Group("/api/v1", mw...)

	api.GET("/airports", h.SearchAirports)

	intake := api.Group("/intake")
	intake.POST("/trips", h.IntakeTrip)
	intake.GET("/suggestions", h.Suggestions)

	trips := api.Group("/trips")
	trips.POST("", h.CreateTrip)
	trips.GET("/:id", h.GetTrip)
	trips.PATCH("/:id", h.UpdateTrip)
	trips.GET("/:id/offers", h.ListOffers)
	trips.POST("/:id/offers/search", h.SearchOffers)
	trips.POST("/:id/offers/refresh", h.RefreshOffers)
	trips.GET("/:id/price-history", h.PriceHistory)

	offers := api.Group("/offers")
	offers.GET("/:id", h.GetOffer)
	offers.GET("/:id/itinerary.pdf", h.OfferItinerary)

	api.GET("/auth/me", h.Me, middleware.RequireAuth())
	api.GET("/me/trips", h.ListMyTrips, middleware.RequireAuth())

	saved := api.Group("/saved", middleware.RequireAuth())
	saved.POST("", h.SaveTrip)
	saved.GET("", h.ListSaved)
	saved.DELETE("/:id", h.DeleteSaved)

	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.GET("/logs", h.AdminLogs)
}
