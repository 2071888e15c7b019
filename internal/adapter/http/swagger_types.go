// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerOffer represents a scored offer.
// @Description Synthesized round-trip offer with cost estimates and deal score
type SwaggerOffer struct {
	ID               string             `json:"id" example:"0b8f3a52-6a8e-4c84-9a55-2f1d0f4a7c11"`
	TripID           string             `json:"tripId" example:"5f0c6c1e-1f2a-4c3b-9d4e-6a7b8c9d0e1f"`
	Airline          SwaggerAirlineInfo `json:"airline"`
	FlightNumber     string             `json:"flightNumber" example:"FR1234"`
	Outbound         SwaggerLeg         `json:"outbound"`
	Return           SwaggerLeg         `json:"return"`
	FlightPrice      float64            `json:"flightPrice" example:"180"`
	HotelEstimate    float64            `json:"hotelEstimate" example:"650"`
	ActivityEstimate float64            `json:"activityEstimate" example:"350"`
	TotalEstimate    float64            `json:"totalEstimate" example:"1180"`
	Currency         string             `json:"currency" example:"EUR"`
	BookingURL       string             `json:"bookingUrl" example:"https://www.google.com/travel/flights?q=FCO+to+BCN&utm_source=trippulse&utm_medium=referral"`
	IsEstimate       bool               `json:"isEstimate" example:"true"`
	DealScore        float64            `json:"dealScore" example:"8.4"`
}

// SwaggerAirlineInfo contains information about an airline.
// @Description Airline information
type SwaggerAirlineInfo struct {
	Code    string `json:"code" example:"FR"`
	Name    string `json:"name" example:"Ryanair"`
	Logo    string `json:"logo,omitempty" example:"https://logos.skyscnr.com/images/airlines/favicon/FR.png"`
	LowCost bool   `json:"lowCost" example:"true"`
}

// SwaggerLeg represents one direction of the trip.
// @Description Outbound or return leg
type SwaggerLeg struct {
	DepartureTime string              `json:"departureTime" example:"07:15"`
	ArrivalTime   string              `json:"arrivalTime" example:"09:30"`
	Stops         int                 `json:"stops" example:"0"`
	Duration      SwaggerDurationInfo `json:"duration"`
}

// SwaggerDurationInfo contains leg duration information.
// @Description Leg duration
type SwaggerDurationInfo struct {
	TotalMinutes int    `json:"totalMinutes" example:"135"`
	Formatted    string `json:"formatted" example:"2h 15m"`
}

// SwaggerSearchResponse represents the search API response for swagger documentation.
// @Description Offer batch for a trip
type SwaggerSearchResponse struct {
	TripID      string         `json:"tripId" example:"5f0c6c1e-1f2a-4c3b-9d4e-6a7b8c9d0e1f"`
	Cached      bool           `json:"cached" example:"false"`
	RateLimited bool           `json:"rateLimited" example:"false"`
	Count       int            `json:"count" example:"7"`
	Offers      []SwaggerOffer `json:"offers"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
