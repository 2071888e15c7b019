package http

import (
	"github.com/trippulse/trippulse-api/internal/domain"
)

// SearchResponseDTO is the response of the search and refresh endpoints.
type SearchResponseDTO struct {
	TripID      string               `json:"tripId"`
	Cached      bool                 `json:"cached"`
	RateLimited bool                 `json:"rateLimited"`
	Count       int                  `json:"count"`
	Offers      []domain.FlightOffer `json:"offers"`
}

// OfferListDTO is a trip's persisted batch after filtering and sorting.
type OfferListDTO struct {
	TripID string               `json:"tripId"`
	Count  int                  `json:"count"`
	Offers []domain.FlightOffer `json:"offers"`
}

// TripListDTO lists a user's trips.
type TripListDTO struct {
	Count int                  `json:"count"`
	Trips []domain.TripRequest `json:"trips"`
}

// SavedTripListDTO lists a user's saved trips.
type SavedTripListDTO struct {
	Count int                `json:"count"`
	Saved []domain.SavedTrip `json:"saved"`
}

// PriceHistoryDTO is a trip's price history, newest first.
type PriceHistoryDTO struct {
	TripID    string                 `json:"tripId"`
	Snapshots []domain.PriceSnapshot `json:"snapshots"`
}

// AirportListDTO is the autocomplete result.
type AirportListDTO struct {
	Query    string           `json:"query"`
	Airports []domain.Airport `json:"airports"`
}

// SuggestionListDTO lists curated destinations for a style.
type SuggestionListDTO struct {
	Style        domain.TripStyle     `json:"style"`
	Destinations []domain.Destination `json:"destinations"`
}

// APILogListDTO lists recent API-call log entries.
type APILogListDTO struct {
	Count int             `json:"count"`
	Logs  []domain.APILog `json:"logs"`
}

// ToSearchResponseDTO converts a domain SearchResult to a SearchResponseDTO.
func ToSearchResponseDTO(tripID string, result *domain.SearchResult) *SearchResponseDTO {
	offers := result.Offers
	if offers == nil {
		offers = []domain.FlightOffer{}
	}
	return &SearchResponseDTO{
		TripID:      tripID,
		Cached:      result.Cached,
		RateLimited: result.RateLimited,
		Count:       len(offers),
		Offers:      offers,
	}
}

// ToOfferListDTO wraps a trip's offers.
func ToOfferListDTO(tripID string, offers []domain.FlightOffer) *OfferListDTO {
	if offers == nil {
		offers = []domain.FlightOffer{}
	}
	return &OfferListDTO{TripID: tripID, Count: len(offers), Offers: offers}
}
