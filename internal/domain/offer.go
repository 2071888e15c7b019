package domain

import (
	"strconv"
	"time"
)

// AirlineInfo contains information about an airline.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "FR" for Ryanair)
	Code string `json:"code"`

	// Name is the full airline name (e.g., "Ryanair")
	Name string `json:"name"`

	// Logo is a URL to the airline's logo image
	Logo string `json:"logo,omitempty"`

	// LowCost marks budget-tier carriers
	LowCost bool `json:"lowCost"`
}

// DurationInfo contains flight duration information.
type DurationInfo struct {
	// TotalMinutes is the total flight duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "2h 30m")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes formatted as "Xh Ym".
func NewDurationInfo(totalMinutes int) DurationInfo {
	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    strconv.Itoa(totalMinutes/60) + "h " + strconv.Itoa(totalMinutes%60) + "m",
	}
}

// Leg is one direction of a round trip.
type Leg struct {
	// DepartureTime is the local clock time of departure ("HH:MM")
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local clock time of arrival ("HH:MM"), wrapping past midnight
	ArrivalTime string `json:"arrivalTime"`

	// Stops is the number of stops (0 = nonstop)
	Stops int `json:"stops"`

	// Duration is the total travel time of the leg
	Duration DurationInfo `json:"duration"`
}

// RawOffer is a synthesized itinerary before it has been scored.
type RawOffer struct {
	Airline          AirlineInfo `json:"airline"`
	FlightNumber     string      `json:"flightNumber"`
	Outbound         Leg         `json:"outbound"`
	Return           Leg         `json:"return"`
	FlightPrice      float64     `json:"flightPrice"`
	HotelEstimate    float64     `json:"hotelEstimate"`
	ActivityEstimate float64     `json:"activityEstimate"`
	TotalEstimate    float64     `json:"totalEstimate"`
	Currency         string      `json:"currency"`
	BookingURL       string      `json:"bookingUrl"`
	IsEstimate       bool        `json:"isEstimate"`
}

// FlightOffer is a scored itinerary, optionally persisted against a trip.
type FlightOffer struct {
	// ID is assigned when the offer is persisted
	ID string `json:"id,omitempty"`

	// TripID is the trip this offer was generated for
	TripID string `json:"tripId,omitempty"`

	RawOffer

	// DealScore is the 1.0 to 10.0 desirability rating within its batch
	DealScore float64 `json:"dealScore"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// SearchResult is the outcome of a search or refresh.
type SearchResult struct {
	// Offers is the batch, sorted by deal score descending
	Offers []FlightOffer `json:"offers"`

	// Cached is true when the batch was served from storage instead of generated
	Cached bool `json:"cached"`

	// RateLimited is true when a refresh was throttled
	RateLimited bool `json:"rateLimited,omitempty"`
}

// OfferSortOption defines the available orderings for a persisted offer batch.
type OfferSortOption string

// Available sort options.
const (
	// SortByDeal sorts by deal score descending (default)
	SortByDeal OfferSortOption = "deal"

	// SortByPrice sorts by flight price ascending
	SortByPrice OfferSortOption = "price"

	// SortByTotal sorts by total trip estimate ascending
	SortByTotal OfferSortOption = "total"

	// SortByDuration sorts by outbound duration ascending
	SortByDuration OfferSortOption = "duration"
)

// IsValid checks if the sort option is a valid value.
func (s OfferSortOption) IsValid() bool {
	switch s {
	case SortByDeal, SortByPrice, SortByTotal, SortByDuration:
		return true
	default:
		return false
	}
}

// ParseOfferSortOption converts a string to an OfferSortOption.
// Returns SortByDeal if the string is empty or invalid.
func ParseOfferSortOption(s string) OfferSortOption {
	option := OfferSortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByDeal
}

// OfferFilter narrows a persisted batch.
type OfferFilter struct {
	// MaxStops drops offers whose outbound leg has more stops than this
	MaxStops *int `json:"maxStops,omitempty"`

	// MaxPrice drops offers whose flight price exceeds this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// Matches checks if an offer passes every filter criterion.
func (f *OfferFilter) Matches(o FlightOffer) bool {
	if f == nil {
		return true
	}
	if f.MaxStops != nil && o.Outbound.Stops > *f.MaxStops {
		return false
	}
	if f.MaxPrice != nil && o.FlightPrice > *f.MaxPrice {
		return false
	}
	return true
}

// BudgetUsagePercent reports how much of a total budget the offer's total estimate uses, capped at 100.
// Returns nil when there is no positive budget.
func BudgetUsagePercent(totalEstimate float64, totalBudget *float64) *float64 {
	if totalBudget == nil || *totalBudget <= 0 {
		return nil
	}
	pct := totalEstimate / *totalBudget * 100
	if pct > 100 {
		pct = 100
	}
	return &pct
}
