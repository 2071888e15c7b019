// Package domain contains the core business entities and rules for the TripPulse trip planner.
// These entities are storage-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the calendar date format used for departure and return dates.
const DateLayout = "2006-01-02"

// Traveler count bounds accepted by the API.
const (
	MinTravelers = 1
	MaxTravelers = 20
)

// TripStyle describes the kind of holiday the traveler is after.
type TripStyle string

// Available trip styles.
const (
	TripStyleSea    TripStyle = "sea"
	TripStyleCity   TripStyle = "city"
	TripStyleNature TripStyle = "nature"
	TripStyleMixed  TripStyle = "mixed"
)

// IsValid reports whether s is a known trip style. The empty style is valid.
func (s TripStyle) IsValid() bool {
	switch s {
	case "", TripStyleSea, TripStyleCity, TripStyleNature, TripStyleMixed:
		return true
	default:
		return false
	}
}

// TimePreference is the preferred departure window of the day.
type TimePreference string

// Available time-of-day preferences.
const (
	TimeAnytime   TimePreference = "anytime"
	TimeMorning   TimePreference = "morning"
	TimeAfternoon TimePreference = "afternoon"
	TimeEvening   TimePreference = "evening"
)

// IsValid reports whether p is a known preference. The empty preference is valid.
func (p TimePreference) IsValid() bool {
	switch p {
	case "", TimeAnytime, TimeMorning, TimeAfternoon, TimeEvening:
		return true
	default:
		return false
	}
}

// BudgetType says what the total budget is meant to cover.
type BudgetType string

// Available budget types.
const (
	BudgetFlightsOnly BudgetType = "flights_only"
	BudgetTotalTrip   BudgetType = "total_trip"
)

// IsValid reports whether b is a known budget type.
func (b BudgetType) IsValid() bool {
	return b == BudgetFlightsOnly || b == BudgetTotalTrip
}

// TripStatus tracks a trip request through its lifecycle.
type TripStatus string

// Trip lifecycle states.
const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusSearching TripStatus = "searching"
	TripStatusCompleted TripStatus = "completed"
	TripStatusSaved     TripStatus = "saved"
)

// IsValid reports whether s is a known status.
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusDraft, TripStatusSearching, TripStatusCompleted, TripStatusSaved:
		return true
	default:
		return false
	}
}

// TripParameters is the normalized input for one offer search.
// It is immutable for the duration of a search.
type TripParameters struct {
	// Origin is the IATA code of the departure airport (e.g., "FCO")
	Origin string `json:"origin"`

	// OriginCity is the display name of the origin city
	OriginCity string `json:"originCity,omitempty"`

	// Destination is the IATA code of the arrival airport (e.g., "BCN")
	Destination string `json:"destination"`

	// DestinationCity is the display name of the destination city
	DestinationCity string `json:"destinationCity,omitempty"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Travelers is the number of people travelling (at least 1)
	Travelers int `json:"travelers"`

	// Currency is the ISO 4217 code all prices are expressed in
	Currency string `json:"currency"`

	// TripStyle biases hotel and activity estimates
	TripStyle TripStyle `json:"tripStyle,omitempty"`

	// BudgetPerPerson is the optional per-traveler budget used for deal scoring
	BudgetPerPerson *float64 `json:"budgetPerPerson,omitempty"`

	// MaxStops is the optional maximum number of outbound stops the traveler accepts
	MaxStops *int `json:"maxStops,omitempty"`

	// TimePreference selects the departure window
	TimePreference TimePreference `json:"timePreference,omitempty"`

	// Baggage records whether checked baggage is wanted. It does not change generated offers.
	Baggage *bool `json:"baggage,omitempty"`
}

var (
	airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	currencyRegex    = regexp.MustCompile(`^[A-Z]{3}$`)
)

// SetDefaults fills optional fields that have a well-known default.
func (p *TripParameters) SetDefaults() {
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Travelers == 0 {
		p.Travelers = MinTravelers
	}
}

// Validate checks that the parameters can drive offer generation.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (p *TripParameters) Validate() error {
	if !airportCodeRegex.MatchString(p.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.Origin)
	}
	if !airportCodeRegex.MatchString(p.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, p.Destination)
	}
	if p.Origin == p.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	dep, ret, err := p.Dates()
	if err != nil {
		return err
	}
	if ret.Before(dep) {
		return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
	}

	if p.Travelers < MinTravelers || p.Travelers > MaxTravelers {
		return fmt.Errorf("%w: travelers must be between %d and %d, got %d", ErrInvalidRequest, MinTravelers, MaxTravelers, p.Travelers)
	}
	if !currencyRegex.MatchString(p.Currency) {
		return fmt.Errorf("%w: currency must be a 3-letter ISO code, got %q", ErrInvalidRequest, p.Currency)
	}
	if !p.TripStyle.IsValid() {
		return fmt.Errorf("%w: unknown tripStyle %q", ErrInvalidRequest, p.TripStyle)
	}
	if !p.TimePreference.IsValid() {
		return fmt.Errorf("%w: unknown timePreference %q", ErrInvalidRequest, p.TimePreference)
	}
	if p.BudgetPerPerson != nil && *p.BudgetPerPerson < 0 {
		return fmt.Errorf("%w: budgetPerPerson must not be negative", ErrInvalidRequest)
	}
	if p.MaxStops != nil && *p.MaxStops < 0 {
		return fmt.Errorf("%w: maxStops must not be negative", ErrInvalidRequest)
	}
	return nil
}

// Dates parses the departure and return dates.
func (p *TripParameters) Dates() (departure, ret time.Time, err error) {
	departure, err = time.Parse(DateLayout, p.DepartureDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, p.DepartureDate)
	}
	ret, err = time.Parse(DateLayout, p.ReturnDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, p.ReturnDate)
	}
	return departure, ret, nil
}

// Default values applied to new trip requests.
const (
	DefaultCurrency      = "EUR"
	DefaultFlightSplit   = 50
	DefaultHotelSplit    = 35
	DefaultActivitySplit = 15
)

// TripRequest is a persisted trip the traveler is planning.
type TripRequest struct {
	ID              string         `json:"id"`
	UserID          *string        `json:"userId,omitempty"`
	SessionID       string         `json:"sessionId,omitempty"`
	Origin          string         `json:"origin,omitempty"`
	OriginCity      string         `json:"originCity,omitempty"`
	Destination     string         `json:"destination,omitempty"`
	DestinationCity string         `json:"destinationCity,omitempty"`
	DepartureDate   string         `json:"departureDate,omitempty"`
	ReturnDate      string         `json:"returnDate,omitempty"`
	Travelers       int            `json:"travelers"`
	TripStyle       TripStyle      `json:"tripStyle,omitempty"`
	BudgetType      BudgetType     `json:"budgetType"`
	TotalBudget     *float64       `json:"totalBudget,omitempty"`
	Currency        string         `json:"currency"`
	FlightSplit     int            `json:"flightSplit"`
	HotelSplit      int            `json:"hotelSplit"`
	ActivitySplit   int            `json:"activitySplit"`
	Preferences     map[string]any `json:"preferences,omitempty"`
	Status          TripStatus     `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// ApplyDefaults sets the defaults a brand-new trip request starts with.
func (t *TripRequest) ApplyDefaults() {
	if t.Travelers == 0 {
		t.Travelers = MinTravelers
	}
	if t.BudgetType == "" {
		t.BudgetType = BudgetTotalTrip
	}
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}
	if t.FlightSplit == 0 && t.HotelSplit == 0 && t.ActivitySplit == 0 {
		t.FlightSplit = DefaultFlightSplit
		t.HotelSplit = DefaultHotelSplit
		t.ActivitySplit = DefaultActivitySplit
	}
	if t.Status == "" {
		t.Status = TripStatusDraft
	}
}

// BudgetPerPerson divides the total budget across travelers.
// Returns nil when no budget is set.
func (t *TripRequest) BudgetPerPerson() *float64 {
	if t.TotalBudget == nil || *t.TotalBudget <= 0 {
		return nil
	}
	travelers := t.Travelers
	if travelers < 1 {
		travelers = 1
	}
	v := *t.TotalBudget / float64(travelers)
	return &v
}

// OwnedBy reports whether the trip belongs to the given user.
func (t *TripRequest) OwnedBy(userID string) bool {
	return t.UserID != nil && *t.UserID == userID
}
