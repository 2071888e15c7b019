package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	currencyPattern    = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Airport query length bounds.
const (
	minAirportQuery = 2
	maxAirportQuery = 50
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func (v *ValidationErrors) orNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// CreateTripRequest is the body of POST /api/v1/trips.
type CreateTripRequest struct {
	SessionID       string         `json:"sessionId,omitempty"`
	Origin          string         `json:"origin,omitempty" example:"FCO"`
	OriginCity      string         `json:"originCity,omitempty" example:"Rome"`
	Destination     string         `json:"destination,omitempty" example:"BCN"`
	DestinationCity string         `json:"destinationCity,omitempty" example:"Barcelona"`
	DepartureDate   string         `json:"departureDate,omitempty" example:"2026-07-01"`
	ReturnDate      string         `json:"returnDate,omitempty" example:"2026-07-08"`
	Travelers       int            `json:"travelers,omitempty" example:"2"`
	TripStyle       string         `json:"tripStyle,omitempty" example:"sea"`
	BudgetType      string         `json:"budgetType,omitempty" example:"total_trip"`
	TotalBudget     *float64       `json:"totalBudget,omitempty" example:"2000"`
	Currency        string         `json:"currency,omitempty" example:"EUR"`
	FlightSplit     int            `json:"flightSplit,omitempty"`
	HotelSplit      int            `json:"hotelSplit,omitempty"`
	ActivitySplit   int            `json:"activitySplit,omitempty"`
	Preferences     map[string]any `json:"preferences,omitempty"`
}

// Validate normalizes codes to upper case and checks every supplied field.
// Route and dates may be left empty on a draft.
func (r *CreateTripRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = validateOptionalAirport(errs, "origin", r.Origin)
	r.Destination = validateOptionalAirport(errs, "destination", r.Destination)
	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	validateOptionalDate(errs, "departureDate", r.DepartureDate)
	validateOptionalDate(errs, "returnDate", r.ReturnDate)
	validateDateOrder(errs, r.DepartureDate, r.ReturnDate)

	if r.Travelers < 0 || r.Travelers > domain.MaxTravelers {
		errs.Add("travelers", "travelers must be between 1 and 20")
	}
	if !domain.TripStyle(r.TripStyle).IsValid() {
		errs.Add("tripStyle", "tripStyle must be one of: sea, city, nature, mixed")
	}
	if r.BudgetType != "" && !domain.BudgetType(r.BudgetType).IsValid() {
		errs.Add("budgetType", "budgetType must be one of: flights_only, total_trip")
	}
	if r.TotalBudget != nil && *r.TotalBudget < 0 {
		errs.Add("totalBudget", "totalBudget must not be negative")
	}
	r.Currency = validateOptionalCurrency(errs, r.Currency)

	for field, split := range map[string]int{"flightSplit": r.FlightSplit, "hotelSplit": r.HotelSplit, "activitySplit": r.ActivitySplit} {
		if split < 0 || split > 100 {
			errs.Add(field, field+" must be between 0 and 100")
		}
	}

	return errs.orNil()
}

// SearchOffersRequest is the optional body of the search and refresh endpoints.
// An empty origin means the parameters are taken from the stored trip.
type SearchOffersRequest struct {
	Origin          string   `json:"origin,omitempty" example:"FCO"`
	OriginCity      string   `json:"originCity,omitempty"`
	Destination     string   `json:"destination,omitempty" example:"BCN"`
	DestinationCity string   `json:"destinationCity,omitempty"`
	DepartureDate   string   `json:"departureDate,omitempty" example:"2026-07-01"`
	ReturnDate      string   `json:"returnDate,omitempty" example:"2026-07-08"`
	Travelers       int      `json:"travelers,omitempty" example:"2"`
	Currency        string   `json:"currency,omitempty" example:"EUR"`
	TripStyle       string   `json:"tripStyle,omitempty" example:"sea"`
	BudgetPerPerson *float64 `json:"budgetPerPerson,omitempty" example:"600"`
	MaxStops        *int     `json:"maxStops,omitempty" example:"1"`
	TimePreference  string   `json:"timePreference,omitempty" example:"morning"`
	Baggage         *bool    `json:"baggage,omitempty"`
}

// UsesStoredTrip reports whether the request carries no route of its own.
func (r *SearchOffersRequest) UsesStoredTrip() bool {
	return r.Origin == "" && r.Destination == ""
}

// Validate checks an explicit search. Requests that use the stored trip only
// have their optional overrides checked.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	if !r.UsesStoredTrip() {
		r.Origin = validateRequiredAirport(errs, "origin", r.Origin)
		r.Destination = validateRequiredAirport(errs, "destination", r.Destination)
		if r.Origin != "" && r.Origin == r.Destination {
			errs.Add("destination", "origin and destination must be different")
		}
		validateRequiredDate(errs, "departureDate", r.DepartureDate)
		validateRequiredDate(errs, "returnDate", r.ReturnDate)
		validateDateOrder(errs, r.DepartureDate, r.ReturnDate)
	}

	if r.Travelers < 0 || r.Travelers > domain.MaxTravelers {
		errs.Add("travelers", "travelers must be between 1 and 20")
	}
	r.Currency = validateOptionalCurrency(errs, r.Currency)
	if !domain.TripStyle(r.TripStyle).IsValid() {
		errs.Add("tripStyle", "tripStyle must be one of: sea, city, nature, mixed")
	}
	if !domain.TimePreference(r.TimePreference).IsValid() {
		errs.Add("timePreference", "timePreference must be one of: anytime, morning, afternoon, evening")
	}
	if r.BudgetPerPerson != nil && *r.BudgetPerPerson < 0 {
		errs.Add("budgetPerPerson", "budgetPerPerson must not be negative")
	}
	if r.MaxStops != nil && *r.MaxStops < 0 {
		errs.Add("maxStops", "maxStops must be a non-negative number")
	}

	return errs.orNil()
}

// ListOffersRequest holds the raw query of GET /api/v1/trips/:id/offers.
type ListOffersRequest struct {
	SortBy   string
	MaxStops string
	MaxPrice string

	filter domain.OfferFilter
}

var validOfferSorts = map[string]bool{
	"":         true,
	"deal":     true,
	"price":    true,
	"total":    true,
	"duration": true,
}

// Validate parses the numeric filters.
func (r *ListOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	if !validOfferSorts[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: deal, price, total, duration")
	}

	if r.MaxStops != "" {
		stops, err := cast.ToIntE(r.MaxStops)
		if err != nil || stops < 0 {
			errs.Add("maxStops", "maxStops must be a non-negative integer")
		} else {
			r.filter.MaxStops = &stops
		}
	}

	if r.MaxPrice != "" {
		price, err := cast.ToFloat64E(r.MaxPrice)
		if err != nil || price < 0 {
			errs.Add("maxPrice", "maxPrice must be a positive number")
		} else {
			r.filter.MaxPrice = &price
		}
	}

	return errs.orNil()
}

// SaveTripRequest is the body of POST /api/v1/saved.
type SaveTripRequest struct {
	TripID  string  `json:"tripId" example:"5f0c6c1e-1f2a-4c3b-9d4e-6a7b8c9d0e1f"`
	OfferID *string `json:"offerId,omitempty"`
	Name    string  `json:"name,omitempty" example:"Barcelona in July"`
	Notes   string  `json:"notes,omitempty"`
}

// Validate checks the saved-trip body.
func (r *SaveTripRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.TripID) == "" {
		errs.Add("tripId", "tripId is required")
	}
	if r.OfferID != nil && strings.TrimSpace(*r.OfferID) == "" {
		errs.Add("offerId", "offerId must not be empty when given")
	}
	if len(r.Name) > 255 {
		errs.Add("name", "name must be at most 255 characters")
	}

	return errs.orNil()
}

// AirportSearchRequest is the query of GET /api/v1/airports.
type AirportSearchRequest struct {
	Query string
}

// Validate enforces the query length.
func (r *AirportSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Query = strings.TrimSpace(r.Query)
	if n := len([]rune(r.Query)); n < minAirportQuery || n > maxAirportQuery {
		errs.Add("q", "q must be between 2 and 50 characters")
	}

	return errs.orNil()
}

// LogsRequest is the query of GET /api/v1/admin/logs.
type LogsRequest struct {
	Limit string

	limit int
}

// Validate parses the limit. Out-of-range values are clamped later.
func (r *LogsRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Limit != "" {
		limit, err := cast.ToIntE(r.Limit)
		if err != nil {
			errs.Add("limit", "limit must be an integer")
		}
		r.limit = limit
	}

	return errs.orNil()
}

func validateRequiredAirport(errs *ValidationErrors, field, code string) string {
	if code == "" {
		errs.Add(field, field+" is required")
		return code
	}
	return validateOptionalAirport(errs, field, code)
}

func validateOptionalAirport(errs *ValidationErrors, field, code string) string {
	if code == "" {
		return code
	}
	upper := strings.ToUpper(code)
	if !airportCodePattern.MatchString(upper) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return code
	}
	return upper
}

func validateOptionalCurrency(errs *ValidationErrors, currency string) string {
	if currency == "" {
		return currency
	}
	upper := strings.ToUpper(currency)
	if !currencyPattern.MatchString(upper) {
		errs.Add("currency", "currency must be a 3-letter ISO code")
		return currency
	}
	return upper
}

func validateRequiredDate(errs *ValidationErrors, field, date string) {
	if date == "" {
		errs.Add(field, field+" is required")
		return
	}
	validateOptionalDate(errs, field, date)
}

func validateOptionalDate(errs *ValidationErrors, field, date string) {
	if date == "" {
		return
	}
	if !datePattern.MatchString(date) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

// validateDateOrder flags a return before departure when both dates parse.
func validateDateOrder(errs *ValidationErrors, departure, ret string) {
	dep, err1 := time.Parse(domain.DateLayout, departure)
	back, err2 := time.Parse(domain.DateLayout, ret)
	if err1 == nil && err2 == nil && back.Before(dep) {
		errs.Add("returnDate", "returnDate must not be before departureDate")
	}
}
