package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"
)

// TripUseCase manages trip requests.
type TripUseCase interface {
	// Create stores a new draft trip with defaults applied.
	Create(ctx context.Context, trip domain.TripRequest) (domain.TripRequest, error)

	Get(ctx context.Context, id string) (domain.TripRequest, error)

	// Update applies a partial patch of JSON field names to values. Trips with an
	// owner may only be patched by that owner.
	Update(ctx context.Context, id string, patch map[string]any, callerID string) (domain.TripRequest, error)

	// ListMine returns the caller's trips, newest first.
	ListMine(ctx context.Context, userID string) ([]domain.TripRequest, error)
}

type tripUseCase struct {
	trips domain.TripRepository
	clock timeutil.Clock
}

// NewTripUseCase creates a TripUseCase. A nil clock uses the system time.
func NewTripUseCase(trips domain.TripRepository, clock timeutil.Clock) TripUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &tripUseCase{trips: trips, clock: clock}
}

func (uc *tripUseCase) Create(ctx context.Context, trip domain.TripRequest) (domain.TripRequest, error) {
	trip.ID = uuid.NewString()
	trip.ApplyDefaults()

	if err := validateTrip(&trip); err != nil {
		return domain.TripRequest{}, err
	}

	now := uc.clock.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	created, err := uc.trips.Create(ctx, trip)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("create trip: %w", err)
	}
	return created, nil
}

func (uc *tripUseCase) Get(ctx context.Context, id string) (domain.TripRequest, error) {
	trip, err := uc.trips.GetByID(ctx, id)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("get trip %s: %w", id, err)
	}
	return trip, nil
}

func (uc *tripUseCase) Update(ctx context.Context, id string, patch map[string]any, callerID string) (domain.TripRequest, error) {
	trip, err := uc.trips.GetByID(ctx, id)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("get trip %s: %w", id, err)
	}
	if trip.UserID != nil && !trip.OwnedBy(callerID) {
		return domain.TripRequest{}, fmt.Errorf("update trip %s: %w", id, domain.ErrForbidden)
	}

	if err := applyTripPatch(&trip, patch); err != nil {
		return domain.TripRequest{}, err
	}
	if err := validateTrip(&trip); err != nil {
		return domain.TripRequest{}, err
	}
	trip.UpdatedAt = uc.clock.Now()

	updated, err := uc.trips.Update(ctx, trip)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("update trip %s: %w", id, err)
	}
	return updated, nil
}

func (uc *tripUseCase) ListMine(ctx context.Context, userID string) ([]domain.TripRequest, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	trips, err := uc.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

// applyTripPatch coerces loosely typed JSON values onto the trip.
// A null totalBudget clears the budget.
func applyTripPatch(trip *domain.TripRequest, patch map[string]any) error {
	for key, raw := range patch {
		var err error
		switch key {
		case "origin":
			trip.Origin, err = cast.ToStringE(raw)
		case "originCity":
			trip.OriginCity, err = cast.ToStringE(raw)
		case "destination":
			trip.Destination, err = cast.ToStringE(raw)
		case "destinationCity":
			trip.DestinationCity, err = cast.ToStringE(raw)
		case "departureDate":
			trip.DepartureDate, err = cast.ToStringE(raw)
		case "returnDate":
			trip.ReturnDate, err = cast.ToStringE(raw)
		case "sessionId":
			trip.SessionID, err = cast.ToStringE(raw)
		case "currency":
			trip.Currency, err = cast.ToStringE(raw)
		case "tripStyle":
			var s string
			s, err = cast.ToStringE(raw)
			trip.TripStyle = domain.TripStyle(s)
		case "budgetType":
			var s string
			s, err = cast.ToStringE(raw)
			trip.BudgetType = domain.BudgetType(s)
		case "status":
			var s string
			s, err = cast.ToStringE(raw)
			trip.Status = domain.TripStatus(s)
		case "travelers":
			trip.Travelers, err = wholeInt(raw)
		case "flightSplit":
			trip.FlightSplit, err = wholeInt(raw)
		case "hotelSplit":
			trip.HotelSplit, err = wholeInt(raw)
		case "activitySplit":
			trip.ActivitySplit, err = wholeInt(raw)
		case "totalBudget":
			if raw == nil {
				trip.TotalBudget = nil
				continue
			}
			var v float64
			v, err = cast.ToFloat64E(raw)
			trip.TotalBudget = &v
		case "preferences":
			trip.Preferences, err = cast.ToStringMapE(raw)
		default:
			return fmt.Errorf("%w: unknown field %q", domain.ErrInvalidRequest, key)
		}
		if err != nil {
			return fmt.Errorf("%w: field %q: %v", domain.ErrInvalidRequest, key, err)
		}
	}
	return nil
}

// wholeInt coerces a patch value to int, rejecting numbers with a fractional
// part that cast would otherwise truncate.
func wholeInt(raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
	}
	return cast.ToIntE(raw)
}

var tripAirportRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// validateTrip checks the fields a draft trip may carry. Route and dates are
// optional until a search is run.
func validateTrip(trip *domain.TripRequest) error {
	for field, code := range map[string]string{"origin": trip.Origin, "destination": trip.Destination} {
		if code != "" && !tripAirportRegex.MatchString(code) {
			return fmt.Errorf("%w: %s must be a valid 3-letter IATA code, got %q", domain.ErrInvalidRequest, field, code)
		}
	}
	for field, date := range map[string]string{"departureDate": trip.DepartureDate, "returnDate": trip.ReturnDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", domain.ErrInvalidRequest, field, date)
		}
	}
	if trip.Travelers < domain.MinTravelers || trip.Travelers > domain.MaxTravelers {
		return fmt.Errorf("%w: travelers must be between %d and %d", domain.ErrInvalidRequest, domain.MinTravelers, domain.MaxTravelers)
	}
	if !trip.TripStyle.IsValid() {
		return fmt.Errorf("%w: unknown tripStyle %q", domain.ErrInvalidRequest, trip.TripStyle)
	}
	if !trip.BudgetType.IsValid() {
		return fmt.Errorf("%w: unknown budgetType %q", domain.ErrInvalidRequest, trip.BudgetType)
	}
	if !trip.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidRequest, trip.Status)
	}
	if trip.TotalBudget != nil && *trip.TotalBudget < 0 {
		return fmt.Errorf("%w: totalBudget must not be negative", domain.ErrInvalidRequest)
	}
	for field, split := range map[string]int{"flightSplit": trip.FlightSplit, "hotelSplit": trip.HotelSplit, "activitySplit": trip.ActivitySplit} {
		if split < 0 || split > 100 {
			return fmt.Errorf("%w: %s must be between 0 and 100", domain.ErrInvalidRequest, field)
		}
	}
	return nil
}

var _ TripUseCase = (*tripUseCase)(nil)
