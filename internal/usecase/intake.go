package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// IntakeParams is the structured trip description extracted from a conversation
// by the external assistant.
type IntakeParams struct {
	Origin          string                `json:"origin"`
	OriginCity      string                `json:"originCity"`
	Destination     string                `json:"destination"`
	DestinationCity string                `json:"destinationCity"`
	DepartureDate   string                `json:"departureDate"`
	ReturnDate      string                `json:"returnDate"`
	Travelers       int                   `json:"travelers"`
	TripStyle       domain.TripStyle      `json:"tripStyle"`
	TotalBudget     *float64              `json:"totalBudget,omitempty"`
	BudgetType      domain.BudgetType     `json:"budgetType,omitempty"`
	Currency        string                `json:"currency,omitempty"`
	MaxStops        *int                  `json:"maxStops,omitempty"`
	TimePreference  domain.TimePreference `json:"timePreference,omitempty"`
	Baggage         *bool                 `json:"baggage,omitempty"`
}

// TripParameters converts the intake payload into search parameters with defaults applied.
func (p IntakeParams) TripParameters() domain.TripParameters {
	params := domain.TripParameters{
		Origin:          p.Origin,
		OriginCity:      p.OriginCity,
		Destination:     p.Destination,
		DestinationCity: p.DestinationCity,
		DepartureDate:   p.DepartureDate,
		ReturnDate:      p.ReturnDate,
		Travelers:       p.Travelers,
		Currency:        p.Currency,
		TripStyle:       p.TripStyle,
		MaxStops:        p.MaxStops,
		TimePreference:  p.TimePreference,
		Baggage:         p.Baggage,
	}
	params.SetDefaults()
	return params
}

// IntakeResult is the draft trip created from an intake payload together with
// the parameters a search for it should use.
type IntakeResult struct {
	Trip   domain.TripRequest    `json:"trip"`
	Params domain.TripParameters `json:"params"`
}

// IntakeUseCase turns assistant output into draft trips.
type IntakeUseCase interface {
	// CreateTrip validates the payload and stores it as a draft trip.
	CreateTrip(ctx context.Context, payload IntakeParams, userID *string, sessionID string) (*IntakeResult, error)

	// Suggestions lists curated destinations for a style. Unknown styles get the mixed list.
	Suggestions(style domain.TripStyle) []domain.Destination
}

type intakeUseCase struct {
	trips TripUseCase
}

// NewIntakeUseCase creates an IntakeUseCase that stores drafts through trips.
func NewIntakeUseCase(trips TripUseCase) IntakeUseCase {
	return &intakeUseCase{trips: trips}
}

func (uc *intakeUseCase) CreateTrip(ctx context.Context, payload IntakeParams, userID *string, sessionID string) (*IntakeResult, error) {
	params := payload.TripParameters()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if payload.BudgetType != "" && !payload.BudgetType.IsValid() {
		return nil, fmt.Errorf("%w: unknown budgetType %q", domain.ErrInvalidRequest, payload.BudgetType)
	}

	trip, err := uc.trips.Create(ctx, domain.TripRequest{
		UserID:          userID,
		SessionID:       sessionID,
		Origin:          params.Origin,
		OriginCity:      params.OriginCity,
		Destination:     params.Destination,
		DestinationCity: params.DestinationCity,
		DepartureDate:   params.DepartureDate,
		ReturnDate:      params.ReturnDate,
		Travelers:       params.Travelers,
		TripStyle:       params.TripStyle,
		BudgetType:      payload.BudgetType,
		TotalBudget:     payload.TotalBudget,
		Currency:        params.Currency,
		Preferences:     intakePreferences(payload),
	})
	if err != nil {
		return nil, err
	}

	params.BudgetPerPerson = trip.BudgetPerPerson()
	return &IntakeResult{Trip: trip, Params: params}, nil
}

// intakePreferences keeps the search preferences that have no trip column.
func intakePreferences(p IntakeParams) map[string]any {
	prefs := make(map[string]any)
	if p.MaxStops != nil {
		prefs["maxStops"] = *p.MaxStops
	}
	if p.TimePreference != "" {
		prefs["timePreference"] = string(p.TimePreference)
	}
	if p.Baggage != nil {
		prefs["baggage"] = *p.Baggage
	}
	if len(prefs) == 0 {
		return nil
	}
	return prefs
}

func (uc *intakeUseCase) Suggestions(style domain.TripStyle) []domain.Destination {
	if list, ok := destinationSuggestions[style]; ok {
		return slices.Clone(list)
	}
	return slices.Clone(destinationSuggestions[domain.TripStyleMixed])
}

var _ IntakeUseCase = (*intakeUseCase)(nil)
