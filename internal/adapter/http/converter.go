package http

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/usecase"
)

// ToDomainTrip converts a CreateTripRequest to a draft domain.TripRequest.
func ToDomainTrip(req *CreateTripRequest, userID string) domain.TripRequest {
	trip := domain.TripRequest{
		SessionID:       req.SessionID,
		Origin:          req.Origin,
		OriginCity:      req.OriginCity,
		Destination:     req.Destination,
		DestinationCity: req.DestinationCity,
		DepartureDate:   req.DepartureDate,
		ReturnDate:      req.ReturnDate,
		Travelers:       req.Travelers,
		TripStyle:       domain.TripStyle(req.TripStyle),
		BudgetType:      domain.BudgetType(req.BudgetType),
		TotalBudget:     req.TotalBudget,
		Currency:        req.Currency,
		FlightSplit:     req.FlightSplit,
		HotelSplit:      req.HotelSplit,
		ActivitySplit:   req.ActivitySplit,
		Preferences:     req.Preferences,
	}
	if userID != "" {
		trip.UserID = &userID
	}
	return trip
}

// ToTripParameters converts an explicit search body to domain.TripParameters.
func ToTripParameters(req *SearchOffersRequest) domain.TripParameters {
	params := domain.TripParameters{
		Origin:          req.Origin,
		OriginCity:      req.OriginCity,
		Destination:     req.Destination,
		DestinationCity: req.DestinationCity,
		DepartureDate:   req.DepartureDate,
		ReturnDate:      req.ReturnDate,
	}
	applySearchOverrides(&params, req)
	return params
}

// TripParametersFromTrip builds search parameters from a stored trip. Search
// preferences kept on the trip are read back, and any override in req wins.
func TripParametersFromTrip(trip domain.TripRequest, req *SearchOffersRequest) domain.TripParameters {
	params := domain.TripParameters{
		Origin:          trip.Origin,
		OriginCity:      trip.OriginCity,
		Destination:     trip.Destination,
		DestinationCity: trip.DestinationCity,
		DepartureDate:   trip.DepartureDate,
		ReturnDate:      trip.ReturnDate,
		Travelers:       trip.Travelers,
		Currency:        trip.Currency,
		TripStyle:       trip.TripStyle,
		BudgetPerPerson: trip.BudgetPerPerson(),
	}

	if v, ok := trip.Preferences["maxStops"]; ok {
		if stops, err := cast.ToIntE(v); err == nil {
			params.MaxStops = &stops
		}
	}
	if v, ok := trip.Preferences["timePreference"]; ok {
		params.TimePreference = domain.TimePreference(cast.ToString(v))
	}
	if v, ok := trip.Preferences["baggage"]; ok {
		if baggage, err := cast.ToBoolE(v); err == nil {
			params.Baggage = &baggage
		}
	}

	if req != nil {
		applySearchOverrides(&params, req)
	}
	return params
}

func applySearchOverrides(params *domain.TripParameters, req *SearchOffersRequest) {
	if req.Travelers > 0 {
		params.Travelers = req.Travelers
	}
	if req.Currency != "" {
		params.Currency = req.Currency
	}
	if req.TripStyle != "" {
		params.TripStyle = domain.TripStyle(req.TripStyle)
	}
	if req.BudgetPerPerson != nil {
		params.BudgetPerPerson = req.BudgetPerPerson
	}
	if req.MaxStops != nil {
		params.MaxStops = req.MaxStops
	}
	if req.TimePreference != "" {
		params.TimePreference = domain.TimePreference(req.TimePreference)
	}
	if req.Baggage != nil {
		params.Baggage = req.Baggage
	}
}

// ToListOptions converts a validated ListOffersRequest to usecase.ListOptions.
func ToListOptions(req *ListOffersRequest) usecase.ListOptions {
	opts := usecase.DefaultListOptions()
	opts.SortBy = domain.ParseOfferSortOption(strings.ToLower(req.SortBy))
	if req.filter.MaxStops != nil || req.filter.MaxPrice != nil {
		filter := req.filter
		opts.Filter = &filter
	}
	return opts
}

// ToSavedTrip converts a SaveTripRequest to domain.SavedTrip owned by userID.
func ToSavedTrip(req *SaveTripRequest, userID string) domain.SavedTrip {
	return domain.SavedTrip{
		UserID:  userID,
		TripID:  strings.TrimSpace(req.TripID),
		OfferID: req.OfferID,
		Name:    req.Name,
		Notes:   req.Notes,
	}
}
