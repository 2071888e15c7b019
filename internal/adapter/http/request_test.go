package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/test/testutil"
)

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())
	assert.NoError(t, errs.orNil())

	errs.Add("origin", "origin is required")
	errs.Add("travelers", "travelers must be between 1 and 20")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "origin is required", errs.Error())
	assert.Equal(t, map[string]string{
		"origin":    "origin is required",
		"travelers": "travelers must be between 1 and 20",
	}, errs.ToMap())
}

func TestSearchOffersRequest_Validate(t *testing.T) {
	tests := []struct {
		name         string
		req          SearchOffersRequest
		wantFields   []string
		storedTrip   bool
		wantOrigin   string
		wantCurrency string
	}{
		{
			name:       "empty body uses stored trip",
			req:        SearchOffersRequest{},
			storedTrip: true,
		},
		{
			name:         "explicit route is normalized",
			req:          SearchOffersRequest{Origin: "fco", Destination: "bcn", DepartureDate: "2026-07-01", ReturnDate: "2026-07-08", Currency: "usd"},
			wantOrigin:   "FCO",
			wantCurrency: "USD",
		},
		{
			name:       "route without dates",
			req:        SearchOffersRequest{Origin: "FCO", Destination: "BCN"},
			wantFields: []string{"departureDate", "returnDate"},
		},
		{
			name:       "destination only still counts as explicit",
			req:        SearchOffersRequest{Destination: "BCN", DepartureDate: "2026-07-01", ReturnDate: "2026-07-08"},
			wantFields: []string{"origin"},
		},
		{
			name:       "return before departure",
			req:        SearchOffersRequest{Origin: "FCO", Destination: "BCN", DepartureDate: "2026-07-08", ReturnDate: "2026-07-01"},
			wantFields: []string{"returnDate"},
		},
		{
			name:       "override checks apply to stored trips",
			req:        SearchOffersRequest{Travelers: 25, MaxStops: testutil.Ptr(-1), BudgetPerPerson: testutil.Ptr(-5.0)},
			wantFields: []string{"travelers", "maxStops", "budgetPerPerson"},
			storedTrip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.storedTrip, tt.req.UsesStoredTrip())

			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				if tt.wantOrigin != "" {
					assert.Equal(t, tt.wantOrigin, tt.req.Origin)
					assert.Equal(t, tt.wantCurrency, tt.req.Currency)
				}
				return
			}

			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			for _, f := range tt.wantFields {
				assert.Contains(t, verrs.ToMap(), f)
			}
		})
	}
}

func TestListOffersRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       ListOffersRequest
		wantErr   bool
		wantSort  domain.OfferSortOption
		wantStops *int
		wantPrice *float64
	}{
		{name: "defaults", req: ListOffersRequest{}, wantSort: domain.SortByDeal},
		{name: "sort is case-insensitive", req: ListOffersRequest{SortBy: "PRICE"}, wantSort: domain.SortByPrice},
		{name: "filters", req: ListOffersRequest{SortBy: "duration", MaxStops: "1", MaxPrice: "250.5"}, wantSort: domain.SortByDuration, wantStops: testutil.Ptr(1), wantPrice: testutil.Ptr(250.5)},
		{name: "unknown sort", req: ListOffersRequest{SortBy: "best_value"}, wantErr: true},
		{name: "non-numeric stops", req: ListOffersRequest{MaxStops: "two"}, wantErr: true},
		{name: "negative price", req: ListOffersRequest{MaxPrice: "-1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			opts := ToListOptions(&tt.req)
			assert.Equal(t, tt.wantSort, opts.SortBy)
			if tt.wantStops == nil && tt.wantPrice == nil {
				assert.Nil(t, opts.Filter)
				return
			}
			require.NotNil(t, opts.Filter)
			assert.Equal(t, tt.wantStops, opts.Filter.MaxStops)
			assert.Equal(t, tt.wantPrice, opts.Filter.MaxPrice)
		})
	}
}

func TestAirportSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		query   string
		wantErr bool
	}{
		{query: "ro", wantErr: false},
		{query: "  fco  ", wantErr: false},
		{query: "r", wantErr: true},
		{query: "   ", wantErr: true},
		{query: "Malé", wantErr: false},
	}

	for _, tt := range tests {
		req := AirportSearchRequest{Query: tt.query}
		err := req.Validate()
		assert.Equal(t, tt.wantErr, err != nil, "query %q", tt.query)
	}
}

func TestLogsRequest_Validate(t *testing.T) {
	req := LogsRequest{}
	require.NoError(t, req.Validate())
	assert.Zero(t, req.limit)

	req = LogsRequest{Limit: "500"}
	require.NoError(t, req.Validate())
	assert.Equal(t, 500, req.limit)

	req = LogsRequest{Limit: "ten"}
	assert.Error(t, req.Validate())
}

func TestSaveTripRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SaveTripRequest{TripID: "trip-1"}).Validate())
	assert.Error(t, (&SaveTripRequest{TripID: "  "}).Validate())
	assert.Error(t, (&SaveTripRequest{TripID: "trip-1", OfferID: testutil.Ptr("")}).Validate())
}

func TestTripParametersFromTrip(t *testing.T) {
	trip := domain.TripRequest{
		Origin:        "FCO",
		Destination:   "BCN",
		DepartureDate: "2026-07-01",
		ReturnDate:    "2026-07-08",
		Travelers:     4,
		Currency:      "EUR",
		TripStyle:     domain.TripStyleCity,
		TotalBudget:   testutil.Ptr(4000.0),
		// Preferences decoded from JSON carry float64 numbers.
		Preferences: map[string]any{"maxStops": float64(1), "timePreference": "evening", "baggage": "true"},
	}

	t.Run("from trip", func(t *testing.T) {
		params := TripParametersFromTrip(trip, nil)

		assert.Equal(t, "FCO", params.Origin)
		assert.Equal(t, 4, params.Travelers)
		assert.Equal(t, domain.TripStyleCity, params.TripStyle)
		assert.Equal(t, domain.TimeEvening, params.TimePreference)
		require.NotNil(t, params.BudgetPerPerson)
		assert.InDelta(t, 1000.0, *params.BudgetPerPerson, 0.001)
		require.NotNil(t, params.MaxStops)
		assert.Equal(t, 1, *params.MaxStops)
		require.NotNil(t, params.Baggage)
		assert.True(t, *params.Baggage)
		assert.NoError(t, params.Validate())
	})

	t.Run("overrides win", func(t *testing.T) {
		params := TripParametersFromTrip(trip, &SearchOffersRequest{
			Travelers:       2,
			BudgetPerPerson: testutil.Ptr(300.0),
			MaxStops:        testutil.Ptr(0),
			TimePreference:  "morning",
		})

		assert.Equal(t, 2, params.Travelers)
		assert.Equal(t, 300.0, *params.BudgetPerPerson)
		assert.Equal(t, 0, *params.MaxStops)
		assert.Equal(t, domain.TimeMorning, params.TimePreference)
	})
}

func TestToDomainTrip(t *testing.T) {
	req := &CreateTripRequest{Origin: "FCO", Travelers: 2, TripStyle: "nature", BudgetType: "flights_only"}

	anonymous := ToDomainTrip(req, "")
	assert.Nil(t, anonymous.UserID)
	assert.Equal(t, domain.TripStyleNature, anonymous.TripStyle)
	assert.Equal(t, domain.BudgetFlightsOnly, anonymous.BudgetType)

	owned := ToDomainTrip(req, "user-1")
	require.NotNil(t, owned.UserID)
	assert.Equal(t, "user-1", *owned.UserID)
}
