package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDurationInfo(t *testing.T) {
	tests := []struct {
		name          string
		totalMinutes  int
		wantFormatted string
	}{
		{"hours and minutes", 150, "2h 30m"},
		{"whole hours keep minutes", 120, "2h 0m"},
		{"under an hour", 45, "0h 45m"},
		{"single digit minutes", 65, "1h 5m"},
		{"long haul", 465, "7h 45m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDurationInfo(tt.totalMinutes)
			assert.Equal(t, tt.totalMinutes, got.TotalMinutes)
			assert.Equal(t, tt.wantFormatted, got.Formatted)
		})
	}
}

func TestParseOfferSortOption(t *testing.T) {
	assert.Equal(t, SortByPrice, ParseOfferSortOption("price"))
	assert.Equal(t, SortByTotal, ParseOfferSortOption("total"))
	assert.Equal(t, SortByDuration, ParseOfferSortOption("duration"))
	assert.Equal(t, SortByDeal, ParseOfferSortOption(""))
	assert.Equal(t, SortByDeal, ParseOfferSortOption("cheapest"))
}

func TestOfferFilter_Matches(t *testing.T) {
	offer := FlightOffer{RawOffer: RawOffer{
		FlightPrice: 180,
		Outbound:    Leg{Stops: 1},
	}}

	tests := []struct {
		name   string
		filter *OfferFilter
		want   bool
	}{
		{"nil filter matches", nil, true},
		{"empty filter matches", &OfferFilter{}, true},
		{"stops within limit", &OfferFilter{MaxStops: ptr(1)}, true},
		{"stops over limit", &OfferFilter{MaxStops: ptr(0)}, false},
		{"price within limit", &OfferFilter{MaxPrice: ptr(180.0)}, true},
		{"price over limit", &OfferFilter{MaxPrice: ptr(179.0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(offer))
		})
	}
}

func TestBudgetUsagePercent(t *testing.T) {
	assert.Nil(t, BudgetUsagePercent(500, nil))
	assert.Nil(t, BudgetUsagePercent(500, ptr(0.0)))

	got := BudgetUsagePercent(500, ptr(2000.0))
	require.NotNil(t, got)
	assert.InDelta(t, 25.0, *got, 0.0001)

	capped := BudgetUsagePercent(5000, ptr(2000.0))
	require.NotNil(t, capped)
	assert.Equal(t, 100.0, *capped)
}

func TestFlightOffer_CreatedAtJSON(t *testing.T) {
	unsaved, err := json.Marshal(FlightOffer{DealScore: 7.5})
	require.NoError(t, err)
	assert.NotContains(t, string(unsaved), "createdAt", "an offer that was never stored has no creation time")

	saved, err := json.Marshal(FlightOffer{CreatedAt: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"createdAt":"2026-07-01T09:00:00Z"`)
}
