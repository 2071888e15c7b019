// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// DecodeJSON unmarshals body into a T, failing the test on error.
func DecodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("Failed to decode JSON %q: %v", body, err)
	}
	return v
}

// TripParams returns valid search parameters for a one-week FCO to BCN trip.
func TripParams() domain.TripParameters {
	return domain.TripParameters{
		Origin:        "FCO",
		Destination:   "BCN",
		DepartureDate: "2026-07-01",
		ReturnDate:    "2026-07-08",
		Travelers:     2,
		Currency:      "EUR",
		TripStyle:     domain.TripStyleSea,
	}
}
