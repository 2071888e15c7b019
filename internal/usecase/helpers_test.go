package usecase

import (
	"time"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func testClock() *timeutil.MockClock {
	return timeutil.NewMockClock(testNow)
}

// testParams returns valid search parameters for a week in Barcelona.
func testParams() domain.TripParameters {
	return domain.TripParameters{
		Origin:          "FCO",
		OriginCity:      "Rome",
		Destination:     "BCN",
		DestinationCity: "Barcelona",
		DepartureDate:   "2026-07-01",
		ReturnDate:      "2026-07-08",
		Travelers:       2,
		Currency:        "EUR",
		TripStyle:       domain.TripStyleSea,
	}
}

// createRawOffer creates an unscored offer for scoring and sorting tests.
func createRawOffer(code string, flightPrice float64, stops int) domain.RawOffer {
	return domain.RawOffer{
		Airline:      domain.AirlineInfo{Code: code, Name: code + " Air"},
		FlightNumber: code + "100",
		Outbound: domain.Leg{
			DepartureTime: "08:00",
			ArrivalTime:   "10:00",
			Stops:         stops,
			Duration:      domain.NewDurationInfo(120 + stops*60),
		},
		Return: domain.Leg{
			DepartureTime: "18:00",
			ArrivalTime:   "20:00",
			Duration:      domain.NewDurationInfo(120),
		},
		FlightPrice:      flightPrice,
		HotelEstimate:    500,
		ActivityEstimate: 200,
		TotalEstimate:    flightPrice + 700,
		Currency:         "EUR",
		IsEstimate:       true,
	}
}

func createOffer(id string, score, flightPrice, total float64, outboundMinutes, stops int) domain.FlightOffer {
	raw := createRawOffer(id, flightPrice, stops)
	raw.TotalEstimate = total
	raw.Outbound.Duration = domain.NewDurationInfo(outboundMinutes)
	return domain.FlightOffer{ID: id, TripID: "trip-1", RawOffer: raw, DealScore: score}
}
