package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippulse/trippulse-api/internal/domain"
)

func sampleOffer() domain.FlightOffer {
	return domain.FlightOffer{
		ID:     "offer-1",
		TripID: "trip-1",
		RawOffer: domain.RawOffer{
			Airline:          domain.AirlineInfo{Code: "FR", Name: "Ryanair", LowCost: true},
			FlightNumber:     "FR1234",
			Outbound:         domain.Leg{DepartureTime: "07:15", ArrivalTime: "09:30", Duration: domain.NewDurationInfo(135)},
			Return:           domain.Leg{DepartureTime: "19:00", ArrivalTime: "22:40", Stops: 1, Duration: domain.NewDurationInfo(220)},
			FlightPrice:      180,
			HotelEstimate:    650,
			ActivityEstimate: 350,
			TotalEstimate:    1180,
			Currency:         "EUR",
			BookingURL:       "https://www.google.com/travel/flights?q=FCO+to+BCN",
			IsEstimate:       true,
		},
		DealScore: 8.4,
	}
}

func TestRender(t *testing.T) {
	usage := 78.5
	generated := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		it   Itinerary
	}{
		{
			name: "with trip and budget",
			it: Itinerary{
				Offer: sampleOffer(),
				Trip: &domain.TripRequest{
					Origin: "FCO", OriginCity: "Rome", Destination: "BCN",
					DepartureDate: "2026-07-01", ReturnDate: "2026-07-08", Travelers: 2,
				},
				BudgetUsagePercent: &usage,
				GeneratedAt:        generated,
			},
		},
		{
			name: "offer only",
			it:   Itinerary{Offer: sampleOffer(), GeneratedAt: generated},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := Render(tt.it)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
			assert.Greater(t, len(body), 500)
		})
	}
}

func TestItinerary_Filename(t *testing.T) {
	it := Itinerary{Offer: sampleOffer()}
	assert.Equal(t, "trippulse-FR-FR1234.pdf", it.Filename())
}

func TestLegSummary(t *testing.T) {
	tests := []struct {
		stops int
		want  string
	}{
		{stops: 0, want: "08:00 - 10:00, 2h 0m, nonstop"},
		{stops: 1, want: "08:00 - 10:00, 2h 0m, 1 stop"},
		{stops: 2, want: "08:00 - 10:00, 2h 0m, 2 stops"},
	}

	for _, tt := range tests {
		leg := domain.Leg{DepartureTime: "08:00", ArrivalTime: "10:00", Stops: tt.stops, Duration: domain.NewDurationInfo(120)}
		assert.Equal(t, tt.want, legSummary(leg))
	}
}

func TestReadableDate(t *testing.T) {
	assert.Equal(t, "Wed 01 Jul 2026", readableDate("2026-07-01"))
	assert.Equal(t, "soon", readableDate("soon"))
}
