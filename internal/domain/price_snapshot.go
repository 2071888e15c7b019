package domain

import "time"

// SnapshotSourceMock marks prices produced by the offer synthesizer.
const SnapshotSourceMock = "mock"

// PriceSnapshot records the flight price an airline was quoted at for a trip.
type PriceSnapshot struct {
	ID          string    `json:"id"`
	TripID      string    `json:"tripId"`
	AirlineCode string    `json:"airlineCode"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Source      string    `json:"source"`
	RecordedAt  time.Time `json:"recordedAt"`
}
