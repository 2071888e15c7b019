package domain

import "time"

// SavedTrip is a trip (and optionally one of its offers) bookmarked by a user.
type SavedTrip struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TripID    string    `json:"tripId"`
	OfferID   *string   `json:"offerId,omitempty"`
	Name      string    `json:"name,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
