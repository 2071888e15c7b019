package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=domain

// TripRepository persists trip requests.
type TripRepository interface {
	// Create stores a new trip and returns it with timestamps populated.
	Create(ctx context.Context, trip TripRequest) (TripRequest, error)

	// GetByID returns ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id string) (TripRequest, error)

	// Update overwrites the mutable fields of an existing trip.
	Update(ctx context.Context, trip TripRequest) (TripRequest, error)

	// UpdateStatus moves a trip to the given lifecycle state.
	UpdateStatus(ctx context.Context, id string, status TripStatus) error

	// ListByUser returns a user's trips, newest first.
	ListByUser(ctx context.Context, userID string) ([]TripRequest, error)
}

// OfferRepository persists scored offer batches.
type OfferRepository interface {
	// ReplaceForTrip atomically deletes the trip's previous batch and inserts
	// the given offers. It returns the offers with IDs assigned.
	ReplaceForTrip(ctx context.Context, tripID string, offers []FlightOffer) ([]FlightOffer, error)

	// ListByTrip returns the trip's batch ordered by deal score descending.
	ListByTrip(ctx context.Context, tripID string) ([]FlightOffer, error)

	// GetByID returns ErrNotFound if no offer with that ID exists.
	GetByID(ctx context.Context, id string) (FlightOffer, error)
}

// SavedTripRepository persists user bookmarks.
type SavedTripRepository interface {
	Create(ctx context.Context, saved SavedTrip) (SavedTrip, error)

	// ListByUser returns a user's saved trips, newest first.
	ListByUser(ctx context.Context, userID string) ([]SavedTrip, error)

	// Delete removes a saved trip owned by userID. Returns ErrNotFound
	// when the row does not exist or belongs to someone else.
	Delete(ctx context.Context, id, userID string) error
}

// UserRepository persists users keyed by their identity-provider open ID.
type UserRepository interface {
	// Upsert inserts the user or refreshes profile fields and last sign-in.
	Upsert(ctx context.Context, user User) (User, error)

	GetByOpenID(ctx context.Context, openID string) (User, error)
}

// PriceSnapshotRepository stores the price history of generated offers.
type PriceSnapshotRepository interface {
	Append(ctx context.Context, snapshots []PriceSnapshot) error

	// ListByTrip returns snapshots for a trip, newest first.
	ListByTrip(ctx context.Context, tripID string) ([]PriceSnapshot, error)
}

// APILogRepository is the append-only log of upstream offer calls.
type APILogRepository interface {
	Append(ctx context.Context, entry APILog) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]APILog, error)
}
