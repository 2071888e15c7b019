// Package usecase contains the business logic of the TripPulse planner: offer
// synthesis and deal scoring, the rate-limited search orchestrator, and the
// trip, saved-trip, user, airport and intake services around them.
package usecase

import "github.com/trippulse/trippulse-api/internal/domain"

// ListOptions contains optional parameters for reading a persisted offer batch.
type ListOptions struct {
	// Filter narrows the batch (nil keeps every offer)
	Filter *domain.OfferFilter

	// SortBy specifies the ordering (default: deal score)
	SortBy domain.OfferSortOption
}

// DefaultListOptions returns ListOptions with sensible defaults.
func DefaultListOptions() ListOptions {
	return ListOptions{
		Filter: nil,
		SortBy: domain.SortByDeal,
	}
}
