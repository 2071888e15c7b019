package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// OfferRepo is an in-memory domain.OfferRepository.
type OfferRepo struct {
	mu     sync.RWMutex
	byTrip map[string][]domain.FlightOffer
	byID   map[string]domain.FlightOffer
}

// NewOfferRepo creates an empty OfferRepo.
func NewOfferRepo() *OfferRepo {
	return &OfferRepo{
		byTrip: make(map[string][]domain.FlightOffer),
		byID:   make(map[string]domain.FlightOffer),
	}
}

// ReplaceForTrip swaps the trip's batch under a single lock, so readers see
// either the old batch or the new one.
func (r *OfferRepo) ReplaceForTrip(_ context.Context, tripID string, offers []domain.FlightOffer) ([]domain.FlightOffer, error) {
	saved := make([]domain.FlightOffer, len(offers))
	for i, o := range offers {
		o.ID = uuid.NewString()
		o.TripID = tripID
		saved[i] = o
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].DealScore > saved[j].DealScore
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, old := range r.byTrip[tripID] {
		delete(r.byID, old.ID)
	}
	r.byTrip[tripID] = saved
	for _, o := range saved {
		r.byID[o.ID] = o
	}
	return slices.Clone(saved), nil
}

func (r *OfferRepo) ListByTrip(_ context.Context, tripID string) ([]domain.FlightOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offers := r.byTrip[tripID]
	if offers == nil {
		return []domain.FlightOffer{}, nil
	}
	return slices.Clone(offers), nil
}

func (r *OfferRepo) GetByID(_ context.Context, id string) (domain.FlightOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.byID[id]
	if !ok {
		return domain.FlightOffer{}, fmt.Errorf("memory.OfferRepo.GetByID: %w", domain.ErrNotFound)
	}
	return offer, nil
}

var _ domain.OfferRepository = (*OfferRepo)(nil)
