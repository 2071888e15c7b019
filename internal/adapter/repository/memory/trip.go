// Package memory provides in-process implementations of the domain repositories.
// They back the API when no DATABASE_URL is configured and in integration tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"
)

// TripRepo is an in-memory domain.TripRepository.
type TripRepo struct {
	mu    sync.RWMutex
	trips map[string]domain.TripRequest
	clock timeutil.Clock
}

// NewTripRepo creates an empty TripRepo. A nil clock uses the system time.
func NewTripRepo(clock timeutil.Clock) *TripRepo {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TripRepo{trips: make(map[string]domain.TripRequest), clock: clock}
}

func (r *TripRepo) Create(_ context.Context, trip domain.TripRequest) (domain.TripRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trips[trip.ID]; exists {
		return domain.TripRequest{}, fmt.Errorf("memory.TripRepo.Create: trip %s already exists", trip.ID)
	}
	r.trips[trip.ID] = cloneTrip(trip)
	return cloneTrip(trip), nil
}

func (r *TripRepo) GetByID(_ context.Context, id string) (domain.TripRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip, ok := r.trips[id]
	if !ok {
		return domain.TripRequest{}, fmt.Errorf("memory.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return cloneTrip(trip), nil
}

func (r *TripRepo) Update(_ context.Context, trip domain.TripRequest) (domain.TripRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.trips[trip.ID]
	if !ok {
		return domain.TripRequest{}, fmt.Errorf("memory.TripRepo.Update: %w", domain.ErrNotFound)
	}
	trip.CreatedAt = existing.CreatedAt
	r.trips[trip.ID] = cloneTrip(trip)
	return cloneTrip(trip), nil
}

func (r *TripRepo) UpdateStatus(_ context.Context, id string, status domain.TripStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[id]
	if !ok {
		return fmt.Errorf("memory.TripRepo.UpdateStatus: %w", domain.ErrNotFound)
	}
	trip.Status = status
	trip.UpdatedAt = r.clock.Now()
	r.trips[id] = trip
	return nil
}

func (r *TripRepo) ListByUser(_ context.Context, userID string) ([]domain.TripRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := make([]domain.TripRequest, 0)
	for _, t := range r.trips {
		if t.OwnedBy(userID) {
			trips = append(trips, cloneTrip(t))
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		if trips[i].CreatedAt.Equal(trips[j].CreatedAt) {
			return trips[i].ID < trips[j].ID
		}
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
	return trips, nil
}

// cloneTrip copies the pointer and map fields so callers cannot mutate stored state.
func cloneTrip(t domain.TripRequest) domain.TripRequest {
	if t.UserID != nil {
		id := *t.UserID
		t.UserID = &id
	}
	if t.TotalBudget != nil {
		b := *t.TotalBudget
		t.TotalBudget = &b
	}
	t.Preferences = maps.Clone(t.Preferences)
	return t
}

var _ domain.TripRepository = (*TripRepo)(nil)
