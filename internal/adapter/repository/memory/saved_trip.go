package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// SavedTripRepo is an in-memory domain.SavedTripRepository.
type SavedTripRepo struct {
	mu    sync.RWMutex
	saved map[string]domain.SavedTrip
}

// NewSavedTripRepo creates an empty SavedTripRepo.
func NewSavedTripRepo() *SavedTripRepo {
	return &SavedTripRepo{saved: make(map[string]domain.SavedTrip)}
}

func (r *SavedTripRepo) Create(_ context.Context, saved domain.SavedTrip) (domain.SavedTrip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.saved[saved.ID]; exists {
		return domain.SavedTrip{}, fmt.Errorf("memory.SavedTripRepo.Create: saved trip %s already exists", saved.ID)
	}
	r.saved[saved.ID] = saved
	return saved, nil
}

func (r *SavedTripRepo) ListByUser(_ context.Context, userID string) ([]domain.SavedTrip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.SavedTrip, 0)
	for _, s := range r.saved {
		if s.UserID == userID {
			list = append(list, s)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *SavedTripRepo) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.saved[id]
	if !ok || s.UserID != userID {
		return fmt.Errorf("memory.SavedTripRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.saved, id)
	return nil
}

var _ domain.SavedTripRepository = (*SavedTripRepo)(nil)
