package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// DefaultLogCapacity bounds the number of API-call log entries kept in memory.
const DefaultLogCapacity = 10000

// PriceSnapshotRepo is an in-memory domain.PriceSnapshotRepository.
type PriceSnapshotRepo struct {
	mu     sync.RWMutex
	byTrip map[string][]domain.PriceSnapshot
}

// NewPriceSnapshotRepo creates an empty PriceSnapshotRepo.
func NewPriceSnapshotRepo() *PriceSnapshotRepo {
	return &PriceSnapshotRepo{byTrip: make(map[string][]domain.PriceSnapshot)}
}

func (r *PriceSnapshotRepo) Append(_ context.Context, snapshots []domain.PriceSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range snapshots {
		r.byTrip[s.TripID] = append(r.byTrip[s.TripID], s)
	}
	return nil
}

// ListByTrip returns the trip's history newest first.
func (r *PriceSnapshotRepo) ListByTrip(_ context.Context, tripID string) ([]domain.PriceSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := slices.Clone(r.byTrip[tripID])
	if history == nil {
		return []domain.PriceSnapshot{}, nil
	}
	slices.Reverse(history)
	return history, nil
}

// APILogRepo is an in-memory domain.APILogRepository holding the most recent entries.
type APILogRepo struct {
	mu       sync.RWMutex
	entries  []domain.APILog
	capacity int
}

// NewAPILogRepo creates an APILogRepo. A non-positive capacity uses DefaultLogCapacity.
func NewAPILogRepo(capacity int) *APILogRepo {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &APILogRepo{capacity: capacity}
}

func (r *APILogRepo) Append(_ context.Context, entry domain.APILog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if over := len(r.entries) - r.capacity; over > 0 {
		r.entries = slices.Delete(r.entries, 0, over)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *APILogRepo) Recent(_ context.Context, limit int) ([]domain.APILog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := min(max(limit, 0), len(r.entries))
	recent := slices.Clone(r.entries[len(r.entries)-n:])
	slices.Reverse(recent)
	return recent, nil
}

var (
	_ domain.PriceSnapshotRepository = (*PriceSnapshotRepo)(nil)
	_ domain.APILogRepository        = (*APILogRepo)(nil)
)
