package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"
)

// SavedTripUseCase manages a user's bookmarked trips.
type SavedTripUseCase interface {
	// Save bookmarks a trip, optionally pinned to one of its offers.
	Save(ctx context.Context, saved domain.SavedTrip) (domain.SavedTrip, error)

	List(ctx context.Context, userID string) ([]domain.SavedTrip, error)

	Delete(ctx context.Context, id, userID string) error
}

type savedTripUseCase struct {
	saved  domain.SavedTripRepository
	trips  domain.TripRepository
	offers domain.OfferRepository
	clock  timeutil.Clock
}

// NewSavedTripUseCase creates a SavedTripUseCase. A nil clock uses the system time.
func NewSavedTripUseCase(saved domain.SavedTripRepository, trips domain.TripRepository, offers domain.OfferRepository, clock timeutil.Clock) SavedTripUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &savedTripUseCase{saved: saved, trips: trips, offers: offers, clock: clock}
}

func (uc *savedTripUseCase) Save(ctx context.Context, saved domain.SavedTrip) (domain.SavedTrip, error) {
	if saved.UserID == "" {
		return domain.SavedTrip{}, domain.ErrUnauthorized
	}

	trip, err := uc.trips.GetByID(ctx, saved.TripID)
	if err != nil {
		return domain.SavedTrip{}, fmt.Errorf("get trip %s: %w", saved.TripID, err)
	}
	if trip.UserID != nil && !trip.OwnedBy(saved.UserID) {
		return domain.SavedTrip{}, fmt.Errorf("save trip %s: %w", trip.ID, domain.ErrForbidden)
	}

	if saved.OfferID != nil {
		offer, err := uc.offers.GetByID(ctx, *saved.OfferID)
		if err != nil {
			return domain.SavedTrip{}, fmt.Errorf("get offer %s: %w", *saved.OfferID, err)
		}
		if offer.TripID != trip.ID {
			return domain.SavedTrip{}, fmt.Errorf("%w: offer %s does not belong to trip %s", domain.ErrInvalidRequest, offer.ID, trip.ID)
		}
	}

	saved.ID = uuid.NewString()
	saved.CreatedAt = uc.clock.Now()

	created, err := uc.saved.Create(ctx, saved)
	if err != nil {
		return domain.SavedTrip{}, fmt.Errorf("save trip: %w", err)
	}

	if err := uc.trips.UpdateStatus(ctx, trip.ID, domain.TripStatusSaved); err != nil {
		return domain.SavedTrip{}, fmt.Errorf("update trip status: %w", err)
	}
	return created, nil
}

func (uc *savedTripUseCase) List(ctx context.Context, userID string) ([]domain.SavedTrip, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	saved, err := uc.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved trips: %w", err)
	}
	return saved, nil
}

func (uc *savedTripUseCase) Delete(ctx context.Context, id, userID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if err := uc.saved.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete saved trip %s: %w", id, err)
	}
	return nil
}

var _ SavedTripUseCase = (*savedTripUseCase)(nil)
