package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// OfferDetail is one offer together with the trip it belongs to.
type OfferDetail struct {
	Offer domain.FlightOffer  `json:"offer"`
	Trip  *domain.TripRequest `json:"trip,omitempty"`

	// BudgetUsagePercent is the share of the trip's total budget used by the
	// offer's total estimate, capped at 100
	BudgetUsagePercent *float64 `json:"budgetUsagePercent,omitempty"`
}

// OfferQueryUseCase reads persisted offers and their price history.
type OfferQueryUseCase interface {
	// ListByTrip returns the trip's batch. An unknown trip yields an empty list.
	ListByTrip(ctx context.Context, tripID string, opts ListOptions) ([]domain.FlightOffer, error)

	GetDetail(ctx context.Context, offerID string) (*OfferDetail, error)

	PriceHistory(ctx context.Context, tripID string) ([]domain.PriceSnapshot, error)
}

type offerQueryUseCase struct {
	trips     domain.TripRepository
	offers    domain.OfferRepository
	snapshots domain.PriceSnapshotRepository
}

// NewOfferQueryUseCase creates an OfferQueryUseCase.
func NewOfferQueryUseCase(trips domain.TripRepository, offers domain.OfferRepository, snapshots domain.PriceSnapshotRepository) OfferQueryUseCase {
	return &offerQueryUseCase{
		trips:     trips,
		offers:    offers,
		snapshots: snapshots,
	}
}

func (uc *offerQueryUseCase) ListByTrip(ctx context.Context, tripID string, opts ListOptions) ([]domain.FlightOffer, error) {
	if _, err := uc.trips.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.FlightOffer{}, nil
		}
		return nil, fmt.Errorf("load trip: %w", err)
	}

	offers, err := uc.offers.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	filtered := ApplyOfferFilter(offers, opts.Filter)
	return SortOffers(filtered, opts.SortBy), nil
}

func (uc *offerQueryUseCase) GetDetail(ctx context.Context, offerID string) (*OfferDetail, error) {
	offer, err := uc.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer %s: %w", offerID, err)
	}

	detail := &OfferDetail{Offer: offer}

	trip, err := uc.trips.GetByID(ctx, offer.TripID)
	switch {
	case err == nil:
		detail.Trip = &trip
		detail.BudgetUsagePercent = domain.BudgetUsagePercent(offer.TotalEstimate, trip.TotalBudget)
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("load trip: %w", err)
	}

	return detail, nil
}

func (uc *offerQueryUseCase) PriceHistory(ctx context.Context, tripID string) ([]domain.PriceSnapshot, error) {
	if _, err := uc.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("load trip: %w", err)
	}

	history, err := uc.snapshots.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}
	return history, nil
}

var _ OfferQueryUseCase = (*offerQueryUseCase)(nil)
