package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/infrastructure/retry"
	"github.com/trippulse/trippulse-api/internal/infrastructure/timeutil"
)

// SearchEndpoint is the upstream endpoint recorded in the API-call log.
const SearchEndpoint = "/mock/search_flights"

// OfferSearchUseCase runs rate-limited offer searches for trips.
type OfferSearchUseCase interface {
	// Search generates a fresh batch for the trip unless the route and date were
	// searched within the cooldown window and the trip already has a batch,
	// in which case that batch is returned with Cached set.
	Search(ctx context.Context, tripID string, params domain.TripParameters) (*domain.SearchResult, error)

	// Refresh is Search keyed by trip ID. A throttled refresh sets both
	// Cached and RateLimited.
	Refresh(ctx context.Context, tripID string, params domain.TripParameters) (*domain.SearchResult, error)

	// GenerateAndScore synthesizes and scores a batch without touching storage.
	GenerateAndScore(ctx context.Context, params domain.TripParameters) ([]domain.FlightOffer, error)
}

// OfferSearchDeps holds the collaborators of the search orchestrator.
type OfferSearchDeps struct {
	Generator OfferGenerator
	Limiter   domain.RateLimiter
	Trips     domain.TripRepository
	Offers    domain.OfferRepository
	Snapshots domain.PriceSnapshotRepository
	Logs      domain.APILogRepository
}

// Config contains configuration options for the search orchestrator.
type Config struct {
	// PersistRetry controls retries of the batch replace step
	PersistRetry retry.Config

	Clock  timeutil.Clock
	Logger zerolog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PersistRetry: retry.StoreConfig.WithRetryIf(isRetryableStoreError),
		Clock:        timeutil.NewRealClock(),
		Logger:       zerolog.Nop(),
	}
}

type offerSearchUseCase struct {
	deps   OfferSearchDeps
	locks  *tripLocks
	retry  retry.Config
	clock  timeutil.Clock
	logger zerolog.Logger
}

// NewOfferSearchUseCase creates the search orchestrator.
// If config is nil, DefaultConfig is used.
func NewOfferSearchUseCase(deps OfferSearchDeps, config *Config) OfferSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.PersistRetry.MaxAttempts > 0 {
			cfg.PersistRetry = config.PersistRetry
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		cfg.Logger = config.Logger
	}

	return &offerSearchUseCase{
		deps:   deps,
		locks:  newTripLocks(),
		retry:  cfg.PersistRetry,
		clock:  cfg.Clock,
		logger: cfg.Logger.With().Str("component", "offer_search").Logger(),
	}
}

// SearchRateKey is the limiter key for a route search.
func SearchRateKey(params domain.TripParameters) string {
	return fmt.Sprintf("search:%s-%s-%s", params.Origin, params.Destination, params.DepartureDate)
}

// RefreshRateKey is the limiter key for a trip refresh.
func RefreshRateKey(tripID string) string {
	return "refresh:" + tripID
}

// Search implements OfferSearchUseCase.Search.
func (uc *offerSearchUseCase) Search(ctx context.Context, tripID string, params domain.TripParameters) (*domain.SearchResult, error) {
	return uc.run(ctx, tripID, params, SearchRateKey(params), false)
}

// Refresh implements OfferSearchUseCase.Refresh.
func (uc *offerSearchUseCase) Refresh(ctx context.Context, tripID string, params domain.TripParameters) (*domain.SearchResult, error) {
	return uc.run(ctx, tripID, params, RefreshRateKey(tripID), true)
}

func (uc *offerSearchUseCase) run(ctx context.Context, tripID string, params domain.TripParameters, rateKey string, refresh bool) (*domain.SearchResult, error) {
	params.SetDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	log := uc.logger.With().Str("trip_id", tripID).Str("rate_key", rateKey).Logger()

	limited := !uc.deps.Limiter.Allow(ctx, rateKey)
	if limited {
		if result, err := uc.cachedBatch(ctx, tripID, refresh); result != nil || err != nil {
			return result, err
		}
		// Nothing to fall back to, so the first batch for this trip is generated anyway.
		log.Debug().Msg("Rate limited without a cached batch, generating")
	}

	unlock := uc.locks.Lock(tripID)
	defer unlock()

	// A search that held the lock may have stored a batch while this one waited.
	if limited {
		if result, err := uc.cachedBatch(ctx, tripID, refresh); result != nil || err != nil {
			return result, err
		}
	}

	trip, err := uc.deps.Trips.GetByID(ctx, tripID)
	tripFound := err == nil
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Warn().Msg("Trip not found, returning batch without persisting")
	case err != nil:
		return nil, fmt.Errorf("load trip: %w", err)
	}

	if tripFound && params.BudgetPerPerson == nil {
		params.BudgetPerPerson = trip.BudgetPerPerson()
	}

	start := uc.clock.Now()
	offers, err := uc.GenerateAndScore(ctx, params)
	if err == nil && tripFound {
		offers, err = uc.persist(ctx, tripID, offers)
	}
	uc.recordCall(ctx, params, len(offers), uc.clock.Now().Sub(start), err)

	if err != nil {
		log.Error().Err(err).Msg("Offer search failed")
		return nil, err
	}

	log.Info().Int("offers", len(offers)).Bool("persisted", tripFound).Msg("Generated offer batch")
	return &domain.SearchResult{Offers: offers}, nil
}

// cachedBatch returns the stored batch as a cached result, or nil when the trip has none.
func (uc *offerSearchUseCase) cachedBatch(ctx context.Context, tripID string, refresh bool) (*domain.SearchResult, error) {
	cached, err := uc.deps.Offers.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("load cached offers: %w", err)
	}
	if len(cached) == 0 {
		return nil, nil
	}
	uc.logger.Info().Str("trip_id", tripID).Int("offers", len(cached)).Msg("Rate limited, serving cached batch")
	return &domain.SearchResult{Offers: cached, Cached: true, RateLimited: refresh}, nil
}

// GenerateAndScore implements OfferSearchUseCase.GenerateAndScore.
func (uc *offerSearchUseCase) GenerateAndScore(ctx context.Context, params domain.TripParameters) ([]domain.FlightOffer, error) {
	raw, err := uc.deps.Generator.Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("generate offers: %w", err)
	}
	return ScoreBatch(raw, params), nil
}

// persist replaces the trip's batch, marks the trip completed and records price history.
func (uc *offerSearchUseCase) persist(ctx context.Context, tripID string, offers []domain.FlightOffer) ([]domain.FlightOffer, error) {
	now := uc.clock.Now()
	for i := range offers {
		offers[i].TripID = tripID
		offers[i].CreatedAt = now
	}

	saved, err := retry.DoWithResult(ctx, func() ([]domain.FlightOffer, error) {
		return uc.deps.Offers.ReplaceForTrip(ctx, tripID, offers)
	}, uc.retry)
	if err != nil {
		return nil, fmt.Errorf("replace offers: %w", err)
	}

	if err := uc.deps.Trips.UpdateStatus(ctx, tripID, domain.TripStatusCompleted); err != nil {
		return nil, fmt.Errorf("update trip status: %w", err)
	}

	uc.recordSnapshots(ctx, tripID, saved, now)
	return saved, nil
}

// recordSnapshots appends one price point per offer. History is best effort.
func (uc *offerSearchUseCase) recordSnapshots(ctx context.Context, tripID string, offers []domain.FlightOffer, at time.Time) {
	if uc.deps.Snapshots == nil || len(offers) == 0 {
		return
	}

	snapshots := make([]domain.PriceSnapshot, len(offers))
	for i, o := range offers {
		snapshots[i] = domain.PriceSnapshot{
			ID:          uuid.NewString(),
			TripID:      tripID,
			AirlineCode: o.Airline.Code,
			Price:       o.FlightPrice,
			Currency:    o.Currency,
			Source:      domain.SnapshotSourceMock,
			RecordedAt:  at,
		}
	}

	if err := uc.deps.Snapshots.Append(ctx, snapshots); err != nil {
		uc.logger.Warn().Err(err).Str("trip_id", tripID).Msg("Failed to record price snapshots")
	}
}

// recordCall appends the API-call log entry for one generation attempt.
func (uc *offerSearchUseCase) recordCall(ctx context.Context, params domain.TripParameters, count int, elapsed time.Duration, callErr error) {
	if uc.deps.Logs == nil {
		return
	}

	entry := domain.APILog{
		ID:         uuid.NewString(),
		Endpoint:   SearchEndpoint,
		Method:     http.MethodPost,
		StatusCode: http.StatusOK,
		DurationMs: elapsed.Milliseconds(),
		CreatedAt:  uc.clock.Now(),
	}
	if body, err := json.Marshal(params); err == nil {
		entry.RequestBody = body
	}
	if callErr != nil {
		entry.StatusCode = http.StatusInternalServerError
		entry.Error = callErr.Error()
	} else {
		entry.ResponseBody, _ = json.Marshal(map[string]int{"count": count})
	}

	// The log must outlive a cancelled request.
	if err := uc.deps.Logs.Append(context.WithoutCancel(ctx), entry); err != nil {
		uc.logger.Warn().Err(err).Msg("Failed to append API log")
	}
}

// isRetryableStoreError treats everything except caller mistakes and cancellation as transient.
func isRetryableStoreError(err error) bool {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return !retry.IsPermanent(err)
	}
}

var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
