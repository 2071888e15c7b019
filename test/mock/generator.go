// Package mock provides test doubles for the TripPulse planner.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific batches).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trippulse/trippulse-api/internal/domain"
	"github.com/trippulse/trippulse-api/internal/usecase"
)

// Generator is a configurable implementation of usecase.OfferGenerator.
type Generator struct {
	mu        sync.Mutex
	offers    []domain.RawOffer
	err       error
	delay     time.Duration
	callCount int
	lastCall  domain.TripParameters
}

// NewGenerator creates a generator returning SampleOffers(5).
// The generator is configured using the builder pattern methods.
func NewGenerator() *Generator {
	return &Generator{offers: SampleOffers(5)}
}

// WithOffers configures the generator to return the given batch.
func (g *Generator) WithOffers(offers []domain.RawOffer) *Generator {
	g.offers = offers
	return g
}

// WithError configures the generator to fail with err.
func (g *Generator) WithError(err error) *Generator {
	g.err = err
	return g
}

// WithDelay configures the generator to wait before responding.
// This is useful for testing timeouts and concurrent searches.
func (g *Generator) WithDelay(d time.Duration) *Generator {
	g.delay = d
	return g
}

// Generate implements usecase.OfferGenerator.Generate.
func (g *Generator) Generate(ctx context.Context, params domain.TripParameters) ([]domain.RawOffer, error) {
	g.mu.Lock()
	g.callCount++
	g.lastCall = params
	delay, err := g.delay, g.err
	offers := make([]domain.RawOffer, len(g.offers))
	copy(offers, g.offers)
	g.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	for i := range offers {
		offers[i].Currency = params.Currency
	}
	return offers, nil
}

// CallCount returns the number of times Generate was called.
func (g *Generator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callCount
}

// LastParams returns the parameters of the most recent call.
func (g *Generator) LastParams() domain.TripParameters {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastCall
}

var _ usecase.OfferGenerator = (*Generator)(nil)

// SampleOffers returns count offers with distinct airlines and prices rising
// by 50 from 100. Even offers are nonstop.
func SampleOffers(count int) []domain.RawOffer {
	roster := usecase.Airlines()
	offers := make([]domain.RawOffer, count)

	for i := 0; i < count; i++ {
		airline := roster[i%len(roster)]
		price := 100 + float64(i*50)
		hotel, activity := 400.0, 200.0
		offers[i] = domain.RawOffer{
			Airline:      airline,
			FlightNumber: fmt.Sprintf("%s%d", airline.Code, 100+i),
			Outbound: domain.Leg{
				DepartureTime: "08:00",
				ArrivalTime:   "10:30",
				Stops:         i % 2,
				Duration:      domain.NewDurationInfo(150 + i*10),
			},
			Return: domain.Leg{
				DepartureTime: "18:00",
				ArrivalTime:   "20:30",
				Duration:      domain.NewDurationInfo(150),
			},
			FlightPrice:      price,
			HotelEstimate:    hotel,
			ActivityEstimate: activity,
			TotalEstimate:    price + hotel + activity,
			Currency:         domain.DefaultCurrency,
			BookingURL:       "https://www.google.com/travel/flights?q=FCO+to+BCN",
			IsEstimate:       true,
		}
	}
	return offers
}

// Limiter is a domain.RateLimiter whose answer is fixed per key.
type Limiter struct {
	mu      sync.Mutex
	deny    map[string]bool
	denyAll bool
	calls   []string
}

// NewLimiter creates a limiter that allows every key.
func NewLimiter() *Limiter {
	return &Limiter{deny: make(map[string]bool)}
}

// Deny makes the limiter reject key.
func (l *Limiter) Deny(key string) *Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deny[key] = true
	return l
}

// DenyAll makes the limiter reject every key.
func (l *Limiter) DenyAll() *Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.denyAll = true
	return l
}

// Allow implements domain.RateLimiter.Allow.
func (l *Limiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, key)
	return !l.denyAll && !l.deny[key]
}

// Calls returns every key passed to Allow, in order.
func (l *Limiter) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

var _ domain.RateLimiter = (*Limiter)(nil)
