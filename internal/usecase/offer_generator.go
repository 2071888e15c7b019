package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// Offer batch size bounds.
const (
	minOffersPerSearch = 5
	maxOffersPerSearch = 10
)

// Default simulated upstream latency bounds.
const (
	DefaultMinLatency = 500 * time.Millisecond
	DefaultMaxLatency = 1500 * time.Millisecond
)

const (
	logoURLFormat    = "https://logos.skyscnr.com/images/airlines/favicon/%s.png"
	bookingURLFormat = "https://www.google.com/travel/flights?q=%s+to+%s&utm_source=trippulse&utm_medium=referral"
)

// airlineRoster is the fixed set of carriers offers are drawn from.
var airlineRoster = []domain.AirlineInfo{
	newAirline("FR", "Ryanair", true),
	newAirline("U2", "EasyJet", true),
	newAirline("LH", "Lufthansa", false),
	newAirline("AZ", "Alitalia/ITA", false),
	newAirline("BA", "British Airways", false),
	newAirline("AF", "Air France", false),
	newAirline("KL", "KLM", false),
	newAirline("VY", "Vueling", true),
	newAirline("W6", "Wizz Air", true),
	newAirline("TK", "Turkish Airlines", false),
	newAirline("EK", "Emirates", false),
	newAirline("LX", "Swiss", false),
}

func newAirline(code, name string, lowCost bool) domain.AirlineInfo {
	return domain.AirlineInfo{
		Code:    code,
		Name:    name,
		Logo:    fmt.Sprintf(logoURLFormat, code),
		LowCost: lowCost,
	}
}

// Airlines returns a copy of the carrier roster.
func Airlines() []domain.AirlineInfo {
	return slices.Clone(airlineRoster)
}

// hotelBaseRates is the nightly hotel rate by destination airport.
var hotelBaseRates = map[string]float64{
	"LHR": 120, "CDG": 110, "BCN": 85, "MAD": 75, "AMS": 100, "FRA": 95,
	"MUC": 90, "ZRH": 150, "VIE": 80, "IST": 55, "ATH": 65, "LIS": 70,
	"DXB": 130, "SIN": 110, "HND": 120, "BKK": 40, "MLE": 180, "JFK": 160,
	"LAX": 140, "MIA": 120, "SFO": 150, "SYD": 130,
}

const defaultHotelRate = 80

// OfferGenerator synthesizes unscored offers for a trip.
type OfferGenerator interface {
	// Generate waits out the simulated upstream latency and returns between
	// 5 and 10 offers, one per distinct airline.
	Generate(ctx context.Context, params domain.TripParameters) ([]domain.RawOffer, error)
}

// GeneratorConfig controls the simulated upstream call.
type GeneratorConfig struct {
	MinLatency time.Duration
	MaxLatency time.Duration
}

// DefaultGeneratorConfig returns the production latency window.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MinLatency: DefaultMinLatency,
		MaxLatency: DefaultMaxLatency,
	}
}

// offerSynthesizer implements OfferGenerator with an injected random source.
// rand.Rand is not safe for concurrent use, so every draw happens under mu.
type offerSynthesizer struct {
	mu         sync.Mutex
	rng        *rand.Rand
	minLatency time.Duration
	maxLatency time.Duration
}

// NewSeededRand returns a PCG-backed generator. The same seed yields the same offers.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewOfferGenerator creates an OfferGenerator drawing from rng.
// A nil config disables the simulated latency.
func NewOfferGenerator(rng *rand.Rand, config *GeneratorConfig) OfferGenerator {
	g := &offerSynthesizer{rng: rng}
	if config != nil && config.MaxLatency > 0 {
		g.minLatency = config.MinLatency
		g.maxLatency = max(config.MaxLatency, config.MinLatency)
	}
	return g
}

// Generate implements OfferGenerator.Generate.
func (g *offerSynthesizer) Generate(ctx context.Context, params domain.TripParameters) ([]domain.RawOffer, error) {
	if err := g.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return g.synthesize(params)
}

// simulateLatency blocks for a random duration in the configured window or until ctx is done.
func (g *offerSynthesizer) simulateLatency(ctx context.Context) error {
	if g.maxLatency <= 0 {
		return ctx.Err()
	}

	g.mu.Lock()
	delay := g.minLatency + time.Duration(g.rng.Int64N(int64(g.maxLatency-g.minLatency)+1))
	g.mu.Unlock()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *offerSynthesizer) synthesize(params domain.TripParameters) ([]domain.RawOffer, error) {
	departure, ret, err := params.Dates()
	if err != nil {
		return nil, err
	}
	nights := tripNights(departure, ret)
	travelers := max(params.Travelers, 1)

	g.mu.Lock()
	defer g.mu.Unlock()

	count := g.between(minOffersPerSearch, maxOffersPerSearch)
	roster := slices.Clone(airlineRoster)
	g.rng.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})

	offers := make([]domain.RawOffer, 0, count)
	for _, airline := range roster[:count] {
		offers = append(offers, g.synthesizeOffer(airline, params, nights, travelers))
	}
	return offers, nil
}

func (g *offerSynthesizer) synthesizeOffer(airline domain.AirlineInfo, params domain.TripParameters, nights, travelers int) domain.RawOffer {
	var baseFare int
	if airline.LowCost {
		baseFare = g.between(25, 120)
	} else {
		baseFare = g.between(80, 400)
	}

	outbound := g.synthesizeLeg(airline.LowCost, params.TimePreference)
	inbound := g.synthesizeLeg(airline.LowCost, params.TimePreference)

	hotelNightly := math.Round(hotelBaseRate(params.Destination)*styleMultiplier(params.TripStyle) + float64(g.between(-15, 15)))
	activityDaily := math.Round(activityBaseRate(params.TripStyle) + float64(g.between(-10, 10)))

	flightPrice := math.Round(float64(baseFare * travelers))
	rooms := math.Ceil(float64(travelers) / 2)
	hotelEstimate := math.Round(hotelNightly * float64(nights) * rooms)
	activityEstimate := math.Round(activityDaily * float64(nights) * float64(travelers))

	return domain.RawOffer{
		Airline:          airline,
		FlightNumber:     airline.Code + strconv.Itoa(g.between(100, 9999)),
		Outbound:         outbound,
		Return:           inbound,
		FlightPrice:      flightPrice,
		HotelEstimate:    hotelEstimate,
		ActivityEstimate: activityEstimate,
		TotalEstimate:    flightPrice + hotelEstimate + activityEstimate,
		Currency:         params.Currency,
		BookingURL:       fmt.Sprintf(bookingURLFormat, params.Origin, params.Destination),
		IsEstimate:       true,
	}
}

func (g *offerSynthesizer) synthesizeLeg(lowCost bool, pref domain.TimePreference) domain.Leg {
	var stops int
	if lowCost {
		if g.rng.Float64() > 0.7 {
			stops = 1
		}
	} else {
		stops = g.between(0, 2)
	}

	duration := g.between(90, 240) + stops*g.between(60, 120)
	departure := g.departureMinute(pref)

	return domain.Leg{
		DepartureTime: formatClock(departure),
		ArrivalTime:   formatClock(departure + duration),
		Stops:         stops,
		Duration:      domain.NewDurationInfo(duration),
	}
}

// departureMinute returns minutes after midnight inside the preferred window,
// snapped to a quarter hour.
func (g *offerSynthesizer) departureMinute(pref domain.TimePreference) int {
	var hour int
	switch pref {
	case domain.TimeMorning:
		hour = g.between(6, 11)
	case domain.TimeAfternoon:
		hour = g.between(12, 17)
	case domain.TimeEvening:
		hour = g.between(18, 23)
	default:
		hour = g.between(6, 23)
	}
	return hour*60 + g.between(0, 3)*15
}

// between returns a uniform integer in [lo, hi]. Callers must hold mu.
func (g *offerSynthesizer) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// formatClock renders minutes after midnight as "HH:MM" on a 24h wrap.
func formatClock(minutes int) string {
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// tripNights is the whole number of days between the dates, at least 1.
func tripNights(departure, ret time.Time) int {
	days := int(math.Ceil(ret.Sub(departure).Hours() / 24))
	return max(days, 1)
}

func hotelBaseRate(destination string) float64 {
	if rate, ok := hotelBaseRates[destination]; ok {
		return rate
	}
	return defaultHotelRate
}

func styleMultiplier(style domain.TripStyle) float64 {
	switch style {
	case domain.TripStyleSea:
		return 1.1
	case domain.TripStyleNature:
		return 0.85
	case domain.TripStyleCity:
		return 1.05
	default:
		return 1.0
	}
}

func activityBaseRate(style domain.TripStyle) float64 {
	switch style {
	case domain.TripStyleNature:
		return 45
	case domain.TripStyleCity:
		return 40
	case domain.TripStyleSea:
		return 25
	default:
		return 30
	}
}

var _ OfferGenerator = (*offerSynthesizer)(nil)
