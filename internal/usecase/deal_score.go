package usecase

import (
	"math"
	"sort"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// Deal score components.
const (
	// baselineScore is the neutral starting point before adjustments.
	baselineScore = 5.0

	minDealScore = 1.0
	maxDealScore = 10.0

	// cheapnessWeight is the most an offer can gain for being the cheapest in its batch.
	cheapnessWeight = 2.0

	nonstopBonus    = 0.5
	maxStopsPenalty = 1.5
)

// ScoreOffer rates one offer from 1.0 to 10.0 against the flight prices of its whole batch.
//
// The score starts at 5.0 and is adjusted by:
//   - budget fit: flightPrice / budgetPerPerson, +3 at or below 0.3, +2 at or below 0.5,
//     +1 at or below 0.7, -2 above 1 (skipped when no positive budget is given)
//   - relative cheapness: up to +2 for the cheapest offer when the batch has more than one price
//   - +0.5 for a nonstop outbound leg, -1.5 when outbound stops exceed maxStops
//
// The result is rounded to one decimal and clamped to [1, 10]. ScoreOffer is pure.
func ScoreOffer(offer domain.RawOffer, allPrices []float64, params domain.TripParameters) float64 {
	score := baselineScore

	score += budgetFit(offer.FlightPrice, params.BudgetPerPerson)

	if len(allPrices) > 1 {
		minPrice, maxPrice := findPriceRange(allPrices)
		priceRange := maxPrice - minPrice
		if priceRange == 0 {
			priceRange = 1
		}
		score += (1 - (offer.FlightPrice-minPrice)/priceRange) * cheapnessWeight
	}

	if offer.Outbound.Stops == 0 {
		score += nonstopBonus
	}
	if params.MaxStops != nil && offer.Outbound.Stops > *params.MaxStops {
		score -= maxStopsPenalty
	}

	return clampScore(math.Round(score*10) / 10)
}

// budgetFit compares the whole flight price, not a per-traveler share, against the
// per-traveler budget.
func budgetFit(flightPrice float64, budgetPerPerson *float64) float64 {
	if budgetPerPerson == nil || *budgetPerPerson <= 0 {
		return 0
	}

	ratio := flightPrice / *budgetPerPerson
	switch {
	case ratio <= 0.3:
		return 3
	case ratio <= 0.5:
		return 2
	case ratio <= 0.7:
		return 1
	case ratio > 1:
		return -2
	default:
		return 0
	}
}

// ScoreBatch scores every offer against the full batch and returns them sorted by
// deal score descending. Equal scores keep generation order.
func ScoreBatch(raw []domain.RawOffer, params domain.TripParameters) []domain.FlightOffer {
	prices := make([]float64, len(raw))
	for i, o := range raw {
		prices[i] = o.FlightPrice
	}

	scored := make([]domain.FlightOffer, len(raw))
	for i, o := range raw {
		scored[i] = domain.FlightOffer{
			RawOffer:  o,
			DealScore: ScoreOffer(o, prices, params),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].DealScore > scored[j].DealScore
	})
	return scored
}

// findPriceRange finds the minimum and maximum of prices. prices must not be empty.
func findPriceRange(prices []float64) (lo, hi float64) {
	lo, hi = prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi
}

func clampScore(score float64) float64 {
	return math.Max(minDealScore, math.Min(maxDealScore, score))
}
