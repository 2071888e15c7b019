package usecase

import (
	"sort"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// ApplyOfferFilter returns the offers that match filter.
//
// Behavior:
//   - Returns the original slice if filter is nil
//   - Does NOT mutate the original offers slice
func ApplyOfferFilter(offers []domain.FlightOffer, filter *domain.OfferFilter) []domain.FlightOffer {
	if filter == nil {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if filter.Matches(o) {
			result = append(result, o)
		}
	}
	return result
}

// SortOffers orders offers according to sortBy using a stable sort.
//
// Sort options:
//   - SortByDeal (default): descending by DealScore
//   - SortByPrice: ascending by FlightPrice
//   - SortByTotal: ascending by TotalEstimate
//   - SortByDuration: ascending by outbound duration
func SortOffers(offers []domain.FlightOffer, sortBy domain.OfferSortOption) []domain.FlightOffer {
	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)

	if len(result) <= 1 {
		return result
	}

	switch domain.ParseOfferSortOption(string(sortBy)) {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].FlightPrice < result[j].FlightPrice
		})
	case domain.SortByTotal:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalEstimate < result[j].TotalEstimate
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Outbound.Duration.TotalMinutes < result[j].Outbound.Duration.TotalMinutes
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DealScore > result[j].DealScore
		})
	}

	return result
}
