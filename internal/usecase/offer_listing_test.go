package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trippulse/trippulse-api/internal/domain"
)

func listingFixture() []domain.FlightOffer {
	return []domain.FlightOffer{
		createOffer("a", 8.2, 240, 1200, 180, 1),
		createOffer("b", 9.1, 180, 1350, 150, 0),
		createOffer("c", 6.0, 120, 900, 300, 2),
		createOffer("d", 8.2, 300, 1100, 150, 0),
	}
}

func ids(offers []domain.FlightOffer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}

func TestSortOffers(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   domain.OfferSortOption
		expected []string
	}{
		{"deal score descending", domain.SortByDeal, []string{"b", "a", "d", "c"}},
		{"empty defaults to deal", "", []string{"b", "a", "d", "c"}},
		{"unknown defaults to deal", "cheapest", []string{"b", "a", "d", "c"}},
		{"flight price ascending", domain.SortByPrice, []string{"c", "b", "a", "d"}},
		{"total estimate ascending", domain.SortByTotal, []string{"c", "d", "a", "b"}},
		{"outbound duration ascending, stable", domain.SortByDuration, []string{"b", "d", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(SortOffers(listingFixture(), tt.sortBy)))
		})
	}
}

func TestSortOffers_DoesNotMutateInput(t *testing.T) {
	offers := listingFixture()

	_ = SortOffers(offers, domain.SortByPrice)

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(offers))
}

func TestSortOffers_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, SortOffers(nil, domain.SortByDeal))
	assert.Len(t, SortOffers(listingFixture()[:1], domain.SortByPrice), 1)
}

func TestApplyOfferFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   *domain.OfferFilter
		expected []string
	}{
		{"nil filter keeps all", nil, []string{"a", "b", "c", "d"}},
		{"empty filter keeps all", &domain.OfferFilter{}, []string{"a", "b", "c", "d"}},
		{"nonstop only", &domain.OfferFilter{MaxStops: intPtr(0)}, []string{"b", "d"}},
		{"max one stop", &domain.OfferFilter{MaxStops: intPtr(1)}, []string{"a", "b", "d"}},
		{"max price inclusive", &domain.OfferFilter{MaxPrice: floatPtr(240)}, []string{"a", "b", "c"}},
		{"combined", &domain.OfferFilter{MaxStops: intPtr(0), MaxPrice: floatPtr(200)}, []string{"b"}},
		{"no matches", &domain.OfferFilter{MaxPrice: floatPtr(50)}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(ApplyOfferFilter(listingFixture(), tt.filter)))
		})
	}
}

func TestDefaultListOptions(t *testing.T) {
	opts := DefaultListOptions()
	assert.Nil(t, opts.Filter)
	assert.Equal(t, domain.SortByDeal, opts.SortBy)
}
