package usecase

import (
	"strings"

	"github.com/trippulse/trippulse-api/internal/domain"
)

// Airport search bounds.
const (
	MinAirportQueryLength = 2
	MaxAirportResults     = 10
)

// AirportDirectory answers autocomplete lookups against the static airport table.
type AirportDirectory interface {
	// Search returns up to 10 airports whose IATA code, city, name or country
	// contains query, case-insensitively. Queries shorter than 2 characters match nothing.
	Search(query string) []domain.Airport
}

type airportDirectory struct {
	airports []domain.Airport
}

// NewAirportDirectory creates an AirportDirectory over the built-in table.
func NewAirportDirectory() AirportDirectory {
	return &airportDirectory{airports: airportTable}
}

func (d *airportDirectory) Search(query string) []domain.Airport {
	results := make([]domain.Airport, 0, MaxAirportResults)
	if len([]rune(query)) < MinAirportQueryLength {
		return results
	}

	q := strings.ToLower(query)
	for _, a := range d.airports {
		if matchesAirport(a, q) {
			results = append(results, a)
			if len(results) == MaxAirportResults {
				break
			}
		}
	}
	return results
}

func matchesAirport(a domain.Airport, q string) bool {
	return strings.Contains(strings.ToLower(a.IATA), q) ||
		strings.Contains(strings.ToLower(a.City), q) ||
		strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Country), q)
}

var _ AirportDirectory = (*airportDirectory)(nil)
