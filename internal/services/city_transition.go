package services

import (
	"itinerary-service/internal/domain"
	"math"
)

// DefaultPriorityTiers are tried in order when choosing the next city.
var DefaultPriorityTiers = []int{4, 2}

// CityTransition chooses where to go once the current city is exhausted.
type CityTransition struct {
	Catalog *domain.Catalog
	Tiers   []int
}

func NewCityTransition(catalog *domain.Catalog) *CityTransition {
	return &CityTransition{Catalog: catalog, Tiers: DefaultPriorityTiers}
}

// NextCity returns the city of the closest unvisited place, outside the
// current and exhausted cities, meeting the first priority tier that has
// any candidate. Distance is measured from the current city's center.
// It returns false when no tier yields a candidate.
func (t *CityTransition) NextCity(current string, state *domain.TripState) (string, bool) {
	base, ok := t.Catalog.CityCenter(current)
	if !ok {
		return "", false
	}

	type candidate struct {
		city     string
		priority int
		km       float64
	}

	candidates := make([]candidate, 0)
	for _, p := range t.Catalog.Places() {
		if p.City == current || state.IsVisited(p.Name) || state.IsExhausted(p.City) {
			continue
		}
		candidates = append(candidates, candidate{
			city:     p.City,
			priority: p.Priority,
			km:       domain.GreatCircleKm(base, p.Location),
		})
	}

	if len(candidates) == 0 {
		return "", false
	}

	for _, tier := range t.Tiers {
		bestCity := ""
		bestKm := math.Inf(1)
		for _, c := range candidates {
			if c.priority < tier {
				continue
			}
			// Strict comparison keeps catalog order on equal distances.
			if c.km < bestKm {
				bestKm = c.km
				bestCity = c.city
			}
		}
		if bestCity != "" {
			return bestCity, true
		}
	}

	return "", false
}
