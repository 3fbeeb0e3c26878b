package services

import (
	"itinerary-service/internal/domain"
	"sort"
)

// GreedySelector picks the highest-priority eligible place of a city.
//
// It never looks ahead: the choice depends only on the current city,
// the visited set and the trip's budget and companion policies.
// Ties on priority are broken by catalog order.
type GreedySelector struct {
	Catalog  *domain.Catalog
	Policies Policies
}

func NewGreedySelector(catalog *domain.Catalog, policies Policies) *GreedySelector {
	return &GreedySelector{Catalog: catalog, Policies: policies}
}

// EligibleLister is implemented by selectors that can expose their full
// candidate pool in selection order.
type EligibleLister interface {
	EligiblePlaces(city string, state *domain.TripState, budget domain.BudgetTier, companion domain.Companion) []domain.Place
}

// Return the unvisited places of a city that pass the companion and budget
// policies, ordered by descending priority then catalog order.
func (s *GreedySelector) EligiblePlaces(
	city string,
	state *domain.TripState,
	budget domain.BudgetTier,
	companion domain.Companion,
) []domain.Place {
	pool := make([]domain.Place, 0)
	for _, p := range s.Catalog.InCity(city) {
		if !s.Policies.allows(p, budget, companion) {
			continue
		}
		if state != nil && state.IsVisited(p.Name) {
			continue
		}
		pool = append(pool, p)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Priority > pool[j].Priority
	})

	return pool
}

// SelectNext returns false when the city has no eligible place left.
func (s *GreedySelector) SelectNext(
	city string,
	state *domain.TripState,
	budget domain.BudgetTier,
	companion domain.Companion,
) (domain.Place, bool) {
	var best domain.Place
	found := false

	for _, p := range s.Catalog.InCity(city) {
		if !s.Policies.allows(p, budget, companion) || state.IsVisited(p.Name) {
			continue
		}
		// Strictly greater keeps the earliest catalog row on ties.
		if !found || p.Priority > best.Priority {
			best = p
			found = true
		}
	}

	return best, found
}
