package ports

import "itinerary-service/internal/domain"

// Chooses the next place to visit in a city. Returning false signals that
// the city has no eligible unvisited place left.
type PlaceSelector interface {
	SelectNext(city string, state *domain.TripState, budget domain.BudgetTier, companion domain.Companion) (domain.Place, bool)
}
