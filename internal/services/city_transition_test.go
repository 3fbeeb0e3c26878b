package services

import (
	"itinerary-service/internal/domain"
	"testing"
)

func TestCityTransitionPrefersHighTierOverDistance(t *testing.T) {
	c := mustCatalog(t,
		place("a", "A", 3, 0),
		place("near", "Near", 3, 0.5),
		place("far", "Far", 4, 2),
	)
	tr := NewCityTransition(c)

	city, ok := tr.NextCity("A", domain.NewTripState("A"))
	if !ok || city != "Far" {
		t.Fatalf("next city = %q, %v; want Far", city, ok)
	}
}

func TestCityTransitionFallsBackToLowerTier(t *testing.T) {
	c := mustCatalog(t,
		place("a", "A", 3, 0),
		place("far", "Far", 2, 2),
		place("near", "Near", 3, 0.5),
		place("nearest", "Nearest", 1, 0.1),
	)
	tr := NewCityTransition(c)

	city, ok := tr.NextCity("A", domain.NewTripState("A"))
	if !ok || city != "Near" {
		t.Fatalf("next city = %q, %v; want Near", city, ok)
	}
}

func TestCityTransitionSkipsExhaustedAndVisited(t *testing.T) {
	c := mustCatalog(t,
		place("a", "A", 3, 0),
		place("b", "B", 5, 0.5),
		place("c", "C", 5, 1),
		place("d", "D", 5, 2),
	)
	tr := NewCityTransition(c)
	state := domain.NewTripState("A")
	state.MarkExhausted("B")
	state.MarkVisited("c")

	city, ok := tr.NextCity("A", state)
	if !ok || city != "D" {
		t.Fatalf("next city = %q, %v; want D", city, ok)
	}
}

func TestCityTransitionNoCandidate(t *testing.T) {
	c := mustCatalog(t,
		place("a", "A", 3, 0),
		place("b", "B", 1, 0.5),
	)
	tr := NewCityTransition(c)

	if city, ok := tr.NextCity("A", domain.NewTripState("A")); ok {
		t.Fatalf("expected no next city, got %q", city)
	}
	if city, ok := tr.NextCity("Unknown", domain.NewTripState("Unknown")); ok {
		t.Fatalf("expected no next city from unknown city, got %q", city)
	}
}
