package domain

import "testing"

func TestTripStateVisitedIsMonotonic(t *testing.T) {
	s := NewTripState("A")

	s.MarkVisited("p1")
	s.MarkVisited("p2")
	s.MarkVisited("p1")

	got := s.Visited()
	if len(got) != 2 {
		t.Fatalf("visited = %v, want 2 entries", got)
	}
	if got[0] != "p1" || got[1] != "p2" {
		t.Fatalf("visited order = %v, want [p1 p2]", got)
	}
	if !s.IsVisited("p1") || s.IsVisited("p3") {
		t.Fatalf("IsVisited mismatch")
	}
}

func TestTripStateExhausted(t *testing.T) {
	s := NewTripState("A")
	if s.IsExhausted("A") {
		t.Fatalf("A should not start exhausted")
	}

	s.MarkExhausted("A")
	s.MarkExhausted("A")

	if !s.IsExhausted("A") {
		t.Fatalf("A should be exhausted")
	}
	if s.ExhaustedCount() != 1 {
		t.Fatalf("exhausted count = %d, want 1", s.ExhaustedCount())
	}
}
