package domain

import (
	"math"
	"testing"
)

func TestClassifyCongestion(t *testing.T) {
	cases := []struct {
		delay float64
		want  CongestionLevel
	}{
		{0, CongestionLight},
		{4.99, CongestionLight},
		{5, CongestionModerate},
		{19.9, CongestionModerate},
		{20, CongestionHeavy},
		{49.9, CongestionHeavy},
		{50, CongestionSevere},
		{180, CongestionSevere},
	}

	for _, c := range cases {
		if got := ClassifyCongestion(c.delay); got != c.want {
			t.Errorf("ClassifyCongestion(%v) = %s, want %s", c.delay, got, c.want)
		}
	}
}

func TestGreatCircleKm(t *testing.T) {
	// One degree of latitude is roughly 111.2 km.
	d := GreatCircleKm(Coordinates{Lat: 10, Lon: 20}, Coordinates{Lat: 11, Lon: 20})
	if math.Abs(d-111.2) > 0.5 {
		t.Fatalf("distance = %.3f, want ~111.2", d)
	}

	if GreatCircleKm(Coordinates{Lat: 1, Lon: 1}, Coordinates{Lat: 1, Lon: 1}) != 0 {
		t.Fatalf("distance of identical points must be 0")
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0.5, "30 mins"},
		{1, "1 hour"},
		{1 + 1.0/60, "1 hour 1 min"},
		{2.25, "2 hours 15 mins"},
		{0, "1 min"},
	}
	for _, c := range cases {
		if got := FormatHours(c.hours); got != c.want {
			t.Errorf("FormatHours(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestNormalizeBudget(t *testing.T) {
	cases := map[string]BudgetTier{
		"Low":            BudgetLow,
		"low-cost":       BudgetLow,
		"Medium":         BudgetMedium,
		"HIGH":           BudgetHigh,
		"":               BudgetHigh,
		"premium luxury": BudgetHigh,
	}
	for in, want := range cases {
		if got := NormalizeBudget(in); got != want {
			t.Errorf("NormalizeBudget(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestPlaceVisitHoursDefault(t *testing.T) {
	if got := (Place{VisitHrs: 0}).VisitHours(); got != DefaultVisitHours {
		t.Fatalf("visit hours = %v, want %v", got, DefaultVisitHours)
	}
	if got := (Place{VisitHrs: -1}).VisitHours(); got != DefaultVisitHours {
		t.Fatalf("visit hours = %v, want %v", got, DefaultVisitHours)
	}
	if got := (Place{VisitHrs: 1.5}).VisitHours(); got != 1.5 {
		t.Fatalf("visit hours = %v, want 1.5", got)
	}
}
