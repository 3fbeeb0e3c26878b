package services

import (
	"context"
	"itinerary-service/internal/domain"
	"sync"
	"testing"
	"time"
)

// fixedEstimator answers every leg with a constant duration per class.
type fixedEstimator struct {
	mu    sync.Mutex
	intra float64
	inter float64
	calls []domain.TravelClass
}

func (f *fixedEstimator) Estimate(_ context.Context, _, _ domain.Coordinates, class domain.TravelClass) domain.TravelEstimate {
	f.mu.Lock()
	f.calls = append(f.calls, class)
	f.mu.Unlock()

	h := f.intra
	if class == domain.InterCity {
		h = f.inter
	}
	return domain.TravelEstimate{
		Success:      true,
		Hours:        h,
		BaseHours:    h,
		DurationText: domain.FormatHours(h),
		Congestion:   domain.CongestionNoData,
		Source:       domain.SourceFallback,
	}
}

func place(name, city string, priority int, lon float64) domain.Place {
	return domain.Place{
		Name:     name,
		City:     city,
		State:    "S",
		Category: "sightseeing",
		Location: domain.Coordinates{Lat: 0, Lon: lon},
		VisitHrs: 2,
		Priority: priority,
		Budget:   domain.BudgetLow,
	}
}

func mustCatalog(t *testing.T, places ...domain.Place) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog(places)
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	return c
}

// scenarioCatalog is city A with priorities 5,3,1 and city B with 4,4.
func scenarioCatalog(t *testing.T) *domain.Catalog {
	return mustCatalog(t,
		place("a5", "A", 5, 0),
		place("a3", "A", 3, 0.01),
		place("a1", "A", 1, 0.02),
		place("b4", "B", 4, 1),
		place("b4-2", "B", 4, 1.01),
	)
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func newWalker(c *domain.Catalog, est *fixedEstimator) *DayWalker {
	return &DayWalker{
		Catalog:    c,
		Selector:   NewGreedySelector(c, DefaultPolicies()),
		Transition: NewCityTransition(c),
		Estimator:  est,
	}
}
