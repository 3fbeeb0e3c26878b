package services

import (
	"context"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/ports"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"
)

// PrefetchLegs estimates, concurrently, the intra-city legs between
// consecutive places of a greedy-ordered pool. Those are the legs the walk
// requests first, so a caching estimator answers them from cache later.
// It returns the number of legs estimated.
func PrefetchLegs(
	ctx context.Context,
	estimator ports.TravelTimeEstimator,
	places []domain.Place,
	workers int,
) int {
	if len(places) < 2 || workers < 1 {
		return 0
	}

	var done atomic.Int64
	p := pool.New().WithMaxGoroutines(workers)
	for i := 1; i < len(places); i++ {
		from, to := places[i-1].Location, places[i].Location
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			estimator.Estimate(ctx, from, to, domain.IntraCity)
			done.Add(1)
		})
	}
	p.Wait()

	return int(done.Load())
}
