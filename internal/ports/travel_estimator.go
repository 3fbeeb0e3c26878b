package ports

import (
	"context"
	"itinerary-service/internal/domain"
)

// Contract for estimating travel time between two points.
// Implementations never fail: any lookup problem degrades to a
// deterministic estimate with the cause recorded on the result.
type TravelTimeEstimator interface {
	Estimate(ctx context.Context, origin, destination domain.Coordinates, class domain.TravelClass) domain.TravelEstimate
}

// Port: a single remote travel-time lookup.
type TravelTimeSource interface {
	// Return the provider's estimate for one origin/destination pair.
	Fetch(ctx context.Context, origin, destination domain.Coordinates) (domain.TravelEstimate, error)
}
