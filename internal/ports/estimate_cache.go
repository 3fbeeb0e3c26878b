package ports

import (
	"context"
	"itinerary-service/internal/domain"
)

// Time-bounded store of successful live estimates.
// Expired entries must be reported as misses.
type EstimateCache interface {
	Get(ctx context.Context, key string) (domain.TravelEstimate, bool, error)
	Set(ctx context.Context, key string, est domain.TravelEstimate) error
}
