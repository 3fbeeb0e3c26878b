package travel

import (
	"context"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/ports"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Cache keys round coordinates so that float noise maps onto one entry.
const cacheKeyDecimals = 5

// Stats are the estimator's observability counters.
type Stats struct {
	Attempts  int64 `json:"attempts"`
	Successes int64 `json:"successes"`
	CacheHits int64 `json:"cache_hits"`
	Fallbacks int64 `json:"fallbacks"`
}

// Counters are shared between request-scoped estimators so that the
// process reports totals.
type Counters struct {
	attempts  atomic.Int64
	successes atomic.Int64
	cacheHits atomic.Int64
	fallbacks atomic.Int64
}

func (c *Counters) Snapshot() Stats {
	return Stats{
		Attempts:  c.attempts.Load(),
		Successes: c.successes.Load(),
		CacheHits: c.cacheHits.Load(),
		Fallbacks: c.fallbacks.Load(),
	}
}

// LiveEstimator answers from the cache, then from the remote source, and
// degrades to the deterministic estimate on any failure.
//
// Only successful remote results are cached; fallback estimates are
// recomputed on every call. The original failure is kept in Error.
type LiveEstimator struct {
	source    ports.TravelTimeSource
	cache     ports.EstimateCache
	fallback  ports.TravelTimeEstimator
	namespace string
	counters  *Counters
}

type LiveOption func(*LiveEstimator)

// WithNamespace prefixes cache keys, e.g. with the traffic model.
func WithNamespace(ns string) LiveOption {
	return func(e *LiveEstimator) { e.namespace = ns }
}

func WithCounters(c *Counters) LiveOption {
	return func(e *LiveEstimator) { e.counters = c }
}

func WithFallback(f ports.TravelTimeEstimator) LiveOption {
	return func(e *LiveEstimator) { e.fallback = f }
}

func NewLiveEstimator(source ports.TravelTimeSource, cache ports.EstimateCache, opts ...LiveOption) *LiveEstimator {
	e := &LiveEstimator{
		source:   source,
		cache:    cache,
		fallback: NewDistanceEstimator(),
		counters: &Counters{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *LiveEstimator) Stats() Stats { return e.counters.Snapshot() }

// CacheKey is direction-sensitive: A->B and B->A are distinct entries.
func CacheKey(namespace string, origin, destination domain.Coordinates) string {
	return fmt.Sprintf("%s|%s|%s",
		namespace,
		origin.Rounded(cacheKeyDecimals),
		destination.Rounded(cacheKeyDecimals),
	)
}

func (e *LiveEstimator) Estimate(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	class domain.TravelClass,
) domain.TravelEstimate {
	key := CacheKey(e.namespace, origin, destination)

	if e.cache != nil {
		cached, ok, err := e.cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("estimate cache read failed")
		}
		if ok {
			e.counters.cacheHits.Add(1)
			cached.Source = domain.SourceCache
			return cached
		}
	}

	if e.source == nil {
		return e.degrade(ctx, origin, destination, class, "")
	}

	e.counters.attempts.Add(1)
	est, err := e.source.Fetch(ctx, origin, destination)
	if err != nil {
		reason := FailureReason(err)
		log.Info().Err(err).Str("reason", reason).Str("class", string(class)).Msg("live travel lookup failed, using distance estimate")
		return e.degrade(ctx, origin, destination, class, reason)
	}
	e.counters.successes.Add(1)

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, est); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("estimate cache write failed")
		}
	}

	return est
}

func (e *LiveEstimator) degrade(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	class domain.TravelClass,
	reason string,
) domain.TravelEstimate {
	e.counters.fallbacks.Add(1)
	est := e.fallback.Estimate(ctx, origin, destination, class)
	est.Error = reason
	return est
}
