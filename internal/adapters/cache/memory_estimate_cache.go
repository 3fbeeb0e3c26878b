package cache

import (
	"context"
	"itinerary-service/internal/domain"
	"sync"
	"time"
)

// DefaultTTL is how long a live estimate stays valid.
const DefaultTTL = 15 * time.Minute

type memoryEntry struct {
	est      domain.TravelEstimate
	storedAt time.Time
}

// MemoryEstimateCache is a process-local estimate cache. Expiry is
// checked on read; expired entries are dropped lazily.
//
// The cache is safe for concurrent use.
type MemoryEstimateCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryEstimateCache(ttl time.Duration) *MemoryEstimateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryEstimateCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (c *MemoryEstimateCache) WithClock(now func() time.Time) *MemoryEstimateCache {
	c.now = now
	return c
}

func (c *MemoryEstimateCache) Get(_ context.Context, key string) (domain.TravelEstimate, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.TravelEstimate{}, false, nil
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return domain.TravelEstimate{}, false, nil
	}
	return e.est, true, nil
}

func (c *MemoryEstimateCache) Set(_ context.Context, key string, est domain.TravelEstimate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{est: est, storedAt: c.now()}
	return nil
}

func (c *MemoryEstimateCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
