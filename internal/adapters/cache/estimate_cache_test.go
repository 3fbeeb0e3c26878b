package cache

import (
	"context"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/db"
	"itinerary-service/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.EstimateCache = (*MemoryEstimateCache)(nil)
	_ ports.EstimateCache = (*RedisEstimateCache)(nil)
	_ ports.EstimateCache = (*SqliteEstimateCache)(nil)
	_ ports.EstimateCache = (*SQLEstimateCache)(nil)
)

func sampleEstimate() domain.TravelEstimate {
	km := 12.5
	return domain.TravelEstimate{
		Success:        true,
		Hours:          0.55,
		BaseHours:      0.5,
		DurationText:   "33 mins",
		DistanceKm:     &km,
		Congestion:     domain.CongestionModerate,
		DelayPercent:   10,
		HasTrafficData: true,
		Source:         domain.SourceLive,
	}
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestMemoryEstimateCacheExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	c := NewMemoryEstimateCache(15 * time.Minute).WithClock(clock.Now)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", sampleEstimate()))

	clock.Advance(14 * time.Minute)
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleEstimate(), got)

	clock.Advance(time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryEstimateCacheDefaultTTL(t *testing.T) {
	c := NewMemoryEstimateCache(0)
	assert.Equal(t, DefaultTTL, c.ttl)
}

func TestRedisEstimateCacheRoundTripAndExpiry(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewRedisEstimateCache(client, 15*time.Minute)

	_, ok, err := c.Get(ctx, "best_guess|1.00000,2.00000|3.00000,4.00000")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "best_guess|1.00000,2.00000|3.00000,4.00000", sampleEstimate()))
	assert.True(t, mr.Exists(redisKeyPrefix+"best_guess|1.00000,2.00000|3.00000,4.00000"))

	got, ok, err := c.Get(ctx, "best_guess|1.00000,2.00000|3.00000,4.00000")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleEstimate(), got)

	mr.FastForward(16 * time.Minute)

	_, ok, err = c.Get(ctx, "best_guess|1.00000,2.00000|3.00000,4.00000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisEstimateCacheReportsBackendErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	c := NewRedisEstimateCache(client, time.Minute)

	mr.Close()

	_, ok, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func newSqliteCache(t *testing.T, clock *fakeClock) *SqliteEstimateCache {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	c := NewSqliteEstimateCache(conn, 15*time.Minute).WithClock(clock.Now)
	require.NoError(t, c.InitSchema(context.Background()))
	return c
}

func TestSqliteEstimateCacheExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	c := newSqliteCache(t, clock)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", sampleEstimate()))

	clock.Advance(10 * time.Minute)
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleEstimate(), got)

	clock.Advance(6 * time.Minute)
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := c.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSqliteEstimateCacheReplacesRows(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	c := newSqliteCache(t, clock)

	first := sampleEstimate()
	second := sampleEstimate()
	second.Hours = 0.75

	require.NoError(t, c.Set(ctx, "k", first))
	require.NoError(t, c.Set(ctx, "k", second))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.75, got.Hours)

	assert.Error(t, c.Set(ctx, " ", first))
}
