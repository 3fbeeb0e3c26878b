package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"time"

	gocache "github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "travel_estimate:"

// RedisEstimateCache shares live estimates between processes through Redis.
// Expiry is delegated to Redis via the store expiration.
type RedisEstimateCache struct {
	cache *gocache.Cache[string]
}

func NewRedisEstimateCache(client *redis.Client, ttl time.Duration) *RedisEstimateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	redisStore := redisstore.NewRedis(client, store.WithExpiration(ttl))
	return &RedisEstimateCache{cache: gocache.New[string](redisStore)}
}

func (c *RedisEstimateCache) Get(ctx context.Context, key string) (domain.TravelEstimate, bool, error) {
	raw, err := c.cache.Get(ctx, redisKeyPrefix+key)
	if err != nil {
		if errors.Is(err, redis.Nil) || isNotFound(err) {
			return domain.TravelEstimate{}, false, nil
		}
		return domain.TravelEstimate{}, false, fmt.Errorf("get redis estimate cache: %w", err)
	}

	var est domain.TravelEstimate
	if err := json.Unmarshal([]byte(raw), &est); err != nil {
		return domain.TravelEstimate{}, false, fmt.Errorf("get redis estimate cache: decode %q: %w", key, err)
	}
	return est, true, nil
}

func (c *RedisEstimateCache) Set(ctx context.Context, key string, est domain.TravelEstimate) error {
	b, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("set redis estimate cache: encode: %w", err)
	}
	if err := c.cache.Set(ctx, redisKeyPrefix+key, string(b)); err != nil {
		return fmt.Errorf("set redis estimate cache: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nf *store.NotFound
	return errors.As(err, &nf)
}
