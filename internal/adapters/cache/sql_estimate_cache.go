package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"strings"
	"time"
)

// SQLEstimateCache is a Postgres-backed estimate cache.
type SQLEstimateCache struct {
	DB  *sql.DB
	ttl time.Duration
}

func NewSQLEstimateCache(db *sql.DB, ttl time.Duration) *SQLEstimateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SQLEstimateCache{DB: db, ttl: ttl}
}

// Create the estimate_cache table if missing.
func (s *SQLEstimateCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("estimate cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS estimate_cache (
        cache_key TEXT PRIMARY KEY,
        payload JSONB NOT NULL,
        expires_at TIMESTAMPTZ NOT NULL
    );
	`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init estimate cache schema: %w", err)
	}
	return nil
}

// Fetch a cached estimate if present and not expired.
func (s *SQLEstimateCache) Get(ctx context.Context, key string) (_ domain.TravelEstimate, _ bool, err error) {
	defer obs.Time(ctx, "estimate.cache.Get")(&err)

	if s.DB == nil {
		return domain.TravelEstimate{}, false, errors.New("estimate cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return domain.TravelEstimate{}, false, errors.New("get estimate cache: key must not be empty")
	}

	q := `
	SELECT payload
    FROM estimate_cache
    WHERE cache_key = $1
        AND expires_at > now();
	`

	var payload []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TravelEstimate{}, false, nil
	}
	if err != nil {
		return domain.TravelEstimate{}, false, fmt.Errorf("get estimate cache: query estimate_cache table: %w", err)
	}

	var est domain.TravelEstimate
	if err := json.Unmarshal(payload, &est); err != nil {
		return domain.TravelEstimate{}, false, fmt.Errorf("get estimate cache: decode payload: %w", err)
	}

	return est, true, nil
}

// Store an estimate, replacing any previous row for the key.
func (s *SQLEstimateCache) Set(ctx context.Context, key string, est domain.TravelEstimate) error {
	if s.DB == nil {
		return errors.New("estimate cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert estimate cache: key must not be empty")
	}

	payload, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("insert estimate cache: encode: %w", err)
	}

	q := `
	INSERT INTO estimate_cache (cache_key, payload, expires_at)
    VALUES ($1, $2, $3)
	ON CONFLICT (cache_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		expires_at = EXCLUDED.expires_at;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, payload, time.Now().Add(s.ttl)); err != nil {
		return fmt.Errorf("insert estimate cache key=%q: %w", key, err)
	}

	return nil
}
