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

// SQLite backed cache of live estimates. Rows carry their own expiry,
// which is checked on read; expired rows are overwritten on the next Set.
type SqliteEstimateCache struct {
	DB  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewSqliteEstimateCache(db *sql.DB, ttl time.Duration) *SqliteEstimateCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SqliteEstimateCache{DB: db, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *SqliteEstimateCache) WithClock(now func() time.Time) *SqliteEstimateCache {
	s.now = now
	return s
}

// Create the estimate_cache table if missing.
func (s *SqliteEstimateCache) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("estimate cache: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS estimate_cache (
        cache_key TEXT PRIMARY KEY,
        payload TEXT NOT NULL,
        expires_at INTEGER NOT NULL
    );
	`
	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init estimate cache schema: %w", err)
	}
	return nil
}

// Fetch a cached estimate if present and not expired.
func (s *SqliteEstimateCache) Get(ctx context.Context, key string) (_ domain.TravelEstimate, _ bool, err error) {
	defer obs.Time(ctx, "estimate.cache.Get")(&err)

	if s.DB == nil {
		return domain.TravelEstimate{}, false, errors.New("estimate cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return domain.TravelEstimate{}, false, errors.New("get estimate cache: key must not be empty")
	}

	q := `
	SELECT
        payload,
        expires_at
    FROM estimate_cache
    WHERE cache_key = ?;
	`

	var payload string
	var expiresAt int64
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TravelEstimate{}, false, nil
	}
	if err != nil {
		return domain.TravelEstimate{}, false, fmt.Errorf("get estimate cache: query estimate_cache table: %w", err)
	}

	if s.now().UnixMilli() >= expiresAt {
		return domain.TravelEstimate{}, false, nil
	}

	var est domain.TravelEstimate
	if err := json.Unmarshal([]byte(payload), &est); err != nil {
		return domain.TravelEstimate{}, false, fmt.Errorf("get estimate cache: decode payload: %w", err)
	}

	return est, true, nil
}

// Store an estimate, replacing any previous row for the key.
func (s *SqliteEstimateCache) Set(ctx context.Context, key string, est domain.TravelEstimate) error {
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
	INSERT OR REPLACE INTO estimate_cache (
        cache_key,
        payload,
        expires_at
    )
    VALUES (?, ?, ?);
	`
	expiresAt := s.now().Add(s.ttl).UnixMilli()
	if _, err := s.DB.ExecContext(ctx, q, key, string(payload), expiresAt); err != nil {
		return fmt.Errorf("insert estimate cache key=%q: %w", key, err)
	}

	return nil
}

// Delete rows whose expiry has passed. Returns the number removed.
func (s *SqliteEstimateCache) Purge(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("estimate cache: db is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM estimate_cache WHERE expires_at <= ?;`, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("purge estimate cache: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
