package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "CATALOG_SOURCE", "ESTIMATE_CACHE", "TRAVEL_TIMEOUT", "ESTIMATE_CACHE_TTL", "PREFETCH_WORKERS", "TRAVEL_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "csv", cfg.CatalogSource)
	assert.Equal(t, "memory", cfg.EstimateCache)
	assert.Equal(t, 10*time.Second, cfg.TravelTimeout)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 0, cfg.PrefetchWorkers)
	assert.Empty(t, cfg.TravelAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_SOURCE", "SQLite")
	t.Setenv("ESTIMATE_CACHE_TTL", "5m")
	t.Setenv("PREFETCH_WORKERS", "4")
	t.Setenv("REDIS_DATABASE", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.CatalogSource)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 4, cfg.PrefetchWorkers)
	assert.Equal(t, 2, cfg.RedisDatabase)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("TRAVEL_TIMEOUT", "ten seconds")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TRAVEL_TIMEOUT", "")
	t.Setenv("PREFETCH_WORKERS", "many")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadPolicyFile(t *testing.T) {
	pf, err := LoadPolicyFile("")
	require.NoError(t, err)
	assert.Nil(t, pf.Speeds)

	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
companions:
  family:
    exclude_categories: [pub, casino]
budgets:
  medium: [low, medium]
speeds:
  inter_city_kmh: 45
priority_tiers: [5, 3]
`), 0o600))

	pf, err = LoadPolicyFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pub", "casino"}, pf.Companions["family"].ExcludeCategories)
	assert.Equal(t, []string{"low", "medium"}, pf.Budgets["medium"])
	require.NotNil(t, pf.Speeds)
	assert.Equal(t, 45.0, pf.Speeds.InterCityKmh)
	assert.Equal(t, []int{5, 3}, pf.Tiers)

	require.NoError(t, os.WriteFile(path, []byte("speeds: [1, 2"), 0o600))
	_, err = LoadPolicyFile(path)
	assert.Error(t, err)
}
