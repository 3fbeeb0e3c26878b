package app

import (
	"context"
	"itinerary-service/internal/adapters/travel"
	"itinerary-service/internal/config"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = `state,city,place_name,place_type,latitude,longitude,avg_visit_duration_hr,visit_priority,budget_category
Rajasthan,Jaipur,Amber Fort,sightseeing,26.9855,75.8513,2,5,low
Rajasthan,Jaipur,Rooftop Bar,bar,26.9124,75.7873,1,5,low
Rajasthan,Udaipur,Lake Pichola,sightseeing,24.5720,73.6790,2,4,low
`

const policyYAML = `
companions:
  solo:
    exclude_categories: [bar]
budgets:
  low: [low, medium]
speeds:
  intra_city_kmh: 20
  inter_city_kmh: 50
priority_tiers: [5, 1]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testConfig(t *testing.T) config.Config {
	return config.Config{
		CatalogSource: "csv",
		CatalogPath:   writeFile(t, "places.csv", catalogCSV),
		DBPath:        ":memory:",
		TravelTimeout: time.Second,
		TrafficModel:  "best_guess",
		EstimateCache: "memory",
		CacheTTL:      15 * time.Minute,
	}
}

func TestBuildWithCSVCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.PolicyPath = writeFile(t, "policy.yaml", policyYAML)

	a, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.Equal(t, 3, a.Catalog.Len())
	assert.Equal(t, []int{5, 1}, a.Generator.Transition.Tiers)

	res, err := a.Generator.Generate(context.Background(), services.GenerateRequest{
		StartCity:    "Jaipur",
		NumDays:      1,
		Budget:       domain.BudgetLow,
		Companion:    domain.CompanionSolo,
		DayStart:     domain.TimeOfDay{Hour: 9},
		DayEnd:       domain.TimeOfDay{Hour: 21},
		TrafficModel: domain.TrafficBestGuess,
	})
	require.NoError(t, err)
	assert.NotContains(t, res.Visited, "Rooftop Bar")
	assert.Contains(t, res.Visited, "Amber Fort")
}

func TestBuildWithSqliteCache(t *testing.T) {
	cfg := testConfig(t)
	cfg.EstimateCache = "sqlite"

	a, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, a.Close())
}

func TestBuildWithRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.EstimateCache = "redis"
	cfg.RedisAddress = mr.Addr()

	a, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, a.Close())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing catalog", func(c *config.Config) { c.CatalogPath = filepath.Join(t.TempDir(), "none.csv") }},
		{"unknown catalog source", func(c *config.Config) { c.CatalogSource = "mongo" }},
		{"unknown cache", func(c *config.Config) { c.EstimateCache = "memcached" }},
		{"postgres without url", func(c *config.Config) { c.CatalogSource = "postgres" }},
		{"missing policy file", func(c *config.Config) { c.PolicyPath = filepath.Join(t.TempDir(), "none.yaml") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)

			_, err := Build(context.Background(), cfg)
			assert.Error(t, err)
		})
	}
}

func TestEstimatorFactory(t *testing.T) {
	fallback := travel.NewDistanceEstimator()
	counters := &travel.Counters{}

	factory := EstimatorFactory(config.Config{TravelTimeout: time.Second}, nil, fallback, counters)
	assert.Same(t, fallback, factory(domain.TrafficBestGuess, ""))

	live, ok := factory(domain.TrafficNone, "request-key").(*travel.LiveEstimator)
	require.True(t, ok)
	assert.NotNil(t, live)

	withKey := EstimatorFactory(config.Config{TravelAPIKey: "configured"}, nil, fallback, counters)
	_, ok = withKey(domain.TrafficBestGuess, "").(*travel.LiveEstimator)
	assert.True(t, ok)
}

func TestPoliciesFrom(t *testing.T) {
	p := PoliciesFrom(config.PolicyFile{
		Companions: map[string]config.CompanionRule{
			"Friends": {ExcludeCategories: []string{"casino"}},
			"pets":    {ExcludeCategories: []string{"zoo"}},
		},
		Budgets: map[string][]string{"medium": {"low"}},
	})

	assert.Equal(t, []string{"casino"}, p.Companion[domain.CompanionFriends].ExcludeCategorySubstrings)
	assert.Equal(t, services.DefaultPolicies().Companion[domain.CompanionFamily], p.Companion[domain.CompanionFamily])
	assert.Equal(t, []domain.BudgetTier{domain.BudgetLow}, p.Budget[domain.BudgetMedium].Allowed)
	assert.Len(t, p.Companion, 3)
}

func TestApplySpeeds(t *testing.T) {
	d := travel.NewDistanceEstimator()
	ApplySpeeds(d, nil)
	assert.Equal(t, travel.DefaultIntraCityKmh, d.IntraCityKmh)

	ApplySpeeds(d, &config.SpeedRule{InterCityKmh: 50})
	assert.Equal(t, travel.DefaultIntraCityKmh, d.IntraCityKmh)
	assert.Equal(t, 50.0, d.InterCityKmh)
}
