// Package app is the composition root shared by the server and the CLI.
// It wires concrete adapters (catalog source, estimate cache, travel
// provider) behind ports and builds the itinerary generator.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-service/internal/adapters/cache"
	"itinerary-service/internal/adapters/catalog"
	"itinerary-service/internal/adapters/travel"
	"itinerary-service/internal/config"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/db"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
	"itinerary-service/internal/services"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// App holds the long-lived components of one process.
type App struct {
	Catalog   *domain.Catalog
	Generator *services.Generator
	Counters  *travel.Counters

	closers []func() error
}

// Build loads the catalog once and wires the generator.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{Counters: &travel.Counters{}}

	policyFile, err := config.LoadPolicyFile(cfg.PolicyPath)
	if err != nil {
		return nil, fmt.Errorf("build app: %w", err)
	}

	source, err := a.catalogSource(cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build app: %w", err)
	}

	cat, err := LoadCatalog(ctx, source)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build app: %w", err)
	}
	a.Catalog = cat

	estimateCache, err := a.estimateCache(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build app: %w", err)
	}

	fallback := travel.NewDistanceEstimator()
	ApplySpeeds(fallback, policyFile.Speeds)

	factory := EstimatorFactory(cfg, estimateCache, fallback, a.Counters)

	gen := services.NewGenerator(cat, PoliciesFrom(policyFile), factory)
	if len(policyFile.Tiers) > 0 {
		gen.Transition.Tiers = policyFile.Tiers
	}
	gen.PrefetchWorkers = cfg.PrefetchWorkers
	a.Generator = gen

	log.Info().
		Int("places", cat.Len()).
		Int("cities", len(cat.Cities())).
		Str("catalog", cfg.CatalogSource).
		Str("estimate_cache", cfg.EstimateCache).
		Bool("live_travel", cfg.TravelAPIKey != "").
		Msg("itinerary service ready")

	return a, nil
}

// Close releases database and redis connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) catalogSource(cfg config.Config) (ports.PlaceCatalog, error) {
	switch cfg.CatalogSource {
	case "", "csv":
		return catalog.NewCSVCatalog(cfg.CatalogPath), nil
	case "sqlite":
		conn, err := a.sqlite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return catalog.NewSQLPlaceRepository(conn), nil
	case "postgres":
		conn, err := a.postgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return catalog.NewSQLPlaceRepository(conn), nil
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
}

func (a *App) estimateCache(ctx context.Context, cfg config.Config) (ports.EstimateCache, error) {
	switch cfg.EstimateCache {
	case "", "memory":
		return cache.NewMemoryEstimateCache(cfg.CacheTTL), nil
	case "none":
		return nil, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDatabase,
		})
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis %q: %w", cfg.RedisAddress, err)
		}
		return cache.NewRedisEstimateCache(client, cfg.CacheTTL), nil
	case "sqlite":
		conn, err := a.sqlite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		c := cache.NewSqliteEstimateCache(conn, cfg.CacheTTL)
		if err := c.InitSchema(ctx); err != nil {
			return nil, err
		}
		return c, nil
	case "postgres":
		conn, err := a.postgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		c := cache.NewSQLEstimateCache(conn, cfg.CacheTTL)
		if err := c.InitSchema(ctx); err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown ESTIMATE_CACHE %q", cfg.EstimateCache)
	}
}

func (a *App) sqlite(path string) (*sql.DB, error) {
	conn, err := db.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, conn.Close)
	return conn, nil
}

func (a *App) postgres(url string) (*sql.DB, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	conn, err := db.Open(url)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, conn.Close)
	return conn, nil
}

// LoadCatalog reads every place from the source into an immutable snapshot.
func LoadCatalog(ctx context.Context, source ports.PlaceCatalog) (_ *domain.Catalog, err error) {
	defer obs.Time(ctx, "catalog.Load")(&err)

	places, err := source.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(places) == 0 {
		return nil, errors.New("load catalog: catalog is empty")
	}
	cat, err := domain.NewCatalog(places)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}
