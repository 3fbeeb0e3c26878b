package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-service/internal/adapters/catalog"
	"itinerary-service/internal/config"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/db"
	"itinerary-service/internal/platform/obs"
	"strings"

	"github.com/rs/zerolog/log"
)

// dbtool imports the CSV catalog into Postgres or SQLite so that the
// server can run with CATALOG_SOURCE=postgres or sqlite.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	obs.SetupLogging(cfg.LogLevel, cfg.LogFormat)

	driver := strings.ToLower(config.Get("DB_DRIVER", "postgres"))
	csvPath := config.Get("SEED_PATH", cfg.CatalogPath)

	ctx := context.Background()
	if err := run(ctx, driver, csvPath, cfg); err != nil {
		log.Fatal().Err(err).Str("driver", driver).Msg("import failed")
	}
}

func run(ctx context.Context, driver, csvPath string, cfg config.Config) error {
	places, err := catalog.NewCSVCatalog(csvPath).ListPlaces(ctx)
	if err != nil {
		return err
	}
	// Reject catalogs the server would refuse to load.
	if _, err := domain.NewCatalog(places); err != nil {
		return fmt.Errorf("validate %q: %w", csvPath, err)
	}

	var conn *sql.DB
	switch driver {
	case "postgres":
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required")
		}
		conn, err = db.Open(cfg.DatabaseURL)
	case "sqlite":
		conn, err = db.OpenSQLite(cfg.DBPath)
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Info().Msg("Initializing database schema...")
	if driver == "postgres" {
		err = catalog.InitPostgresSchema(ctx, conn)
	} else {
		err = catalog.InitSchema(ctx, conn)
	}
	if err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Info().Msg("Schema ready.")

	log.Info().Int("places", len(places)).Str("source", csvPath).Msg("Seeding database...")
	if driver == "postgres" {
		err = catalog.SeedPostgresPlaces(ctx, conn, places)
	} else {
		err = catalog.SeedPlaces(ctx, conn, places)
	}
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Info().Msg("Seeding complete.")

	return nil
}
