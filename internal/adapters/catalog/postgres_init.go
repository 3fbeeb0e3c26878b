package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
)

// Initialize the Postgres catalog schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		place_name TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		state TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		visit_hours DOUBLE PRECISION NOT NULL,
		opening_time TEXT NOT NULL DEFAULT '',
		closing_time TEXT NOT NULL DEFAULT '',
		priority INTEGER NOT NULL,
		budget TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_city_position
    ON places(city, position);
	`

	for i, stmt := range []string{createPlacesQuery, createIndexQuery} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}
	return nil
}

// Populate the Postgres catalog with places, keeping their order.
func SeedPostgresPlaces(ctx context.Context, db *sql.DB, places []domain.Place) error {
	query := `
	INSERT INTO places (
		place_name, position, state, city, category, latitude, longitude,
		visit_hours, opening_time, closing_time, priority, budget
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (place_name) DO UPDATE
	SET position = EXCLUDED.position,
		state = EXCLUDED.state,
		city = EXCLUDED.city,
		category = EXCLUDED.category,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		visit_hours = EXCLUDED.visit_hours,
		opening_time = EXCLUDED.opening_time,
		closing_time = EXCLUDED.closing_time,
		priority = EXCLUDED.priority,
		budget = EXCLUDED.budget;
	`
	return seedPlaces(ctx, db, query, places)
}
