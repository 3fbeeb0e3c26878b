package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
)

// Initialize the SQLite catalog schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		place_name TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		state TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		visit_hours REAL NOT NULL,
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

	statements := []string{
		createPlacesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite catalog with places, keeping their order.
func SeedPlaces(ctx context.Context, db *sql.DB, places []domain.Place) error {
	query := `
	INSERT OR REPLACE INTO places (
		place_name,
		position,
		state,
		city,
		category,
		latitude,
		longitude,
		visit_hours,
		opening_time,
		closing_time,
		priority,
		budget
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	return seedPlaces(ctx, db, query, places)
}

func seedPlaces(ctx context.Context, db *sql.DB, query string, places []domain.Place) error {
	if db == nil {
		return errors.New("seed places: DB is nil")
	}

	for i, p := range places {
		if p.Name == "" {
			return fmt.Errorf("seed places: item at index %d: place name cannot be empty", i+1)
		}
		if p.City == "" {
			return fmt.Errorf("seed places: item %q: city cannot be empty", p.Name)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range places {
		if _, err := stmt.ExecContext(ctx,
			p.Name, i, p.State, p.City, p.Category,
			p.Location.Lat, p.Location.Lon, p.VisitHours(),
			p.OpenTime, p.CloseTime, p.Priority, string(p.Budget),
		); err != nil {
			return fmt.Errorf("seed places: insert place_name=%q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}
