package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
)

const listPlacesQuery = `
	SELECT
		place_name,
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
	FROM places
	ORDER BY position;
	`

// SQL-backed implementation of the PlaceCatalog port. The same query runs
// on SQLite and Postgres.
type SQLPlaceRepository struct{ DB *sql.DB }

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

// Return all places stored in the database, in catalog order.
func (s *SQLPlaceRepository) ListPlaces(ctx context.Context) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "catalog.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sql place repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, listPlacesQuery)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]domain.Place, 0, 64)
	for rows.Next() {
		var p domain.Place
		var budget string
		err := rows.Scan(
			&p.Name, &p.State, &p.City, &p.Category,
			&p.Location.Lat, &p.Location.Lon, &p.VisitHrs,
			&p.OpenTime, &p.CloseTime, &p.Priority, &budget,
		)
		if err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		p.Budget = domain.NormalizeBudget(budget)
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}
