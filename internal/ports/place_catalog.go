package ports

import (
	"context"
	"itinerary-service/internal/domain"
)

// Port: a boundary for retrieving catalog places from a data source.
type PlaceCatalog interface {
	// Retrieve all places in catalog order.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
