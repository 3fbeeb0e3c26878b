package api

import (
	"itinerary-service/internal/adapters/travel"
	"itinerary-service/internal/api/handlers"
	"itinerary-service/internal/domain"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(gen handlers.Generator, catalog *domain.Catalog, counters *travel.Counters, defaultTrafficModel string) http.Handler {
	mux := http.NewServeMux()

	itineraryHandler := &handlers.ItineraryHandler{
		Generator:           gen,
		DefaultTrafficModel: defaultTrafficModel,
	}
	catalogHandler := &handlers.CatalogHandler{Catalog: catalog}
	statsHandler := &handlers.StatsHandler{Counters: counters}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/itineraries", itineraryHandler.Create)
	mux.HandleFunc("/cities", catalogHandler.Cities)
	mux.HandleFunc("/stats/travel", statsHandler.Travel)

	return requestIDMiddleware(loggingMiddleware(mux))
}
