package handlers

import (
	"itinerary-service/internal/adapters/travel"
	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/domain"
	"net/http"
)

// CatalogHandler exposes read-only views of the loaded catalog.
type CatalogHandler struct {
	Catalog *domain.Catalog
}

// Cities lists the catalog cities grouped by state.
func (h *CatalogHandler) Cities(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	infos := h.Catalog.CitiesByState()
	res := dto.ListCitiesResponse{Cities: make([]dto.CityResponse, 0, len(infos))}
	for _, c := range infos {
		res.Cities = append(res.Cities, dto.CityResponse{State: c.State, City: c.City, Places: c.Places})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// StatsHandler reports the travel estimator counters of the process.
type StatsHandler struct {
	Counters *travel.Counters
}

func (h *StatsHandler) Travel(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, http.StatusOK, h.Counters.Snapshot())
}
