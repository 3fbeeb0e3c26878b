package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/services"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Generator is the part of services.Generator the handler needs.
type Generator interface {
	Generate(ctx context.Context, req services.GenerateRequest) (*services.GenerateResult, error)
}

type ItineraryHandler struct {
	Generator Generator
	// DefaultTrafficModel applies when a request names none.
	DefaultTrafficModel string
}

// Create builds an itinerary for the posted trip parameters.
func (h *ItineraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var body dto.ItineraryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(body.StartCity) == "" {
		writeError(w, r, http.StatusBadRequest, "start_city is required")
		return
	}
	model := body.TrafficModel
	if model == "" {
		model = h.DefaultTrafficModel
	}

	req, err := services.RequestParams{
		StartCity:    body.StartCity,
		NumDays:      body.NumDays,
		Budget:       body.Budget,
		Companion:    body.Companion,
		DayStart:     body.DayStart,
		DayEnd:       body.DayEnd,
		TrafficModel: model,
		Date:         body.Date,
		APIKey:       body.APIKey,
	}.Build()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Generator.Generate(r.Context(), req)
	switch {
	case errors.Is(err, services.ErrUnknownCity), errors.Is(err, services.ErrInvalidRequest):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Str("req_id", obs.RequestID(r.Context())).Msg("generate itinerary failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.NewItineraryResponse(result.Itinerary, result.Traffic, result.Stats, result.FinalCity)
	res.RequestID = obs.RequestID(r.Context())

	writeJSON(w, r, http.StatusOK, res)
}
