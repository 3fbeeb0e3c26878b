package dto

import (
	"itinerary-service/internal/domain"
	"time"
)

type ItineraryRequest struct {
	StartCity    string `json:"start_city"`
	NumDays      int    `json:"num_days"`
	Budget       string `json:"budget"`
	Companion    string `json:"companion"`
	DayStart     string `json:"day_start"`
	DayEnd       string `json:"day_end"`
	TrafficModel string `json:"traffic_model"`
	Date         string `json:"date"`
	APIKey       string `json:"api_key"`
}

type TravelResponse struct {
	Hours          float64                `json:"hours"`
	DurationText   string                 `json:"duration_text"`
	DistanceKm     *float64               `json:"distance_km,omitempty"`
	Congestion     domain.CongestionLevel `json:"congestion"`
	DelayPercent   float64                `json:"delay_percent"`
	DelayMinutes   float64                `json:"delay_minutes"`
	HasTrafficData bool                   `json:"has_traffic_data"`
	Source         domain.EstimateSource  `json:"source"`
	Error          string                 `json:"error,omitempty"`
}

type ActivityResponse struct {
	Kind     domain.ActivityKind `json:"kind"`
	Title    string              `json:"title"`
	Start    time.Time           `json:"start"`
	End      time.Time           `json:"end"`
	Minutes  int                 `json:"minutes"`
	City     string              `json:"city,omitempty"`
	Category string              `json:"category,omitempty"`
	Opens    string              `json:"opens,omitempty"`
	Closes   string              `json:"closes,omitempty"`
	Travel   *TravelResponse     `json:"travel,omitempty"`
}

type DayResponse struct {
	Label      string             `json:"label"`
	Activities []ActivityResponse `json:"activities"`
}

type ItineraryResponse struct {
	RequestID string                `json:"request_id,omitempty"`
	Days      []DayResponse         `json:"days"`
	Traffic   domain.TrafficSummary `json:"traffic"`
	Stats     domain.TripStats      `json:"stats"`
	FinalCity string                `json:"final_city"`
}

// NewItineraryResponse flattens an itinerary for JSON output.
func NewItineraryResponse(it domain.Itinerary, traffic domain.TrafficSummary, stats domain.TripStats, finalCity string) ItineraryResponse {
	res := ItineraryResponse{
		Days:      make([]DayResponse, 0, len(it.Days)),
		Traffic:   traffic,
		Stats:     stats,
		FinalCity: finalCity,
	}
	for _, d := range it.Days {
		day := DayResponse{Label: d.Label, Activities: make([]ActivityResponse, 0, len(d.Activities))}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, newActivityResponse(a))
		}
		res.Days = append(res.Days, day)
	}
	return res
}

func newActivityResponse(a domain.Activity) ActivityResponse {
	out := ActivityResponse{
		Kind:     a.Kind,
		Title:    a.Title(),
		Start:    a.Start,
		End:      a.End,
		Minutes:  int(a.Duration().Minutes()),
		City:     a.City,
		Category: a.Category,
		Opens:    a.Opens,
		Closes:   a.Closes,
	}
	if a.Travel != nil {
		t := a.Travel
		out.Travel = &TravelResponse{
			Hours:          t.Hours,
			DurationText:   t.DurationText,
			DistanceKm:     t.DistanceKm,
			Congestion:     t.Congestion,
			DelayPercent:   t.DelayPercent,
			DelayMinutes:   t.DelayMinutes(),
			HasTrafficData: t.HasTrafficData,
			Source:         t.Source,
			Error:          t.Error,
		}
	}
	return out
}
