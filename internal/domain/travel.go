package domain

import (
	"fmt"
	"math"
)

// TravelClass selects the assumed speed of the deterministic estimate.
type TravelClass string

const (
	IntraCity TravelClass = "intra_city"
	InterCity TravelClass = "inter_city"
)

// CongestionLevel is the qualitative traffic bucket of a live estimate.
type CongestionLevel string

const (
	CongestionLight    CongestionLevel = "Light"
	CongestionModerate CongestionLevel = "Moderate"
	CongestionHeavy    CongestionLevel = "Heavy"
	CongestionSevere   CongestionLevel = "Severe"
	CongestionUnknown  CongestionLevel = "Unknown"
	CongestionNoData   CongestionLevel = "NoData"
)

// EstimateSource records where an estimate came from.
type EstimateSource string

const (
	SourceLive     EstimateSource = "live"
	SourceCache    EstimateSource = "cache"
	SourceFallback EstimateSource = "fallback"
)

// Result of a travel-time lookup.
// Hours is the duration used for scheduling; BaseHours is the free-flow
// duration when the provider reported both.
type TravelEstimate struct {
	Success        bool            `json:"success"`
	Hours          float64         `json:"hours"`
	BaseHours      float64         `json:"base_hours"`
	DurationText   string          `json:"duration_text"`
	DistanceKm     *float64        `json:"distance_km,omitempty"`
	Congestion     CongestionLevel `json:"congestion"`
	DelayPercent   float64         `json:"delay_percent"`
	HasTrafficData bool            `json:"has_traffic_data"`
	Source         EstimateSource  `json:"source"`
	Error          string          `json:"error,omitempty"`
}

// DelayMinutes is the congestion-induced delay, zero without traffic data.
func (e TravelEstimate) DelayMinutes() float64 {
	if !e.HasTrafficData || e.Hours <= e.BaseHours {
		return 0
	}
	return (e.Hours - e.BaseHours) * 60
}

// ClassifyCongestion buckets a delay percentage.
func ClassifyCongestion(delayPct float64) CongestionLevel {
	switch {
	case delayPct < 5:
		return CongestionLight
	case delayPct < 20:
		return CongestionModerate
	case delayPct < 50:
		return CongestionHeavy
	default:
		return CongestionSevere
	}
}

// FormatHours renders a duration the way the provider does, e.g. "1 hour 5 mins".
func FormatHours(hours float64) string {
	mins := int(math.Round(hours * 60))
	if mins < 1 {
		mins = 1
	}
	h, m := mins/60, mins%60

	unit := func(n int, one, many string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, one)
		}
		return fmt.Sprintf("%d %s", n, many)
	}

	switch {
	case h == 0:
		return unit(m, "min", "mins")
	case m == 0:
		return unit(h, "hour", "hours")
	default:
		return unit(h, "hour", "hours") + " " + unit(m, "min", "mins")
	}
}

// TrafficModel is the provider's assumption for congestion-adjusted durations.
// TrafficNone requests free-flow durations only.
type TrafficModel string

const (
	TrafficBestGuess   TrafficModel = "best_guess"
	TrafficPessimistic TrafficModel = "pessimistic"
	TrafficOptimistic  TrafficModel = "optimistic"
	TrafficNone        TrafficModel = "none"
)

func ParseTrafficModel(s string) (TrafficModel, bool) {
	switch m := TrafficModel(s); m {
	case TrafficBestGuess, TrafficPessimistic, TrafficOptimistic, TrafficNone:
		return m, true
	case "":
		return TrafficBestGuess, true
	}
	return "", false
}
