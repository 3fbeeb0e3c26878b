package travel

import (
	"context"
	"itinerary-service/internal/domain"
	"math"
)

const (
	DefaultIntraCityKmh      = 30.0
	DefaultInterCityKmh      = 35.0
	DefaultMinIntraCityHours = 0.25
)

// DistanceEstimator derives travel time from great-circle distance and a
// fixed speed per travel class. It is a pure function of its inputs and
// always succeeds.
type DistanceEstimator struct {
	IntraCityKmh      float64
	InterCityKmh      float64
	MinIntraCityHours float64
}

func NewDistanceEstimator() *DistanceEstimator {
	return &DistanceEstimator{
		IntraCityKmh:      DefaultIntraCityKmh,
		InterCityKmh:      DefaultInterCityKmh,
		MinIntraCityHours: DefaultMinIntraCityHours,
	}
}

func (d *DistanceEstimator) Estimate(
	_ context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	class domain.TravelClass,
) domain.TravelEstimate {
	km := domain.GreatCircleKm(origin, destination)

	var hours float64
	switch class {
	case domain.InterCity:
		hours = round2(km / speedOr(d.InterCityKmh, DefaultInterCityKmh))
	default:
		hours = math.Max(d.MinIntraCityHours, round2(km/speedOr(d.IntraCityKmh, DefaultIntraCityKmh)))
	}

	return domain.TravelEstimate{
		Success:      true,
		Hours:        hours,
		BaseHours:    hours,
		DurationText: domain.FormatHours(hours),
		DistanceKm:   &km,
		Congestion:   domain.CongestionNoData,
		Source:       domain.SourceFallback,
	}
}

func speedOr(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
