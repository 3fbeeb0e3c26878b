package travel

import (
	"context"
	"itinerary-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kmPerDegreeLat is the meridian arc length of one degree on the haversine sphere.
const kmPerDegreeLat = 111.19508

func north(km float64) domain.Coordinates {
	return domain.Coordinates{Lat: km / kmPerDegreeLat, Lon: 0}
}

func TestDistanceEstimatorIntraCity(t *testing.T) {
	d := NewDistanceEstimator()

	est := d.Estimate(context.Background(), domain.Coordinates{}, north(15), domain.IntraCity)

	assert.True(t, est.Success)
	assert.Equal(t, 0.5, est.Hours)
	assert.Equal(t, est.Hours, est.BaseHours)
	assert.Equal(t, domain.SourceFallback, est.Source)
	assert.Equal(t, domain.CongestionNoData, est.Congestion)
	assert.False(t, est.HasTrafficData)
	assert.Equal(t, "30 mins", est.DurationText)
	require.NotNil(t, est.DistanceKm)
	assert.InDelta(t, 15.0, *est.DistanceKm, 0.01)
}

func TestDistanceEstimatorIntraCityFloor(t *testing.T) {
	d := NewDistanceEstimator()

	est := d.Estimate(context.Background(), domain.Coordinates{}, north(1), domain.IntraCity)
	assert.Equal(t, DefaultMinIntraCityHours, est.Hours)

	same := d.Estimate(context.Background(), domain.Coordinates{}, domain.Coordinates{}, domain.IntraCity)
	assert.Equal(t, DefaultMinIntraCityHours, same.Hours)
}

func TestDistanceEstimatorInterCity(t *testing.T) {
	d := NewDistanceEstimator()

	est := d.Estimate(context.Background(), domain.Coordinates{}, north(70), domain.InterCity)
	assert.Equal(t, 2.0, est.Hours)

	// No floor for inter-city legs.
	zero := d.Estimate(context.Background(), domain.Coordinates{}, domain.Coordinates{}, domain.InterCity)
	assert.Equal(t, 0.0, zero.Hours)
}

func TestDistanceEstimatorIsDeterministic(t *testing.T) {
	d := NewDistanceEstimator()
	a := domain.Coordinates{Lat: 26.9124, Lon: 75.7873}
	b := domain.Coordinates{Lat: 26.9855, Lon: 75.8513}

	first := d.Estimate(context.Background(), a, b, domain.IntraCity)
	second := d.Estimate(context.Background(), a, b, domain.IntraCity)
	assert.Equal(t, first, second)
}

func TestDistanceEstimatorCustomSpeeds(t *testing.T) {
	d := &DistanceEstimator{IntraCityKmh: 60, InterCityKmh: 70, MinIntraCityHours: 0.1}

	assert.Equal(t, 0.25, d.Estimate(context.Background(), domain.Coordinates{}, north(15), domain.IntraCity).Hours)
	assert.Equal(t, 1.0, d.Estimate(context.Background(), domain.Coordinates{}, north(70), domain.InterCity).Hours)
}
