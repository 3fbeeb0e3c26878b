package services

import (
	"context"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	MinTripDays = 1
	MaxTripDays = 10
)

var (
	ErrInvalidRequest = errors.New("invalid itinerary request")
	ErrUnknownCity    = errors.New("unknown city")
)

// EstimatorFactory builds the travel estimator used for one request.
// The API key may be empty, in which case the configured key applies.
type EstimatorFactory func(model domain.TrafficModel, apiKey string) ports.TravelTimeEstimator

// StaticEstimator returns a factory that always yields e.
func StaticEstimator(e ports.TravelTimeEstimator) EstimatorFactory {
	return func(domain.TrafficModel, string) ports.TravelTimeEstimator { return e }
}

type GenerateRequest struct {
	StartCity    string
	NumDays      int
	Budget       domain.BudgetTier
	Companion    domain.Companion
	Date         time.Time
	DayStart     domain.TimeOfDay
	DayEnd       domain.TimeOfDay
	TrafficModel domain.TrafficModel
	APIKey       string
}

// Validate checks the request against the catalog. Failures wrap
// ErrInvalidRequest or ErrUnknownCity.
func (r GenerateRequest) Validate(catalog *domain.Catalog) error {
	if strings.TrimSpace(r.StartCity) == "" {
		return fmt.Errorf("%w: start city is required", ErrInvalidRequest)
	}
	if r.NumDays < MinTripDays || r.NumDays > MaxTripDays {
		return fmt.Errorf("%w: num_days must be between %d and %d", ErrInvalidRequest, MinTripDays, MaxTripDays)
	}
	if _, ok := domain.ParseBudgetTier(string(r.Budget)); !ok {
		return fmt.Errorf("%w: budget %q must be low, medium or high", ErrInvalidRequest, r.Budget)
	}
	if _, ok := domain.ParseCompanion(string(r.Companion)); !ok {
		return fmt.Errorf("%w: companion %q must be family, friends or solo", ErrInvalidRequest, r.Companion)
	}
	if r.DayStart.Minutes() >= r.DayEnd.Minutes() {
		return fmt.Errorf("%w: day start %s must be before day end %s", ErrInvalidRequest, r.DayStart, r.DayEnd)
	}
	if _, ok := domain.ParseTrafficModel(string(r.TrafficModel)); !ok {
		return fmt.Errorf("%w: unsupported traffic model %q", ErrInvalidRequest, r.TrafficModel)
	}
	if catalog == nil || !catalog.HasCity(r.StartCity) {
		return fmt.Errorf("%w: %q", ErrUnknownCity, r.StartCity)
	}
	return nil
}

type GenerateResult struct {
	Itinerary       domain.Itinerary
	Traffic         domain.TrafficSummary
	Stats           domain.TripStats
	Visited         []string
	FinalCity       string
	ExhaustedCities int
}

// Generator assembles multi-day itineraries from a loaded catalog.
type Generator struct {
	Catalog         *domain.Catalog
	Selector        ports.PlaceSelector
	Transition      *CityTransition
	Estimators      EstimatorFactory
	PrefetchWorkers int
}

func NewGenerator(catalog *domain.Catalog, policies Policies, estimators EstimatorFactory) *Generator {
	return &Generator{
		Catalog:    catalog,
		Selector:   NewGreedySelector(catalog, policies),
		Transition: NewCityTransition(catalog),
		Estimators: estimators,
	}
}

// Generate runs the day walker once per day, threading a single TripState
// through all days. A day without eligible activities still yields an
// entry; nothing is rolled back.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (_ *GenerateResult, err error) {
	defer obs.Time(ctx, "itinerary.Generate")(&err)

	if err := req.Validate(g.Catalog); err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}
	if g.Estimators == nil {
		return nil, errors.New("generate itinerary: no travel estimator configured")
	}

	model := req.TrafficModel
	if model == "" {
		model = domain.TrafficBestGuess
	}
	estimator := g.Estimators(model, req.APIKey)

	walker := &DayWalker{
		Catalog:    g.Catalog,
		Selector:   g.Selector,
		Transition: g.Transition,
		Estimator:  estimator,
	}

	state := domain.NewTripState(req.StartCity)

	if g.PrefetchWorkers > 0 {
		if lister, ok := g.Selector.(EligibleLister); ok {
			pool := lister.EligiblePlaces(req.StartCity, state, req.Budget, req.Companion)
			n := PrefetchLegs(ctx, estimator, pool, g.PrefetchWorkers)
			log.Debug().Str("city", req.StartCity).Int("legs", n).Msg("prefetched travel estimates")
		}
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	itinerary := domain.Itinerary{Days: make([]domain.DayPlan, 0, req.NumDays)}
	for d := 1; d <= req.NumDays; d++ {
		day := date.AddDate(0, 0, d-1)
		window := DayWindow{Start: req.DayStart.On(day), End: req.DayEnd.On(day)}

		plan, err := walker.Walk(ctx, domain.DayLabel(d), window, state, req.Budget, req.Companion)
		if err != nil {
			return nil, fmt.Errorf("generate itinerary: %w", err)
		}
		itinerary.Days = append(itinerary.Days, plan)
	}

	return &GenerateResult{
		Itinerary:       itinerary,
		Traffic:         domain.SummarizeTraffic(&itinerary),
		Stats:           itinerary.Stats(),
		Visited:         state.Visited(),
		FinalCity:       state.CurrentCity,
		ExhaustedCities: state.ExhaustedCount(),
	}, nil
}
