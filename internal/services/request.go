package services

import (
	"fmt"
	"itinerary-service/internal/domain"
	"strings"
	"time"
)

// Defaults applied to fields a caller leaves empty.
const (
	DefaultNumDays   = 4
	DefaultDayStart  = "09:00"
	DefaultDayEnd    = "21:00"
	DefaultBudget    = domain.BudgetLow
	DefaultCompanion = domain.CompanionFamily
	dateLayout       = "2006-01-02"
)

// RequestParams is the loosely typed form of a GenerateRequest shared by
// the HTTP API and the CLI. Empty fields take the defaults above.
type RequestParams struct {
	StartCity    string
	NumDays      int
	Budget       string
	Companion    string
	DayStart     string
	DayEnd       string
	TrafficModel string
	Date         string
	APIKey       string
}

// Build parses the parameters into a GenerateRequest. Parse failures wrap
// ErrInvalidRequest; range and catalog checks are left to Validate.
func (p RequestParams) Build() (GenerateRequest, error) {
	req := GenerateRequest{
		StartCity: strings.TrimSpace(p.StartCity),
		NumDays:   p.NumDays,
		Budget:    DefaultBudget,
		Companion: DefaultCompanion,
		APIKey:    strings.TrimSpace(p.APIKey),
	}
	if req.NumDays == 0 {
		req.NumDays = DefaultNumDays
	}

	if p.Budget != "" {
		b, ok := domain.ParseBudgetTier(p.Budget)
		if !ok {
			return req, fmt.Errorf("%w: budget %q must be low, medium or high", ErrInvalidRequest, p.Budget)
		}
		req.Budget = b
	}
	if p.Companion != "" {
		c, ok := domain.ParseCompanion(p.Companion)
		if !ok {
			return req, fmt.Errorf("%w: companion %q must be family, friends or solo", ErrInvalidRequest, p.Companion)
		}
		req.Companion = c
	}

	var err error
	if req.DayStart, err = domain.ParseTimeOfDay(orDefault(p.DayStart, DefaultDayStart)); err != nil {
		return req, fmt.Errorf("%w: day start: %v", ErrInvalidRequest, err)
	}
	if req.DayEnd, err = domain.ParseTimeOfDay(orDefault(p.DayEnd, DefaultDayEnd)); err != nil {
		return req, fmt.Errorf("%w: day end: %v", ErrInvalidRequest, err)
	}

	model, ok := domain.ParseTrafficModel(strings.TrimSpace(p.TrafficModel))
	if !ok {
		return req, fmt.Errorf("%w: unsupported traffic model %q", ErrInvalidRequest, p.TrafficModel)
	}
	req.TrafficModel = model

	if p.Date != "" {
		d, err := time.ParseInLocation(dateLayout, p.Date, time.Local)
		if err != nil {
			return req, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidRequest, p.Date)
		}
		req.Date = d
	}

	return req, nil
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}
