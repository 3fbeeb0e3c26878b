package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"math"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultMatrixURL = "https://maps.googleapis.com/maps/api/distancematrix/json"
	DefaultTimeout   = 10 * time.Second
)

// GoogleMatrixSource implements TravelTimeSource against a Distance Matrix
// style endpoint. Each Fetch issues exactly one request; there are no
// retries, the client timeout is the only resilience mechanism.
//
// The source is safe for concurrent use.
type GoogleMatrixSource struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	mode         string
	trafficModel domain.TrafficModel
}

type GoogleMatrixOption func(*GoogleMatrixSource)

func WithBaseURL(u string) GoogleMatrixOption {
	return func(g *GoogleMatrixSource) { g.baseURL = u }
}

func WithTimeout(d time.Duration) GoogleMatrixOption {
	return func(g *GoogleMatrixSource) { g.session = &http.Client{Timeout: d} }
}

func WithHTTPClient(c *http.Client) GoogleMatrixOption {
	return func(g *GoogleMatrixSource) { g.session = c }
}

func NewGoogleMatrixSource(
	apiKey string,
	trafficModel domain.TrafficModel,
	opts ...GoogleMatrixOption,
) (*GoogleMatrixSource, error) {
	if apiKey == "" {
		return nil, errors.New("travel api key is empty")
	}
	if trafficModel == "" {
		trafficModel = domain.TrafficBestGuess
	}

	source := &GoogleMatrixSource{
		session:      &http.Client{Timeout: DefaultTimeout},
		apiKey:       apiKey,
		baseURL:      DefaultMatrixURL,
		mode:         "driving",
		trafficModel: trafficModel,
	}
	for _, opt := range opts {
		opt(source)
	}

	return source, nil
}

type matrixValue struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

type matrixElement struct {
	Status            string       `json:"status"`
	Duration          *matrixValue `json:"duration"`
	DurationInTraffic *matrixValue `json:"duration_in_traffic"`
	Distance          *matrixValue `json:"distance"`
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []matrixElement `json:"elements"`
	} `json:"rows"`
}

// Fetch looks up one origin -> destination pair.
func (g *GoogleMatrixSource) Fetch(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.TravelEstimate, err error) {
	defer obs.Time(ctx, "matrix.Fetch")(&err)

	req, err := g.newRequest(ctx, g.baseURL)
	if err != nil {
		return domain.TravelEstimate{}, err
	}

	q := url.Values{}
	q.Set("origins", origin.String())
	q.Set("destinations", destination.String())
	q.Set("mode", g.mode)
	q.Set("key", g.apiKey)
	if g.trafficModel != domain.TrafficNone {
		q.Set("departure_time", "now")
		q.Set("traffic_model", string(g.trafficModel))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := g.do(req)
	if err != nil {
		return domain.TravelEstimate{}, fmt.Errorf("matrix request: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return domain.TravelEstimate{}, fmt.Errorf("decode matrix response: %w", err)
	}

	if mr.Status != "OK" {
		return domain.TravelEstimate{}, &ProviderStatusError{Status: mr.Status, Message: mr.ErrorMessage}
	}

	if len(mr.Rows) != 1 || len(mr.Rows[0].Elements) != 1 {
		return domain.TravelEstimate{}, &ProviderStatusError{Status: "UNKNOWN_ERROR", Message: "expected a single matrix element"}
	}

	el := mr.Rows[0].Elements[0]
	if el.Status != "OK" {
		return domain.TravelEstimate{}, &ProviderStatusError{Status: el.Status}
	}
	if el.Duration == nil {
		return domain.TravelEstimate{}, &ProviderStatusError{Status: "UNKNOWN_ERROR", Message: "matrix element has no duration"}
	}

	return estimateFromElement(el), nil
}

// estimateFromElement converts provider seconds into hours and derives the
// congestion level from the traffic-adjusted duration, when present.
func estimateFromElement(el matrixElement) domain.TravelEstimate {
	base := el.Duration.Value / 3600

	est := domain.TravelEstimate{
		Success:      true,
		Hours:        base,
		BaseHours:    base,
		DurationText: el.Duration.Text,
		Congestion:   domain.CongestionUnknown,
		Source:       domain.SourceLive,
	}

	if el.Distance != nil {
		km := el.Distance.Value / 1000
		est.DistanceKm = &km
	}

	if el.DurationInTraffic != nil && el.Duration.Value > 0 {
		traffic := el.DurationInTraffic.Value / 3600
		delay := (el.DurationInTraffic.Value - el.Duration.Value) / el.Duration.Value * 100

		est.Hours = traffic
		est.DurationText = el.DurationInTraffic.Text
		est.DelayPercent = math.Round(delay*10) / 10
		est.Congestion = domain.ClassifyCongestion(delay)
		est.HasTrafficData = true
	}

	if est.DurationText == "" {
		est.DurationText = domain.FormatHours(est.Hours)
	}

	return est
}
