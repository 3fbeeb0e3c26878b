package travel

import (
	"context"
	"fmt"
	"itinerary-service/internal/domain"
	"sync"
)

type MockPair struct {
	From, To domain.Coordinates
	Estimate domain.TravelEstimate
	Err      error
}

// MockSource is a scripted TravelTimeSource that counts its calls.
type MockSource struct {
	mu    sync.Mutex
	m     map[[2]domain.Coordinates]MockPair
	calls int
	Err   error
}

func NewMockSource(pairs []MockPair) *MockSource {
	m := make(map[[2]domain.Coordinates]MockPair, len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinates{p.From, p.To}] = p
	}
	return &MockSource{m: m}
}

func (s *MockSource) Fetch(_ context.Context, origin, destination domain.Coordinates) (domain.TravelEstimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if s.Err != nil {
		return domain.TravelEstimate{}, s.Err
	}

	p, ok := s.m[[2]domain.Coordinates{origin, destination}]
	if !ok {
		return domain.TravelEstimate{}, fmt.Errorf("missing pair %s -> %s", origin, destination)
	}
	if p.Err != nil {
		return domain.TravelEstimate{}, p.Err
	}

	est := p.Estimate
	est.Success = true
	est.Source = domain.SourceLive
	return est, nil
}

func (s *MockSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
