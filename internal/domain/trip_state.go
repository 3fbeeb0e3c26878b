package domain

// TripState is the scheduling state threaded through one generation run.
// Visited and ExhaustedCities only grow; CurrentCity changes on a city hop.
type TripState struct {
	CurrentCity     string
	visited         map[string]struct{}
	exhaustedCities map[string]struct{}
	visitOrder      []string
}

func NewTripState(startCity string) *TripState {
	return &TripState{
		CurrentCity:     startCity,
		visited:         make(map[string]struct{}),
		exhaustedCities: make(map[string]struct{}),
	}
}

func (s *TripState) MarkVisited(place string) {
	if _, ok := s.visited[place]; ok {
		return
	}
	s.visited[place] = struct{}{}
	s.visitOrder = append(s.visitOrder, place)
}

func (s *TripState) IsVisited(place string) bool {
	_, ok := s.visited[place]
	return ok
}

func (s *TripState) MarkExhausted(city string) {
	s.exhaustedCities[city] = struct{}{}
}

func (s *TripState) IsExhausted(city string) bool {
	_, ok := s.exhaustedCities[city]
	return ok
}

// Visited returns visited place names in the order they were scheduled.
func (s *TripState) Visited() []string {
	out := make([]string, len(s.visitOrder))
	copy(out, s.visitOrder)
	return out
}

func (s *TripState) ExhaustedCount() int { return len(s.exhaustedCities) }
