package domain

import "fmt"

// Ordered activities of one calendar day.
type DayPlan struct {
	Label      string
	Activities []Activity
}

// DayLabel returns the label of the n-th day, starting at 1.
func DayLabel(n int) string { return fmt.Sprintf("Day %d", n) }

// Represents the planned trip: one DayPlan per day, in day order.
type Itinerary struct {
	Days []DayPlan
}

// Visits returns the visited place names in schedule order.
func (it *Itinerary) Visits() []string {
	var out []string
	for _, d := range it.Days {
		for _, a := range d.Activities {
			if a.Kind == KindVisit {
				out = append(out, a.Place)
			}
		}
	}
	return out
}

// TripStats are the overview counters shown alongside an itinerary.
type TripStats struct {
	Days          int `json:"days"`
	Activities    int `json:"activities"`
	Visits        int `json:"visits"`
	Meals         int `json:"meals"`
	TravelLegs    int `json:"travel_legs"`
	CitiesVisited int `json:"cities_visited"`
}

func (it *Itinerary) Stats() TripStats {
	s := TripStats{Days: len(it.Days)}
	cities := make(map[string]struct{})
	for _, d := range it.Days {
		s.Activities += len(d.Activities)
		for _, a := range d.Activities {
			switch {
			case a.Kind == KindMeal:
				s.Meals++
			case a.IsTravel():
				s.TravelLegs++
			case a.Kind == KindVisit:
				s.Visits++
				cities[a.City] = struct{}{}
			}
		}
	}
	s.CitiesVisited = len(cities)
	return s
}

// TrafficSummary aggregates the travel legs of an itinerary.
type TrafficSummary struct {
	Legs                int                     `json:"legs"`
	LegsWithTrafficData int                     `json:"legs_with_traffic_data"`
	ByCongestion        map[CongestionLevel]int `json:"by_congestion"`
	TotalDelayMinutes   float64                 `json:"total_delay_minutes"`
	FallbackLegs        int                     `json:"fallback_legs"`
}

// SummarizeTraffic tallies every travel leg of the itinerary.
func SummarizeTraffic(it *Itinerary) TrafficSummary {
	s := TrafficSummary{ByCongestion: make(map[CongestionLevel]int)}
	for _, d := range it.Days {
		for _, a := range d.Activities {
			if !a.IsTravel() || a.Travel == nil {
				continue
			}
			s.Legs++
			s.ByCongestion[a.Travel.Congestion]++
			if a.Travel.Source == SourceFallback {
				s.FallbackLegs++
			}
			if a.Travel.HasTrafficData {
				s.LegsWithTrafficData++
				s.TotalDelayMinutes += a.Travel.DelayMinutes()
			}
		}
	}
	return s
}
