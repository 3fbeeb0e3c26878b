package domain

import "time"

// ActivityKind distinguishes the scheduled units of a day.
type ActivityKind string

const (
	KindMeal        ActivityKind = "meal"
	KindVisit       ActivityKind = "visit"
	KindTravelPlace ActivityKind = "travel_place"
	KindTravelCity  ActivityKind = "travel_city"
)

// Meal names the three fixed meal breaks.
type Meal string

const (
	Breakfast Meal = "Breakfast"
	Lunch     Meal = "Lunch"
	Dinner    Meal = "Dinner"
)

// Represents a single scheduled unit of a day.
// Meals carry Meal, visits carry Place and Category, and travel legs carry
// From, To and the Travel estimate. Activities are never modified once
// appended to a DayPlan.
type Activity struct {
	Kind     ActivityKind
	Start    time.Time
	End      time.Time
	Meal     Meal
	Place    string
	City     string
	Category string
	Opens    string
	Closes   string
	From     string
	To       string
	Travel   *TravelEstimate
}

// Title returns the display label of the activity.
func (a Activity) Title() string {
	switch a.Kind {
	case KindMeal:
		return string(a.Meal)
	case KindTravelPlace, KindTravelCity:
		return "Travel: " + a.From + " → " + a.To
	default:
		return a.Place
	}
}

func (a Activity) Duration() time.Duration { return a.End.Sub(a.Start) }

func (a Activity) IsTravel() bool {
	return a.Kind == KindTravelPlace || a.Kind == KindTravelCity
}
