package services

import (
	"context"
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/ports"
	"time"
)

// Fixed meal windows of the walker.
var (
	breakfastEnds  = domain.TimeOfDay{Hour: 9}
	lunchOpensHour = 12
	lunchEndsHour  = 14
	dinnerHour     = 19
	dinnerEarliest = domain.TimeOfDay{Hour: 19, Minute: 30}
	mealLength     = time.Hour
)

// DayWindow bounds one calendar day of the walk.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// DayWalker fills a single day with meals, visits and travel legs.
// It owns no trip state: visited places, exhausted cities and the current
// city live on the TripState passed to Walk and carry over between days.
type DayWalker struct {
	Catalog    *domain.Catalog
	Selector   ports.PlaceSelector
	Transition *CityTransition
	Estimator  ports.TravelTimeEstimator
}

type mealsTaken struct {
	breakfast bool
	lunch     bool
	dinner    bool
}

// Walk advances a clock from window.Start to window.End.
//
// At each step a due meal wins over everything else; otherwise the next
// greedy place of the current city is visited, preceded by an intra-city
// leg from the previous visit of the day. When the city runs dry it is
// marked exhausted and the walker hops to the next city. The day ends
// early when no city is left or when the next leg or visit would run past
// window.End; a visit is never truncated.
func (w *DayWalker) Walk(
	ctx context.Context,
	label string,
	window DayWindow,
	state *domain.TripState,
	budget domain.BudgetTier,
	companion domain.Companion,
) (domain.DayPlan, error) {
	plan := domain.DayPlan{Label: label, Activities: []domain.Activity{}}
	if !window.Start.Before(window.End) {
		return plan, fmt.Errorf("walk %s: day start %s is not before day end %s", label, window.Start.Format("15:04"), window.End.Format("15:04"))
	}

	cur := window.Start
	meals := mealsTaken{}
	var lastPlace *domain.Place

	for cur.Before(window.End) {
		if err := ctx.Err(); err != nil {
			return plan, fmt.Errorf("walk %s: %w", label, err)
		}

		if cur.Hour() < breakfastEnds.Hour && !meals.breakfast {
			end := minTime(breakfastEnds.On(cur), window.End)
			plan.Activities = append(plan.Activities, mealActivity(domain.Breakfast, cur, end))
			cur = end
			meals.breakfast = true
			continue
		}

		if h := cur.Hour(); h >= lunchOpensHour && h < lunchEndsHour && !meals.lunch {
			end := minTime(cur.Add(mealLength), window.End)
			plan.Activities = append(plan.Activities, mealActivity(domain.Lunch, cur, end))
			cur = end
			meals.lunch = true
			continue
		}

		if cur.Hour() >= dinnerHour && !meals.dinner {
			meals.dinner = true
			start := maxTime(cur, dinnerEarliest.On(cur))
			if !start.Before(window.End) {
				break
			}
			end := minTime(start.Add(mealLength), window.End)
			plan.Activities = append(plan.Activities, mealActivity(domain.Dinner, start, end))
			cur = end
			continue
		}

		place, ok := w.Selector.SelectNext(state.CurrentCity, state, budget, companion)
		if !ok {
			state.MarkExhausted(state.CurrentCity)

			next, found := w.Transition.NextCity(state.CurrentCity, state)
			if !found {
				break
			}

			leg, err := w.cityLeg(ctx, state.CurrentCity, next, cur)
			if err != nil {
				return plan, fmt.Errorf("walk %s: %w", label, err)
			}
			// A hop that does not fit is retried at the start of the next day.
			if leg.End.After(window.End) {
				break
			}

			plan.Activities = append(plan.Activities, leg)
			cur = leg.End
			state.CurrentCity = next
			lastPlace = nil
			continue
		}

		if lastPlace != nil {
			est := w.Estimator.Estimate(ctx, lastPlace.Location, place.Location, domain.IntraCity)
			end := cur.Add(hoursToDuration(est.Hours))
			if end.After(window.End) {
				break
			}
			plan.Activities = append(plan.Activities, domain.Activity{
				Kind:   domain.KindTravelPlace,
				Start:  cur,
				End:    end,
				City:   place.City,
				From:   lastPlace.Name,
				To:     place.Name,
				Travel: &est,
			})
			cur = end
		}

		visitEnd := cur.Add(hoursToDuration(place.VisitHours()))
		if visitEnd.After(window.End) {
			break
		}

		plan.Activities = append(plan.Activities, domain.Activity{
			Kind:     domain.KindVisit,
			Start:    cur,
			End:      visitEnd,
			Place:    place.Name,
			City:     place.City,
			Category: place.Category,
			Opens:    place.OpenTime,
			Closes:   place.CloseTime,
		})
		state.MarkVisited(place.Name)
		visited := place
		lastPlace = &visited
		cur = visitEnd
	}

	return plan, nil
}

// cityLeg estimates the hop between two city centers starting at cur.
func (w *DayWalker) cityLeg(ctx context.Context, from, to string, cur time.Time) (domain.Activity, error) {
	origin, ok := w.Catalog.CityCenter(from)
	if !ok {
		return domain.Activity{}, fmt.Errorf("city leg: unknown city %q", from)
	}
	destination, ok := w.Catalog.CityCenter(to)
	if !ok {
		return domain.Activity{}, fmt.Errorf("city leg: unknown city %q", to)
	}

	est := w.Estimator.Estimate(ctx, origin, destination, domain.InterCity)

	return domain.Activity{
		Kind:   domain.KindTravelCity,
		Start:  cur,
		End:    cur.Add(hoursToDuration(est.Hours)),
		City:   to,
		From:   from,
		To:     to,
		Travel: &est,
	}, nil
}

func mealActivity(meal domain.Meal, start, end time.Time) domain.Activity {
	return domain.Activity{
		Kind:     domain.KindMeal,
		Start:    start,
		End:      end,
		Meal:     meal,
		Category: "food",
	}
}

// hoursToDuration converts fractional hours, rounded to the second.
func hoursToDuration(h float64) time.Duration {
	if h <= 0 {
		return 0
	}
	return time.Duration(h * float64(time.Hour)).Round(time.Second)
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
