package formatter

import (
	"fmt"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"
	"strings"
)

const clockLayout = "15:04"

// FormatItinerary renders the generated trip as a styled day-by-day list
// followed by the trip overview and the traffic summary.
func FormatItinerary(res *services.GenerateResult) string {
	var b strings.Builder

	for _, day := range res.Itinerary.Days {
		b.WriteString(StyleHeader.Render(day.Label))
		b.WriteString("\n")
		if len(day.Activities) == 0 {
			b.WriteString(StyleDim.Render("  nothing scheduled"))
			b.WriteString("\n\n")
			continue
		}
		for _, a := range day.Activities {
			b.WriteString(formatActivity(a))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	s := res.Stats
	b.WriteString(StyleBold.Render("Overview"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %d days, %d visits in %d cities, %d meals, %d travel legs\n",
		s.Days, s.Visits, s.CitiesVisited, s.Meals, s.TravelLegs)
	fmt.Fprintf(&b, "  ends in %s\n", res.FinalCity)

	b.WriteString(FormatTraffic(res.Traffic))
	return b.String()
}

func formatActivity(a domain.Activity) string {
	span := StyleDim.Render(a.Start.Format(clockLayout) + "-" + a.End.Format(clockLayout))
	line := "  " + span + "  " + ActivityStyle(a.Kind).Render(a.Title())

	switch {
	case a.Kind == domain.KindVisit:
		details := []string{}
		if a.Category != "" {
			details = append(details, a.Category)
		}
		if a.Opens != "" || a.Closes != "" {
			details = append(details, "open "+a.Opens+"-"+a.Closes)
		}
		if len(details) > 0 {
			line += " " + StyleDim.Render("("+strings.Join(details, ", ")+")")
		}
	case a.IsTravel() && a.Travel != nil:
		line += " " + formatTravel(*a.Travel)
	}
	return line
}

func formatTravel(t domain.TravelEstimate) string {
	parts := []string{domain.FormatHours(t.Hours)}
	if t.DistanceKm != nil {
		parts = append(parts, fmt.Sprintf("%.1f km", *t.DistanceKm))
	}
	out := StyleDim.Render("[" + strings.Join(parts, ", ") + "]")
	if t.HasTrafficData {
		out += " " + CongestionStyle(t.Congestion).Render(fmt.Sprintf("%s +%.0f%%", t.Congestion, t.DelayPercent))
	}
	if t.Error != "" {
		out += " " + StyleRed.Render("estimated: "+t.Error)
	}
	return out
}

// FormatTraffic renders the per-congestion tallies of a trip.
func FormatTraffic(s domain.TrafficSummary) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render("Traffic"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %d legs, %d with live traffic data, %d estimated from distance\n",
		s.Legs, s.LegsWithTrafficData, s.FallbackLegs)

	levels := []domain.CongestionLevel{
		domain.CongestionLight,
		domain.CongestionModerate,
		domain.CongestionHeavy,
		domain.CongestionSevere,
		domain.CongestionUnknown,
		domain.CongestionNoData,
	}
	for _, lvl := range levels {
		if n := s.ByCongestion[lvl]; n > 0 {
			fmt.Fprintf(&b, "  %s %d\n", CongestionStyle(lvl).Render(string(lvl)+":"), n)
		}
	}
	if s.TotalDelayMinutes > 0 {
		fmt.Fprintf(&b, "  total delay %s\n", domain.FormatHours(s.TotalDelayMinutes/60))
	}
	return b.String()
}

// FormatCities renders cities grouped under their state.
func FormatCities(infos []domain.CityInfo) string {
	var b strings.Builder
	state := "\x00"
	for _, c := range infos {
		if c.State != state {
			state = c.State
			label := state
			if label == "" {
				label = "(no state)"
			}
			b.WriteString(StyleHeader.Render(label))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %s %s\n", c.City, StyleDim.Render(fmt.Sprintf("(%d places)", c.Places)))
	}
	return b.String()
}
