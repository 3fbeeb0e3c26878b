package formatter

import (
	"itinerary-service/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true).Underline(true)
)

// CongestionStyle maps a congestion level onto the traffic-light palette.
func CongestionStyle(level domain.CongestionLevel) lipgloss.Style {
	switch level {
	case domain.CongestionLight:
		return StyleGreen
	case domain.CongestionModerate:
		return StyleYellow
	case domain.CongestionHeavy:
		return StyleOrange
	case domain.CongestionSevere:
		return StyleRed
	default:
		return StyleDim
	}
}

// ActivityStyle colors an activity title by kind.
func ActivityStyle(kind domain.ActivityKind) lipgloss.Style {
	switch kind {
	case domain.KindMeal:
		return StyleYellow
	case domain.KindVisit:
		return StyleBold
	default:
		return StyleBlue
	}
}
