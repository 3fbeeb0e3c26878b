package domain

import "strings"

// BudgetTier is the normalized cost bucket of a place or of a trip.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

const (
	DefaultPriority   = 3
	DefaultVisitHours = 2.0
)

// NormalizeBudget maps a free-form budget label onto a tier by substring.
// Anything that is neither low nor medium is treated as high.
func NormalizeBudget(raw string) BudgetTier {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "low"):
		return BudgetLow
	case strings.Contains(s, "medium"):
		return BudgetMedium
	default:
		return BudgetHigh
	}
}

// ParseBudgetTier accepts only the exact tier names used in trip requests.
func ParseBudgetTier(s string) (BudgetTier, bool) {
	switch BudgetTier(strings.ToLower(strings.TrimSpace(s))) {
	case BudgetLow:
		return BudgetLow, true
	case BudgetMedium:
		return BudgetMedium, true
	case BudgetHigh:
		return BudgetHigh, true
	}
	return "", false
}

// Represents a single catalog row. A Place is identified by its name,
// which is unique within a catalog, and is never modified after load.
type Place struct {
	Name       string
	State      string
	City       string
	Category   string
	Location   Coordinates
	VisitHrs   float64
	OpenTime   string
	CloseTime  string
	Priority   int
	Budget     BudgetTier
	CatalogIdx int
}

// VisitHours returns the scheduled stay, falling back to the default
// when the catalog carries no positive duration.
func (p Place) VisitHours() float64 {
	if p.VisitHrs <= 0 {
		return DefaultVisitHours
	}
	return p.VisitHrs
}
