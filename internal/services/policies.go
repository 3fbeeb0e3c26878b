package services

import (
	"itinerary-service/internal/domain"
	"strings"
)

// CompanionPolicy excludes places whose category contains any of the
// listed substrings, compared case-insensitively.
type CompanionPolicy struct {
	ExcludeCategorySubstrings []string
}

func (p CompanionPolicy) Allows(place domain.Place) bool {
	category := strings.ToLower(place.Category)
	for _, banned := range p.ExcludeCategorySubstrings {
		if banned != "" && strings.Contains(category, strings.ToLower(banned)) {
			return false
		}
	}
	return true
}

// BudgetPolicy lists the place tiers a trip budget may include.
type BudgetPolicy struct {
	Allowed []domain.BudgetTier
}

func (p BudgetPolicy) Allows(place domain.Place) bool {
	for _, tier := range p.Allowed {
		if place.Budget == tier {
			return true
		}
	}
	return false
}

// Policies is the strategy table consulted by the place selector.
type Policies struct {
	Companion map[domain.Companion]CompanionPolicy
	Budget    map[domain.BudgetTier]BudgetPolicy
}

// DefaultPolicies returns the built-in companion and budget tables.
func DefaultPolicies() Policies {
	return Policies{
		Companion: map[domain.Companion]CompanionPolicy{
			domain.CompanionFamily:  {ExcludeCategorySubstrings: []string{"pub", "bar", "club", "nightlife"}},
			domain.CompanionFriends: {},
			domain.CompanionSolo:    {},
		},
		Budget: map[domain.BudgetTier]BudgetPolicy{
			domain.BudgetLow:    {Allowed: []domain.BudgetTier{domain.BudgetLow}},
			domain.BudgetMedium: {Allowed: []domain.BudgetTier{domain.BudgetLow, domain.BudgetMedium}},
			domain.BudgetHigh:   {Allowed: []domain.BudgetTier{domain.BudgetLow, domain.BudgetMedium, domain.BudgetHigh}},
		},
	}
}

// allows applies both tables. Companions without an entry are unfiltered;
// budgets without an entry allow every tier.
func (p Policies) allows(place domain.Place, budget domain.BudgetTier, companion domain.Companion) bool {
	if cp, ok := p.Companion[companion]; ok && !cp.Allows(place) {
		return false
	}
	if bp, ok := p.Budget[budget]; ok && !bp.Allows(place) {
		return false
	}
	return true
}
