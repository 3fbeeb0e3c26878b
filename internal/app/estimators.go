package app

import (
	"itinerary-service/internal/adapters/travel"
	"itinerary-service/internal/config"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/ports"
	"itinerary-service/internal/services"

	"github.com/rs/zerolog/log"
)

// EstimatorFactory selects, per request, between the deterministic
// estimator and a live one. A live estimator is built whenever an API key
// is available, from the request or from the configuration; all live
// estimators share the cache and the counters. Cache keys are namespaced
// by traffic model since the models disagree on durations.
func EstimatorFactory(
	cfg config.Config,
	estimateCache ports.EstimateCache,
	fallback *travel.DistanceEstimator,
	counters *travel.Counters,
) services.EstimatorFactory {
	return func(model domain.TrafficModel, apiKey string) ports.TravelTimeEstimator {
		key := apiKey
		if key == "" {
			key = cfg.TravelAPIKey
		}
		if key == "" {
			return fallback
		}

		opts := []travel.GoogleMatrixOption{travel.WithTimeout(cfg.TravelTimeout)}
		if cfg.TravelAPIURL != "" {
			opts = append(opts, travel.WithBaseURL(cfg.TravelAPIURL))
		}

		source, err := travel.NewGoogleMatrixSource(key, model, opts...)
		if err != nil {
			log.Warn().Err(err).Msg("live travel source unavailable, using distance estimates")
			return fallback
		}

		return travel.NewLiveEstimator(source, estimateCache,
			travel.WithNamespace(string(model)),
			travel.WithCounters(counters),
			travel.WithFallback(fallback),
		)
	}
}

// ApplySpeeds overrides the fallback speeds with positive values from
// the policy file.
func ApplySpeeds(d *travel.DistanceEstimator, rule *config.SpeedRule) {
	if rule == nil {
		return
	}
	if rule.IntraCityKmh > 0 {
		d.IntraCityKmh = rule.IntraCityKmh
	}
	if rule.InterCityKmh > 0 {
		d.InterCityKmh = rule.InterCityKmh
	}
	if rule.MinIntraCityHours > 0 {
		d.MinIntraCityHours = rule.MinIntraCityHours
	}
}

// PoliciesFrom merges the policy file into the default tables.
func PoliciesFrom(pf config.PolicyFile) services.Policies {
	p := services.DefaultPolicies()
	for name, rule := range pf.Companions {
		c, ok := domain.ParseCompanion(name)
		if !ok {
			log.Warn().Str("companion", name).Msg("ignoring unknown companion in policy file")
			continue
		}
		p.Companion[c] = services.CompanionPolicy{ExcludeCategorySubstrings: rule.ExcludeCategories}
	}
	for name, tiers := range pf.Budgets {
		b, ok := domain.ParseBudgetTier(name)
		if !ok {
			log.Warn().Str("budget", name).Msg("ignoring unknown budget in policy file")
			continue
		}
		allowed := make([]domain.BudgetTier, 0, len(tiers))
		for _, t := range tiers {
			allowed = append(allowed, domain.NormalizeBudget(t))
		}
		p.Budget[b] = services.BudgetPolicy{Allowed: allowed}
	}
	return p
}
