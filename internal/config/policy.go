package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyFile overrides the built-in scheduling tables. Every section is
// optional; absent sections keep the defaults.
type PolicyFile struct {
	Companions map[string]CompanionRule `yaml:"companions"`
	Budgets    map[string][]string      `yaml:"budgets"`
	Speeds     *SpeedRule               `yaml:"speeds"`
	Tiers      []int                    `yaml:"priority_tiers"`
}

type CompanionRule struct {
	ExcludeCategories []string `yaml:"exclude_categories"`
}

type SpeedRule struct {
	IntraCityKmh      float64 `yaml:"intra_city_kmh"`
	InterCityKmh      float64 `yaml:"inter_city_kmh"`
	MinIntraCityHours float64 `yaml:"min_intra_city_hours"`
}

// LoadPolicyFile reads a YAML policy file. An empty path yields an empty
// PolicyFile.
func LoadPolicyFile(path string) (PolicyFile, error) {
	var pf PolicyFile
	if path == "" {
		return pf, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return pf, fmt.Errorf("load policy file: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return pf, fmt.Errorf("load policy file: parse %q: %w", path, err)
	}
	return pf, nil
}
