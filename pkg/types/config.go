// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultHoursPerYear is the continuous-duty annual running time assumed
// when no duty cycle is configured.
const DefaultHoursPerYear = 8760

// DefaultRatePerKWh is the default electricity tariff in currency units
// per kWh.
const DefaultRatePerKWh = 0.12

// EnergyConfig holds the duty-cycle and tariff assumptions used to
// annualize an operating point's power draw.
type EnergyConfig struct {
	// HoursPerYear is the assumed annual running time (default 8760,
	// continuous duty).
	HoursPerYear float64 `json:"hours_per_year" yaml:"hours_per_year"`

	// RatePerKWh is the electricity tariff in currency units per kWh
	// (default 0.12).
	RatePerKWh float64 `json:"rate_per_kwh" yaml:"rate_per_kwh"`
}

// SelectionConfig holds settings for a selection run.
type SelectionConfig struct {
	EnergyConfig `yaml:",inline"`

	// MaxResults caps the number of ranked results returned. Zero means
	// no cap.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// WithDefaults returns the config with zero-valued energy fields replaced
// by the package defaults.
func (c SelectionConfig) WithDefaults() SelectionConfig {
	if c.HoursPerYear <= 0 {
		c.HoursPerYear = DefaultHoursPerYear
	}
	if c.RatePerKWh <= 0 {
		c.RatePerKWh = DefaultRatePerKWh
	}
	return c
}

// CatalogConfig holds settings for the pump catalog store.
type CatalogConfig struct {
	// CatalogDir is the base directory for the catalog (contains specs/,
	// index/).
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of list results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
