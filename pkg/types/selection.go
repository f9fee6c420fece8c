// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SelectionCriteria holds the duty point and fluid conditions a pump is
// selected against. It is an immutable value passed in per selection call.
type SelectionCriteria struct {
	// DesignFlow is the required flow rate in GPM. Must be positive.
	DesignFlow float64 `json:"design_flow" yaml:"design_flow"`

	// DesignHead is the required head at DesignFlow in feet. Must be positive.
	DesignHead float64 `json:"design_head" yaml:"design_head"`

	// NPSHAvailable is the suction head available at the pump inlet in feet.
	NPSHAvailable float64 `json:"npsh_available" yaml:"npsh_available"`

	// FluidType names the pumped fluid (e.g. "water", "nutrient solution").
	FluidType string `json:"fluid_type,omitempty" yaml:"fluid_type,omitempty"`

	// Temperature is the fluid temperature in degrees F.
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// SpecificGravity is the fluid specific gravity relative to water.
	SpecificGravity float64 `json:"specific_gravity,omitempty" yaml:"specific_gravity,omitempty"`

	// Viscosity is the fluid viscosity in centistokes.
	Viscosity float64 `json:"viscosity,omitempty" yaml:"viscosity,omitempty"`

	// SolidsContent is the suspended solids fraction in percent.
	SolidsContent float64 `json:"solids_content,omitempty" yaml:"solids_content,omitempty"`
}

// OperatingPoint is the flow/head pair where a pump curve and a system
// curve intersect, together with the pump's efficiency, power, and required
// suction head at that flow. Computed fresh per (pump, criteria) pair and
// never mutated.
type OperatingPoint struct {
	// Flow is the resolved flow in GPM.
	Flow float64 `json:"flow" yaml:"flow"`

	// Head is the delivered head at Flow in feet.
	Head float64 `json:"head" yaml:"head"`

	// Efficiency is the pump efficiency at Flow in percent.
	Efficiency float64 `json:"efficiency" yaml:"efficiency"`

	// Power is the shaft power at Flow in HP.
	Power float64 `json:"power" yaml:"power"`

	// NPSHRequired is the suction head the pump needs at Flow in feet.
	NPSHRequired float64 `json:"npsh_required" yaml:"npsh_required"`
}

// ScoreBreakdown holds the individual weighted terms that sum to a
// candidate's selection score.
type ScoreBreakdown struct {
	// FlowMatch rewards proximity of operating flow to design flow (max 20).
	FlowMatch float64 `json:"flow_match" yaml:"flow_match"`

	// HeadMatch rewards proximity of operating head to design head (max 20).
	HeadMatch float64 `json:"head_match" yaml:"head_match"`

	// Efficiency is 0.25 x operating efficiency in percent (max 25).
	Efficiency float64 `json:"efficiency" yaml:"efficiency"`

	// BEPProximity rewards operating near the best-efficiency point (max 15).
	BEPProximity float64 `json:"bep_proximity" yaml:"bep_proximity"`

	// NPSHMargin is 10 when the suction margin is adequate, else 0.
	NPSHMargin float64 `json:"npsh_margin" yaml:"npsh_margin"`

	// Price is the price term: max(0, 10 - price/1000).
	Price float64 `json:"price" yaml:"price"`
}

// PumpPerformance is the result of evaluating one candidate pump against
// selection criteria: the pump, its operating point, suction-margin and
// best-efficiency-point assessments, annual energy cost, and score.
// Returned to the caller; never persisted by the engine.
type PumpPerformance struct {
	// Pump is the evaluated candidate.
	Pump PumpSpecification `json:"pump" yaml:"pump"`

	// OperatingPoint is where the pump meets the system curve.
	OperatingPoint OperatingPoint `json:"operating_point" yaml:"operating_point"`

	// NPSHMargin is NPSHAvailable minus NPSHRequired at the operating
	// point, in feet.
	NPSHMargin float64 `json:"npsh_margin" yaml:"npsh_margin"`

	// AdequateNPSH reports whether NPSHMargin meets the 3 ft safety margin,
	// a standard engineering rule of thumb.
	AdequateNPSH bool `json:"adequate_npsh" yaml:"adequate_npsh"`

	// PercentBEP is the operating flow as a percentage of the flow at the
	// curve's maximum efficiency sample.
	PercentBEP float64 `json:"percent_bep" yaml:"percent_bep"`

	// AnnualEnergyCost is the estimated yearly operating cost in currency
	// units.
	AnnualEnergyCost float64 `json:"annual_energy_cost" yaml:"annual_energy_cost"`

	// Score is the overall selection score in [0, 100].
	Score float64 `json:"score" yaml:"score"`

	// Breakdown holds the individual score terms.
	Breakdown ScoreBreakdown `json:"breakdown" yaml:"breakdown"`
}
