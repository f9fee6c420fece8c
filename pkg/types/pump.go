// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PumpSpecification describes one catalog pump: identity, physical
// parameters, performance curve, and price. Records are owned by the
// catalog; the engine treats them as read-only inputs.
type PumpSpecification struct {
	// ID is the catalog identifier (e.g. "bg-mse-15hp").
	ID string `json:"id" yaml:"id"`

	// Manufacturer is the maker's name.
	Manufacturer string `json:"manufacturer" yaml:"manufacturer"`

	// Model is the manufacturer's model designation.
	Model string `json:"model" yaml:"model"`

	// Size is the nominal discharge size (e.g. "2x3-10").
	Size string `json:"size,omitempty" yaml:"size,omitempty"`

	// Speed is the rated rotational speed in RPM.
	Speed float64 `json:"speed" yaml:"speed"`

	// Stages is the number of impeller stages.
	Stages int `json:"stages,omitempty" yaml:"stages,omitempty"`

	// ImpellerDiameter is the impeller diameter in inches.
	ImpellerDiameter float64 `json:"impeller_diameter,omitempty" yaml:"impeller_diameter,omitempty"`

	// Curve is the manufacturer's performance curve at rated speed.
	Curve Curve `json:"curve" yaml:"curve"`

	// MotorPower is the rated motor power in HP.
	MotorPower float64 `json:"motor_power,omitempty" yaml:"motor_power,omitempty"`

	// Price is the list price in currency units.
	Price float64 `json:"price" yaml:"price"`
}
