// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pump-select engine:
// performance curves, pump specifications, selection criteria, operating
// points, and the configuration structs consumed by the CLI.
package types

// CurvePoint is one sample on a pump performance curve: a flow value with
// the head, efficiency, required suction head, and power measured at that
// flow. Keeping the channels together in one record makes misalignment
// between them structurally impossible.
type CurvePoint struct {
	// Flow is the volumetric flow rate in GPM.
	Flow float64 `json:"flow" yaml:"flow"`

	// Head is the delivered head in feet of fluid column.
	Head float64 `json:"head" yaml:"head"`

	// Efficiency is the pump efficiency in percent (0-100).
	Efficiency float64 `json:"efficiency" yaml:"efficiency"`

	// NPSHRequired is the net positive suction head the pump needs at this
	// flow to avoid cavitation, in feet.
	NPSHRequired float64 `json:"npsh_required" yaml:"npsh_required"`

	// Power is the shaft power draw in HP.
	Power float64 `json:"power" yaml:"power"`
}

// Curve is a pump or system performance curve: an ordered sequence of
// CurvePoints with strictly increasing flow. For a physically valid
// centrifugal pump curve head is non-increasing as flow increases; that is
// a modeling assumption about the input data, not an invariant this package
// enforces (the parallel combiner validates it where its inverse lookup
// depends on it).
type Curve []CurvePoint

// MinFlow returns the lowest flow value on the curve, or 0 for an empty curve.
func (c Curve) MinFlow() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[0].Flow
}

// MaxFlow returns the highest flow value on the curve, or 0 for an empty curve.
func (c Curve) MaxFlow() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].Flow
}

// Clone returns a deep copy of the curve. Derived curves (affinity scaling,
// series/parallel combination) are always newly constructed; callers that
// need to modify a curve should clone it first.
func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}
