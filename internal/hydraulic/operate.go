// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hydraulic

import (
	"math"
	"sort"

	"github.com/pdiddy/pump-select/pkg/types"
)

// flowTolerance treats breakpoints closer than this as the same flow.
const flowTolerance = 1e-9

// SolveOperatingPoint finds where the pump curve crosses the system curve.
// It walks the union of both curves' flow breakpoints over their overlapping
// domain and, on the first interval where the head difference changes sign,
// solves the exact two-line intersection. The lowest-flow crossing is taken,
// matching the physically stable intersection near design conditions.
//
// A pump curve that never crosses the system curve is an expected outcome,
// not an error: the result is (nil, nil) and the candidate is simply
// infeasible for that system. Errors are reserved for structurally invalid
// curves. Efficiency, power, and required suction head at the crossing are
// read from the pump curve.
func SolveOperatingPoint(pump, system types.Curve) (*types.OperatingPoint, error) {
	if err := ValidateCurve(pump); err != nil {
		return nil, err
	}
	if err := ValidateCurve(system); err != nil {
		return nil, err
	}

	lo := math.Max(pump.MinFlow(), system.MinFlow())
	hi := math.Min(pump.MaxFlow(), system.MaxFlow())
	if lo > hi {
		return nil, nil
	}

	flows := unionFlows(pump, system, lo, hi)

	prevQ, prevD := 0.0, 0.0
	for i, q := range flows {
		hp, err := AtFlow(pump, q)
		if err != nil {
			return nil, err
		}
		hs, err := AtFlow(system, q)
		if err != nil {
			return nil, err
		}
		d := hp.Head - hs.Head

		if math.Abs(d) <= flowTolerance {
			return operatingPointAt(pump, q)
		}
		if i > 0 && prevD*d < 0 {
			// Sign change on [prevQ, q]: both heads are linear on the
			// interval, so the difference is too and crosses zero at:
			cross := prevQ + prevD/(prevD-d)*(q-prevQ)
			return operatingPointAt(pump, cross)
		}
		prevQ, prevD = q, d
	}

	// Pump curve entirely above or entirely below the system curve.
	return nil, nil
}

func operatingPointAt(pump types.Curve, flow float64) (*types.OperatingPoint, error) {
	p, err := AtFlow(pump, flow)
	if err != nil {
		return nil, err
	}
	return &types.OperatingPoint{
		Flow:         p.Flow,
		Head:         p.Head,
		Efficiency:   p.Efficiency,
		Power:        p.Power,
		NPSHRequired: p.NPSHRequired,
	}, nil
}

// unionFlows merges both curves' breakpoints restricted to [lo, hi],
// including the interval endpoints, sorted and deduplicated.
func unionFlows(a, b types.Curve, lo, hi float64) []float64 {
	flows := make([]float64, 0, len(a)+len(b)+2)
	flows = append(flows, lo, hi)
	for _, p := range a {
		if p.Flow > lo && p.Flow < hi {
			flows = append(flows, p.Flow)
		}
	}
	for _, p := range b {
		if p.Flow > lo && p.Flow < hi {
			flows = append(flows, p.Flow)
		}
	}
	sort.Float64s(flows)

	out := flows[:0]
	for i, q := range flows {
		if i == 0 || q-flows[i-1] > flowTolerance {
			out = append(out, q)
		}
	}
	return out
}
