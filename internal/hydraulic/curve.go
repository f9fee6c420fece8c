// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hydraulic implements the steady-state pump curve model: curve
// validation, linear interpolation, system-curve generation, and the
// operating point solver. All functions are pure; curves are treated as
// immutable inputs and results are newly constructed.
package hydraulic

import (
	"fmt"
	"sort"

	"github.com/pdiddy/pump-select/pkg/types"
)

// ValidateCurve checks the structural requirements every engine operation
// relies on: at least two points and strictly increasing flow. It does not
// check head monotonicity; that is only required by the inverse lookup and
// is validated there.
func ValidateCurve(c types.Curve) error {
	if len(c) < 2 {
		return fmt.Errorf("%w: %d point(s), need at least 2", types.ErrInsufficientCurveData, len(c))
	}
	for i := 1; i < len(c); i++ {
		if c[i].Flow <= c[i-1].Flow {
			return fmt.Errorf("%w: flow not strictly increasing at index %d (%.4g after %.4g)",
				types.ErrInsufficientCurveData, i, c[i].Flow, c[i-1].Flow)
		}
	}
	return nil
}

// AtFlow returns the curve's channels linearly interpolated at the query
// flow. Queries outside [MinFlow, MaxFlow] are clamped to the boundary
// point rather than extrapolated, since extrapolated pump curves are
// physically meaningless.
func AtFlow(c types.Curve, flow float64) (types.CurvePoint, error) {
	if err := ValidateCurve(c); err != nil {
		return types.CurvePoint{}, err
	}

	if flow <= c[0].Flow {
		return c[0], nil
	}
	if flow >= c[len(c)-1].Flow {
		return c[len(c)-1], nil
	}

	// First point with Flow >= flow; the segment [i-1, i] brackets the query.
	i := sort.Search(len(c), func(i int) bool { return c[i].Flow >= flow })
	lo, hi := c[i-1], c[i]
	t := (flow - lo.Flow) / (hi.Flow - lo.Flow)

	return types.CurvePoint{
		Flow:         flow,
		Head:         lerp(lo.Head, hi.Head, t),
		Efficiency:   lerp(lo.Efficiency, hi.Efficiency, t),
		NPSHRequired: lerp(lo.NPSHRequired, hi.NPSHRequired, t),
		Power:        lerp(lo.Power, hi.Power, t),
	}, nil
}

// FlowAtHead returns the flow at which the curve delivers the target head.
// The lookup inverts the head-vs-flow relation, so the curve's head must be
// strictly decreasing with flow; a flat or rising stretch makes the inverse
// ambiguous and returns ErrNonMonotonicCurve. Heads outside the curve's
// range are clamped to the nearest endpoint flow.
func FlowAtHead(c types.Curve, head float64) (float64, error) {
	if err := ValidateCurve(c); err != nil {
		return 0, err
	}
	for i := 1; i < len(c); i++ {
		if c[i].Head >= c[i-1].Head {
			return 0, fmt.Errorf("%w: head %.4g at flow %.4g follows %.4g",
				types.ErrNonMonotonicCurve, c[i].Head, c[i].Flow, c[i-1].Head)
		}
	}

	if head >= c[0].Head {
		return c[0].Flow, nil
	}
	if head <= c[len(c)-1].Head {
		return c[len(c)-1].Flow, nil
	}

	// Head decreases along the curve; find the bracketing segment.
	i := sort.Search(len(c), func(i int) bool { return c[i].Head <= head })
	lo, hi := c[i-1], c[i]
	t := (lo.Head - head) / (lo.Head - hi.Head)

	return lerp(lo.Flow, hi.Flow, t), nil
}

// BestEfficiencyPoint returns the curve point with the maximum efficiency
// sample. Note this is the best sampled point, not a fitted optimum.
func BestEfficiencyPoint(c types.Curve) (types.CurvePoint, error) {
	if err := ValidateCurve(c); err != nil {
		return types.CurvePoint{}, err
	}
	best := c[0]
	for _, p := range c[1:] {
		if p.Efficiency > best.Efficiency {
			best = p
		}
	}
	return best, nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
