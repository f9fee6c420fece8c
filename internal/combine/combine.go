// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package combine synthesizes equivalent composite curves for pumps
// operated in parallel (flows sum at equal head) or in series (heads sum
// at equal flow). Composite curves are full performance curves and can be
// fed back into the operating point solver, so combination and affinity
// scaling compose freely with selection.
package combine

import (
	"fmt"
	"math"
	"sort"

	"github.com/pdiddy/pump-select/internal/hydraulic"
	"github.com/pdiddy/pump-select/pkg/types"
)

// Parallel builds the composite curve for pumps sharing a common discharge:
// at each head, the combined flow is the sum of each pump's flow at that
// head. The inverse head-to-flow lookup requires every input curve's head
// to be strictly decreasing with flow; a non-monotonic curve returns
// ErrNonMonotonicCurve rather than an ambiguous result.
//
// At each combined point the power is the sum across pumps, efficiency is
// the mean, and required suction head is the maximum. Mean efficiency and
// max NPSHr are simplifications: true composite efficiency depends on the
// flow split, and the worst suction requirement governs cavitation.
func Parallel(curves []types.Curve) (types.Curve, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("%w: no curves to combine", types.ErrInsufficientCurveData)
	}
	for i, c := range curves {
		if err := hydraulic.ValidateCurve(c); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
	}

	heads := unionHeads(curves)
	if len(heads) < 2 {
		return nil, fmt.Errorf("%w: fewer than 2 distinct head breakpoints", types.ErrInsufficientCurveData)
	}

	combined := make(types.Curve, 0, len(heads))
	// Walk heads from highest to lowest so combined flow increases.
	for i := len(heads) - 1; i >= 0; i-- {
		h := heads[i]
		var flowSum, powerSum, effSum, npshMax float64
		for _, c := range curves {
			q, err := hydraulic.FlowAtHead(c, h)
			if err != nil {
				return nil, err
			}
			p, err := hydraulic.AtFlow(c, q)
			if err != nil {
				return nil, err
			}
			flowSum += q
			powerSum += p.Power
			effSum += p.Efficiency
			npshMax = math.Max(npshMax, p.NPSHRequired)
		}
		combined = append(combined, types.CurvePoint{
			Flow:         flowSum,
			Head:         h,
			Efficiency:   effSum / float64(len(curves)),
			NPSHRequired: npshMax,
			Power:        powerSum,
		})
	}

	return dedupeByFlow(combined), nil
}

// Series builds the composite curve for pumps staged so flow passes through
// each in turn: at each flow, heads and powers sum. The first pump's flow
// breakpoints are the shared domain and the other pumps are interpolated
// onto it (clamped at their own limits), so combining pumps with dissimilar
// flow ranges is an approximation.
//
// Required suction head is taken from the first pump only, since only the
// first stage's inlet sees the external suction condition: the caller must
// pass the suction-side pump as curves[0]. Efficiency is the mean across
// stages (a simplification, as for Parallel).
func Series(curves []types.Curve) (types.Curve, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("%w: no curves to combine", types.ErrInsufficientCurveData)
	}
	for i, c := range curves {
		if err := hydraulic.ValidateCurve(c); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
	}

	first := curves[0]
	combined := make(types.Curve, 0, len(first))
	for _, fp := range first {
		point := fp
		for _, c := range curves[1:] {
			p, err := hydraulic.AtFlow(c, fp.Flow)
			if err != nil {
				return nil, err
			}
			point.Head += p.Head
			point.Power += p.Power
			point.Efficiency += p.Efficiency
		}
		point.Efficiency /= float64(len(curves))
		combined = append(combined, point)
	}
	return combined, nil
}

// ParallelOperatingPoint combines the curves in parallel and solves the
// composite against the system curve. A nil result means the composite
// never crosses the system curve.
func ParallelOperatingPoint(curves []types.Curve, system types.Curve) (*types.OperatingPoint, error) {
	composite, err := Parallel(curves)
	if err != nil {
		return nil, err
	}
	return hydraulic.SolveOperatingPoint(composite, system)
}

// SeriesOperatingPoint combines the curves in series and solves the
// composite against the system curve. curves[0] must be the suction-side
// pump (see Series).
func SeriesOperatingPoint(curves []types.Curve, system types.Curve) (*types.OperatingPoint, error) {
	composite, err := Series(curves)
	if err != nil {
		return nil, err
	}
	return hydraulic.SolveOperatingPoint(composite, system)
}

// unionHeads collects the distinct head breakpoints across all curves,
// sorted ascending.
func unionHeads(curves []types.Curve) []float64 {
	var heads []float64
	for _, c := range curves {
		for _, p := range c {
			heads = append(heads, p.Head)
		}
	}
	sort.Float64s(heads)

	out := heads[:0]
	for i, h := range heads {
		if i == 0 || h != heads[i-1] {
			out = append(out, h)
		}
	}
	return out
}

// dedupeByFlow drops points whose flow does not strictly increase; clamped
// inverse lookups can produce repeated flows at the head extremes.
func dedupeByFlow(c types.Curve) types.Curve {
	out := c[:0]
	for i, p := range c {
		if i == 0 || p.Flow > out[len(out)-1].Flow {
			out = append(out, p)
		}
	}
	return out
}
