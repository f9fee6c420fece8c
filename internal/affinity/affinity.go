// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affinity rescales pump curves for changed rotational speed or
// impeller diameter using the centrifugal affinity laws.
package affinity

import (
	"fmt"

	"github.com/pdiddy/pump-select/internal/hydraulic"
	"github.com/pdiddy/pump-select/pkg/types"
)

// Scale returns a new curve rescaled from (speedOld, diameterOld) to
// (speedNew, diameterNew). With sr = speedNew/speedOld and
// dr = diameterNew/diameterOld:
//
//	flow  x sr*dr
//	head  x sr^2 * dr^2
//	power x sr^3 * dr^3
//	NPSHr x sr^2
//
// Efficiency is carried over unchanged: the affinity laws do not predict
// efficiency shift, so this is a known simplification rather than an exact
// physical result. Pass both diameters as zero to scale by speed alone
// (dr = 1). Scaling with sr = dr = 1 returns a curve numerically equal to
// the input.
func Scale(curve types.Curve, speedOld, speedNew, diameterOld, diameterNew float64) (types.Curve, error) {
	if err := hydraulic.ValidateCurve(curve); err != nil {
		return nil, err
	}
	if speedOld <= 0 || speedNew <= 0 {
		return nil, fmt.Errorf("%w: speeds must be positive, got %.4g -> %.4g",
			types.ErrValidation, speedOld, speedNew)
	}

	dr := 1.0
	switch {
	case diameterOld == 0 && diameterNew == 0:
		// Speed-only scaling.
	case diameterOld > 0 && diameterNew > 0:
		dr = diameterNew / diameterOld
	default:
		return nil, fmt.Errorf("%w: diameters must both be positive or both omitted, got %.4g -> %.4g",
			types.ErrValidation, diameterOld, diameterNew)
	}
	sr := speedNew / speedOld

	scaled := make(types.Curve, len(curve))
	for i, p := range curve {
		scaled[i] = types.CurvePoint{
			Flow:         p.Flow * sr * dr,
			Head:         p.Head * sr * sr * dr * dr,
			Efficiency:   p.Efficiency,
			NPSHRequired: p.NPSHRequired * sr * sr,
			Power:        p.Power * sr * sr * sr * dr * dr * dr,
		}
	}
	return scaled, nil
}
