// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hydraulic

import (
	"fmt"
	"sort"

	"github.com/pdiddy/pump-select/pkg/types"
)

// staticFraction is the share of the design head attributed to static lift;
// the rest is quadratic friction loss. A 30/70 split is a modeling
// assumption reasonable for irrigation/nutrient delivery piping, not a
// physical law.
const staticFraction = 0.3

// SystemCurve derives the piping resistance curve H(Q) = Hstatic + k*Q^2
// through the design point: Hstatic = 0.3*designHead and k solved so that
// H(designFlow) = designHead. One point is produced per domain flow value;
// the domain is copied, sorted, and deduplicated. Only Flow and Head are
// meaningful on the result.
func SystemCurve(designFlow, designHead float64, domain []float64) (types.Curve, error) {
	if designFlow <= 0 {
		return nil, fmt.Errorf("%w: design flow must be positive, got %.4g", types.ErrValidation, designFlow)
	}
	if designHead <= 0 {
		return nil, fmt.Errorf("%w: design head must be positive, got %.4g", types.ErrValidation, designHead)
	}

	flows := append([]float64(nil), domain...)
	sort.Float64s(flows)
	flows = dedupe(flows)
	if len(flows) < 2 {
		return nil, fmt.Errorf("%w: system curve domain has %d distinct flow(s), need at least 2",
			types.ErrInsufficientCurveData, len(flows))
	}

	static := staticFraction * designHead
	k := (designHead - static) / (designFlow * designFlow)

	curve := make(types.Curve, len(flows))
	for i, q := range flows {
		curve[i] = types.CurvePoint{Flow: q, Head: static + k*q*q}
	}
	return curve, nil
}

// SystemCurveFor builds the system curve over a pump curve's own flow
// breakpoints, which puts both curves on a shared domain and eases the
// intersection search.
func SystemCurveFor(criteria types.SelectionCriteria, pump types.Curve) (types.Curve, error) {
	if err := ValidateCurve(pump); err != nil {
		return nil, err
	}
	domain := make([]float64, len(pump))
	for i, p := range pump {
		domain[i] = p.Flow
	}
	return SystemCurve(criteria.DesignFlow, criteria.DesignHead, domain)
}

func dedupe(sorted []float64) []float64 {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
