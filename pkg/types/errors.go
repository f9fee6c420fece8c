// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors for the engine's failure taxonomy. Callers classify with
// errors.Is; sites that return them wrap with fmt.Errorf("...: %w", ...) to
// add context. A pump curve that simply never intersects the system curve is
// not an error: the solver reports absence and the ranker skips the
// candidate.
var (
	// ErrValidation indicates invalid input values: zero or negative design
	// flow or head, or zero efficiency in an energy cost calculation.
	ErrValidation = errors.New("invalid input")

	// ErrInsufficientCurveData indicates a curve with fewer than two points
	// or with flow values that are not strictly increasing.
	ErrInsufficientCurveData = errors.New("insufficient curve data")

	// ErrNonMonotonicCurve indicates a curve whose head does not strictly
	// decrease with flow, making the head-to-flow inverse lookup ambiguous.
	ErrNonMonotonicCurve = errors.New("curve head not strictly decreasing")

	// ErrDegenerateCurve indicates a curve whose best-efficiency-point flow
	// is zero, so percent-of-BEP is undefined.
	ErrDegenerateCurve = errors.New("degenerate curve")
)
