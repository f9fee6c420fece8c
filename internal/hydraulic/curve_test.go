// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hydraulic

import (
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/pump-select/pkg/types"
)

// testCurve is the reference curve used across the engine tests: a
// centrifugal characteristic with best efficiency 75% at 150 GPM.
func testCurve() types.Curve {
	return types.Curve{
		{Flow: 0, Head: 328, Efficiency: 0, NPSHRequired: 5, Power: 4},
		{Flow: 50, Head: 312, Efficiency: 35, NPSHRequired: 6, Power: 7},
		{Flow: 100, Head: 280, Efficiency: 60, NPSHRequired: 8, Power: 10},
		{Flow: 150, Head: 236, Efficiency: 75, NPSHRequired: 10, Power: 13},
		{Flow: 200, Head: 180, Efficiency: 72, NPSHRequired: 13, Power: 15},
		{Flow: 250, Head: 112, Efficiency: 60, NPSHRequired: 17, Power: 16},
		{Flow: 300, Head: 32, Efficiency: 38, NPSHRequired: 22, Power: 17},
	}
}

func TestValidateCurve(t *testing.T) {
	tests := []struct {
		name    string
		curve   types.Curve
		wantErr error
	}{
		{"valid", testCurve(), nil},
		{"empty", types.Curve{}, types.ErrInsufficientCurveData},
		{"single point", types.Curve{{Flow: 100, Head: 50}}, types.ErrInsufficientCurveData},
		{"duplicate flow", types.Curve{{Flow: 100, Head: 50}, {Flow: 100, Head: 40}}, types.ErrInsufficientCurveData},
		{"decreasing flow", types.Curve{{Flow: 100, Head: 50}, {Flow: 50, Head: 60}}, types.ErrInsufficientCurveData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCurve(tt.curve)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateCurve() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCurve() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAtFlowInterpolates(t *testing.T) {
	c := testCurve()

	tests := []struct {
		name     string
		flow     float64
		wantHead float64
		wantEff  float64
	}{
		{"exact breakpoint", 100, 280, 60},
		{"midpoint", 125, 258, 67.5},
		{"quarter", 112.5, 269, 63.75},
		{"lower edge", 0, 328, 0},
		{"upper edge", 300, 32, 38},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := AtFlow(c, tt.flow)
			if err != nil {
				t.Fatalf("AtFlow(%v): %v", tt.flow, err)
			}
			if math.Abs(p.Head-tt.wantHead) > 1e-9 {
				t.Errorf("Head = %v, want %v", p.Head, tt.wantHead)
			}
			if math.Abs(p.Efficiency-tt.wantEff) > 1e-9 {
				t.Errorf("Efficiency = %v, want %v", p.Efficiency, tt.wantEff)
			}
		})
	}
}

func TestAtFlowClampsOutOfRange(t *testing.T) {
	c := testCurve()

	below, err := AtFlow(c, -50)
	if err != nil {
		t.Fatalf("AtFlow(-50): %v", err)
	}
	if below != c[0] {
		t.Errorf("query below range should clamp to first point, got %+v", below)
	}

	above, err := AtFlow(c, 500)
	if err != nil {
		t.Fatalf("AtFlow(500): %v", err)
	}
	if above != c[len(c)-1] {
		t.Errorf("query above range should clamp to last point, got %+v", above)
	}
}

func TestAtFlowInsufficientData(t *testing.T) {
	_, err := AtFlow(types.Curve{{Flow: 100, Head: 50}}, 100)
	if !errors.Is(err, types.ErrInsufficientCurveData) {
		t.Errorf("AtFlow on 1-point curve = %v, want ErrInsufficientCurveData", err)
	}
}

func TestFlowAtHead(t *testing.T) {
	c := testCurve()

	tests := []struct {
		name     string
		head     float64
		wantFlow float64
	}{
		{"exact breakpoint", 280, 100},
		{"midpoint", 258, 125},
		{"above range clamps to min flow", 400, 0},
		{"below range clamps to max flow", 10, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := FlowAtHead(c, tt.head)
			if err != nil {
				t.Fatalf("FlowAtHead(%v): %v", tt.head, err)
			}
			if math.Abs(q-tt.wantFlow) > 1e-9 {
				t.Errorf("FlowAtHead(%v) = %v, want %v", tt.head, q, tt.wantFlow)
			}
		})
	}
}

func TestFlowAtHeadRejectsNonMonotonic(t *testing.T) {
	c := types.Curve{
		{Flow: 0, Head: 100},
		{Flow: 50, Head: 110}, // head rises with flow
		{Flow: 100, Head: 90},
	}
	_, err := FlowAtHead(c, 95)
	if !errors.Is(err, types.ErrNonMonotonicCurve) {
		t.Errorf("FlowAtHead on rising head = %v, want ErrNonMonotonicCurve", err)
	}

	flat := types.Curve{
		{Flow: 0, Head: 100},
		{Flow: 50, Head: 100}, // flat stretch is equally ambiguous
		{Flow: 100, Head: 90},
	}
	_, err = FlowAtHead(flat, 95)
	if !errors.Is(err, types.ErrNonMonotonicCurve) {
		t.Errorf("FlowAtHead on flat head = %v, want ErrNonMonotonicCurve", err)
	}
}

func TestBestEfficiencyPoint(t *testing.T) {
	bep, err := BestEfficiencyPoint(testCurve())
	if err != nil {
		t.Fatalf("BestEfficiencyPoint: %v", err)
	}
	if bep.Flow != 150 || bep.Efficiency != 75 {
		t.Errorf("BEP = (%v GPM, %v%%), want (150, 75)", bep.Flow, bep.Efficiency)
	}
}
