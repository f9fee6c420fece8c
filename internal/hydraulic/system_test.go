// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hydraulic

import (
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/pump-select/pkg/types"
)

func TestSystemCurvePassesThroughDesignPoint(t *testing.T) {
	curve, err := SystemCurve(100, 280, []float64{0, 50, 100, 150, 200})
	if err != nil {
		t.Fatalf("SystemCurve: %v", err)
	}
	if len(curve) != 5 {
		t.Fatalf("len(curve) = %d, want 5", len(curve))
	}

	// Static head is 30% of design head at zero flow.
	if math.Abs(curve[0].Head-84) > 1e-9 {
		t.Errorf("H(0) = %v, want 84", curve[0].Head)
	}

	// The curve must pass exactly through the design point.
	at, err := AtFlow(curve, 100)
	if err != nil {
		t.Fatalf("AtFlow: %v", err)
	}
	if math.Abs(at.Head-280) > 1e-9 {
		t.Errorf("H(designFlow) = %v, want 280", at.Head)
	}

	// Quadratic friction term: H(200) = 84 + 0.0196*200^2.
	want := 84 + (280-84)/(100.0*100.0)*200*200
	if math.Abs(curve[4].Head-want) > 1e-9 {
		t.Errorf("H(200) = %v, want %v", curve[4].Head, want)
	}
}

func TestSystemCurveValidation(t *testing.T) {
	tests := []struct {
		name       string
		flow, head float64
		domain     []float64
		wantErr    error
	}{
		{"zero design flow", 0, 280, []float64{0, 100}, types.ErrValidation},
		{"negative design flow", -10, 280, []float64{0, 100}, types.ErrValidation},
		{"zero design head", 100, 0, []float64{0, 100}, types.ErrValidation},
		{"empty domain", 100, 280, nil, types.ErrInsufficientCurveData},
		{"degenerate domain", 100, 280, []float64{50, 50, 50}, types.ErrInsufficientCurveData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SystemCurve(tt.flow, tt.head, tt.domain)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SystemCurve() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSystemCurveSortsAndDedupesDomain(t *testing.T) {
	curve, err := SystemCurve(100, 280, []float64{200, 0, 100, 100, 50})
	if err != nil {
		t.Fatalf("SystemCurve: %v", err)
	}
	if len(curve) != 4 {
		t.Fatalf("len(curve) = %d, want 4 distinct flows", len(curve))
	}
	if err := ValidateCurve(curve); err != nil {
		t.Errorf("generated curve invalid: %v", err)
	}
}

func TestSystemCurveForUsesPumpDomain(t *testing.T) {
	pump := testCurve()
	criteria := types.SelectionCriteria{DesignFlow: 100, DesignHead: 280}

	system, err := SystemCurveFor(criteria, pump)
	if err != nil {
		t.Fatalf("SystemCurveFor: %v", err)
	}
	if len(system) != len(pump) {
		t.Fatalf("len(system) = %d, want %d", len(system), len(pump))
	}
	for i := range system {
		if system[i].Flow != pump[i].Flow {
			t.Errorf("system[%d].Flow = %v, want %v", i, system[i].Flow, pump[i].Flow)
		}
	}
}
