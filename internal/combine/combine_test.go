// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package combine

import (
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/pump-select/internal/hydraulic"
	"github.com/pdiddy/pump-select/pkg/types"
)

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

func TestParallelTwoIdenticalPumpsDoubleFlow(t *testing.T) {
	composite, err := Parallel([]types.Curve{testCurve(), testCurve()})
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}

	// At any shared head the combined flow is twice the single-pump flow.
	for _, head := range []float64{280, 236, 180, 112} {
		single, err := hydraulic.FlowAtHead(testCurve(), head)
		if err != nil {
			t.Fatalf("FlowAtHead(single, %v): %v", head, err)
		}
		combined, err := hydraulic.FlowAtHead(composite, head)
		if err != nil {
			t.Fatalf("FlowAtHead(composite, %v): %v", head, err)
		}
		if math.Abs(combined-2*single) > 1e-6 {
			t.Errorf("flow at head %v = %v, want %v", head, combined, 2*single)
		}
	}
}

func TestParallelChannels(t *testing.T) {
	composite, err := Parallel([]types.Curve{testCurve(), testCurve()})
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}

	// At head 280 each pump runs at 100 GPM: power sums, efficiency is the
	// mean, NPSHr is the max.
	at, err := hydraulic.AtFlow(composite, 200)
	if err != nil {
		t.Fatalf("AtFlow: %v", err)
	}
	if math.Abs(at.Power-20) > 1e-6 {
		t.Errorf("Power = %v, want 20", at.Power)
	}
	if math.Abs(at.Efficiency-60) > 1e-6 {
		t.Errorf("Efficiency = %v, want 60", at.Efficiency)
	}
	if math.Abs(at.NPSHRequired-8) > 1e-6 {
		t.Errorf("NPSHRequired = %v, want 8", at.NPSHRequired)
	}
}

func TestParallelRejectsNonMonotonicCurve(t *testing.T) {
	sawtooth := types.Curve{
		{Flow: 0, Head: 200},
		{Flow: 100, Head: 90},
		{Flow: 200, Head: 110},
	}
	_, err := Parallel([]types.Curve{testCurve(), sawtooth})
	if !errors.Is(err, types.ErrNonMonotonicCurve) {
		t.Errorf("Parallel with sawtooth curve = %v, want ErrNonMonotonicCurve", err)
	}
}

func TestSeriesTwoIdenticalPumpsDoubleHead(t *testing.T) {
	composite, err := Series([]types.Curve{testCurve(), testCurve()})
	if err != nil {
		t.Fatalf("Series: %v", err)
	}

	single := testCurve()
	if len(composite) != len(single) {
		t.Fatalf("len(composite) = %d, want %d (first pump's domain)", len(composite), len(single))
	}
	for i, p := range single {
		c := composite[i]
		if math.Abs(c.Head-2*p.Head) > 1e-6 {
			t.Errorf("point %d: Head = %v, want %v", i, c.Head, 2*p.Head)
		}
		if math.Abs(c.Power-2*p.Power) > 1e-6 {
			t.Errorf("point %d: Power = %v, want %v", i, c.Power, 2*p.Power)
		}
		if math.Abs(c.Efficiency-p.Efficiency) > 1e-6 {
			t.Errorf("point %d: Efficiency = %v, want mean %v", i, c.Efficiency, p.Efficiency)
		}
		// NPSHr comes from the suction-side first pump only.
		if c.NPSHRequired != p.NPSHRequired {
			t.Errorf("point %d: NPSHRequired = %v, want %v", i, c.NPSHRequired, p.NPSHRequired)
		}
	}
}

func TestSeriesUsesFirstPumpDomain(t *testing.T) {
	small := types.Curve{
		{Flow: 0, Head: 100, Efficiency: 20, NPSHRequired: 4, Power: 2},
		{Flow: 100, Head: 60, Efficiency: 60, NPSHRequired: 7, Power: 4},
	}
	composite, err := Series([]types.Curve{small, testCurve()})
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if len(composite) != len(small) {
		t.Fatalf("len(composite) = %d, want first pump's %d points", len(composite), len(small))
	}
	// Second pump interpolated onto the first pump's breakpoints.
	if math.Abs(composite[1].Head-(60+280)) > 1e-6 {
		t.Errorf("Head at 100 GPM = %v, want 340", composite[1].Head)
	}
}

func TestCombineEmptyInput(t *testing.T) {
	if _, err := Parallel(nil); !errors.Is(err, types.ErrInsufficientCurveData) {
		t.Errorf("Parallel(nil) = %v, want ErrInsufficientCurveData", err)
	}
	if _, err := Series(nil); !errors.Is(err, types.ErrInsufficientCurveData) {
		t.Errorf("Series(nil) = %v, want ErrInsufficientCurveData", err)
	}
}

func TestParallelOperatingPoint(t *testing.T) {
	// Flat system curve at 236 ft: each pump contributes 150 GPM, so the
	// composite crosses at 300 GPM.
	system := types.Curve{
		{Flow: 0, Head: 236},
		{Flow: 600, Head: 236},
	}
	op, err := ParallelOperatingPoint([]types.Curve{testCurve(), testCurve()}, system)
	if err != nil {
		t.Fatalf("ParallelOperatingPoint: %v", err)
	}
	if op == nil {
		t.Fatal("expected an operating point")
	}
	if math.Abs(op.Flow-300) > 1e-6 {
		t.Errorf("Flow = %v, want 300", op.Flow)
	}
	if math.Abs(op.Head-236) > 1e-6 {
		t.Errorf("Head = %v, want 236", op.Head)
	}
}

func TestSeriesOperatingPoint(t *testing.T) {
	system, err := hydraulic.SystemCurve(150, 400, []float64{0, 50, 100, 150, 200, 250, 300})
	if err != nil {
		t.Fatalf("SystemCurve: %v", err)
	}
	op, err := SeriesOperatingPoint([]types.Curve{testCurve(), testCurve()}, system)
	if err != nil {
		t.Fatalf("SeriesOperatingPoint: %v", err)
	}
	if op == nil {
		t.Fatal("expected an operating point")
	}
	// The series stack delivers twice the head, so it crosses the system
	// curve above the single pump's crossing.
	single, err := hydraulic.SolveOperatingPoint(testCurve(), system)
	if err != nil {
		t.Fatalf("SolveOperatingPoint(single): %v", err)
	}
	if single != nil && op.Flow <= single.Flow {
		t.Errorf("series crossing flow %v should exceed single-pump crossing %v", op.Flow, single.Flow)
	}
}
