// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package energy

import (
	"errors"
	"math"
	"testing"

	"github.com/pdiddy/pump-select/pkg/types"
)

func TestAnnualCostArithmetic(t *testing.T) {
	// 20 HP at 75% efficiency draws 20*0.746/0.75 = 19.8933 kW; a full
	// year (8760 h) at $0.12/kWh costs 20*0.746/0.75 * 8760 * 0.12.
	cost, err := AnnualCost(20, 75, 8760, 0.12)
	if err != nil {
		t.Fatalf("AnnualCost: %v", err)
	}
	want := 20 * 0.746 / 0.75 * 8760 * 0.12
	if math.Abs(cost-want) > 1e-9 {
		t.Errorf("AnnualCost = %v, want %v", cost, want)
	}
	// Sanity: the expected figure is roughly $20.9k.
	if cost < 20000 || cost > 21000 {
		t.Errorf("AnnualCost = %v, expected in [20000, 21000]", cost)
	}
}

func TestAnnualCostZeroPower(t *testing.T) {
	cost, err := AnnualCost(0, 75, 8760, 0.12)
	if err != nil {
		t.Fatalf("AnnualCost: %v", err)
	}
	if cost != 0 {
		t.Errorf("AnnualCost = %v, want 0", cost)
	}
}

func TestAnnualCostValidation(t *testing.T) {
	tests := []struct {
		name                      string
		power, eff, hours, rate   float64
	}{
		{"zero efficiency", 20, 0, 8760, 0.12},
		{"negative efficiency", 20, -5, 8760, 0.12},
		{"negative power", -1, 75, 8760, 0.12},
		{"negative hours", 20, 75, -1, 0.12},
		{"negative rate", 20, 75, 8760, -0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnnualCost(tt.power, tt.eff, tt.hours, tt.rate)
			if !errors.Is(err, types.ErrValidation) {
				t.Errorf("AnnualCost() error = %v, want ErrValidation", err)
			}
		})
	}
}
