// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package energy converts an operating point's power draw into an
// annualized operating cost.
package energy

import (
	"fmt"

	"github.com/pdiddy/pump-select/pkg/types"
)

// hpToKW converts mechanical horsepower to kilowatts.
const hpToKW = 0.746

// AnnualCost estimates the yearly electricity cost of running a pump that
// draws powerHP at the given efficiency: the electrical input is
// powerHP * 0.746 / (efficiencyPercent/100) kW, billed for hoursPerYear at
// ratePerKWh. Zero or negative efficiency is invalid input.
func AnnualCost(powerHP, efficiencyPercent, hoursPerYear, ratePerKWh float64) (float64, error) {
	if efficiencyPercent <= 0 {
		return 0, fmt.Errorf("%w: efficiency must be positive, got %.4g", types.ErrValidation, efficiencyPercent)
	}
	if powerHP < 0 {
		return 0, fmt.Errorf("%w: power must not be negative, got %.4g", types.ErrValidation, powerHP)
	}
	if hoursPerYear < 0 || ratePerKWh < 0 {
		return 0, fmt.Errorf("%w: hours (%.4g) and rate (%.4g) must not be negative",
			types.ErrValidation, hoursPerYear, ratePerKWh)
	}

	kw := powerHP * hpToKW / (efficiencyPercent / 100)
	return kw * hoursPerYear * ratePerKWh, nil
}
