// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pump-select/internal/energy"
	"github.com/pdiddy/pump-select/pkg/types"
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Estimate the annual energy cost of an operating point",
	Long: `Energy converts a shaft power and efficiency into an annualized
electricity cost: kW = HP x 0.746 / (efficiency/100), billed for the
given hours per year at the given rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		power, _ := cmd.Flags().GetFloat64("power")
		eff, _ := cmd.Flags().GetFloat64("efficiency")
		hours, _ := cmd.Flags().GetFloat64("hours")
		rate, _ := cmd.Flags().GetFloat64("rate")

		cost, err := energy.AnnualCost(power, eff, hours, rate)
		if err != nil {
			return err
		}
		fmt.Printf("$%.2f per year (%.1f HP at %.1f%% efficiency, %.0f h/yr at $%.3f/kWh)\n",
			cost, power, eff, hours, rate)
		return nil
	},
}

func init() {
	energyCmd.Flags().Float64("power", 0, "shaft power in HP (required)")
	energyCmd.Flags().Float64("efficiency", 0, "pump efficiency in percent (required)")
	energyCmd.Flags().Float64("hours", types.DefaultHoursPerYear, "annual running hours")
	energyCmd.Flags().Float64("rate", types.DefaultRatePerKWh, "electricity rate in $/kWh")
	_ = energyCmd.MarkFlagRequired("power")
	_ = energyCmd.MarkFlagRequired("efficiency")

	rootCmd.AddCommand(energyCmd)
}
