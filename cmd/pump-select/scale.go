// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pump-select/internal/affinity"
	"github.com/pdiddy/pump-select/internal/catalog"
	"github.com/pdiddy/pump-select/internal/hydraulic"
	"github.com/pdiddy/pump-select/pkg/types"
)

var scaleCmd = &cobra.Command{
	Use:   "scale [pump-id]",
	Short: "Rescale a catalog pump's curve via the affinity laws",
	Long: `Scale applies the centrifugal affinity laws to a catalog pump's curve
for a new rotational speed and/or impeller diameter. The old speed
defaults to the pump's rated speed. With --flow and --head the scaled
curve is also intersected with a system curve through that duty point.`,
	Args: cobra.ExactArgs(1),
	RunE: runScale,
}

func runScale(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	pump, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	speedOld, _ := cmd.Flags().GetFloat64("speed-old")
	if speedOld == 0 {
		speedOld = pump.Speed
	}
	speedNew, _ := cmd.Flags().GetFloat64("speed-new")
	if speedNew == 0 {
		speedNew = speedOld
	}
	diamOld, _ := cmd.Flags().GetFloat64("diameter-old")
	diamNew, _ := cmd.Flags().GetFloat64("diameter-new")

	scaled, err := affinity.Scale(pump.Curve, speedOld, speedNew, diamOld, diamNew)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scaled); err != nil {
			return err
		}
	} else {
		fmt.Printf("%s %s at %.0f RPM (from %.0f RPM)\n", pump.Manufacturer, pump.Model, speedNew, speedOld)
		printCurve(scaled)
	}

	flow, _ := cmd.Flags().GetFloat64("flow")
	head, _ := cmd.Flags().GetFloat64("head")
	if flow > 0 && head > 0 {
		criteria := types.SelectionCriteria{DesignFlow: flow, DesignHead: head}
		system, err := hydraulic.SystemCurveFor(criteria, scaled)
		if err != nil {
			return err
		}
		op, err := hydraulic.SolveOperatingPoint(scaled, system)
		if err != nil {
			return err
		}
		if op == nil {
			fmt.Println("\nNo operating point: scaled curve never crosses the system curve.")
			return nil
		}
		printOperatingPoint(*op)
	}
	return nil
}

func printCurve(c types.Curve) {
	fmt.Printf("%10s  %10s  %6s  %8s  %8s\n", "Flow", "Head", "Eff%", "NPSHr", "Power")
	fmt.Println(strings.Repeat("-", 50))
	for _, p := range c {
		fmt.Printf("%10.1f  %10.1f  %6.1f  %8.1f  %8.1f\n",
			p.Flow, p.Head, p.Efficiency, p.NPSHRequired, p.Power)
	}
}

func printOperatingPoint(op types.OperatingPoint) {
	fmt.Printf("\nOperating point: %.1f GPM at %.1f ft, %.1f%% efficiency, %.1f HP, NPSHr %.1f ft\n",
		op.Flow, op.Head, op.Efficiency, op.Power, op.NPSHRequired)
}

func init() {
	scaleCmd.Flags().Float64("speed-old", 0, "original speed in RPM (default: pump's rated speed)")
	scaleCmd.Flags().Float64("speed-new", 0, "new speed in RPM")
	scaleCmd.Flags().Float64("diameter-old", 0, "original impeller diameter in inches")
	scaleCmd.Flags().Float64("diameter-new", 0, "new impeller diameter in inches")
	scaleCmd.Flags().Float64("flow", 0, "design flow in GPM to solve an operating point")
	scaleCmd.Flags().Float64("head", 0, "design head in feet to solve an operating point")
	scaleCmd.Flags().Bool("json", false, "output the scaled curve as JSON")

	rootCmd.AddCommand(scaleCmd)
}
