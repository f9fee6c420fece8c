// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pump-select/internal/catalog"
	"github.com/pdiddy/pump-select/internal/combine"
	"github.com/pdiddy/pump-select/internal/hydraulic"
	"github.com/pdiddy/pump-select/pkg/types"
)

var combineCmd = &cobra.Command{
	Use:   "combine [pump-id]...",
	Short: "Combine pumps in parallel or series and solve the duty point",
	Long: `Combine synthesizes an equivalent composite curve for two or more
catalog pumps operated in parallel (flows sum at equal head) or in
series (heads sum at equal flow), then intersects it with a system
curve through the design flow/head.

For series operation the first pump listed is the suction-side unit:
its required suction head is the one exposed to the inlet condition.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCombine,
}

func runCombine(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	if mode != "parallel" && mode != "series" {
		return fmt.Errorf("--mode must be \"parallel\" or \"series\", got %q", mode)
	}

	flow, _ := cmd.Flags().GetFloat64("flow")
	head, _ := cmd.Flags().GetFloat64("head")
	criteria := types.SelectionCriteria{DesignFlow: flow, DesignHead: head}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	curves := make([]types.Curve, 0, len(args))
	for _, id := range args {
		pump, err := store.Get(context.Background(), id)
		if err != nil {
			return err
		}
		curves = append(curves, pump.Curve)
	}

	var composite types.Curve
	if mode == "parallel" {
		composite, err = combine.Parallel(curves)
	} else {
		composite, err = combine.Series(curves)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Composite curve (%d pumps in %s):\n", len(curves), mode)
	printCurve(composite)

	system, err := hydraulic.SystemCurveFor(criteria, composite)
	if err != nil {
		return err
	}
	op, err := hydraulic.SolveOperatingPoint(composite, system)
	if err != nil {
		return err
	}
	if op == nil {
		fmt.Println("\nNo operating point: composite curve never crosses the system curve.")
		return nil
	}
	printOperatingPoint(*op)
	return nil
}

func init() {
	combineCmd.Flags().String("mode", "parallel", "combination mode: parallel or series")
	combineCmd.Flags().Float64("flow", 0, "design flow in GPM (required)")
	combineCmd.Flags().Float64("head", 0, "design head in feet (required)")
	_ = combineCmd.MarkFlagRequired("flow")
	_ = combineCmd.MarkFlagRequired("head")

	rootCmd.AddCommand(combineCmd)
}
