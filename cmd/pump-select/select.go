// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pump-select/internal/catalog"
	"github.com/pdiddy/pump-select/internal/selection"
	"github.com/pdiddy/pump-select/pkg/types"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Rank catalog pumps against a target flow/head duty point",
	Long: `Select evaluates every catalog pump against the design flow and head:
it derives a system curve through the duty point, solves each pump's
operating point, and ranks the feasible pumps by a 0-100 score. Pumps
whose curves never cross the system curve are excluded; malformed
catalog entries are skipped with a warning.`,
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	criteria := criteriaFromFlags(cmd)
	cfg := selectionConfigFromFlags(cmd)

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	candidates, err := store.List(context.Background(), catalog.ListOptions{MaxResults: 100000})
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("catalog is empty: run 'pump-select catalog store' first")
	}

	out, err := selection.Select(criteria, candidates, cfg, os.Stderr)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := selection.WriteRunFile(savePath, criteria, cfg, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved selection run to %s\n", savePath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return selection.FormatJSON(out, os.Stdout)
	}
	selection.FormatTable(out, os.Stdout)
	return nil
}

func criteriaFromFlags(cmd *cobra.Command) types.SelectionCriteria {
	flow, _ := cmd.Flags().GetFloat64("flow")
	head, _ := cmd.Flags().GetFloat64("head")
	npsha, _ := cmd.Flags().GetFloat64("npsha")
	fluid, _ := cmd.Flags().GetString("fluid")
	temp, _ := cmd.Flags().GetFloat64("temperature")
	sg, _ := cmd.Flags().GetFloat64("sg")
	visc, _ := cmd.Flags().GetFloat64("viscosity")
	solids, _ := cmd.Flags().GetFloat64("solids")

	return types.SelectionCriteria{
		DesignFlow:      flow,
		DesignHead:      head,
		NPSHAvailable:   npsha,
		FluidType:       fluid,
		Temperature:     temp,
		SpecificGravity: sg,
		Viscosity:       visc,
		SolidsContent:   solids,
	}
}

func selectionConfigFromFlags(cmd *cobra.Command) types.SelectionConfig {
	cfg := types.SelectionConfig{
		EnergyConfig: types.EnergyConfig{
			HoursPerYear: viper.GetFloat64("selection.hours_per_year"),
			RatePerKWh:   viper.GetFloat64("selection.rate_per_kwh"),
		},
		MaxResults: viper.GetInt("selection.max_results"),
	}
	if cmd.Flags().Changed("hours") {
		cfg.HoursPerYear, _ = cmd.Flags().GetFloat64("hours")
	}
	if cmd.Flags().Changed("rate") {
		cfg.RatePerKWh, _ = cmd.Flags().GetFloat64("rate")
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}
	return cfg.WithDefaults()
}

func init() {
	selectCmd.Flags().Float64("flow", 0, "design flow in GPM (required)")
	selectCmd.Flags().Float64("head", 0, "design head in feet (required)")
	selectCmd.Flags().Float64("npsha", 0, "available suction head in feet")
	selectCmd.Flags().String("fluid", "water", "fluid type")
	selectCmd.Flags().Float64("temperature", 68, "fluid temperature in degrees F")
	selectCmd.Flags().Float64("sg", 1.0, "fluid specific gravity")
	selectCmd.Flags().Float64("viscosity", 1.0, "fluid viscosity in centistokes")
	selectCmd.Flags().Float64("solids", 0, "suspended solids content in percent")
	selectCmd.Flags().Float64("hours", types.DefaultHoursPerYear, "annual running hours for energy cost")
	selectCmd.Flags().Float64("rate", types.DefaultRatePerKWh, "electricity rate in $/kWh")
	selectCmd.Flags().Int("max-results", 0, "maximum number of ranked results (0 = all)")
	selectCmd.Flags().Bool("json", false, "output results as JSON")
	selectCmd.Flags().String("save", "", "save the selection run to a YAML file")
	_ = selectCmd.MarkFlagRequired("flow")
	_ = selectCmd.MarkFlagRequired("head")

	rootCmd.AddCommand(selectCmd)
}
