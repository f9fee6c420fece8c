// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pump-select/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the pump catalog (store, list, show)",
	Long: `Catalog manages a local SQLite database of pump specifications built
from YAML spec files. Use subcommands to ingest spec files, list pumps,
or show one pump's curve.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest pump spec YAML files into the catalog",
	Long: `Store reads pump specification YAML files from catalog/specs/, ingests
them into a SQLite database, and writes an export file. Unchanged files
are skipped on subsequent runs; files with invalid curves fail
individually without aborting the batch.`,
	RunE: runCatalogStore,
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d spec file(s) failed ingestion", summary.Failed)
	}
	return nil
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog pumps with optional filters",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	manufacturer, _ := cmd.Flags().GetString("manufacturer")
	coversFlow, _ := cmd.Flags().GetFloat64("covers-flow")
	maxPrice, _ := cmd.Flags().GetFloat64("max-price")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	pumps, err := store.List(context.Background(), catalog.ListOptions{
		Manufacturer: manufacturer,
		CoversFlow:   coversFlow,
		MaxPrice:     maxPrice,
		MaxResults:   maxResults,
	})
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pumps)
	}

	if len(pumps) == 0 {
		fmt.Println("No pumps found.")
		return nil
	}

	fmt.Printf("%-20s  %-16s  %-16s  %10s  %10s  %10s\n",
		"ID", "Manufacturer", "Model", "Flow range", "Speed", "Price")
	fmt.Println(strings.Repeat("-", 92))
	for _, p := range pumps {
		fmt.Printf("%-20s  %-16s  %-16s  %4.0f-%-5.0f  %10.0f  %10.0f\n",
			p.ID, p.Manufacturer, p.Model, p.Curve.MinFlow(), p.Curve.MaxFlow(), p.Speed, p.Price)
	}
	fmt.Printf("\n%d pump(s)\n", len(pumps))
	return nil
}

// --- show subcommand ---

var catalogShowCmd = &cobra.Command{
	Use:   "show [pump-id]",
	Short: "Show one pump's specification and curve",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	pump, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pump)
	}

	fmt.Printf("%s: %s %s", pump.ID, pump.Manufacturer, pump.Model)
	if pump.Size != "" {
		fmt.Printf(" (%s)", pump.Size)
	}
	fmt.Println()
	fmt.Printf("Speed %.0f RPM, %d stage(s), impeller %.2f in, motor %.1f HP, price $%.0f\n",
		pump.Speed, pump.Stages, pump.ImpellerDiameter, pump.MotorPower, pump.Price)
	printCurve(pump.Curve)
	return nil
}

func init() {
	catalogListCmd.Flags().String("manufacturer", "", "filter by manufacturer")
	catalogListCmd.Flags().Float64("covers-flow", 0, "keep only pumps whose curve spans this flow (GPM)")
	catalogListCmd.Flags().Float64("max-price", 0, "keep only pumps at or below this price")
	catalogListCmd.Flags().Int("max-results", 0, "maximum number of results")
	catalogListCmd.Flags().Bool("json", false, "output as JSON")
	catalogShowCmd.Flags().Bool("json", false, "output as JSON")

	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
