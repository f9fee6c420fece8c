// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pump-select CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pump-select/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pump-select CLI.
var rootCmd = &cobra.Command{
	Use:   "pump-select",
	Short: "Pump curve modeling and selection for fluid delivery systems",
	Long: `pump-select models steady-state pump performance and selects pumps for a
target flow/head duty point. It intersects each candidate's performance
curve with a derived system curve, scores the result on flow/head match,
efficiency, best-efficiency-point proximity, suction margin, and price,
and ranks the feasible candidates.

Derived curves compose with selection: scale rescales a pump for a new
speed or impeller via the affinity laws, and combine synthesizes a
composite curve for pumps in parallel or series.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pump-select.yaml or ~/.config/pump-select/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "catalog directory (default: ./catalog)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pump-select")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pump-select"))
		}
	}

	viper.SetDefault("catalog.catalog_dir", "catalog")
	viper.SetDefault("selection.hours_per_year", types.DefaultHoursPerYear)
	viper.SetDefault("selection.rate_per_kwh", types.DefaultRatePerKWh)

	viper.SetEnvPrefix("PUMP_SELECT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// catalogConfig resolves the catalog directory from the flag, then config.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	dir, _ := cmd.Flags().GetString("catalog")
	if dir == "" {
		dir = viper.GetString("catalog.catalog_dir")
	}
	return types.CatalogConfig{
		CatalogDir: dir,
		MaxResults: viper.GetInt("catalog.max_results"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
