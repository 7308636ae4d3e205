// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recipe-indexer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the recipe-indexer CLI. Running it with
// no arguments performs a full indexing run with the built-in defaults, so
// the tool stays usable as a bare build step.
var rootCmd = &cobra.Command{
	Use:   "recipe-indexer",
	Short: "Build the aggregated recipe index for the static site",
	Long: `recipe-indexer scans a directory of .qmd recipe documents, extracts each
document's header metadata and ingredient section, and writes one
aggregated JSON index consumed by the site's rendering layer.

Run without arguments to index recettes/ into recettes/recettes-data.json,
or use the index and validate subcommands for explicit control.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndex(indexCmd, args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./recipe-indexer.yaml or ~/.config/recipe-indexer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recipe-indexer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recipe-indexer"))
		}
	}

	viper.SetEnvPrefix("RECIPE_INDEXER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
