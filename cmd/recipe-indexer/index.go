// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgirard/recipe-indexer/internal/index"
	"github.com/mgirard/recipe-indexer/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Scan recipe documents and write the aggregated index",
	Long: `Index discovers the recipe documents of the input directory (excluding
the template file), builds one record per document with a parseable
header, and writes the records as a single indented array. Documents
without a header are skipped with a warning; documents with a malformed
header or a non-numeric servings value are reported and excluded. One
document's failure never aborts the run.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := indexConfig(cmd)

	recipes, _, summary, err := index.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json", "":
		err = index.WriteJSON(cfg.OutputPath, recipes)
	case "yaml":
		err = index.WriteYAML(cfg.OutputPath, recipes)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nSUCCESS: wrote %s (%d recipe(s), %d skipped, %d failed)\n",
		cfg.OutputPath, summary.Indexed, summary.Skipped, summary.Failed)
	return nil
}

// indexConfig resolves the run configuration: flag, then config file or
// environment, then built-in default.
func indexConfig(cmd *cobra.Command) types.IndexConfig {
	cfg := types.IndexConfig{
		InputDir:        resolve(cmd, "input", "input_dir"),
		OutputPath:      resolve(cmd, "output", "output_path"),
		TemplateName:    resolve(cmd, "template", "template_name"),
		Heading:         resolve(cmd, "heading", "heading"),
		DefaultServings: viper.GetInt("default_servings"),
	}
	return cfg.WithDefaults()
}

// resolve returns the flag value when set on the command line, the viper
// value otherwise. An empty result means "use the built-in default".
func resolve(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func init() {
	indexCmd.Flags().String("input", types.DefaultInputDir, "directory containing recipe documents")
	indexCmd.Flags().String("output", types.DefaultOutputPath, "path of the aggregated index file")
	indexCmd.Flags().String("format", "json", "output format: json or yaml")
	indexCmd.Flags().String("template", types.DefaultTemplateName, "template file name excluded from indexing")
	indexCmd.Flags().String("heading", types.DefaultHeading, "label of the ingredient section heading")

	rootCmd.AddCommand(indexCmd)
}
