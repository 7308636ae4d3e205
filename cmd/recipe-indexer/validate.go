// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgirard/recipe-indexer/internal/index"
	"github.com/mgirard/recipe-indexer/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check recipe documents without writing the index",
	Long: `Validate runs the same discovery and parsing pipeline as index but
writes nothing. It exits non-zero when any document fails parsing, which
makes it usable as a pre-commit or CI check for the recipe repository.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := indexConfig(cmd)

	_, _, summary, err := index.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\n%d indexed, %d skipped, %d failed (total: %d)\n",
		summary.Indexed, summary.Skipped, summary.Failed, summary.Total())

	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed validation", summary.Failed)
	}
	return nil
}

func init() {
	validateCmd.Flags().String("input", types.DefaultInputDir, "directory containing recipe documents")
	validateCmd.Flags().String("template", types.DefaultTemplateName, "template file name excluded from validation")
	validateCmd.Flags().String("heading", types.DefaultHeading, "label of the ingredient section heading")

	rootCmd.AddCommand(validateCmd)
}
