// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index drives the indexing run: document discovery, per-document
// record building with failure isolation, and serialization of the
// aggregated index.
package index

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgirard/recipe-indexer/internal/document"
	"github.com/mgirard/recipe-indexer/pkg/types"
)

// Status classifies the outcome of processing one document.
type Status string

const (
	// StatusIndexed means a record was produced.
	StatusIndexed Status = "indexed"
	// StatusSkipped means the document has no header block and was dropped.
	StatusSkipped Status = "skipped"
	// StatusFailed means the document could not be read or parsed.
	StatusFailed Status = "failed"
)

// Outcome records what happened to one discovered document.
type Outcome struct {
	File   string
	Status Status
	Err    error
}

// Summary holds the counters of an indexing run.
type Summary struct {
	Indexed int
	Skipped int
	Failed  int
}

// Total returns the number of documents processed.
func (s Summary) Total() int {
	return s.Indexed + s.Skipped + s.Failed
}

// HasFailures reports whether any document failed parsing.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Discover lists the recipe documents of cfg.InputDir in name order,
// keeping files with the configured extension and dropping the template.
// A missing input directory is the run's only fatal condition.
func Discover(cfg types.IndexConfig) ([]string, error) {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input directory %s does not exist", cfg.InputDir)
		}
		return nil, fmt.Errorf("reading input directory %s: %w", cfg.InputDir, err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == cfg.TemplateName {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), cfg.Extension) {
			continue
		}
		paths = append(paths, filepath.Join(cfg.InputDir, name))
	}

	// os.ReadDir already sorts by name; keep the guarantee explicit since
	// output ordering depends on it.
	sort.Strings(paths)
	return paths, nil
}

// Run discovers documents and builds one record per parseable document,
// printing per-file progress to w. A document's failure never affects the
// others: header absence is reported as a warning, any other parse or read
// error as an error, and the loop continues. The returned records are in
// sorted file-name order.
func Run(cfg types.IndexConfig, w io.Writer) ([]types.Recipe, []Outcome, Summary, error) {
	cfg = cfg.WithDefaults()

	paths, err := Discover(cfg)
	if err != nil {
		return nil, nil, Summary{}, err
	}

	fmt.Fprintf(w, "Found %d document(s) in %s\n", len(paths), cfg.InputDir)

	recipes := []types.Recipe{}
	outcomes := make([]Outcome, 0, len(paths))
	var summary Summary

	for _, path := range paths {
		name := filepath.Base(path)
		fmt.Fprintf(w, "Processing %s...\n", name)

		recipe, err := buildFromFile(path, cfg)
		switch {
		case errors.Is(err, document.ErrNoHeader):
			fmt.Fprintf(w, "WARNING: no header block in %s, skipping\n", name)
			outcomes = append(outcomes, Outcome{File: name, Status: StatusSkipped, Err: err})
			summary.Skipped++
		case err != nil:
			fmt.Fprintf(w, "ERROR: %s: %v\n", name, err)
			outcomes = append(outcomes, Outcome{File: name, Status: StatusFailed, Err: err})
			summary.Failed++
		default:
			fmt.Fprintf(w, "  OK: %s - %d ingredient(s)\n", recipe.Title, len(recipe.Ingredients))
			recipes = append(recipes, recipe)
			outcomes = append(outcomes, Outcome{File: name, Status: StatusIndexed})
			summary.Indexed++
		}
	}

	return recipes, outcomes, summary, nil
}

// buildFromFile reads one document and delegates to the record builder.
func buildFromFile(path string, cfg types.IndexConfig) (types.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Recipe{}, fmt.Errorf("reading document: %w", err)
	}
	return document.Build(path, string(data), cfg)
}
