// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/mgirard/recipe-indexer/pkg/types"
)

// WriteJSON writes the aggregated index to path as an indented JSON array,
// creating parent directories as needed and overwriting any previous run's
// output. HTML escaping is off so accented ingredient text stays literal.
func WriteJSON(path string, recipes []types.Recipe) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipes); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

// WriteYAML writes the aggregated index to path as YAML.
func WriteYAML(path string, recipes []types.Recipe) error {
	data, err := yaml.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
