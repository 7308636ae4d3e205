// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default values used when the config file, environment, and flags are all
// silent. They mirror the conventions of the recipe repository this tool
// indexes: a recettes/ directory of .qmd documents with a shared template.
const (
	DefaultInputDir     = "recettes"
	DefaultOutputPath   = "recettes/recettes-data.json"
	DefaultExtension    = ".qmd"
	DefaultTemplateName = "_template.qmd"
	DefaultHeading      = "Ingrédients"
	DefaultTitle        = "Sans titre"
	DefaultCategory     = "autre"
	DefaultServings     = 4
)

// IndexConfig holds settings for an indexing run.
type IndexConfig struct {
	// InputDir is the directory scanned for recipe documents.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputPath is the file the aggregated index is written to.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Extension is the document file extension, including the dot.
	Extension string `json:"extension" yaml:"extension"`

	// TemplateName is a file name excluded from discovery. The recipe
	// repository keeps a blank template next to the real documents.
	TemplateName string `json:"template_name" yaml:"template_name"`

	// Heading is the label of the ingredient section heading, matched
	// case-insensitively.
	Heading string `json:"heading" yaml:"heading"`

	// DefaultServings is used when a document header omits servings.
	DefaultServings int `json:"default_servings" yaml:"default_servings"`
}

// WithDefaults returns a copy of the config with every zero field replaced
// by its built-in default, so a zero IndexConfig describes the standard run.
func (c IndexConfig) WithDefaults() IndexConfig {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.TemplateName == "" {
		c.TemplateName = DefaultTemplateName
	}
	if c.Heading == "" {
		c.Heading = DefaultHeading
	}
	if c.DefaultServings <= 0 {
		c.DefaultServings = DefaultServings
	}
	return c
}
