// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Recipe is one entry of the aggregated recipe index. The field set and
// order match what the site's rendering layer consumes from
// recettes-data.json.
type Recipe struct {
	// ID is the document file name without its extension (e.g. "tarte-aux-pommes").
	ID string `json:"id" yaml:"id"`

	// Title is the recipe title from the document header.
	Title string `json:"title" yaml:"title"`

	// Category is the first category declared in the header.
	Category string `json:"category" yaml:"category"`

	// Servings is the number of servings the recipe yields.
	Servings int `json:"servings" yaml:"servings"`

	// Ingredients lists the items of the document's ingredient section,
	// in document order. Empty when the document has no such section.
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}
