// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mgirard/recipe-indexer/pkg/types"
)

// Build assembles the Recipe record for one document. path only contributes
// the record ID (file name without extension); content is the full document
// text. A document without a header returns ErrNoHeader; a malformed header
// or a non-numeric servings value returns a regular error.
func Build(path, content string, cfg types.IndexConfig) (types.Recipe, error) {
	header, body, err := ParseHeader(content)
	if err != nil {
		return types.Recipe{}, err
	}

	servings, err := coerceServings(header.Servings, cfg.DefaultServings)
	if err != nil {
		return types.Recipe{}, err
	}

	title := header.Title
	if title == "" {
		title = types.DefaultTitle
	}

	return types.Recipe{
		ID:          Stem(path),
		Title:       title,
		Category:    header.FirstCategory(types.DefaultCategory),
		Servings:    servings,
		Ingredients: ExtractIngredients(body, cfg.Heading),
	}, nil
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// coerceServings turns the decoded servings value into an integer. Existing
// documents write it as a bare number or a quoted numeric string; anything
// else fails the document.
func coerceServings(v any, fallback int) (int, error) {
	switch s := v.(type) {
	case nil:
		return fallback, nil
	case int:
		return s, nil
	case int64:
		return int(s), nil
	case float64:
		if s == float64(int(s)) {
			return int(s), nil
		}
		return 0, fmt.Errorf("invalid servings value %v", s)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("invalid servings value %q", s)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("invalid servings value %v", v)
	}
}
