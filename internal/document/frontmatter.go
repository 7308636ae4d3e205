// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document parses one recipe document: the YAML header between ---
// markers, the ingredient section of the markdown body, and the assembled
// Recipe record.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrNoHeader is returned when a document does not start with a ---
// delimited header block. Callers treat this as a skip, not a failure.
var ErrNoHeader = errors.New("no header block found")

// Header holds the decoded header fields of a recipe document. Categories
// and Servings stay untyped because existing documents write them either as
// scalars or lists, and servings as a number or a quoted string.
type Header struct {
	Title      string         `yaml:"title"`
	Categories any            `yaml:"categories"`
	Servings   any            `yaml:"servings"`
	Extra      map[string]any `yaml:",inline"`
}

// ParseHeader decodes the leading header block of content and returns the
// header plus the remaining markdown body. A document without a header
// returns ErrNoHeader; a document whose header is not valid YAML returns
// the decode error.
func ParseHeader(content string) (Header, string, error) {
	var h Header
	body, err := frontmatter.MustParse(strings.NewReader(content), &h)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return Header{}, "", ErrNoHeader
		}
		return Header{}, "", fmt.Errorf("parsing header: %w", err)
	}
	return h, string(body), nil
}

// FirstCategory returns the document's category: the first element when
// categories is a list, the value itself when it is a scalar, and fallback
// when it is absent or empty.
func (h Header) FirstCategory(fallback string) string {
	switch v := h.Categories.(type) {
	case string:
		if v != "" {
			return v
		}
	case []any:
		if len(v) > 0 {
			return stringify(v[0])
		}
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return fallback
}

// stringify renders a decoded YAML scalar as the string the index stores.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
