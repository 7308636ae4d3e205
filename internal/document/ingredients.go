// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bufio"
	"strings"
)

// sectionMarker is the heading prefix that opens and closes the ingredient
// section. A line starting with "##" ends the section, so a deeper "###"
// heading terminates it as well; existing documents rely on that.
const sectionMarker = "##"

// ExtractIngredients collects the dash-prefixed items of the section whose
// heading is "## <label>", matched case-insensitively. It returns an empty
// slice when the heading is absent; a missing section is not an error.
func ExtractIngredients(body, label string) []string {
	ingredients := []string{}
	inSection := false

	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if inSection && strings.HasPrefix(line, sectionMarker) {
			break
		}
		if isSectionHeading(line, label) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}

		if item, ok := strings.CutPrefix(line, "-"); ok {
			if item = strings.TrimSpace(item); item != "" {
				ingredients = append(ingredients, item)
			}
		}
	}

	return ingredients
}

// isSectionHeading reports whether line is a level-two heading whose text
// equals label, ignoring case. EqualFold also covers accented letters, so
// "## INGRÉDIENTS" matches the default label.
func isSectionHeading(line, label string) bool {
	text, ok := strings.CutPrefix(line, sectionMarker)
	if !ok || strings.HasPrefix(text, "#") {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(text), label)
}
