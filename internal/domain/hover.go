package domain

import (
	"html"
	"strings"
)

// HoverField is one labelled line of a map tooltip.
type HoverField struct {
	Label string
	Value string
}

// BuildHoverText renders a tooltip fragment: the bolded title followed by
// "Label: value" for every field that is not blank or "N/A", joined by <br>.
// Field order is preserved exactly.
func BuildHoverText(title string, fields []HoverField) string {
	title = strings.TrimSpace(title)
	if isBlankValue(title) {
		title = "Unknown Site"
	}

	parts := make([]string, 0, len(fields)+1)
	parts = append(parts, "<b>"+html.EscapeString(title)+"</b>")
	for _, f := range fields {
		v := strings.TrimSpace(f.Value)
		if isBlankValue(v) {
			continue
		}
		parts = append(parts, html.EscapeString(f.Label)+": "+html.EscapeString(v))
	}
	return strings.Join(parts, "<br>")
}
