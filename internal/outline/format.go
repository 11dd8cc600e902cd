// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// FormatTable writes headlines as a human-readable table to w.
func FormatTable(headlines []types.Headline, w io.Writer) {
	if len(headlines) == 0 {
		fmt.Fprintln(w, "No headlines found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-40s  %-15s  %-30s  %s\n",
		"Level", "Title", "Custom ID", "Section", "Lines")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, h := range headlines {
		title := truncate(h.Title, 40)
		section := truncate(strings.Join(h.Path, " / "), 30)
		fmt.Fprintf(w, "%-5d  %-40s  %-15s  %-30s  %d\n",
			h.Level, title, truncate(h.CustomID(), 15), section, len(h.Content))
	}

	fmt.Fprintf(w, "\n%d headlines\n", len(headlines))
}

// FormatJSON writes headlines as indented JSON to w.
func FormatJSON(headlines []types.Headline, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(headlines)
}

// FormatYAML writes headlines as YAML to w.
func FormatYAML(headlines []types.Headline, w io.Writer) error {
	data, err := yaml.Marshal(headlines)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// RenderDocument renders the full headline sequence to one output document
// in the given mode. Plain mode re-emits outline markup.
func RenderDocument(headlines []types.Headline, mode types.RenderMode) string {
	var b strings.Builder
	for i, h := range headlines {
		if i > 0 {
			b.WriteString("\n")
		}
		switch mode {
		case types.RenderHTML:
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", clampHeading(h.Level), h.Title, clampHeading(h.Level))
		case types.RenderMarkdown:
			b.WriteString(strings.Repeat("#", clampHeading(h.Level)) + " " + h.Title + "\n")
		default:
			b.WriteString(strings.Repeat("*", h.Level) + " " + h.Title + "\n")
		}
		if len(h.Content) > 0 {
			b.WriteString(strings.Join(h.Content, "\n"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// clampHeading caps outline levels at HTML's six heading levels.
func clampHeading(level int) int {
	if level > 6 {
		return 6
	}
	return level
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
