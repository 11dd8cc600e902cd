// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview renders Markdown output for terminal display.
package preview

import (
	"github.com/charmbracelet/glamour"
)

// Renderer renders markdown for the terminal.
type Renderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a path
	// to a custom style. Empty or "auto" detects from the terminal.
	Style string

	// Width is the wrap width (0 = auto-detect).
	Width int
}

// Render converts markdown to styled terminal output. On any renderer
// error the markdown is returned unchanged so preview failures never lose
// content.
func (r Renderer) Render(markdown string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
