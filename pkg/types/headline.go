// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model and per-stage configuration for
// outline-engine. Records here cross package boundaries: the parser produces
// them, filters and serializers consume them.
package types

// RenderMode selects how headline titles and content are rendered.
type RenderMode string

const (
	// RenderPlain leaves titles and content as raw outline markup.
	RenderPlain RenderMode = "plain"

	// RenderHTML renders inline markup and blocks to HTML.
	RenderHTML RenderMode = "html"

	// RenderMarkdown renders inline markup and blocks to Markdown.
	RenderMarkdown RenderMode = "markdown"
)

// Headline is one node of a document's outline hierarchy. It is built
// incrementally by the parser while it is the current headline and is
// immutable once handed to callers.
type Headline struct {
	// Level is the nesting depth, equal to the number of leading marker
	// characters on the headline line. Always len(Path)+1 at finalization.
	Level int `json:"level" yaml:"level"`

	// Title is the headline text after the markers. When a render mode is
	// active this is the rendered form.
	Title string `json:"title" yaml:"title"`

	// RawTitle is the title before any markup rendering. Path entries store
	// raw titles, so ancestor resolution matches against this field and
	// stays independent of the render mode. Not serialized.
	RawTitle string `json:"-" yaml:"-"`

	// Content holds the body lines between this headline and the next,
	// excluding drawer scaffolding, trimmed, with trailing blank and
	// comment lines removed. Rendered per the active mode.
	Content []string `json:"content" yaml:"content"`

	// Properties holds drawer key/value pairs with lower-cased keys.
	// Blank-valued entries are dropped at finalization.
	Properties map[string]string `json:"properties" yaml:"properties"`

	// Path lists ancestor titles from the document root down to this
	// headline's parent. Entries are always the raw, unrendered titles so
	// path-based filtering does not depend on the render mode.
	Path []string `json:"path" yaml:"path"`
}

// CustomID returns the headline's custom_id property, or "" if unset.
func (h Headline) CustomID() string {
	return h.Properties["custom_id"]
}
