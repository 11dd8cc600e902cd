// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that fetch remote documents.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "outline-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ParseConfig holds settings for the parse stage.
type ParseConfig struct {
	// Mode selects title/content rendering: plain, html, or markdown.
	Mode RenderMode `json:"mode" yaml:"mode"`
}

// FilterConfig holds headline filter patterns. Zero values and empty
// patterns mean "unbounded" / "pass everything".
type FilterConfig struct {
	// MinLevel is the inclusive lower level bound (0 = unbounded).
	MinLevel int `json:"min_level" yaml:"min_level"`

	// MaxLevel is the inclusive upper level bound (0 = unbounded).
	MaxLevel int `json:"max_level" yaml:"max_level"`

	// Title is a regular expression matched against headline titles.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// CustomID is a regular expression matched against the custom_id property.
	CustomID string `json:"custom_id,omitempty" yaml:"custom_id,omitempty"`

	// SectionTitle is a regular expression matched against any ancestor
	// title in a headline's path.
	SectionTitle string `json:"section_title,omitempty" yaml:"section_title,omitempty"`

	// SectionCustomID is a regular expression matched against the custom_id
	// of any ancestor headline named in a headline's path.
	SectionCustomID string `json:"section_custom_id,omitempty" yaml:"section_custom_id,omitempty"`
}

// FetchConfig holds settings for reading documents from http(s) URLs.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on rate-limited or
	// temporarily unavailable responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// IndexConfig holds settings for the SQLite document index.
type IndexConfig struct {
	// IndexDir is the directory holding the index database (default "index").
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Parse  ParseConfig  `json:"parse" yaml:"parse"`
	Filter FilterConfig `json:"filter" yaml:"filter"`
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Index  IndexConfig  `json:"index" yaml:"index"`
}
