// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// Filter holds compiled headline predicates. Filters compose by
// intersection in a fixed order: level range, title, custom id, section
// title, section custom id. Each is a pass-through when unset.
type Filter struct {
	minLevel int
	maxLevel int

	title           *regexp.Regexp
	customID        *regexp.Regexp
	sectionTitle    *regexp.Regexp
	sectionCustomID *regexp.Regexp
}

// NewFilter compiles cfg's patterns. Invalid patterns are configuration
// errors, rejected before any headline is examined.
func NewFilter(cfg types.FilterConfig) (*Filter, error) {
	f := &Filter{minLevel: cfg.MinLevel, maxLevel: cfg.MaxLevel}

	compile := func(name, pattern string) (*regexp.Regexp, error) {
		if pattern == "" {
			return nil, nil
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern %q: %w", name, pattern, err)
		}
		return re, nil
	}

	var err error
	if f.title, err = compile("title", cfg.Title); err != nil {
		return nil, err
	}
	if f.customID, err = compile("custom-id", cfg.CustomID); err != nil {
		return nil, err
	}
	if f.sectionTitle, err = compile("section-title", cfg.SectionTitle); err != nil {
		return nil, err
	}
	if f.sectionCustomID, err = compile("section-custom-id", cfg.SectionCustomID); err != nil {
		return nil, err
	}

	return f, nil
}

// IsEmpty reports whether the filter passes every headline.
func (f *Filter) IsEmpty() bool {
	return f.minLevel == 0 && f.maxLevel == 0 &&
		f.title == nil && f.customID == nil &&
		f.sectionTitle == nil && f.sectionCustomID == nil
}

// Apply returns the headlines passing all configured predicates, in input
// order. The section-custom-id predicate needs the full sequence to resolve
// ancestor titles, so filtering operates on the whole slice.
func (f *Filter) Apply(headlines []types.Headline) []types.Headline {
	if f.IsEmpty() {
		return headlines
	}

	var out []types.Headline
	for _, h := range headlines {
		if f.matches(h, headlines) {
			out = append(out, h)
		}
	}
	return out
}

func (f *Filter) matches(h types.Headline, all []types.Headline) bool {
	if f.minLevel > 0 && h.Level < f.minLevel {
		return false
	}
	if f.maxLevel > 0 && h.Level > f.maxLevel {
		return false
	}
	if f.title != nil && !f.title.MatchString(h.Title) {
		return false
	}
	if f.customID != nil && !f.customID.MatchString(h.CustomID()) {
		return false
	}
	if f.sectionTitle != nil && !matchesAny(f.sectionTitle, h.Path) {
		return false
	}
	if f.sectionCustomID != nil && !f.matchesSectionCustomID(h, all) {
		return false
	}
	return true
}

func matchesAny(re *regexp.Regexp, values []string) bool {
	for _, v := range values {
		if re.MatchString(v) {
			return true
		}
	}
	return false
}

// matchesSectionCustomID reports whether any ancestor named in h's path has
// a custom_id matching the pattern. Ancestors are resolved by title
// equality: the first headline in document order whose raw title equals the
// path entry wins. Two sections sharing a title are therefore
// indistinguishable here; this best-effort first-match behavior is a known
// limitation.
func (f *Filter) matchesSectionCustomID(h types.Headline, all []types.Headline) bool {
	for _, ancestorTitle := range h.Path {
		if ancestorTitle == "" {
			continue
		}
		for _, candidate := range all {
			if candidate.RawTitle != ancestorTitle {
				continue
			}
			if id := candidate.CustomID(); id != "" && f.sectionCustomID.MatchString(id) {
				return true
			}
			break
		}
	}
	return false
}
