// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline parses outline documents into headline records and
// provides filtering and output formatting over them.
//
// Parsing is a single forward pass driven by a three-state machine: no open
// headline, headline open, and inside a property drawer. The parser owns the
// in-progress headline and the section-path stack for the duration of the
// pass; finalized headlines are handed to callers immutably.
package outline

import (
	"strings"

	"github.com/pdiddy/outline-engine/internal/blocks"
	"github.com/pdiddy/outline-engine/internal/classify"
	"github.com/pdiddy/outline-engine/internal/markup"
	"github.com/pdiddy/outline-engine/pkg/types"
)

// parserState tags the state machine's current state.
type parserState int

const (
	stateNoHeadline parserState = iota
	stateHeadlineOpen
	stateInsideDrawer
)

// parser holds the mutable pass state. It exists for one Parse call.
type parser struct {
	mode  types.RenderMode
	state parserState

	// open is the headline currently accumulating content, nil before the
	// first marker line.
	open *types.Headline

	// pathStack is the current ancestor chain of raw titles. Its length
	// always equals the current nesting level.
	pathStack []string

	done []types.Headline
}

// Parse builds the ordered headline sequence for a document. Lines before
// the first headline marker are skipped. The returned records are finalized
// and must not be mutated. Parse never fails: malformed drawers and
// properties degrade locally.
func Parse(lines []string, mode types.RenderMode) []types.Headline {
	p := &parser{mode: mode}

	for _, line := range lines {
		p.step(line)
	}
	p.finalize()

	return p.done
}

// step feeds one line to the state machine.
func (p *parser) step(line string) {
	// A headline marker closes whatever is open, in any state. This also
	// ends an unterminated drawer.
	if classify.IsHeadline(line) {
		p.finalize()
		p.openHeadline(line)
		return
	}

	switch p.state {
	case stateNoHeadline:
		// Pre-headline prose has no owner; skip it.

	case stateHeadlineOpen:
		if classify.IsDrawerOpen(line) {
			p.state = stateInsideDrawer
			return
		}
		p.open.Content = append(p.open.Content, strings.TrimSpace(line))

	case stateInsideDrawer:
		if classify.IsDrawerClose(line) {
			p.state = stateHeadlineOpen
			return
		}
		// The drawer tolerates foreign content: non-property lines are
		// skipped, not errors.
		if key, value, ok := classify.PropertyKeyValue(line); ok {
			p.open.Properties[key] = value
		}
	}
}

// openHeadline starts a new headline from a marker line, updating the
// section-path stack first so the new record's path reflects its ancestors.
func (p *parser) openHeadline(line string) {
	level := classify.HeadlineLevel(line)
	rawTitle := strings.TrimSpace(line[level:])

	p.updatePath(level, rawTitle)

	title := rawTitle
	if p.mode == types.RenderHTML || p.mode == types.RenderMarkdown {
		title = markup.Render(rawTitle, p.mode)
	}

	path := make([]string, level-1)
	copy(path, p.pathStack[:level-1])

	p.open = &types.Headline{
		Level:      level,
		Title:      title,
		RawTitle:   rawTitle,
		Properties: map[string]string{},
		Path:       path,
	}
	p.state = stateHeadlineOpen
}

// updatePath maintains the ancestor chain for a new headline at level.
// Deeper than the current depth pushes, equal depth replaces the last entry,
// shallower truncates to level-1 then pushes. The stack always stores raw
// titles so path-based filtering is independent of the render mode.
func (p *parser) updatePath(level int, rawTitle string) {
	switch {
	case level > len(p.pathStack):
		// Arbitrary level jumps (1 directly to 4) pad with empty ancestors
		// so the stack length always equals the level.
		for len(p.pathStack) < level-1 {
			p.pathStack = append(p.pathStack, "")
		}
		p.pathStack = append(p.pathStack, rawTitle)
	case level == len(p.pathStack):
		p.pathStack[level-1] = rawTitle
	default:
		p.pathStack = p.pathStack[:level-1]
		p.pathStack = append(p.pathStack, rawTitle)
	}
}

// finalize closes the open headline: trims trailing blank and comment lines
// from its content, drops blank-valued properties, and appends it to the
// output sequence. Content is never mutated afterwards.
func (p *parser) finalize() {
	if p.open == nil {
		p.state = stateNoHeadline
		return
	}

	content := p.open.Content
	for len(content) > 0 {
		last := content[len(content)-1]
		if classify.IsBlank(last) || classify.IsComment(last) {
			content = content[:len(content)-1]
			continue
		}
		break
	}

	for key, value := range p.open.Properties {
		if value == "" {
			delete(p.open.Properties, key)
		}
	}

	if p.mode == types.RenderHTML || p.mode == types.RenderMarkdown {
		rendered := blocks.Render(content, p.mode)
		if rendered == "" {
			content = nil
		} else {
			content = strings.Split(rendered, "\n")
		}
	}

	p.open.Content = content
	p.done = append(p.done, *p.open)
	p.open = nil
	p.state = stateNoHeadline
}
