// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reflow merges hard-wrapped physical lines back into logical lines
// without crossing structural boundaries. It operates on raw text and is
// fully independent of the outline parser.
package reflow

import (
	"strings"

	"github.com/pdiddy/outline-engine/internal/classify"
)

// Unwrap joins wrapped lines in text. CRLF endings are normalized to LF.
// Line order and blank-line positions are preserved exactly; non-blank
// content is never reordered or dropped. Absent fenced blocks, Unwrap is
// idempotent.
func Unwrap(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var out []string
	insideFencedBlock := false

	for i := 0; i < len(lines); {
		line := lines[i]

		if classify.IsBlockBegin(line) && !insideFencedBlock {
			insideFencedBlock = true
		} else if classify.IsBlockEnd(line) && insideFencedBlock {
			insideFencedBlock = false
		}

		// Absorb successors while the join rules allow it. The combined
		// line is re-examined against its own new successor each time.
		j := i + 1
		for j < len(lines) && shouldJoin(line, lines[j], insideFencedBlock) {
			line = join(line, lines[j])
			j++
		}

		out = append(out, line)
		i = j
	}

	return strings.Join(out, "\n")
}

// shouldJoin decides whether successor merges into current. Rules are
// prioritized: the first matching rule wins.
func shouldJoin(current, successor string, insideFencedBlock bool) bool {
	// 1. Fenced-block interiors are opaque; the sentinels themselves are
	// never merged either.
	if insideFencedBlock || classify.IsBlockBegin(current) || classify.IsBlockEnd(current) {
		return false
	}

	// 2. Structural lines never participate in a join.
	if isStructural(current) || isStructural(successor) {
		return false
	}

	// 3. Table rows stay physical lines.
	if classify.IsTableRow(current) || classify.IsTableRow(successor) {
		return false
	}

	// 4. A block opening below the current line starts its own region.
	if classify.IsBlockBegin(successor) {
		return false
	}

	// 5. Each list item is its own logical line.
	if classify.IsListItem(current) && classify.IsListItem(successor) {
		return false
	}

	// 6. List items absorb indented continuation lines.
	if classify.IsListItem(current) && isContinuation(successor) {
		return true
	}

	// 7. Other indented successors look like code or deliberate layout;
	// leave them alone.
	if classify.HasLeadingWhitespace(successor) {
		return false
	}

	// 8. Default: two adjacent prose lines belong to the same paragraph.
	return true
}

// isStructural reports whether line is a boundary the reflow must never
// cross: blank, comment, headline, keyword, or property-drawer material.
func isStructural(line string) bool {
	return classify.IsBlank(line) ||
		classify.IsComment(line) ||
		classify.IsHeadline(line) ||
		classify.IsKeyword(line) ||
		classify.IsDrawerLine(line) ||
		classify.IsPropertyLine(line)
}

// isContinuation reports whether line is an indentation-only continuation
// of a list item: leading whitespace, not blank, and not itself a list
// marker line.
func isContinuation(line string) bool {
	return classify.HasLeadingWhitespace(line) &&
		!classify.IsBlank(line) &&
		!classify.IsListItem(line)
}

// join appends successor to current with one space. The successor is
// trimmed; when current is a list item the appended text additionally has
// internal whitespace runs collapsed to single spaces.
func join(current, successor string) string {
	text := strings.TrimSpace(successor)
	if classify.IsListItem(current) {
		text = strings.Join(strings.Fields(text), " ")
	}
	return current + " " + text
}
