// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify recognizes line categories of outline markup. Every
// predicate is pure, takes one physical line, and is evaluated independently;
// a line may satisfy several predicates at once, so callers apply their own
// precedence (drawer sentinels > headline > block begin/end > property >
// table row > quote > list item > plain text).
package classify

import (
	"regexp"
	"strings"
)

const (
	drawerOpenSentinel  = ":properties:"
	drawerCloseSentinel = ":end:"
	blockBeginSentinel  = "#+begin_"
	blockEndSentinel    = "#+end"
)

var (
	headlineRe     = regexp.MustCompile(`^\*+\s`)
	unorderedRe    = regexp.MustCompile(`^\s*[-+] +`)
	orderedRe      = regexp.MustCompile(`^\s*\d+[.)] +`)
	propertyRe     = regexp.MustCompile(`^\s*:([A-Za-z0-9_-]+):(?:\s+(.*))?$`)
	leadingSpaceRe = regexp.MustCompile(`^\s`)
)

// IsHeadline reports whether line opens a headline: one or more asterisks
// followed by whitespace.
func IsHeadline(line string) bool {
	return headlineRe.MatchString(line)
}

// HeadlineLevel returns the number of leading asterisks, or 0 when line is
// not a headline.
func HeadlineLevel(line string) int {
	if !IsHeadline(line) {
		return 0
	}
	level := 0
	for _, r := range line {
		if r != '*' {
			break
		}
		level++
	}
	return level
}

// IsComment reports whether line is a comment: '#' as its first character.
// Block sentinels and keyword lines also begin with '#'; callers check those
// first.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// IsKeyword reports whether line is a metadata/keyword line ("#+TITLE: ..."),
// possibly indented.
func IsKeyword(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#+")
}

// IsUnorderedListItem reports whether line is an unordered list item
// ("- item" or "+ item", optionally indented).
func IsUnorderedListItem(line string) bool {
	return unorderedRe.MatchString(line)
}

// IsOrderedListItem reports whether line is an ordered list item
// ("1. item" or "1) item", optionally indented).
func IsOrderedListItem(line string) bool {
	return orderedRe.MatchString(line)
}

// IsListItem reports whether line is a list item of either kind.
func IsListItem(line string) bool {
	return IsUnorderedListItem(line) || IsOrderedListItem(line)
}

// IsPropertyLine reports whether line has property shape, ":key: value" or
// bare ":key:". The drawer sentinels themselves are excluded. Property shape
// only carries property semantics inside an open drawer; the parser owns
// that context.
func IsPropertyLine(line string) bool {
	if IsDrawerOpen(line) || IsDrawerClose(line) {
		return false
	}
	return propertyRe.MatchString(line)
}

// PropertyKeyValue extracts the lower-cased key and trimmed value from a
// property-shaped line. ok is false when line has no property shape.
func PropertyKeyValue(line string) (key, value string, ok bool) {
	if !IsPropertyLine(line) {
		return "", "", false
	}
	m := propertyRe.FindStringSubmatch(line)
	return strings.ToLower(m[1]), strings.TrimSpace(m[2]), true
}

// IsDrawerOpen reports whether line is the property-drawer open sentinel.
func IsDrawerOpen(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), drawerOpenSentinel)
}

// IsDrawerClose reports whether line is the property-drawer close sentinel.
func IsDrawerClose(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), drawerCloseSentinel)
}

// IsDrawerLine reports whether line is either drawer sentinel.
func IsDrawerLine(line string) bool {
	return IsDrawerOpen(line) || IsDrawerClose(line)
}

// IsTableRow reports whether line is a table row: starts and ends with a
// pipe after trimming.
func IsTableRow(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && strings.HasPrefix(t, "|") && strings.HasSuffix(t, "|")
}

// IsTableSeparator reports whether line is a header separator row,
// consisting only of dashes and pipes.
func IsTableSeparator(line string) bool {
	t := strings.TrimSpace(line)
	if !IsTableRow(t) {
		return false
	}
	for _, r := range t {
		if r != '-' && r != '|' {
			return false
		}
	}
	return true
}

// IsBlockBegin reports whether line opens a fenced code/source block
// ("#+BEGIN_SRC python", case-insensitive).
func IsBlockBegin(line string) bool {
	t := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(t, blockBeginSentinel)
}

// BlockLanguage returns the language token of a block-begin line
// ("python" for "#+BEGIN_SRC python"), or "" when absent or when line is
// not a block-begin line.
func BlockLanguage(line string) string {
	if !IsBlockBegin(line) {
		return ""
	}
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// IsBlockEnd reports whether line closes a fenced block ("#+END_SRC",
// case-insensitive).
func IsBlockEnd(line string) bool {
	t := strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(t, blockEndSentinel)
}

// IsQuoteLine reports whether line is quoted text: a colon followed by
// exactly one space.
func IsQuoteLine(line string) bool {
	if !strings.HasPrefix(line, ": ") {
		return false
	}
	return len(line) == 2 || line[2] != ' '
}

// QuoteText strips the leading ": " from a quote line.
func QuoteText(line string) string {
	if !IsQuoteLine(line) {
		return line
	}
	return line[2:]
}

// IsBlank reports whether line is empty or whitespace-only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// HasLeadingWhitespace reports whether line starts with a whitespace
// character. Used by the reflow engine's continuation heuristics.
func HasLeadingWhitespace(line string) bool {
	return leadingSpaceRe.MatchString(line)
}
