// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup renders inline outline markup (emphasis delimiters and
// bracketed links) to HTML or Markdown.
//
// Rendering is a three-step pipeline shared by both target modes: bracketed
// links are replaced by opaque placeholder tokens, emphasis substitutions run
// in a fixed order on the protected text, and placeholders are restored to
// the mode's link form. Protecting links first keeps delimiter characters
// inside URLs from being reinterpreted as markup. The pipeline is total:
// malformed links and unbalanced delimiters pass through as literal text.
//
// Nested or overlapping emphasis spans are not supported; each category is a
// single-pass non-greedy substitution and the first match wins.
package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// link is a bracketed link extracted during one Render call. Never persisted
// past the call.
type link struct {
	placeholder string
	url         string
	label       string
}

// Placeholder tokens use control characters so they cannot collide with
// document text or contain emphasis delimiters.
const placeholderPrefix = "\x00lnk"

var (
	// [[url][label]] must be tried before [[url]].
	labeledLinkRe = regexp.MustCompile(`\[\[([^\[\]]+)\]\[([^\[\]]+)\]\]`)
	bareLinkRe    = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)
)

// rule is one emphasis substitution: a delimiter wrap mapped to mode tokens.
type rule struct {
	re    *regexp.Regexp
	open  string
	close string
}

// delimiterRule builds a non-greedy single-character-delimiter rule. The
// span may not contain the delimiter or a newline.
func delimiterRule(delim, open, close string) rule {
	q := regexp.QuoteMeta(delim)
	return rule{
		re:    regexp.MustCompile(q + `([^` + q + "\n]+?)" + q),
		open:  open,
		close: close,
	}
}

// Substitution order is fixed: bold, italic, underline, strikethrough,
// code, verbatim.
var htmlRules = []rule{
	delimiterRule("*", "<strong>", "</strong>"),
	delimiterRule("/", "<em>", "</em>"),
	delimiterRule("_", "<u>", "</u>"),
	delimiterRule("+", "<del>", "</del>"),
	delimiterRule("~", "<code>", "</code>"),
	delimiterRule("=", "<code>", "</code>"),
}

var markdownRules = []rule{
	delimiterRule("*", "**", "**"),
	delimiterRule("/", "*", "*"),
	delimiterRule("_", "_", "_"),
	delimiterRule("+", "~~", "~~"),
	delimiterRule("~", "`", "`"),
	delimiterRule("=", "`", "`"),
}

// Render applies inline markup substitution for the target mode. Plain mode
// (or any unknown mode) returns text unchanged. Render never fails.
func Render(text string, mode types.RenderMode) string {
	var rules []rule
	switch mode {
	case types.RenderHTML:
		rules = htmlRules
	case types.RenderMarkdown:
		rules = markdownRules
	default:
		return text
	}

	protected, links := protectLinks(text)

	for _, r := range rules {
		protected = r.re.ReplaceAllString(protected, r.open+"$1"+r.close)
	}

	return restoreLinks(protected, links, mode)
}

// protectLinks replaces every bracketed link with an indexed placeholder and
// records the extracted url/label pairs in introduction order.
func protectLinks(text string) (string, []link) {
	var links []link

	next := func(url, label string) string {
		p := fmt.Sprintf("%s%d\x00", placeholderPrefix, len(links))
		links = append(links, link{placeholder: p, url: url, label: label})
		return p
	}

	text = labeledLinkRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := labeledLinkRe.FindStringSubmatch(m)
		return next(parts[1], parts[2])
	})
	text = bareLinkRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := bareLinkRe.FindStringSubmatch(m)
		return next(parts[1], parts[1])
	})

	return text, links
}

// restoreLinks substitutes each placeholder with the mode's link rendering,
// in the same index order the placeholders were introduced.
func restoreLinks(text string, links []link, mode types.RenderMode) string {
	for _, l := range links {
		var rendered string
		switch mode {
		case types.RenderHTML:
			rendered = fmt.Sprintf("<a href=%q>%s</a>", l.url, l.label)
		case types.RenderMarkdown:
			rendered = fmt.Sprintf("[%s](%s)", l.label, l.url)
		default:
			rendered = l.label
		}
		text = strings.Replace(text, l.placeholder, rendered, 1)
	}
	return text
}

// EscapeHTML escapes the characters that would change HTML structure inside
// verbatim block content.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
