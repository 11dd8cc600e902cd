// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package blocks renders a headline's content lines into HTML or Markdown
// block structure: fenced code blocks, tables, quotes, lists, and plain
// paragraphs.
//
// Rendering is one forward pass with a cursor. At each position the current
// line is classified and dispatched to the first matching handler, which
// consumes a greedy run of contiguous lines satisfying its membership
// predicate and advances the cursor past them. Handler priority: code block,
// table, quote, list, paragraph. Property-shaped lines in already-extracted
// content render as ordinary text; property semantics exist only inside a
// drawer, which the parser strips before content reaches this package.
package blocks

import (
	"fmt"
	"strings"

	"github.com/pdiddy/outline-engine/internal/classify"
	"github.com/pdiddy/outline-engine/internal/markup"
	"github.com/pdiddy/outline-engine/pkg/types"
)

// Render converts content lines to a block-rendered string for the target
// mode. Plain mode returns the lines joined unchanged.
func Render(lines []string, mode types.RenderMode) string {
	if mode != types.RenderHTML && mode != types.RenderMarkdown {
		return strings.Join(lines, "\n")
	}

	var out []string
	for i := 0; i < len(lines); {
		line := lines[i]
		switch {
		case classify.IsBlank(line):
			i++
		case classify.IsBlockBegin(line):
			var rendered string
			rendered, i = renderCodeBlock(lines, i, mode)
			out = append(out, rendered)
		case classify.IsTableRow(line):
			var rendered string
			rendered, i = renderTable(lines, i, mode)
			out = append(out, rendered)
		case classify.IsQuoteLine(line):
			var rendered string
			rendered, i = renderQuote(lines, i, mode)
			out = append(out, rendered)
		case classify.IsListItem(line):
			var rendered string
			rendered, i = renderList(lines, i, mode)
			out = append(out, rendered)
		default:
			rendered := markup.Render(strings.TrimSpace(line), mode)
			if mode == types.RenderHTML {
				rendered = "<p>" + rendered + "</p>"
			}
			out = append(out, rendered)
			i++
		}
	}

	sep := "\n"
	if mode == types.RenderMarkdown {
		sep = "\n\n"
	}
	return strings.Join(out, sep)
}

// renderCodeBlock consumes from the block-begin line through the matching
// block-end line. Interior lines are verbatim, never markup-rendered. An
// unterminated block consumes to the end of content.
func renderCodeBlock(lines []string, start int, mode types.RenderMode) (string, int) {
	lang := classify.BlockLanguage(lines[start])

	var body []string
	i := start + 1
	for ; i < len(lines); i++ {
		if classify.IsBlockEnd(lines[i]) {
			i++
			break
		}
		body = append(body, lines[i])
	}

	if mode == types.RenderHTML {
		var b strings.Builder
		if lang != "" {
			fmt.Fprintf(&b, "<pre><code class=\"language-%s\">", lang)
		} else {
			b.WriteString("<pre><code>")
		}
		for _, l := range body {
			b.WriteString(markup.EscapeHTML(l))
			b.WriteString("\n")
		}
		b.WriteString("</code></pre>")
		return b.String(), i
	}

	var b strings.Builder
	b.WriteString("```" + lang + "\n")
	for _, l := range body {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("```")
	return b.String(), i
}

// renderTable consumes a maximal run of table rows. The first row is a
// header iff the second row is a separator. Ragged rows simply contribute
// fewer cells.
func renderTable(lines []string, start int, mode types.RenderMode) (string, int) {
	i := start
	var rows [][]string
	hasHeader := false
	for ; i < len(lines) && classify.IsTableRow(lines[i]); i++ {
		if i == start+1 && classify.IsTableSeparator(lines[i]) {
			hasHeader = true
			continue
		}
		if classify.IsTableSeparator(lines[i]) {
			continue
		}
		rows = append(rows, splitCells(lines[i]))
	}

	if mode == types.RenderHTML {
		return htmlTable(rows, hasHeader, mode), i
	}
	return markdownTable(rows, hasHeader, mode), i
}

// splitCells trims the outer pipes and splits on pipe, trimming each cell.
func splitCells(row string) []string {
	t := strings.TrimSpace(row)
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	parts := strings.Split(t, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func htmlTable(rows [][]string, hasHeader bool, mode types.RenderMode) string {
	var b strings.Builder
	b.WriteString("<table>\n")

	body := rows
	if hasHeader && len(rows) > 0 {
		b.WriteString("<thead>\n<tr>")
		for _, c := range rows[0] {
			b.WriteString("<th>" + markup.Render(c, mode) + "</th>")
		}
		b.WriteString("</tr>\n</thead>\n")
		body = rows[1:]
	}

	b.WriteString("<tbody>\n")
	for _, row := range body {
		b.WriteString("<tr>")
		for _, c := range row {
			b.WriteString("<td>" + markup.Render(c, mode) + "</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>")
	return b.String()
}

// markdownTable emits a GitHub-style pipe table. Every column is padded to
// the maximum cell width observed in that column, and the separator row's
// dashes match each column's width.
func markdownTable(rows [][]string, hasHeader bool, mode types.RenderMode) string {
	rendered := make([][]string, len(rows))
	for i, row := range rows {
		rendered[i] = make([]string, len(row))
		for j, c := range row {
			rendered[i][j] = markup.Render(c, mode)
		}
	}

	var widths []int
	for _, row := range rendered {
		for j, c := range row {
			for len(widths) <= j {
				widths = append(widths, 0)
			}
			if len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	formatRow := func(row []string) string {
		var b strings.Builder
		b.WriteString("|")
		for j, w := range widths {
			c := ""
			if j < len(row) {
				c = row[j]
			}
			b.WriteString(" " + c + strings.Repeat(" ", w-len(c)) + " |")
		}
		return b.String()
	}

	var out []string
	body := rendered
	if hasHeader && len(rendered) > 0 {
		out = append(out, formatRow(rendered[0]))
		var b strings.Builder
		b.WriteString("|")
		for _, w := range widths {
			b.WriteString(strings.Repeat("-", w+2) + "|")
		}
		out = append(out, b.String())
		body = rendered[1:]
	}
	for _, row := range body {
		out = append(out, formatRow(row))
	}
	return strings.Join(out, "\n")
}

// renderQuote consumes a maximal run of quote lines, stripping the leading
// ": " from each.
func renderQuote(lines []string, start int, mode types.RenderMode) (string, int) {
	i := start
	var body []string
	for ; i < len(lines) && classify.IsQuoteLine(lines[i]); i++ {
		body = append(body, classify.QuoteText(lines[i]))
	}

	if mode == types.RenderHTML {
		var b strings.Builder
		b.WriteString("<blockquote>\n")
		for _, l := range body {
			b.WriteString("<p>" + markup.Render(l, mode) + "</p>\n")
		}
		b.WriteString("</blockquote>")
		return b.String(), i
	}

	out := make([]string, len(body))
	for j, l := range body {
		out[j] = "> " + markup.Render(l, mode)
	}
	return strings.Join(out, "\n"), i
}

// splitListItem separates a list item line into its delimiter token
// ("-", "+", "3.", "3)") and the item text.
func splitListItem(line string) (delim, text string) {
	trimmed := strings.TrimLeft(line, " \t")
	cut := strings.IndexAny(trimmed, " \t")
	if cut < 0 {
		return trimmed, ""
	}
	return trimmed[:cut], strings.TrimSpace(trimmed[cut:])
}

// renderList consumes a maximal run of list items whose ordering kind
// matches the first line. The kind is decided once per run.
func renderList(lines []string, start int, mode types.RenderMode) (string, int) {
	ordered := classify.IsOrderedListItem(lines[start])
	member := classify.IsUnorderedListItem
	if ordered {
		member = classify.IsOrderedListItem
	}

	i := start
	var items []string
	for ; i < len(lines) && member(lines[i]); i++ {
		items = append(items, lines[i])
	}

	if mode == types.RenderHTML {
		tag := "ul"
		if ordered {
			tag = "ol"
		}
		var b strings.Builder
		b.WriteString("<" + tag + ">\n")
		for _, item := range items {
			_, text := splitListItem(item)
			b.WriteString("<li>" + markup.Render(text, mode) + "</li>\n")
		}
		b.WriteString("</" + tag + ">")
		return b.String(), i
	}

	out := make([]string, len(items))
	for j, item := range items {
		delim, text := splitListItem(item)
		text = strings.Join(strings.Fields(text), " ")
		out[j] = delim + " " + markup.Render(text, mode)
	}
	return strings.Join(out, "\n"), i
}
