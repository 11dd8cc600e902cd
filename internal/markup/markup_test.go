// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"testing"

	"github.com/pdiddy/outline-engine/pkg/types"
)

func TestRenderLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		mode types.RenderMode
		want string
	}{
		{
			name: "labeled link html",
			in:   "[[http://x][Y]]",
			mode: types.RenderHTML,
			want: `<a href="http://x">Y</a>`,
		},
		{
			name: "labeled link markdown",
			in:   "[[http://x][Y]]",
			mode: types.RenderMarkdown,
			want: "[Y](http://x)",
		},
		{
			name: "bare link html",
			in:   "see [[http://example.com]]",
			mode: types.RenderHTML,
			want: `see <a href="http://example.com">http://example.com</a>`,
		},
		{
			name: "bare link markdown",
			in:   "see [[http://example.com]]",
			mode: types.RenderMarkdown,
			want: "see [http://example.com](http://example.com)",
		},
		{
			name: "multiple links keep order",
			in:   "[[http://a][A]] and [[http://b][B]]",
			mode: types.RenderMarkdown,
			want: "[A](http://a) and [B](http://b)",
		},
		{
			name: "malformed brackets stay literal",
			in:   "[[broken and *bold*",
			mode: types.RenderHTML,
			want: "[[broken and <strong>bold</strong>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.in, tt.mode); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// URLs routinely contain underscores and slashes; link protection must run
// before emphasis substitution so they survive untouched.
func TestRenderProtectsLinkInterior(t *testing.T) {
	in := "[[http://x.com/a_b/c_d][label]]"
	got := Render(in, types.RenderHTML)
	want := `<a href="http://x.com/a_b/c_d">label</a>`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	got = Render("pre /slanted/ [[http://x/a/b]] post", types.RenderHTML)
	want = `pre <em>slanted</em> <a href="http://x/a/b">http://x/a/b</a> post`
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderEmphasis(t *testing.T) {
	tests := []struct {
		in       string
		html     string
		markdown string
	}{
		{"*bold*", "<strong>bold</strong>", "**bold**"},
		{"/italic/", "<em>italic</em>", "*italic*"},
		{"_under_", "<u>under</u>", "_under_"},
		{"+gone+", "<del>gone</del>", "~~gone~~"},
		{"~code~", "<code>code</code>", "`code`"},
		{"=verb=", "<code>verb</code>", "`verb`"},
		{"mix *b* and ~c~", "mix <strong>b</strong> and <code>c</code>", "mix **b** and `c`"},
	}
	for _, tt := range tests {
		if got := Render(tt.in, types.RenderHTML); got != tt.html {
			t.Errorf("Render(%q, html) = %q, want %q", tt.in, got, tt.html)
		}
		if got := Render(tt.in, types.RenderMarkdown); got != tt.markdown {
			t.Errorf("Render(%q, markdown) = %q, want %q", tt.in, got, tt.markdown)
		}
	}
}

func TestRenderPlainModePassthrough(t *testing.T) {
	in := "*bold* [[http://x][Y]]"
	if got := Render(in, types.RenderPlain); got != in {
		t.Errorf("plain mode must not rewrite: got %q", got)
	}
}

// Render is total: no input may make it fail or panic.
func TestRenderTotality(t *testing.T) {
	inputs := []string{
		"",
		"[[",
		"]]",
		"[[a][b",
		"*unclosed",
		"**",
		"//",
		"~ mismatch =",
		"\x00lnk0\x00 literal placeholder-looking text",
		"* / _ + ~ = all delimiters loose",
	}
	for _, in := range inputs {
		for _, mode := range []types.RenderMode{types.RenderPlain, types.RenderHTML, types.RenderMarkdown} {
			_ = Render(in, mode)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	if got := EscapeHTML(`a < b && c > d`); got != "a &lt; b &amp;&amp; c &gt; d" {
		t.Errorf("EscapeHTML = %q", got)
	}
}
