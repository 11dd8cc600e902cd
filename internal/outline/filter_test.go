// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strings"
	"testing"

	"github.com/pdiddy/outline-engine/pkg/types"
)

const filterDoc = `* Intro
:PROPERTIES:
:CUSTOM_ID: sec-intro
:END:
** Background
:PROPERTIES:
:CUSTOM_ID: sec-background
:END:
*** Details
** Methods
* Results
:PROPERTIES:
:CUSTOM_ID: sec-results
:END:
** Tables`

func filterDocHeadlines(t *testing.T) []types.Headline {
	t.Helper()
	return Parse(strings.Split(filterDoc, "\n"), types.RenderPlain)
}

func titles(hs []types.Headline) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Title
	}
	return out
}

func TestFilterLevelRange(t *testing.T) {
	hs := filterDocHeadlines(t)

	f, err := NewFilter(types.FilterConfig{MinLevel: 2, MaxLevel: 2})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	got := titles(f.Apply(hs))
	want := []string{"Background", "Methods", "Tables"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("level 2 subset = %v, want %v", got, want)
	}

	// Unset bounds are unbounded.
	f, _ = NewFilter(types.FilterConfig{MinLevel: 3})
	if got := titles(f.Apply(hs)); strings.Join(got, ",") != "Details" {
		t.Errorf("minLevel 3 = %v", got)
	}
}

func TestFilterTitle(t *testing.T) {
	hs := filterDocHeadlines(t)
	f, err := NewFilter(types.FilterConfig{Title: "^(Intro|Results)$"})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	got := titles(f.Apply(hs))
	if strings.Join(got, ",") != "Intro,Results" {
		t.Errorf("title filter = %v", got)
	}
}

func TestFilterCustomID(t *testing.T) {
	hs := filterDocHeadlines(t)
	f, err := NewFilter(types.FilterConfig{CustomID: "background"})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	got := titles(f.Apply(hs))
	if strings.Join(got, ",") != "Background" {
		t.Errorf("custom-id filter = %v", got)
	}
}

func TestFilterSectionTitle(t *testing.T) {
	hs := filterDocHeadlines(t)
	f, err := NewFilter(types.FilterConfig{SectionTitle: "^Intro$"})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	got := titles(f.Apply(hs))
	want := []string{"Background", "Details", "Methods"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("section-title filter = %v, want %v", got, want)
	}
}

func TestFilterSectionCustomID(t *testing.T) {
	hs := filterDocHeadlines(t)
	f, err := NewFilter(types.FilterConfig{SectionCustomID: "sec-results"})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	got := titles(f.Apply(hs))
	if strings.Join(got, ",") != "Tables" {
		t.Errorf("section-custom-id filter = %v", got)
	}
}

// Ancestors are resolved by first title match in document order. When two
// sections share a title, descendants of the second section match against
// the first section's custom id. Known limitation of title-based path
// entries, kept deliberately.
func TestFilterSectionCustomID_DuplicateTitles(t *testing.T) {
	doc := `* Setup
:PROPERTIES:
:CUSTOM_ID: first-setup
:END:
** A
* Setup
:PROPERTIES:
:CUSTOM_ID: second-setup
:END:
** B`
	hs := Parse(strings.Split(doc, "\n"), types.RenderPlain)

	f, _ := NewFilter(types.FilterConfig{SectionCustomID: "first-setup"})
	got := titles(f.Apply(hs))
	// Both A and B resolve "Setup" to the first occurrence.
	if strings.Join(got, ",") != "A,B" {
		t.Errorf("duplicate-title resolution = %v, want [A B]", got)
	}

	f, _ = NewFilter(types.FilterConfig{SectionCustomID: "second-setup"})
	if got := titles(f.Apply(hs)); len(got) != 0 {
		t.Errorf("second section is shadowed by the first, got %v", got)
	}
}

// Path entries store raw titles even when titles are rendered, so ancestor
// resolution must not depend on the render mode.
func TestFilterSectionCustomID_ModeIndependent(t *testing.T) {
	doc := `* *Bold* Intro
:PROPERTIES:
:CUSTOM_ID: sec-intro
:END:
** Child`

	f, err := NewFilter(types.FilterConfig{SectionCustomID: "sec-intro"})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}

	for _, mode := range []types.RenderMode{types.RenderPlain, types.RenderHTML, types.RenderMarkdown} {
		hs := Parse(strings.Split(doc, "\n"), mode)
		got := f.Apply(hs)
		if len(got) != 1 || got[0].RawTitle != "Child" {
			t.Errorf("mode %s: matches = %v, want [Child]", mode, titles(got))
		}
	}
}

func TestFilterComposition(t *testing.T) {
	hs := filterDocHeadlines(t)

	// Level filter result is independent of other filters being unset.
	f, _ := NewFilter(types.FilterConfig{MinLevel: 2, MaxLevel: 2})
	onlyLevel := titles(f.Apply(hs))

	f, _ = NewFilter(types.FilterConfig{MinLevel: 2, MaxLevel: 2, SectionTitle: "Intro"})
	both := titles(f.Apply(hs))

	if strings.Join(onlyLevel, ",") != "Background,Methods,Tables" {
		t.Errorf("level-only = %v", onlyLevel)
	}
	if strings.Join(both, ",") != "Background,Methods" {
		t.Errorf("level AND section = %v", both)
	}
}

func TestFilterEmptyPassthrough(t *testing.T) {
	hs := filterDocHeadlines(t)
	f, err := NewFilter(types.FilterConfig{})
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if !f.IsEmpty() {
		t.Error("zero config must be empty")
	}
	if got := f.Apply(hs); len(got) != len(hs) {
		t.Errorf("empty filter must pass everything: %d != %d", len(got), len(hs))
	}
}

func TestFilterInvalidPattern(t *testing.T) {
	if _, err := NewFilter(types.FilterConfig{Title: "("}); err == nil {
		t.Error("invalid pattern must be a configuration error")
	}
}
