package ui

import (
	"strings"
	"testing"
)

func TestHighlightMatches(t *testing.T) {
	mark := func(s string) string { return "[" + s + "]" }

	tests := []struct {
		name string
		text string
		term string
		want string
	}{
		{"plain hit", "und Gott sprach", "gott", "und [Gott] sprach"},
		{"folded hit", "die Erde war wüst", "wust", "die Erde war [wüst]"},
		{"every occurrence", "Licht und Licht", "licht", "[Licht] und [Licht]"},
		{"empty term", "und Gott sprach", "  ", "und Gott sprach"},
		{"no hit", "und Gott sprach", "mose", "und Gott sprach"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := highlightMatches(tt.text, tt.term, mark); got != tt.want {
				t.Errorf("highlightMatches(%q, %q) = %q, want %q", tt.text, tt.term, got, tt.want)
			}
		})
	}
}

func TestHighlightMatchesStyleSpansTermOnly(t *testing.T) {
	styled := highlightMatches("Am Anfang schuf Gott", "anfang", func(s string) string {
		return "<" + s + ">"
	})
	if !strings.Contains(styled, "<Anfang>") {
		t.Errorf("styled = %q, want the original casing inside the span", styled)
	}
}

func TestSearchBarCloseInvalidatesDebounce(t *testing.T) {
	bar := newSearchBar()
	bar.open()
	bar.debounceCmd()
	seq := bar.seq
	bar.close()
	if bar.seq == seq {
		t.Error("closing the bar must invalidate pending debounce messages")
	}
	if bar.active || bar.input.Value() != "" || bar.results != nil {
		t.Error("closing the bar should clear its state")
	}
}
