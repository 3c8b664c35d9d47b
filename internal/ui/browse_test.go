package ui

import (
	"testing"

	"github.com/leseraum/leseraum/internal/store"
)

func TestHighlightResultsFilterAndOrder(t *testing.T) {
	d := testDataset()
	st := store.LoadState(nil)
	st.SetHighlight(1, 2, 1, "purple")
	st.SetHighlight(1, 1, 2, "purple")
	st.SetHighlight(1, 1, 3, "blue")
	st.SetHighlight(9, 9, 9, "purple") // not in the dataset

	results := highlightResults(d, st, "purple")
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	// Canonical order: 1:1,2 before 1:2,1.
	if results[0].Segment.Chapter != 1 || results[0].Segment.Verse != 2 {
		t.Errorf("first = %+v, want chapter 1 verse 2", results[0].Segment)
	}
	if results[1].Segment.Chapter != 2 || results[1].Segment.Verse != 1 {
		t.Errorf("second = %+v, want chapter 2 verse 1", results[1].Segment)
	}
}

func TestCommentResultsCarryText(t *testing.T) {
	d := testDataset()
	st := store.LoadState(nil)
	st.SetComment(1, 1, 3, "Schöpfungswort")

	results := commentResults(d, st)
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Comment != "Schöpfungswort" {
		t.Errorf("comment = %q", results[0].Comment)
	}
	if results[0].Segment.Text == "" {
		t.Error("comment row should carry the verse text")
	}
}

func TestFilterResultsFoldsDiacritics(t *testing.T) {
	rows := []browseResult{
		{Segment: Segment{BookIndex: 1, Chapter: 1, Verse: 2, BookName: "1. Mose",
			Text: "und die Erde war wüst und leer"}},
		{Segment: Segment{BookIndex: 1, Chapter: 1, Verse: 3, BookName: "1. Mose",
			Text: "und Gott sprach es werde Licht"}, Comment: "Schöpfung"},
	}

	tests := []struct {
		filter string
		want   int
	}{
		{"", 2},
		{"WUST", 1},       // matches "wüst"
		{"schopfung", 1},  // matches the comment
		{"1. Mose 1,3", 1}, // matches the reference
		{"nichts", 0},
	}

	for _, tt := range tests {
		if got := len(filterResults(rows, tt.filter)); got != tt.want {
			t.Errorf("filterResults(%q) = %d rows, want %d", tt.filter, got, tt.want)
		}
	}
}

func TestBrowseAllowsReading(t *testing.T) {
	if (browseSession{kind: browseComments}).allowsReading() {
		t.Error("comment browse must not allow reading")
	}
	if !(browseSession{kind: browseHighlights}).allowsReading() {
		t.Error("highlight browse should allow reading")
	}
	if !(browseSession{}).allowsReading() {
		t.Error("chapter view should allow reading")
	}
}

func TestSegmentForRejectsBadKeys(t *testing.T) {
	d := testDataset()
	for _, key := range []string{"", "1:1", "0:1:1", "1:1:99", "a:b:c"} {
		if _, ok := segmentFor(d, key); ok {
			t.Errorf("segmentFor(%q) resolved, want miss", key)
		}
	}
	if seg, ok := segmentFor(d, "1:1:2"); !ok || seg.Verse != 2 {
		t.Errorf("segmentFor(1:1:2) = %+v, %v", seg, ok)
	}
}
