package bible

import (
	"testing"
)

func testDataset() *Dataset {
	return &Dataset{
		Books: []Book{
			{
				BookIndex: 1,
				Name:      "Genesis",
				Chapters: []Chapter{
					{Chapter: 1, Verses: []Verse{
						{Verse: 1, Text: "Am Anfang"},
						{Verse: 2, Text: "und die Erde"},
					}},
					{Chapter: 2, Verses: []Verse{
						{Verse: 1, Text: "So wurden vollendet"},
					}},
				},
			},
			{
				BookIndex: 2,
				Name:      "Exodus",
				Chapters: []Chapter{
					{Chapter: 1, Verses: []Verse{
						{Verse: 1, Text: "Dies sind die Namen"},
					}},
				},
			},
		},
	}
}

func TestDisplayTextFallback(t *testing.T) {
	tests := []struct {
		name  string
		verse Verse
		want  string
	}{
		{"prefers text_clean", Verse{TextClean: "clean", Text: "raw"}, "clean"},
		{"falls back to de_clean", Verse{DeClean: "de clean", De: "de"}, "de clean"},
		{"falls back to text", Verse{Text: "raw", De: "de"}, "raw"},
		{"falls back to de", Verse{De: "de"}, "de"},
		{"empty verse", Verse{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.verse.DisplayText(); got != tt.want {
				t.Errorf("DisplayText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClampSelection(t *testing.T) {
	d := testDataset()

	tests := []struct {
		name        string
		book        int
		chapter     int
		wantBook    int
		wantChapter int
	}{
		{"valid selection unchanged", 2, 1, 2, 1},
		{"unknown book falls to first", 99, 1, 1, 1},
		{"unknown chapter falls to first", 1, 99, 1, 1},
		{"both invalid", 99, 99, 1, 1},
		{"negative values", -3, -7, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotBook, gotChapter := d.ClampSelection(tt.book, tt.chapter)
			if gotBook != tt.wantBook || gotChapter != tt.wantChapter {
				t.Errorf("ClampSelection(%d, %d) = (%d, %d), want (%d, %d)",
					tt.book, tt.chapter, gotBook, gotChapter, tt.wantBook, tt.wantChapter)
			}
		})
	}
}

func TestClampSelectionEmptyDataset(t *testing.T) {
	d := &Dataset{}
	book, chapter := d.ClampSelection(5, 9)
	if book != 1 || chapter != 1 {
		t.Errorf("ClampSelection on empty dataset = (%d, %d), want (1, 1)", book, chapter)
	}
}

func TestAdjacentChapter(t *testing.T) {
	d := testDataset()

	tests := []struct {
		name        string
		book        int
		chapter     int
		direction   int
		wantBook    int
		wantChapter int
		wantMoved   bool
	}{
		{"forward within book", 1, 1, 1, 1, 2, true},
		{"forward crosses book boundary", 1, 2, 1, 2, 1, true},
		{"forward at dataset end", 2, 1, 1, 2, 1, false},
		{"backward within book", 1, 2, -1, 1, 1, true},
		{"backward crosses book boundary", 2, 1, -1, 1, 2, true},
		{"backward at dataset start", 1, 1, -1, 1, 1, false},
		{"unknown book", 7, 1, 1, 7, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, chapter, moved := d.AdjacentChapter(tt.book, tt.chapter, tt.direction)
			if book != tt.wantBook || chapter != tt.wantChapter || moved != tt.wantMoved {
				t.Errorf("AdjacentChapter(%d, %d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.book, tt.chapter, tt.direction, book, chapter, moved,
					tt.wantBook, tt.wantChapter, tt.wantMoved)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	if got := ChapterKey(3, 12); got != "3:12" {
		t.Errorf("ChapterKey(3, 12) = %q, want \"3:12\"", got)
	}
	if got := VerseKey(1, 2, 3); got != "1:2:3" {
		t.Errorf("VerseKey(1, 2, 3) = %q, want \"1:2:3\"", got)
	}
}
