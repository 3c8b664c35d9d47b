package ui

import (
	"fmt"
	"strings"

	"github.com/leseraum/leseraum/internal/bible"
)

// Segment is one playable, selectable verse as shown on screen. Browse
// results are segments too, which is what lets reading mode run over them.
type Segment struct {
	BookIndex int
	Chapter   int
	Verse     int
	BookName  string
	Text      string
	Words     []string
}

// VerseKey returns the segment's storage key.
func (s Segment) VerseKey() string {
	return bible.VerseKey(s.BookIndex, s.Chapter, s.Verse)
}

// Ref formats the segment's human-readable reference.
func (s Segment) Ref() string {
	return fmt.Sprintf("%s %d,%d", s.BookName, s.Chapter, s.Verse)
}

// splitWords splits display text on whitespace. Word indices from the
// timing track line up with this split.
func splitWords(text string) []string {
	return strings.Fields(text)
}

// chapterSegments builds the display segments for one chapter.
func chapterSegments(book *bible.Book, chapter *bible.Chapter) []Segment {
	if book == nil || chapter == nil {
		return nil
	}
	segments := make([]Segment, 0, len(chapter.Verses))
	for _, verse := range chapter.Verses {
		text := verse.DisplayText()
		segments = append(segments, Segment{
			BookIndex: book.BookIndex,
			Chapter:   chapter.Chapter,
			Verse:     verse.Verse,
			BookName:  book.Name,
			Text:      text,
			Words:     splitWords(text),
		})
	}
	return segments
}
