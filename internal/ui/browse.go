package ui

import (
	"sort"
	"strings"

	"github.com/leseraum/leseraum/internal/bible"
	"github.com/leseraum/leseraum/internal/store"
)

// browseKind names which annotation browse is active. The two browses are
// mutually exclusive; entering one closes the other.
type browseKind int

const (
	browseNone browseKind = iota
	browseHighlights
	browseComments
)

// browseResult is one row in a browse list. Highlight rows are full verse
// segments, so reading mode can run straight over them. Comment rows carry
// the comment text alongside.
type browseResult struct {
	Segment Segment
	Color   string
	Comment string
}

// browseSession holds the state of the active annotation browse. Drilling
// into a result row flips viewingResults off and keeps the session in the
// background, so the list can be reopened where it was left.
type browseSession struct {
	kind           browseKind
	color          string // highlight browse only
	filter         string
	results        []browseResult
	viewingResults bool
	savedCursor    int // list position while drilled into a verse
}

// active reports whether a browse session exists, on screen or retained.
func (b browseSession) active() bool {
	return b.kind != browseNone
}

// showingResults reports whether the result list is on screen.
func (b browseSession) showingResults() bool {
	return b.kind != browseNone && b.viewingResults
}

// allowsReading reports whether reading mode may start over the current
// rows. Highlight rows are verses; comment rows are not playable. A
// drilled-in session shows normal chapter text, which is always playable.
func (b browseSession) allowsReading() bool {
	return !(b.kind == browseComments && b.viewingResults)
}

// segments returns the rows as playable segments.
func (b browseSession) segments() []Segment {
	out := make([]Segment, len(b.results))
	for i, r := range b.results {
		out[i] = r.Segment
	}
	return out
}

// segmentFor looks up the verse segment for a stored key.
func segmentFor(d *bible.Dataset, key string) (Segment, bool) {
	ref, ok := bible.ParseVerseKey(key)
	if !ok {
		return Segment{}, false
	}
	book := d.BookByIndex(ref.BookIndex)
	if book == nil {
		return Segment{}, false
	}
	chapter := book.ChapterByNumber(ref.Chapter)
	if chapter == nil {
		return Segment{}, false
	}
	verse := chapter.VerseByNumber(ref.Verse)
	if verse == nil {
		return Segment{}, false
	}
	text := verse.DisplayText()
	return Segment{
		BookIndex: book.BookIndex,
		Chapter:   chapter.Chapter,
		Verse:     verse.Verse,
		BookName:  book.Name,
		Text:      text,
		Words:     splitWords(text),
	}, true
}

// sortResults orders rows in canonical book/chapter/verse order.
func sortResults(results []browseResult) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].Segment, results[j].Segment
		if a.BookIndex != b.BookIndex {
			return a.BookIndex < b.BookIndex
		}
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		return a.Verse < b.Verse
	})
}

// highlightResults collects every verse highlighted in the given color.
func highlightResults(d *bible.Dataset, st *store.State, color string) []browseResult {
	var out []browseResult
	for key, stored := range st.Highlights() {
		if stored != color {
			continue
		}
		seg, ok := segmentFor(d, key)
		if !ok {
			continue
		}
		out = append(out, browseResult{Segment: seg, Color: stored})
	}
	sortResults(out)
	return out
}

// commentResults collects every commented verse.
func commentResults(d *bible.Dataset, st *store.State) []browseResult {
	var out []browseResult
	for key, comment := range st.Comments() {
		seg, ok := segmentFor(d, key)
		if !ok {
			continue
		}
		out = append(out, browseResult{Segment: seg, Comment: comment})
	}
	sortResults(out)
	return out
}

// filterResults keeps rows whose reference, verse text, or comment contains
// the filter, compared case- and diacritic-insensitively.
func filterResults(results []browseResult, filter string) []browseResult {
	needle := strings.ToLower(bible.StripDiacritics(strings.TrimSpace(filter)))
	if needle == "" {
		return results
	}
	var out []browseResult
	for _, r := range results {
		haystack := strings.ToLower(bible.StripDiacritics(
			r.Segment.Ref() + " " + r.Segment.Text + " " + r.Comment))
		if strings.Contains(haystack, needle) {
			out = append(out, r)
		}
	}
	return out
}
