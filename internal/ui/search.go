package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leseraum/leseraum/internal/bible"
)

// searchDebounce batches keystrokes before scanning the dataset.
const searchDebounce = 80 * time.Millisecond

// maxSearchResults caps the text-search result list.
const maxSearchResults = 200

// searchDebounceMsg fires after the debounce window. Stale sequence numbers
// are ignored.
type searchDebounceMsg struct {
	seq int
}

// searchBar is the "/" search overlay. A query is interpreted in order as a
// highlight color, a verse reference, or plain text.
type searchBar struct {
	active  bool
	input   textinput.Model
	seq     int
	term    string // last evaluated query, for match styling
	results []Segment
}

func newSearchBar() searchBar {
	ti := textinput.New()
	ti.Placeholder = "Suche oder Buch, Kapitel, Vers"
	ti.CharLimit = 128
	ti.Width = 50
	ti.Prompt = "/"
	return searchBar{input: ti}
}

// open activates the bar and clears the previous query.
func (s *searchBar) open() {
	s.active = true
	s.input.Focus()
	s.input.SetValue("")
	s.term = ""
	s.results = nil
}

// close deactivates the bar, keeping nothing.
func (s *searchBar) close() {
	s.active = false
	s.input.Blur()
	s.input.SetValue("")
	s.term = ""
	s.results = nil
	s.seq++
}

// debounceCmd schedules the evaluation of the current input.
func (s *searchBar) debounceCmd() tea.Cmd {
	s.seq++
	seq := s.seq
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// textSearch scans every verse for the query, compared case- and
// diacritic-insensitively, in canonical order.
func textSearch(d *bible.Dataset, query string) []Segment {
	needle := strings.ToLower(bible.StripDiacritics(strings.TrimSpace(query)))
	if needle == "" {
		return nil
	}

	var out []Segment
	for bi := range d.Books {
		book := &d.Books[bi]
		for ci := range book.Chapters {
			chapter := &book.Chapters[ci]
			for _, verse := range chapter.Verses {
				text := verse.DisplayText()
				haystack := strings.ToLower(bible.StripDiacritics(text))
				if !strings.Contains(haystack, needle) {
					continue
				}
				out = append(out, Segment{
					BookIndex: book.BookIndex,
					Chapter:   chapter.Chapter,
					Verse:     verse.Verse,
					BookName:  book.Name,
					Text:      text,
					Words:     splitWords(text),
				})
				if len(out) >= maxSearchResults {
					return out
				}
			}
		}
	}
	return out
}

// highlightMatches styles every occurrence of the search term inside a
// rendered verse line.
func highlightMatches(text, term string, style func(string) string) string {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return text
	}

	// Match on the deaccented lowercase form but splice the original text.
	// Diacritic stripping never changes rune counts, so indices line up.
	folded := strings.ToLower(bible.StripDiacritics(text))
	needle := strings.ToLower(bible.StripDiacritics(trimmed))
	if needle == "" {
		return text
	}

	runes := []rune(text)
	foldedRunes := []rune(folded)
	needleRunes := []rune(needle)
	if len(foldedRunes) != len(runes) {
		return text
	}

	var out strings.Builder
	i := 0
	for i < len(runes) {
		if matchAt(foldedRunes, needleRunes, i) {
			out.WriteString(style(string(runes[i : i+len(needleRunes)])))
			i += len(needleRunes)
			continue
		}
		out.WriteRune(runes[i])
		i++
	}
	return out.String()
}

func matchAt(haystack, needle []rune, at int) bool {
	if at+len(needle) > len(haystack) {
		return false
	}
	for i, r := range needle {
		if haystack[at+i] != r {
			return false
		}
	}
	return true
}
