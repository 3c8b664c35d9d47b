package store

import (
	"strings"

	"github.com/leseraum/leseraum/internal/bible"
)

// State is the in-memory view of the persisted maps. All mutations go
// through its methods, which flush the touched record immediately. A nil
// Store is tolerated: the state then lives for the session only.
type State struct {
	store *Store

	readChapters map[string]bool
	highlights   map[string]string
	comments     map[string]string
}

// LoadState reads all records from the store. A nil store yields an empty,
// memory-only state.
func LoadState(s *Store) *State {
	if s == nil {
		return &State{
			readChapters: make(map[string]bool),
			highlights:   make(map[string]string),
			comments:     make(map[string]string),
		}
	}
	return &State{
		store:        s,
		readChapters: s.LoadReadChapters(),
		highlights:   s.LoadHighlights(),
		comments:     s.LoadComments(),
	}
}

// Comment returns the stored comment for a verse, or "".
func (st *State) Comment(bookIndex, chapter, verse int) string {
	return st.comments[bible.VerseKey(bookIndex, chapter, verse)]
}

// SetComment stores a trimmed comment for a verse. Whitespace-only text
// deletes the entry. Reports whether anything changed; unchanged writes do
// not touch the store.
func (st *State) SetComment(bookIndex, chapter, verse int, text string) bool {
	key := bible.VerseKey(bookIndex, chapter, verse)
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		if _, ok := st.comments[key]; !ok {
			return false
		}
		delete(st.comments, key)
		st.store.SaveComments(st.comments)
		return true
	}

	if st.comments[key] == trimmed {
		return false
	}
	st.comments[key] = trimmed
	st.store.SaveComments(st.comments)
	return true
}

// Highlight returns the stored highlight color for a verse, or "".
func (st *State) Highlight(bookIndex, chapter, verse int) string {
	return st.highlights[bible.VerseKey(bookIndex, chapter, verse)]
}

// SetHighlight stores a normalized highlight color for a verse. Tokens that
// do not normalize clear the highlight. Writing the stored color is a no-op.
func (st *State) SetHighlight(bookIndex, chapter, verse int, token string) bool {
	key := bible.VerseKey(bookIndex, chapter, verse)
	color, ok := NormalizeColor(token)

	if !ok {
		if _, present := st.highlights[key]; !present {
			return false
		}
		delete(st.highlights, key)
		st.store.SaveHighlights(st.highlights)
		return true
	}

	if st.highlights[key] == color {
		return false
	}
	st.highlights[key] = color
	st.store.SaveHighlights(st.highlights)
	return true
}

// HasComments reports whether any verse carries a comment.
func (st *State) HasComments() bool {
	return len(st.comments) > 0
}

// Highlights returns the stored highlight map. Callers must not mutate it.
func (st *State) Highlights() map[string]string {
	return st.highlights
}

// Comments returns the stored comment map. Callers must not mutate it.
func (st *State) Comments() map[string]string {
	return st.comments
}

// IsChapterRead reports whether a chapter is marked read.
func (st *State) IsChapterRead(bookIndex, chapter int) bool {
	return st.readChapters[bible.ChapterKey(bookIndex, chapter)]
}

// UnmarkChapterRead removes a chapter's read mark.
func (st *State) UnmarkChapterRead(bookIndex, chapter int) {
	key := bible.ChapterKey(bookIndex, chapter)
	if !st.readChapters[key] {
		return
	}
	delete(st.readChapters, key)
	st.store.SaveReadChapters(st.readChapters)
}

// MarkChaptersFromStart marks every chapter of the book up to and including
// target as read. Reading front to back is the common case, so catching up
// the earlier chapters is implied.
func (st *State) MarkChaptersFromStart(book *bible.Book, target int) {
	if book == nil || len(book.Chapters) == 0 || target <= 0 {
		return
	}

	changed := false
	for _, chapter := range book.Chapters {
		if chapter.Chapter > target {
			continue
		}
		key := bible.ChapterKey(book.BookIndex, chapter.Chapter)
		if !st.readChapters[key] {
			st.readChapters[key] = true
			changed = true
		}
	}

	if changed {
		st.store.SaveReadChapters(st.readChapters)
	}
}

// IsBookRead reports whether every chapter of the book is marked read.
func (st *State) IsBookRead(book *bible.Book) bool {
	if book == nil || len(book.Chapters) == 0 {
		return false
	}
	for _, chapter := range book.Chapters {
		if !st.IsChapterRead(book.BookIndex, chapter.Chapter) {
			return false
		}
	}
	return true
}

// ReadChapterCount counts the read chapters among the given numbers.
func (st *State) ReadChapterCount(bookIndex int, chapters []int) int {
	count := 0
	for _, chapter := range chapters {
		if st.IsChapterRead(bookIndex, chapter) {
			count++
		}
	}
	return count
}

// SaveLocation persists the current navigation position.
func (st *State) SaveLocation(sel bible.Selection) {
	st.store.SaveLocation(sel.EncodeFragment())
}

// LoadLocation restores the last navigation position, falling back to the
// given selection when nothing usable is stored.
func (st *State) LoadLocation(fallback bible.Selection) bible.Selection {
	if st.store == nil {
		return fallback
	}
	return bible.ParseFragment(st.store.LoadLocation(), fallback)
}
