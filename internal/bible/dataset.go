package bible

import (
	"fmt"
	"sort"
)

// Verse is a single verse of the bilingual dataset. The display text is the
// first non-empty of the cleaned and raw text fields.
type Verse struct {
	Verse     int    `json:"verse"`
	Text      string `json:"text"`
	De        string `json:"de"`
	TextClean string `json:"text_clean"`
	DeClean   string `json:"de_clean"`
}

// DisplayText returns the canonical text for rendering and search.
func (v Verse) DisplayText() string {
	for _, candidate := range []string{v.TextClean, v.DeClean, v.Text, v.De} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// Chapter is an ordered sequence of verses. Membership is fixed at load time.
type Chapter struct {
	Chapter int     `json:"chapter"`
	Verses  []Verse `json:"verses"`
}

// VerseByNumber returns the verse with the given number, or nil.
func (c *Chapter) VerseByNumber(n int) *Verse {
	for i := range c.Verses {
		if c.Verses[i].Verse == n {
			return &c.Verses[i]
		}
	}
	return nil
}

// Book owns an ordered sequence of chapters. BookIndex is a stable ordinal
// unique within the dataset.
type Book struct {
	BookIndex int       `json:"book_index"`
	Name      string    `json:"book"`
	Chapters  []Chapter `json:"chapters"`
}

// ChapterByNumber returns the chapter with the given number, or nil.
func (b *Book) ChapterByNumber(n int) *Chapter {
	for i := range b.Chapters {
		if b.Chapters[i].Chapter == n {
			return &b.Chapters[i]
		}
	}
	return nil
}

// ChapterNumbers returns the positive chapter numbers of the book in
// ascending order.
func (b *Book) ChapterNumbers() []int {
	numbers := make([]int, 0, len(b.Chapters))
	for _, chapter := range b.Chapters {
		if chapter.Chapter > 0 {
			numbers = append(numbers, chapter.Chapter)
		}
	}
	sort.Ints(numbers)
	return numbers
}

// Dataset is the full ordered sequence of books. It is loaded once and
// read-only thereafter; all lookups scan by value equality.
type Dataset struct {
	Books []Book `json:"books"`
}

// BookByIndex returns the book with the given book index, or nil.
func (d *Dataset) BookByIndex(bookIndex int) *Book {
	for i := range d.Books {
		if d.Books[i].BookIndex == bookIndex {
			return &d.Books[i]
		}
	}
	return nil
}

// ClampSelection resolves an arbitrary (book, chapter) pair to the nearest
// valid selection: an unknown book falls back to the first book, an unknown
// chapter to the book's first chapter.
func (d *Dataset) ClampSelection(bookIndex, chapter int) (int, int) {
	if len(d.Books) == 0 {
		return 1, 1
	}

	if d.BookByIndex(bookIndex) == nil {
		bookIndex = d.Books[0].BookIndex
	}

	book := d.BookByIndex(bookIndex)
	numbers := book.ChapterNumbers()
	if len(numbers) == 0 {
		return bookIndex, 1
	}

	for _, n := range numbers {
		if n == chapter {
			return bookIndex, chapter
		}
	}
	return bookIndex, numbers[0]
}

// AdjacentChapter moves one chapter backward or forward from the given
// position, crossing book boundaries. It reports false when the position is
// already at the first or last chapter of the dataset.
func (d *Dataset) AdjacentChapter(bookIndex, chapter, direction int) (int, int, bool) {
	bookPos := -1
	for i := range d.Books {
		if d.Books[i].BookIndex == bookIndex {
			bookPos = i
			break
		}
	}
	if bookPos < 0 {
		return bookIndex, chapter, false
	}

	numbers := d.Books[bookPos].ChapterNumbers()
	chapterPos := -1
	for i, n := range numbers {
		if n == chapter {
			chapterPos = i
			break
		}
	}
	if chapterPos < 0 {
		return bookIndex, chapter, false
	}

	if direction < 0 {
		if chapterPos > 0 {
			return bookIndex, numbers[chapterPos-1], true
		}
		if bookPos > 0 {
			prev := d.Books[bookPos-1]
			prevNumbers := prev.ChapterNumbers()
			if len(prevNumbers) == 0 {
				return prev.BookIndex, 1, true
			}
			return prev.BookIndex, prevNumbers[len(prevNumbers)-1], true
		}
		return bookIndex, chapter, false
	}

	if chapterPos < len(numbers)-1 {
		return bookIndex, numbers[chapterPos+1], true
	}
	if bookPos < len(d.Books)-1 {
		next := d.Books[bookPos+1]
		nextNumbers := next.ChapterNumbers()
		if len(nextNumbers) == 0 {
			return next.BookIndex, 1, true
		}
		return next.BookIndex, nextNumbers[0], true
	}
	return bookIndex, chapter, false
}

// ChapterKey builds the persisted-map key for a chapter.
func ChapterKey(bookIndex, chapter int) string {
	return fmt.Sprintf("%d:%d", bookIndex, chapter)
}

// VerseKey builds the persisted-map key for a verse.
func VerseKey(bookIndex, chapter, verse int) string {
	return fmt.Sprintf("%d:%d:%d", bookIndex, chapter, verse)
}

// VerseRef is a parsed verse key.
type VerseRef struct {
	BookIndex int
	Chapter   int
	Verse     int
}

// ParseVerseKey parses a "book:chapter:verse" key. Keys with non-positive
// parts report false.
func ParseVerseKey(key string) (VerseRef, bool) {
	var ref VerseRef
	if _, err := fmt.Sscanf(key, "%d:%d:%d", &ref.BookIndex, &ref.Chapter, &ref.Verse); err != nil {
		return VerseRef{}, false
	}
	if ref.BookIndex <= 0 || ref.Chapter <= 0 || ref.Verse <= 0 {
		return VerseRef{}, false
	}
	return ref, true
}
