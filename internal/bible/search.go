package bible

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var verseQueryPattern = regexp.MustCompile(`^([^,]+)\s*,\s*(\d+)\s*,\s*(\d+)\s*$`)

// StripDiacritics removes combining marks from a string ("1. Mose" book names
// carry umlauts; audio folders and search tokens use the stripped form).
func StripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeBookToken lowercases a book name or query token, strips diacritics
// and drops everything outside [a-z0-9] so "1. Mose" and "1mose" compare equal.
func NormalizeBookToken(s string) string {
	stripped := StripDiacritics(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// VerseQuery is a parsed literal verse reference of the shape
// "BookToken, chapter, verse".
type VerseQuery struct {
	BookToken string
	Chapter   int
	Verse     int
}

// ParseVerseQuery recognizes a literal verse-reference query. It reports false
// for anything that is not of the exact three-part shape.
func ParseVerseQuery(query string) (VerseQuery, bool) {
	match := verseQueryPattern.FindStringSubmatch(strings.TrimSpace(query))
	if match == nil {
		return VerseQuery{}, false
	}

	chapter, err := strconv.Atoi(match[2])
	if err != nil {
		return VerseQuery{}, false
	}
	verse, err := strconv.Atoi(match[3])
	if err != nil {
		return VerseQuery{}, false
	}

	return VerseQuery{
		BookToken: strings.TrimSpace(match[1]),
		Chapter:   chapter,
		Verse:     verse,
	}, true
}

// ResolvedRef is a verse reference resolved against the dataset. VerseExists
// reports whether the verse number is present in the target chapter; the
// chapter itself always exists when resolution succeeds.
type ResolvedRef struct {
	BookIndex   int
	Chapter     int
	Verse       int
	VerseExists bool
}

// ResolveVerseQuery resolves a literal verse reference against the dataset.
// The book token is matched by normalized equality first, then by unique
// normalized prefix. Reports false when the query does not parse, the book
// token is ambiguous or unknown, or the chapter does not exist.
func (d *Dataset) ResolveVerseQuery(query string) (ResolvedRef, bool) {
	parsed, ok := ParseVerseQuery(query)
	if !ok {
		return ResolvedRef{}, false
	}

	target := NormalizeBookToken(parsed.BookToken)
	if target == "" || len(d.Books) == 0 {
		return ResolvedRef{}, false
	}

	var matched *Book
	for i := range d.Books {
		if NormalizeBookToken(d.Books[i].Name) == target {
			matched = &d.Books[i]
			break
		}
	}

	if matched == nil {
		var prefixMatches []*Book
		for i := range d.Books {
			if strings.HasPrefix(NormalizeBookToken(d.Books[i].Name), target) {
				prefixMatches = append(prefixMatches, &d.Books[i])
			}
		}
		if len(prefixMatches) == 1 {
			matched = prefixMatches[0]
		}
	}

	if matched == nil {
		return ResolvedRef{}, false
	}

	chapterData := matched.ChapterByNumber(parsed.Chapter)
	if chapterData == nil {
		return ResolvedRef{}, false
	}

	return ResolvedRef{
		BookIndex:   matched.BookIndex,
		Chapter:     parsed.Chapter,
		Verse:       parsed.Verse,
		VerseExists: chapterData.VerseByNumber(parsed.Verse) != nil,
	}, true
}
