package bible

import (
	"net/url"
	"strconv"
)

// Selection is the current navigation position.
type Selection struct {
	BookIndex int
	Chapter   int
}

// EncodeFragment serializes a selection into the "book=<int>&chapter=<int>"
// fragment format used by the persisted location record.
func (s Selection) EncodeFragment() string {
	params := url.Values{}
	params.Set("book", strconv.Itoa(s.BookIndex))
	params.Set("chapter", strconv.Itoa(s.Chapter))
	return params.Encode()
}

// ParseFragment reads a selection from a fragment string. Missing or
// non-positive values leave the corresponding field of the fallback untouched;
// out-of-range values are the caller's concern (ClampSelection).
func ParseFragment(fragment string, fallback Selection) Selection {
	selection := fallback

	params, err := url.ParseQuery(fragment)
	if err != nil {
		return selection
	}

	if book, err := strconv.Atoi(params.Get("book")); err == nil && book > 0 {
		selection.BookIndex = book
	}
	if chapter, err := strconv.Atoi(params.Get("chapter")); err == nil && chapter > 0 {
		selection.Chapter = chapter
	}
	return selection
}
