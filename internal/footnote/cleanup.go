package footnote

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/leseraum/leseraum/internal/bible"
)

var wordPattern = regexp.MustCompile(`[A-Za-zÄÖÜäöüß]+`)

// WordFrequency counts word occurrences across the raw (uncleaned) text of
// the whole dataset. The counts drive the suffix-stripping heuristics.
func WordFrequency(d *bible.Dataset) map[string]int {
	counts := make(map[string]int)
	for _, book := range d.Books {
		for _, chapter := range book.Chapters {
			for _, verse := range chapter.Verses {
				text := verse.Text
				if text == "" {
					text = verse.De
				}
				if text == "" {
					continue
				}
				for _, word := range wordPattern.FindAllString(text, -1) {
					counts[word]++
				}
			}
		}
	}
	return counts
}

// shouldStripSuffix decides whether a trailing letter is a footnote marker.
// The base form must exist in the corpus; "b"/"c" suffixes strip when the
// base strongly dominates, lowercase words strip on length alone, and
// capitalized words only strip when the base overwhelms the suffixed form.
func shouldStripSuffix(word, base, suffix string, freq map[string]int, rules *Rules) bool {
	if freq == nil {
		return false
	}
	if _, ok := rules.protectedWords[word]; ok {
		return false
	}

	wordCount := freq[word]
	baseCount := freq[base]
	if baseCount == 0 {
		return false
	}

	if suffix == "b" || suffix == "c" {
		threshold := wordCount * 3
		if threshold < 6 {
			threshold = 6
		}
		return baseCount >= threshold
	}

	first := []rune(word)[0]
	if unicode.IsLower(first) {
		return len([]rune(word)) >= 3
	}

	return baseCount >= 30 && baseCount >= wordCount*15
}

// CleanMarkers rewrites one verse text, replacing manual tokens and stripping
// footnote suffixes the heuristics approve of.
func CleanMarkers(text string, freq map[string]int, rules *Rules) string {
	if text == "" {
		return ""
	}

	return rules.suffixPattern.ReplaceAllStringFunc(text, func(full string) string {
		if replacement, ok := rules.manualTokens[full]; ok {
			return replacement
		}

		groups := rules.suffixPattern.FindStringSubmatch(full)
		if len(groups) < 3 {
			return full
		}
		base, suffix := groups[1], strings.ToLower(groups[2])
		if shouldStripSuffix(full, base, suffix, freq, rules) {
			return base
		}
		return full
	})
}

// Apply fills the cleaned text fields of every verse in place. The display
// chain prefers those fields once set.
func Apply(d *bible.Dataset, freq map[string]int, rules *Rules) {
	for bi := range d.Books {
		for ci := range d.Books[bi].Chapters {
			verses := d.Books[bi].Chapters[ci].Verses
			for vi := range verses {
				if verses[vi].Text != "" {
					verses[vi].TextClean = CleanMarkers(verses[vi].Text, freq, rules)
				}
				if verses[vi].De != "" {
					verses[vi].DeClean = CleanMarkers(verses[vi].De, freq, rules)
				}
			}
		}
	}
}
