package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

const (
	// segmentedBarLimit is the largest chapter count that still gets one
	// cell per chapter. Longer books fall back to a proportional fill.
	segmentedBarLimit = 50
	// proportionalBarWidth is the fill bar width for long books.
	proportionalBarWidth = 30
	// endSlackLines is how close to the bottom counts as "finished".
	endSlackLines = 8
	// endScrollRatio is the alternative finish threshold for short content.
	endScrollRatio = 0.995
)

// chapterBar renders the book's read progress. Books at or under the
// segmented limit get one cell per chapter; longer books get a
// proportional fill with a counter.
func chapterBar(theme StyleTheme, numbers []int, isRead func(int) bool, current int) string {
	if len(numbers) == 0 {
		return ""
	}

	readStyle := theme.ReadMarkStyle()
	currentStyle := theme.SelectedStyle()
	mutedStyle := theme.MutedStyle()

	if len(numbers) <= segmentedBarLimit {
		var out strings.Builder
		for _, n := range numbers {
			cell := "░"
			style := mutedStyle
			if isRead(n) {
				cell = "█"
				style = readStyle
			}
			if n == current {
				style = currentStyle
				if cell == "░" {
					cell = "▒"
				}
			}
			out.WriteString(style.Render(cell))
		}
		return out.String()
	}

	read := 0
	for _, n := range numbers {
		if isRead(n) {
			read++
		}
	}
	filled := read * proportionalBarWidth / len(numbers)
	bar := readStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", proportionalBarWidth-filled))
	return bar
}

// chapterEndReached reports whether the viewport sits close enough to the
// bottom to count the chapter as finished.
func chapterEndReached(vp viewport.Model) bool {
	if vp.AtBottom() {
		return true
	}
	if vp.ScrollPercent() >= endScrollRatio {
		return true
	}
	remaining := vp.TotalLineCount() - (vp.YOffset + vp.Height)
	return remaining <= endSlackLines && remaining >= 0
}
