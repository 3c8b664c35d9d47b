package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
)

func TestChapterBarSegmented(t *testing.T) {
	theme := CleanCyberTheme
	numbers := []int{1, 2, 3, 4}
	read := map[int]bool{1: true, 2: true}

	bar := chapterBar(theme, numbers, func(n int) bool { return read[n] }, 3)
	if got := strings.Count(bar, "█"); got != 2 {
		t.Errorf("read cells = %d, want 2", got)
	}
	if !strings.Contains(bar, "▒") {
		t.Error("current unread chapter should render as ▒")
	}
	if got := strings.Count(bar, "░"); got != 1 {
		t.Errorf("unread cells = %d, want 1", got)
	}
}

func TestChapterBarProportional(t *testing.T) {
	theme := CleanCyberTheme
	numbers := make([]int, 150) // Psalms-sized
	for i := range numbers {
		numbers[i] = i + 1
	}

	bar := chapterBar(theme, numbers, func(n int) bool { return n <= 75 }, 80)
	filled := strings.Count(bar, "█")
	empty := strings.Count(bar, "░")
	if filled+empty != proportionalBarWidth {
		t.Errorf("bar width = %d, want %d", filled+empty, proportionalBarWidth)
	}
	if filled != proportionalBarWidth/2 {
		t.Errorf("filled = %d, want %d", filled, proportionalBarWidth/2)
	}
}

func TestChapterBarEmpty(t *testing.T) {
	if bar := chapterBar(CleanCyberTheme, nil, func(int) bool { return false }, 1); bar != "" {
		t.Errorf("empty book bar = %q, want empty", bar)
	}
}

func TestChapterEndReached(t *testing.T) {
	content := strings.TrimSuffix(strings.Repeat("line\n", 100), "\n")

	vp := viewport.New(80, 20)
	vp.SetContent(content)

	if chapterEndReached(vp) {
		t.Error("top of a long chapter should not count as finished")
	}

	vp.GotoBottom()
	if !chapterEndReached(vp) {
		t.Error("bottom should count as finished")
	}

	// Within the slack window but not at the bottom.
	vp.SetYOffset(100 - 20 - endSlackLines)
	if !chapterEndReached(vp) {
		t.Error("slack window near the bottom should count as finished")
	}

	vp.SetYOffset(100 - 20 - endSlackLines - 10)
	if chapterEndReached(vp) {
		t.Error("well above the slack window should not count as finished")
	}
}

func TestChapterEndReachedShortContent(t *testing.T) {
	vp := viewport.New(80, 20)
	vp.SetContent("one\ntwo\nthree")
	if !chapterEndReached(vp) {
		t.Error("content shorter than the viewport is always finished")
	}
}
