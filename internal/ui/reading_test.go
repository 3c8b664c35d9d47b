package ui

import (
	"testing"
	"time"

	"github.com/leseraum/leseraum/internal/tts"
)

func TestVerseDelay(t *testing.T) {
	tests := []struct {
		name  string
		words int
		wpm   int
		want  time.Duration
	}{
		{"short verse floors", 1, 180, minVerseDelay},
		{"three words floors", 3, 180, minVerseDelay},
		{"long verse scales", 30, 180, 10 * time.Second},
		{"slower pace", 30, 60, 30 * time.Second},
		{"zero wpm falls back", 18, 0, 6 * time.Second},
		{"negative wpm falls back", 18, -5, 6 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verseDelay(tt.words, tt.wpm); got != tt.want {
				t.Errorf("verseDelay(%d, %d) = %v, want %v", tt.words, tt.wpm, got, tt.want)
			}
		})
	}
}

func TestEngineBumpInvalidates(t *testing.T) {
	var e readingEngine
	first := e.bump()
	second := e.bump()
	if first == second {
		t.Error("each bump must mint a fresh token")
	}
	if e.token != second {
		t.Error("engine should hold the latest token")
	}
}

func TestStopPlaybackClearsWordState(t *testing.T) {
	e := readingEngine{
		wordIndex: 4,
		track:     tts.Track{{Start: 0, End: 1}, {Start: 1, End: 2}},
	}
	e.stopPlayback()
	if e.wordIndex != -1 || e.track != nil {
		t.Errorf("after stop: wordIndex=%d track=%v, want -1 and nil", e.wordIndex, e.track)
	}
}
