package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leseraum/leseraum/internal/tts"
)

const (
	// wordPollInterval drives the word-highlight refresh while audio plays.
	wordPollInterval = 80 * time.Millisecond
	// minVerseDelay floors the silent pause used when a verse has no audio.
	minVerseDelay = 400 * time.Millisecond
	// playbackErrorInterval rate-limits narration error toasts.
	playbackErrorInterval = 6 * time.Second
)

// readingEngine is the autoplay state. Every start, pause, and stop bumps
// the token; async results stamped with an older token are dropped in
// Update, which is the only cancellation mechanism the engine has.
type readingEngine struct {
	open      bool // reading bar visible
	running   bool
	token     int
	index     int // cursor into the model's segments
	hasCursor bool
	wordIndex int
	track     tts.Track
	startedAt time.Time
	playback  *tts.Playback
	lastError time.Time
}

// bump invalidates every in-flight async continuation.
func (e *readingEngine) bump() int {
	e.token++
	return e.token
}

// stopPlayback kills any running audio process.
func (e *readingEngine) stopPlayback() {
	if e.playback != nil {
		e.playback.Stop()
		e.playback = nil
	}
	e.track = nil
	e.wordIndex = -1
}

// verseAudioMsg reports the outcome of resolving and starting one verse's
// audio.
type verseAudioMsg struct {
	token    int
	index    int
	playback *tts.Playback
	track    tts.Track
	noAudio  bool
	err      error
}

// playbackDoneMsg reports that the audio process exited.
type playbackDoneMsg struct {
	token int
	index int
	err   error
}

// verseDelayMsg fires after the silent pause for a verse without audio.
type verseDelayMsg struct {
	token int
	index int
}

// wordTickMsg drives the word-highlight poll.
type wordTickMsg struct {
	token int
}

// speakVerseCmd resolves the verse's audio and starts it. Runs off the main
// loop; the resolver serializes its own cache access.
func speakVerseCmd(resolver *tts.Resolver, seg Segment, token, index int) tea.Cmd {
	return func() tea.Msg {
		path, found := resolver.ResolveAudio(seg.BookName, seg.Chapter, seg.Verse)
		if !found {
			return verseAudioMsg{token: token, index: index, noAudio: true}
		}

		var track tts.Track
		if payload, ok := resolver.TimingFor(path); ok {
			track = tts.TrackFromPayload(payload, seg.Words)
		}

		playback, err := tts.Play(path)
		if err != nil {
			return verseAudioMsg{token: token, index: index, err: err}
		}
		return verseAudioMsg{token: token, index: index, playback: playback, track: track}
	}
}

// waitPlaybackCmd blocks on the audio process and reports its exit.
func waitPlaybackCmd(playback *tts.Playback, token, index int) tea.Cmd {
	return func() tea.Msg {
		return playbackDoneMsg{token: token, index: index, err: playback.Wait()}
	}
}

// verseDelayCmd paces a verse without audio at the configured reading speed.
func verseDelayCmd(wordCount, wpm, token, index int) tea.Cmd {
	delay := verseDelay(wordCount, wpm)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return verseDelayMsg{token: token, index: index}
	})
}

// verseDelay converts a word count into a reading pause, floored so short
// verses do not flash by.
func verseDelay(wordCount, wpm int) time.Duration {
	if wpm <= 0 {
		wpm = 180
	}
	delay := time.Duration(float64(wordCount) / float64(wpm) * float64(time.Minute))
	if delay < minVerseDelay {
		delay = minVerseDelay
	}
	return delay
}

// wordTickCmd schedules the next word-highlight poll.
func wordTickCmd(token int) tea.Cmd {
	return tea.Tick(wordPollInterval, func(time.Time) tea.Msg {
		return wordTickMsg{token: token}
	})
}
