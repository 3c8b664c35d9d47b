// Package tts locates pre-rendered narration audio for verses and derives
// per-word timing tracks from sidecar files, estimating one when no sidecar
// exists. Audio is produced offline; this package only finds and times it.
package tts

import (
	"encoding/json"
	"unicode"
)

// WordStamp is one word's span inside the audio, in seconds.
type WordStamp struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// TimingPayload is the sidecar file layout written by the narration pipeline.
type TimingPayload struct {
	AudioSeconds float64     `json:"audio_seconds"`
	Words        []WordStamp `json:"words"`
}

// Span is a word's playback window after sanitizing.
type Span struct {
	Start float64
	End   float64
}

// Track maps word index to playback window.
type Track []Span

// ParseTiming decodes a sidecar payload. Any decode failure reports false.
func ParseTiming(raw []byte) (*TimingPayload, bool) {
	var payload TimingPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	return &payload, true
}

// SanitizeTrack forces spans into sequence: no start precedes the previous
// span's end, ends cover their starts, and everything is clamped into
// [0, duration] when a duration is known.
func SanitizeTrack(track Track, duration float64) Track {
	out := make(Track, len(track))
	prev := 0.0
	for i, span := range track {
		start := span.Start
		if start < prev {
			start = prev
		}
		end := span.End
		if end < start {
			end = start
		}
		if duration > 0 {
			if start > duration {
				start = duration
			}
			if end > duration {
				end = duration
			}
		}
		out[i] = Span{Start: start, End: end}
		prev = end
	}
	return out
}

// WordWeight scores a word by its alphanumeric length. Punctuation-only
// tokens still take a minimal slice of time.
func WordWeight(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// EstimatedTrack spreads the audio duration over the words proportionally to
// their weight. The last end is pinned to the duration so the final word
// stays lit until playback finishes.
func EstimatedTrack(words []string, duration float64) Track {
	if len(words) == 0 || duration <= 0 {
		return nil
	}

	total := 0
	weights := make([]int, len(words))
	for i, word := range words {
		weights[i] = WordWeight(word)
		total += weights[i]
	}

	track := make(Track, len(words))
	cursor := 0.0
	for i, weight := range weights {
		width := duration * float64(weight) / float64(total)
		track[i] = Span{Start: cursor, End: cursor + width}
		cursor += width
	}
	track[len(track)-1].End = duration
	return track
}

// TrackFromPayload builds a playback track for the given words. A sidecar
// whose word count matches is used directly after sanitizing; otherwise the
// track is estimated from the audio duration. Without either, there is no
// track and the caller plays unhighlighted.
func TrackFromPayload(payload *TimingPayload, words []string) Track {
	if payload == nil {
		return nil
	}
	if len(payload.Words) == len(words) && len(words) > 0 {
		track := make(Track, len(payload.Words))
		for i, stamp := range payload.Words {
			track[i] = Span{Start: stamp.Start, End: stamp.End}
		}
		return SanitizeTrack(track, payload.AudioSeconds)
	}
	return EstimatedTrack(words, payload.AudioSeconds)
}

// ActiveWordIndex returns the index of the span containing the elapsed time.
// Past the end the last word stays active; before the first word or inside a
// gap between spans nothing is, and the index is -1.
func ActiveWordIndex(track Track, elapsed float64) int {
	for i, span := range track {
		if span.Start <= elapsed && elapsed <= span.End {
			return i
		}
	}
	if n := len(track); n > 0 && elapsed > track[n-1].End {
		return n - 1
	}
	return -1
}
