package tts

import "testing"

func TestSanitizeTrack(t *testing.T) {
	in := Track{
		{Start: 0.5, End: 0.2},  // end before start
		{Start: 0.3, End: 1.0},  // start regresses
		{Start: 2.0, End: 99.0}, // end past duration
	}
	got := SanitizeTrack(in, 3.0)

	if got[0] != (Span{Start: 0.5, End: 0.5}) {
		t.Errorf("span 0 = %+v, want end raised to start", got[0])
	}
	if got[1].Start != 0.5 {
		t.Errorf("span 1 start = %v, want carried to the previous end", got[1].Start)
	}
	if got[2].End != 3.0 {
		t.Errorf("span 2 end = %v, want clamped to 3.0", got[2].End)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].End {
			t.Errorf("span %d overlaps its predecessor: %+v", i, got)
		}
	}

	// A span starting inside its predecessor is pushed past it.
	got = SanitizeTrack(Track{{Start: 0, End: 5}, {Start: 1, End: 2}}, 10)
	if got[1] != (Span{Start: 5, End: 5}) {
		t.Errorf("overlapping span = %+v, want squeezed to start 5 end 5", got[1])
	}
}

func TestWordWeight(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"Anfang", 6},
		{"Gott,", 4},
		{"...", 1},
		{"", 1},
		{"über", 4},
	}
	for _, tt := range tests {
		if got := WordWeight(tt.word); got != tt.want {
			t.Errorf("WordWeight(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestEstimatedTrack(t *testing.T) {
	track := EstimatedTrack([]string{"Am", "Anfang", "schuf"}, 2.6)
	if len(track) != 3 {
		t.Fatalf("len = %d, want 3", len(track))
	}
	if track[0].Start != 0 {
		t.Errorf("first start = %v, want 0", track[0].Start)
	}
	if track[2].End != 2.6 {
		t.Errorf("last end = %v, want pinned to 2.6", track[2].End)
	}
	// "Anfang" is three times the weight of "Am".
	if track[1].End-track[1].Start <= track[0].End-track[0].Start {
		t.Error("longer word should get the wider span")
	}

	if EstimatedTrack(nil, 2.6) != nil {
		t.Error("no words should yield no track")
	}
	if EstimatedTrack([]string{"Am"}, 0) != nil {
		t.Error("zero duration should yield no track")
	}
}

func TestTrackFromPayload(t *testing.T) {
	payload := &TimingPayload{
		AudioSeconds: 2.0,
		Words: []WordStamp{
			{Word: "Am", Start: 0, End: 0.5},
			{Word: "Anfang", Start: 0.5, End: 2.0},
		},
	}

	// Matching word count maps directly.
	track := TrackFromPayload(payload, []string{"Am", "Anfang"})
	if len(track) != 2 || track[1].End != 2.0 {
		t.Errorf("direct track = %+v", track)
	}

	// Count mismatch falls back to estimation over the display words.
	track = TrackFromPayload(payload, []string{"Am", "Anfang", "schuf"})
	if len(track) != 3 || track[2].End != 2.0 {
		t.Errorf("estimated track = %+v", track)
	}

	if TrackFromPayload(nil, []string{"Am"}) != nil {
		t.Error("nil payload should yield no track")
	}
}

func TestActiveWordIndex(t *testing.T) {
	track := Track{
		{Start: 0.2, End: 0.5},
		{Start: 0.7, End: 1.0},
		{Start: 1.5, End: 2.0},
	}

	tests := []struct {
		elapsed float64
		want    int
	}{
		{0.0, -1},
		{0.2, 0},
		{0.6, -1}, // in the gap between words nothing is active
		{0.8, 1},
		{1.2, -1},
		{1.7, 2},
		{9.9, 2}, // past the end the last word stays active
	}
	for _, tt := range tests {
		if got := ActiveWordIndex(track, tt.elapsed); got != tt.want {
			t.Errorf("ActiveWordIndex(%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}

	if got := ActiveWordIndex(nil, 1.0); got != -1 {
		t.Errorf("ActiveWordIndex(nil, 1.0) = %d, want -1", got)
	}
}
