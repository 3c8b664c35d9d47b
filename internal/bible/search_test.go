package bible

import "testing"

func TestNormalizeBookToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Genesis", "genesis"},
		{"1. Mose", "1mose"},
		{"Römer", "romer"},
		{"  HOHESLIED ", "hoheslied"},
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := NormalizeBookToken(tt.in); got != tt.want {
			t.Errorf("NormalizeBookToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseVerseQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want VerseQuery
		ok   bool
	}{
		{"plain reference", "Gen, 1, 2", VerseQuery{BookToken: "Gen", Chapter: 1, Verse: 2}, true},
		{"tight spacing", "Gen,1,2", VerseQuery{BookToken: "Gen", Chapter: 1, Verse: 2}, true},
		{"numbered book", "1. Mose, 3, 7", VerseQuery{BookToken: "1. Mose", Chapter: 3, Verse: 7}, true},
		{"trailing space", "Gen, 1, 2  ", VerseQuery{BookToken: "Gen", Chapter: 1, Verse: 2}, true},
		{"missing verse", "Gen, 1", VerseQuery{}, false},
		{"plain text", "Anfang", VerseQuery{}, false},
		{"non-numeric chapter", "Gen, one, 2", VerseQuery{}, false},
		{"empty", "", VerseQuery{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseVerseQuery(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseVerseQuery(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseVerseQuery(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveVerseQuery(t *testing.T) {
	d := testDataset()

	tests := []struct {
		name string
		in   string
		want ResolvedRef
		ok   bool
	}{
		{
			name: "prefix match",
			in:   "Gen, 1, 2",
			want: ResolvedRef{BookIndex: 1, Chapter: 1, Verse: 2, VerseExists: true},
			ok:   true,
		},
		{
			name: "exact match",
			in:   "Exodus, 1, 1",
			want: ResolvedRef{BookIndex: 2, Chapter: 1, Verse: 1, VerseExists: true},
			ok:   true,
		},
		{
			name: "missing verse still resolves chapter",
			in:   "Gen, 1, 99",
			want: ResolvedRef{BookIndex: 1, Chapter: 1, Verse: 99, VerseExists: false},
			ok:   true,
		},
		{name: "unknown chapter", in: "Gen, 9, 1", ok: false},
		{name: "unknown book", in: "Levitikus, 1, 1", ok: false},
		{name: "not a reference", in: "Anfang", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.ResolveVerseQuery(tt.in)
			if ok != tt.ok {
				t.Fatalf("ResolveVerseQuery(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ResolveVerseQuery(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveVerseQueryAmbiguousPrefix(t *testing.T) {
	d := &Dataset{Books: []Book{
		{BookIndex: 1, Name: "Johannes", Chapters: []Chapter{{Chapter: 1, Verses: []Verse{{Verse: 1}}}}},
		{BookIndex: 2, Name: "Johannes 2", Chapters: []Chapter{{Chapter: 1, Verses: []Verse{{Verse: 1}}}}},
	}}

	// "Joh" prefixes both books, so resolution must fail rather than guess.
	if _, ok := d.ResolveVerseQuery("Joh, 1, 1"); ok {
		t.Error("expected ambiguous prefix to fail resolution")
	}

	// An exact normalized match beats the ambiguity.
	got, ok := d.ResolveVerseQuery("Johannes, 1, 1")
	if !ok || got.BookIndex != 1 {
		t.Errorf("exact match = (%+v, %v), want book 1", got, ok)
	}
}

func TestParseFragment(t *testing.T) {
	fallback := Selection{BookIndex: 1, Chapter: 1}

	tests := []struct {
		name string
		in   string
		want Selection
	}{
		{"both values", "book=3&chapter=4", Selection{BookIndex: 3, Chapter: 4}},
		{"missing chapter", "book=3", Selection{BookIndex: 3, Chapter: 1}},
		{"garbage", "%%%", fallback},
		{"non-positive ignored", "book=0&chapter=-2", fallback},
		{"empty", "", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFragment(tt.in, fallback); got != tt.want {
				t.Errorf("ParseFragment(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeFragmentRoundTrip(t *testing.T) {
	sel := Selection{BookIndex: 7, Chapter: 12}
	got := ParseFragment(sel.EncodeFragment(), Selection{BookIndex: 1, Chapter: 1})
	if got != sel {
		t.Errorf("round trip = %+v, want %+v", got, sel)
	}
}
