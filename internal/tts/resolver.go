package tts

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/leseraum/leseraum/internal/bible"
)

// DefaultRoot is where the narration pipeline drops its output.
const DefaultRoot = "/output/tts"

// audioExtensions in probe order. wav is what the pipeline emits today; the
// compressed formats cover manually converted archives.
var audioExtensions = []string{"wav", "mp3", "m4a"}

// timingSuffix replaces the audio extension to name its sidecar, so
// "007.wav" sits next to "007.timing.json".
const timingSuffix = ".timing.json"

// NormalizeRoot trims a configured root down to a usable directory path.
// Empty input falls back to DefaultRoot.
func NormalizeRoot(raw string) string {
	root := strings.TrimSpace(raw)
	if root == "" {
		return DefaultRoot
	}
	for len(root) > 1 && strings.HasSuffix(root, "/") {
		root = strings.TrimSuffix(root, "/")
	}
	return root
}

// FolderCandidates lists the directory names a chapter's audio may live
// under, most likely first. Narration folders replace spaces and slashes
// with underscores and sometimes drop diacritics, so every combination is
// tried.
func FolderCandidates(bookName string, chapter int) []string {
	replacer := strings.NewReplacer("/", "_", " ", "_")
	bases := []string{
		replacer.Replace(bookName),
		strings.ReplaceAll(bookName, " ", "_"),
		strings.ReplaceAll(bookName, "/", "_"),
		bookName,
	}

	suffix := "_" + strconv.Itoa(chapter)
	seen := make(map[string]struct{})
	var out []string
	add := func(base string) {
		name := base + suffix
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, base := range bases {
		add(base)
		add(bible.StripDiacritics(base))
	}
	return out
}

// VerseBasenames lists the filename stems for a verse: zero-padded to three
// digits first, then plain.
func VerseBasenames(verse int) []string {
	padded := fmt.Sprintf("%03d", verse)
	plain := strconv.Itoa(verse)
	if padded == plain {
		return []string{padded}
	}
	return []string{padded, plain}
}

// TimingSidecarPath names the sidecar next to an audio file: the audio
// extension is swapped for the timing suffix. Any query or fragment suffix
// on the path stays behind the sidecar name.
func TimingSidecarPath(audioPath string) string {
	base := audioPath
	tail := ""
	if idx := strings.IndexAny(base, "?#"); idx >= 0 {
		base, tail = base[:idx], base[idx:]
	}
	if dot := strings.LastIndex(base, "."); dot > strings.LastIndex(base, "/") {
		base = base[:dot]
	}
	return base + timingSuffix + tail
}

// Resolver probes the narration tree for verse audio and caches what it
// learns. Probes run from playback goroutines while the root can be swapped
// from the main loop, so all cache access is serialized.
type Resolver struct {
	mu          sync.Mutex
	root        string
	statCache   map[string]bool
	timingCache map[string]*TimingPayload
}

// NewResolver returns a resolver rooted at the normalized path.
func NewResolver(root string) *Resolver {
	return &Resolver{
		root:        NormalizeRoot(root),
		statCache:   make(map[string]bool),
		timingCache: make(map[string]*TimingPayload),
	}
}

// Root returns the current narration root.
func (r *Resolver) Root() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.root
}

// SetRoot switches the narration root and drops every cached probe result.
func (r *Resolver) SetRoot(raw string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root = NormalizeRoot(raw)
	r.statCache = make(map[string]bool)
	r.timingCache = make(map[string]*TimingPayload)
	return r.root
}

func (r *Resolver) exists(path string) bool {
	r.mu.Lock()
	if hit, ok := r.statCache[path]; ok {
		r.mu.Unlock()
		return hit
	}
	r.mu.Unlock()

	_, err := os.Stat(path)
	found := err == nil

	r.mu.Lock()
	r.statCache[path] = found
	r.mu.Unlock()
	return found
}

// AudioCandidates lists every path that could hold the verse's audio, in
// probe order: folder variants, then padded before plain stems, then wav
// before the compressed formats.
func (r *Resolver) AudioCandidates(bookName string, chapter, verse int) []string {
	root := r.Root()
	var out []string
	for _, folder := range FolderCandidates(bookName, chapter) {
		for _, stem := range VerseBasenames(verse) {
			for _, ext := range audioExtensions {
				out = append(out, root+"/"+folder+"/"+stem+"."+ext)
			}
		}
	}
	return out
}

// ResolveAudio returns the first existing audio file for a verse.
func (r *Resolver) ResolveAudio(bookName string, chapter, verse int) (string, bool) {
	for _, candidate := range r.AudioCandidates(bookName, chapter, verse) {
		if r.exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// TimingFor loads the sidecar next to an audio file. Missing or malformed
// sidecars report false; both outcomes are cached until the root changes.
func (r *Resolver) TimingFor(audioPath string) (*TimingPayload, bool) {
	sidecar := TimingSidecarPath(audioPath)

	r.mu.Lock()
	if payload, ok := r.timingCache[sidecar]; ok {
		r.mu.Unlock()
		return payload, payload != nil
	}
	r.mu.Unlock()

	var payload *TimingPayload
	if raw, err := os.ReadFile(sidecar); err == nil {
		if parsed, ok := ParseTiming(raw); ok {
			payload = parsed
		}
	}

	r.mu.Lock()
	r.timingCache[sidecar] = payload
	r.mu.Unlock()
	return payload, payload != nil
}
