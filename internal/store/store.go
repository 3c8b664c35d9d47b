// Package store persists the reader's durable state: read chapters, verse
// highlights, verse comments and the last location. Each record is a single
// JSON payload in a small SQLite key-value table, written through on every
// mutation. Loads tolerate missing or corrupt payloads by returning empty
// maps; write failures are swallowed so the session keeps working in memory.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const (
	recordReadChapters    = "read_chapters_v1"
	recordVerseHighlights = "verse_highlights_v1"
	recordVerseComments   = "verse_comments_v1"
	recordLocation        = "location_v1"
)

// Store wraps the SQLite connection pool holding the persisted records.
type Store struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the store database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// Single local writer; WAL keeps reads cheap during flushes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS records (
		name TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// readRecord returns the raw payload for a record name, or nil when absent
// or unreadable.
func (s *Store) readRecord(name string) []byte {
	if s == nil || s.db == nil {
		return nil
	}

	var payload string
	err := s.db.QueryRow("SELECT payload FROM records WHERE name = ?", name).Scan(&payload)
	if err != nil {
		return nil
	}
	return []byte(payload)
}

// writeRecord stores a raw payload under a record name. Errors are dropped:
// storage trouble must never take down the session.
func (s *Store) writeRecord(name string, payload []byte) {
	if s == nil || s.db == nil {
		return
	}
	_, _ = s.db.Exec(
		"INSERT INTO records (name, payload) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET payload = excluded.payload",
		name, string(payload),
	)
}

// loadStringMap decodes a record into a string map, returning an empty map
// for absent or malformed payloads.
func (s *Store) loadStringMap(name string) map[string]string {
	out := make(map[string]string)
	raw := s.readRecord(name)
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return make(map[string]string)
	}
	return out
}

func (s *Store) saveJSON(name string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.writeRecord(name, payload)
}

// LoadReadChapters returns the read-chapters map ("book:chapter" → true).
func (s *Store) LoadReadChapters() map[string]bool {
	out := make(map[string]bool)
	raw := s.readRecord(recordReadChapters)
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return make(map[string]bool)
	}
	// Only truthy entries count as read.
	for key, read := range out {
		if !read {
			delete(out, key)
		}
	}
	return out
}

// SaveReadChapters flushes the read-chapters map.
func (s *Store) SaveReadChapters(m map[string]bool) {
	s.saveJSON(recordReadChapters, m)
}

// LoadHighlights returns the verse-highlight map with every color normalized
// through the alias table. Entries that do not normalize are dropped.
func (s *Store) LoadHighlights() map[string]string {
	raw := s.loadStringMap(recordVerseHighlights)
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		if color, ok := NormalizeColor(value); ok {
			out[key] = color
		}
	}
	return out
}

// SaveHighlights flushes the verse-highlight map.
func (s *Store) SaveHighlights(m map[string]string) {
	s.saveJSON(recordVerseHighlights, m)
}

// LoadComments returns the verse-comment map.
func (s *Store) LoadComments() map[string]string {
	return s.loadStringMap(recordVerseComments)
}

// SaveComments flushes the verse-comment map.
func (s *Store) SaveComments(m map[string]string) {
	s.saveJSON(recordVerseComments, m)
}

// LoadLocation returns the persisted navigation fragment, or "".
func (s *Store) LoadLocation() string {
	return string(s.readRecord(recordLocation))
}

// SaveLocation flushes the navigation fragment.
func (s *Store) SaveLocation(fragment string) {
	s.writeRecord(recordLocation, []byte(fragment))
}
