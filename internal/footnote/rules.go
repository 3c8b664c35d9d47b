// Package footnote removes inline footnote markers from verse text. The verse
// dataset carries markers as single-letter suffixes glued onto words; whether
// a suffix is a marker or part of the word is decided by corpus word
// frequencies plus a manual override map.
package footnote

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Rules is the normalized footnote rule set.
type Rules struct {
	suffixPattern  *regexp.Regexp
	protectedWords map[string]struct{}
	manualTokens   map[string]string
}

type rawRules struct {
	SuffixPattern  string            `json:"suffix_pattern"`
	ProtectedWords []string          `json:"protected_words"`
	ManualTokenMap map[string]string `json:"manual_token_map"`
}

// ParseRules validates and compiles a raw rule payload. The suffix pattern
// must compile and carry two capture groups (base word, suffix).
func ParseRules(data []byte) (*Rules, error) {
	var raw rawRules
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse footnote rules: %w", err)
	}

	if raw.SuffixPattern == "" {
		return nil, fmt.Errorf("footnote rules missing suffix_pattern")
	}

	pattern, err := regexp.Compile(raw.SuffixPattern)
	if err != nil {
		return nil, fmt.Errorf("compile suffix_pattern: %w", err)
	}
	if pattern.NumSubexp() < 2 {
		return nil, fmt.Errorf("suffix_pattern needs two capture groups, has %d", pattern.NumSubexp())
	}

	protected := make(map[string]struct{}, len(raw.ProtectedWords))
	for _, word := range raw.ProtectedWords {
		if word != "" {
			protected[word] = struct{}{}
		}
	}

	manual := make(map[string]string, len(raw.ManualTokenMap))
	for token, replacement := range raw.ManualTokenMap {
		manual[token] = replacement
	}

	return &Rules{
		suffixPattern:  pattern,
		protectedWords: protected,
		manualTokens:   manual,
	}, nil
}

// LoadRules reads the rule set from the first candidate path that parses.
func LoadRules(candidates []string) (*Rules, error) {
	var lastErr error
	for _, path := range candidates {
		raw, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		rules, err := ParseRules(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return rules, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no footnote rule candidates configured")
	}
	return nil, fmt.Errorf("load footnote rules: %w", lastErr)
}
