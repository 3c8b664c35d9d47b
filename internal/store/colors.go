package store

import "strings"

// Colors is the closed highlight color set, in cycle order.
var Colors = []string{"purple", "blue", "red"}

// colorAliases tolerates common misspellings and the German color names used
// in queries.
var colorAliases = map[string]string{
	"purple": "purple",
	"pruple": "purple",
	"purble": "purple",
	"lila":   "purple",
	"blue":   "blue",
	"blau":   "blue",
	"red":    "red",
	"rot":    "red",
}

// NormalizeColor maps a raw token onto the closed color set. Unknown tokens
// report false; callers treat that as "no highlight".
func NormalizeColor(token string) (string, bool) {
	color, ok := colorAliases[strings.ToLower(strings.TrimSpace(token))]
	return color, ok
}
