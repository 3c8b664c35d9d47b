package ui

import (
	"strings"
)

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range words {
		// Check if adding this word would exceed the width
		potentialLength := currentLine.Len() + len(word)
		if currentLine.Len() > 0 {
			potentialLength++ // Account for space
		}

		if potentialLength > width && currentLine.Len() > 0 {
			// Start a new line
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}

		// Add space if not at the beginning of a line
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	// Add the last line if it has content
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}

// wrapTextWithPrefix wraps text with different prefixes for first and continuation lines
func wrapTextWithPrefix(text string, width int, firstPrefix, contPrefix string) string {
	if width <= 0 {
		return firstPrefix + text
	}

	// Calculate available width after prefixes
	firstWidth := width - len(firstPrefix)
	contWidth := width - len(contPrefix)

	words := strings.Fields(text)
	if len(words) == 0 {
		return firstPrefix
	}

	var lines []string
	var currentLine strings.Builder
	currentLine.WriteString(firstPrefix)

	lineWidth := firstWidth
	isFirstLine := true

	for _, word := range words {
		wordLen := len(word)
		currentLen := currentLine.Len() - len(firstPrefix)
		if !isFirstLine {
			currentLen = currentLine.Len() - len(contPrefix)
		}

		// Check if adding this word would exceed width
		needSpace := currentLen > 0
		spaceLen := 0
		if needSpace {
			spaceLen = 1
		}

		if currentLen+spaceLen+wordLen > lineWidth {
			// Start new line
			if currentLine.Len() > 0 {
				lines = append(lines, currentLine.String())
				currentLine.Reset()
				currentLine.WriteString(contPrefix)
				isFirstLine = false
				lineWidth = contWidth
			}
			currentLine.WriteString(word)
		} else {
			// Add to current line
			if needSpace {
				currentLine.WriteString(" ")
			}
			currentLine.WriteString(word)
		}
	}

	// Add remaining line
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}
