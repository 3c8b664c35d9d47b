// Package commands implements the ":" command line: a registry of named
// commands resolved by exact or unambiguous-prefix match, each producing a
// typed message the UI model handles.
package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// CommandFunc is a function that executes a command
type CommandFunc func(args []string) tea.Cmd

// Registry holds all available commands
type Registry struct {
	commands map[string]CommandFunc
}

// NewRegistry creates a new command registry with built-in commands
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]CommandFunc),
	}

	// Vim-style: full names only, prefix matching handles the rest.
	r.Register("quit", cmdQuit)
	r.Register("help", cmdHelp)
	r.Register("theme", cmdTheme)

	// Navigation and reading
	r.Register("goto", cmdGoto)
	r.Register("read", cmdRead)
	r.Register("stop", cmdStop)

	// Chapter progress
	r.Register("mark", cmdMark)
	r.Register("unmark", cmdUnmark)

	// Verse annotations
	r.Register("highlight", cmdHighlight)
	r.Register("comment", cmdComment)

	// Narration audio location
	r.Register("ttsroot", cmdTTSRoot)

	return r
}

// Register adds a command to the registry
func (r *Registry) Register(name string, fn CommandFunc) {
	r.commands[name] = fn
}

// Execute runs a command by name with arguments
func (r *Registry) Execute(name string, args []string) tea.Cmd {
	// First try exact match
	if fn, ok := r.commands[name]; ok {
		return fn(args)
	}

	// Then try prefix matching (vim-style)
	var matches []string
	var matchedFn CommandFunc
	lowerName := strings.ToLower(name)

	for cmdName, fn := range r.commands {
		if strings.HasPrefix(strings.ToLower(cmdName), lowerName) {
			matches = append(matches, cmdName)
			matchedFn = fn
		}
	}

	// If exactly one match, execute it
	if len(matches) == 1 {
		return matchedFn(args)
	}

	// If multiple matches, show ambiguous command error
	if len(matches) > 1 {
		return showError(fmt.Sprintf("Ambiguous command '%s': %s", name, strings.Join(matches, ", ")))
	}

	return showError(fmt.Sprintf("Unknown command '%s'", name))
}

// GetCommands returns all registered command names
func (r *Registry) GetCommands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	return names
}

// Built-in command implementations

func cmdQuit(args []string) tea.Cmd {
	return tea.Quit
}

func cmdHelp(args []string) tea.Cmd {
	return func() tea.Msg {
		return HelpMsg{}
	}
}

// cmdTheme cycles through available themes
func cmdTheme(args []string) tea.Cmd {
	return func() tea.Msg {
		return ThemeMsg{}
	}
}

// cmdGoto jumps to a verse reference ("goto Buch, Kapitel, Vers")
func cmdGoto(args []string) tea.Cmd {
	return func() tea.Msg {
		if len(args) == 0 {
			return ErrorMsg{Message: "goto: reference required (book, chapter, verse)"}
		}
		return GotoMsg{Query: strings.Join(args, " ")}
	}
}

// cmdRead starts reading mode at the selected verse
func cmdRead(args []string) tea.Cmd {
	return func() tea.Msg {
		return ReadMsg{}
	}
}

// cmdStop stops reading mode
func cmdStop(args []string) tea.Cmd {
	return func() tea.Msg {
		return StopMsg{}
	}
}

// cmdMark marks the current chapter (and everything before it) as read
func cmdMark(args []string) tea.Cmd {
	return func() tea.Msg {
		return MarkMsg{}
	}
}

// cmdUnmark removes the current chapter's read mark
func cmdUnmark(args []string) tea.Cmd {
	return func() tea.Msg {
		return UnmarkMsg{}
	}
}

// cmdHighlight sets or clears the selected verse's highlight
func cmdHighlight(args []string) tea.Cmd {
	return func() tea.Msg {
		token := ""
		if len(args) > 0 {
			token = args[0]
		}
		return HighlightMsg{Token: token}
	}
}

// cmdComment opens the comment card for the selected verse
func cmdComment(args []string) tea.Cmd {
	return func() tea.Msg {
		return CommentMsg{}
	}
}

// cmdTTSRoot points the audio resolver at a different narration tree
func cmdTTSRoot(args []string) tea.Cmd {
	return func() tea.Msg {
		if len(args) == 0 {
			return ErrorMsg{Message: "ttsroot: path required"}
		}
		return TTSRootMsg{Path: strings.Join(args, " ")}
	}
}

// showError returns a command that shows an error message
func showError(msg string) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Message: msg}
	}
}

// Message types for commands

// ErrorMsg contains an error message to display
type ErrorMsg struct {
	Message string
}

// HelpMsg signals to show the help modal
type HelpMsg struct{}

// ThemeMsg signals to cycle to the next theme
type ThemeMsg struct{}

// GotoMsg signals to resolve and jump to a verse reference
type GotoMsg struct {
	Query string
}

// ReadMsg signals to start reading mode
type ReadMsg struct{}

// StopMsg signals to stop reading mode
type StopMsg struct{}

// MarkMsg signals to mark the current chapter as read
type MarkMsg struct{}

// UnmarkMsg signals to unmark the current chapter
type UnmarkMsg struct{}

// HighlightMsg signals to set or clear the selected verse's highlight.
// An empty or unknown token clears it.
type HighlightMsg struct {
	Token string
}

// CommentMsg signals to open the comment card for the selected verse
type CommentMsg struct{}

// TTSRootMsg signals to switch the narration root directory
type TTSRootMsg struct {
	Path string
}
