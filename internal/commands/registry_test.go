package commands

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runCommand(t *testing.T, r *Registry, name string, args []string) tea.Msg {
	t.Helper()
	cmd := r.Execute(name, args)
	if cmd == nil {
		t.Fatalf("Execute(%q) returned nil command", name)
	}
	return cmd()
}

func TestExecuteExactMatch(t *testing.T) {
	r := NewRegistry()

	msg := runCommand(t, r, "goto", []string{"1.", "Mose,", "1,", "2"})
	gotoMsg, ok := msg.(GotoMsg)
	if !ok {
		t.Fatalf("got %T, want GotoMsg", msg)
	}
	if gotoMsg.Query != "1. Mose, 1, 2" {
		t.Errorf("Query = %q, want args rejoined", gotoMsg.Query)
	}
}

func TestExecutePrefixMatch(t *testing.T) {
	r := NewRegistry()

	msg := runCommand(t, r, "tt", []string{"/audio/tts"})
	rootMsg, ok := msg.(TTSRootMsg)
	if !ok {
		t.Fatalf("got %T, want TTSRootMsg", msg)
	}
	if rootMsg.Path != "/audio/tts" {
		t.Errorf("Path = %q, want /audio/tts", rootMsg.Path)
	}
}

func TestExecuteAmbiguousPrefix(t *testing.T) {
	r := NewRegistry()

	// "h" matches both help and highlight.
	msg := runCommand(t, r, "h", nil)
	if _, ok := msg.(ErrorMsg); !ok {
		t.Fatalf("got %T, want ErrorMsg for ambiguous prefix", msg)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	r := NewRegistry()

	msg := runCommand(t, r, "bogus", nil)
	errMsg, ok := msg.(ErrorMsg)
	if !ok {
		t.Fatalf("got %T, want ErrorMsg", msg)
	}
	if errMsg.Message == "" {
		t.Error("error message should name the unknown command")
	}
}

func TestCommandsRequiringArgs(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"goto", "ttsroot"} {
		msg := runCommand(t, r, name, nil)
		if _, ok := msg.(ErrorMsg); !ok {
			t.Errorf("%s without args: got %T, want ErrorMsg", name, msg)
		}
	}
}

func TestHighlightTokenPassthrough(t *testing.T) {
	r := NewRegistry()

	msg := runCommand(t, r, "highlight", []string{"lila"})
	hl, ok := msg.(HighlightMsg)
	if !ok {
		t.Fatalf("got %T, want HighlightMsg", msg)
	}
	if hl.Token != "lila" {
		t.Errorf("Token = %q, want raw token passed through", hl.Token)
	}

	msg = runCommand(t, r, "highlight", nil)
	hl, ok = msg.(HighlightMsg)
	if !ok {
		t.Fatalf("got %T, want HighlightMsg", msg)
	}
	if hl.Token != "" {
		t.Errorf("Token = %q, want empty token to clear", hl.Token)
	}
}
