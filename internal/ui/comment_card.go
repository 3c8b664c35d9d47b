package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// commentAutosaveDelay batches keystrokes before flushing the comment.
const commentAutosaveDelay = 500 * time.Millisecond

// commentSaveMsg fires after the autosave window. Stale sequence numbers
// are ignored.
type commentSaveMsg struct {
	seq int
}

// CommentCard is the margin-note editor for one verse. Edits autosave
// while typing and flush once more on close. Clearing the text deletes
// the comment.
type CommentCard struct {
	visible bool
	area    textarea.Model
	seg     Segment
	seq     int
	width   int
}

// NewCommentCard creates an idle comment card.
func NewCommentCard() CommentCard {
	ta := textarea.New()
	ta.Placeholder = "Notiz..."
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(4)
	return CommentCard{area: ta}
}

// SetWidth resizes the editor to the terminal.
func (c *CommentCard) SetWidth(width int) {
	c.width = width
	inner := width - 10
	if inner < 20 {
		inner = 20
	}
	if inner > 72 {
		inner = 72
	}
	c.area.SetWidth(inner)
}

// Open starts editing the comment of a verse.
func (c *CommentCard) Open(seg Segment, existing string) {
	c.visible = true
	c.seg = seg
	c.area.SetValue(existing)
	c.area.Focus()
	c.area.CursorEnd()
	c.seq++
}

// Close hides the card. The caller flushes the final value.
func (c *CommentCard) Close() {
	c.visible = false
	c.area.Blur()
	c.seq++
}

// IsVisible reports whether the card is on screen.
func (c CommentCard) IsVisible() bool {
	return c.visible
}

// Segment returns the verse being edited.
func (c CommentCard) Segment() Segment {
	return c.seg
}

// Value returns the current editor text.
func (c CommentCard) Value() string {
	return c.area.Value()
}

// autosaveCmd schedules a flush of the current text.
func (c *CommentCard) autosaveCmd() tea.Cmd {
	c.seq++
	seq := c.seq
	return tea.Tick(commentAutosaveDelay, func(time.Time) tea.Msg {
		return commentSaveMsg{seq: seq}
	})
}

// Update forwards input to the editor and reports whether the text changed.
func (c *CommentCard) Update(msg tea.Msg) (tea.Cmd, bool) {
	before := c.area.Value()
	var cmd tea.Cmd
	c.area, cmd = c.area.Update(msg)
	return cmd, c.area.Value() != before
}

// View renders the card.
func (c CommentCard) View() string {
	if !c.visible {
		return ""
	}

	theme := CleanCyberTheme
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.Cyan).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(theme.Gray).
		Italic(true)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Purple).
		Padding(0, 1)

	body := titleStyle.Render("Notiz "+c.seg.Ref()) + "\n" +
		c.area.View() + "\n" +
		hintStyle.Render("esc schließt, leerer Text löscht")

	return frame.Render(body)
}
