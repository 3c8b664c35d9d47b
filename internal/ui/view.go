package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderBottomBar())

	base := b.String()

	if m.helpModal.IsVisible() {
		return m.helpModal.ViewWithOverlay(base, m.width, m.height)
	}
	if m.picker.active() {
		return m.renderPicker(base)
	}
	return base
}

// renderPicker overlays the book/chapter chooser on the current view.
func (m Model) renderPicker(base string) string {
	theme := m.theme()

	title := "Buch wählen"
	if m.picker.kind == pickerChapters {
		title = "Kapitel wählen"
	}

	width := 40
	if m.width-8 < width {
		width = m.width - 8
	}
	height := 14
	if m.height-6 < height {
		height = m.height - 6
	}
	listHeight := height - 3
	if listHeight < 1 {
		listHeight = 1
	}

	items, start := m.picker.window(listHeight)
	var b strings.Builder
	for i, item := range items {
		if start+i == m.picker.cursor {
			b.WriteString(theme.SelectedStyle().Render("▌ " + item.label))
		} else {
			b.WriteString(theme.TextStyle().Render("  " + item.label))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}

	modal := NewModal(title, width, height)
	modal.Show()
	modal.SetContent(b.String())
	return modal.ViewWithOverlay(base, m.width, m.height, theme)
}

// renderHeader draws the title bar, the current position, and the chapter
// progress.
func (m Model) renderHeader() string {
	theme := m.theme()

	title := RenderGradientText("LESERAUM", string(theme.Cyan), string(theme.VibrantPurple))

	book := m.dataset.BookByIndex(m.selection.BookIndex)
	position := ""
	bar := ""
	if book != nil {
		position = theme.SelectedStyle().Render(
			fmt.Sprintf("%s %d", book.Name, m.selection.Chapter))
		if m.state.IsBookRead(book) {
			position += " " + theme.ReadMarkStyle().Render("✓")
		}
		numbers := book.ChapterNumbers()
		bar = chapterBar(theme, numbers, func(n int) bool {
			return m.state.IsChapterRead(m.selection.BookIndex, n)
		}, m.selection.Chapter)
		read := m.state.ReadChapterCount(m.selection.BookIndex, numbers)
		bar += theme.MutedStyle().Render(fmt.Sprintf(" %d/%d", read, len(numbers)))
	}

	if m.browse.showingResults() {
		if m.browse.kind == browseHighlights {
			position = theme.VerseHighlightStyle(m.browse.color).
				Render(fmt.Sprintf("Markierungen: %s (%d)", m.browse.color, len(m.browse.results)))
		} else {
			position = theme.TagStyle().
				Render(fmt.Sprintf("Notizen (%d)", len(m.browse.results)))
		}
		bar = ""
	}

	line := title + "  " + position
	if bar != "" {
		line += "\n" + bar
	} else {
		line += "\n"
	}
	return line
}

// renderBody renders the active rows and returns the first line number of
// each row for cursor tracking.
func (m Model) renderBody() (string, []int) {
	theme := m.theme()
	rows := m.activeSegments()
	if len(rows) == 0 {
		return theme.MutedStyle().Render("  Keine Einträge."), []int{0}
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	var out strings.Builder
	offsets := make([]int, len(rows))
	line := 0

	browsing := m.browse.showingResults() || (m.search.active && len(m.search.results) > 0)

	for i, seg := range rows {
		offsets[i] = line

		block := m.renderSegment(theme, seg, i, textWidth, browsing)
		out.WriteString(block)
		line += lipgloss.Height(block)

		if comment := m.state.Comment(seg.BookIndex, seg.Chapter, seg.Verse); comment != "" {
			note := theme.DimmedStyle().Render(wrapTextWithPrefix(comment, textWidth, "      ✎ ", "        "))
			out.WriteString(note)
			out.WriteString("\n")
			line += lipgloss.Height(note)
		}
		if i < len(rows)-1 {
			out.WriteString("\n")
			line++
		}
	}

	return out.String(), offsets
}

// renderSegment renders one verse row with cursor, highlight, reading, and
// search styling.
func (m Model) renderSegment(theme StyleTheme, seg Segment, index, textWidth int, browsing bool) string {
	selected := index == m.cursor
	readingHere := m.reading.open && m.reading.hasCursor && index == m.reading.index

	prefix := "  "
	if selected {
		prefix = theme.SelectedStyle().Render("▌ ")
	}

	label := fmt.Sprintf("%d", seg.Verse)
	if browsing {
		label = seg.Ref()
	}
	labelStyle := theme.MutedStyle()
	if readingHere {
		labelStyle = theme.ActiveVerseStyle()
	}

	color := m.state.Highlight(seg.BookIndex, seg.Chapter, seg.Verse)
	textStyle := theme.TextStyle()
	if color != "" {
		textStyle = theme.VerseHighlightStyle(color)
	}

	var text string
	if readingHere && m.reading.running && len(m.reading.track) > 0 {
		text = m.renderNarratedText(theme, seg, textStyle)
	} else {
		text = textStyle.Render(seg.Text)
		if m.search.active && m.search.term != "" {
			match := theme.SearchMatchStyle()
			text = highlightMatches(seg.Text, m.search.term, func(s string) string {
				return match.Render(s)
			})
		}
	}

	body := lipgloss.NewStyle().Width(textWidth).Render(text)
	lines := strings.Split(body, "\n")
	for j, l := range lines {
		if j == 0 {
			lines[j] = prefix + labelStyle.Render(label) + " " + l
		} else {
			lines[j] = "    " + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderNarratedText styles the word currently being spoken.
func (m Model) renderNarratedText(theme StyleTheme, seg Segment, base lipgloss.Style) string {
	active := theme.ActiveWordStyle()
	parts := make([]string, len(seg.Words))
	for i, word := range seg.Words {
		if i == m.reading.wordIndex {
			parts[i] = active.Render(word)
		} else {
			parts[i] = base.Render(word)
		}
	}
	return strings.Join(parts, " ")
}

// renderBottomBar draws the reading pill, overlays, and the status line.
func (m Model) renderBottomBar() string {
	theme := m.theme()

	if m.commandMode.IsActive() {
		return m.commandMode.View()
	}
	if m.commentCard.IsVisible() {
		return m.commentCard.View()
	}
	if m.search.active {
		hits := len(m.search.results)
		if m.browse.showingResults() {
			hits = len(m.browse.results)
		}
		count := ""
		if hits > 0 {
			count = theme.MutedStyle().Render(fmt.Sprintf("  %d Treffer", hits))
		}
		return m.search.input.View() + count
	}

	var left string
	switch {
	case m.reading.open && m.reading.running:
		left = theme.SuccessStyle().Render("▶ Vorlesen")
	case m.reading.open:
		left = theme.SelectedStyle().Render("⏸ Pause")
	default:
		left = theme.MutedStyle().Render("leertaste liest · / sucht · ? hilfe")
	}

	if m.statusMessage != "" {
		return left + "  " + theme.TextStyle().Render(m.statusMessage)
	}
	return left
}
