package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal represents the help/keyboard shortcuts modal
type HelpModal struct {
	Modal  // Embed base modal
	width  int
	height int
}

// helpMarkdown is the help content, rendered through glamour with the
// active theme's style.
const helpMarkdown = `# Tastatur

## Navigation

- ` + "`j/k`" + ` Vers auswählen
- ` + "`h/l`" + ` Kapitel wechseln (beim Vorlesen: Vers überspringen)
- ` + "`H/L`" + ` Buch wechseln
- ` + "`b`" + ` Buch und Kapitel wählen
- ` + "`g/G`" + ` Kapitelanfang / Kapitelende

## Vorlesen

- ` + "`Leertaste`" + ` Vorlesen starten, pausieren, fortsetzen
- ` + "`s`" + ` Vorlesen beenden
- ` + "`esc`" + ` Ebene schließen

## Anmerkungen

- ` + "`a`" + ` Markierungsfarbe wechseln (lila, blau, rot, keine)
- ` + "`m`" + ` Kapitel als gelesen markieren, doppelt drücken löscht
- ` + "`c`" + ` Notiz zum Vers bearbeiten
- ` + "`y`" + ` Vers in die Zwischenablage

## Listen

- ` + "`B`" + ` Markierungen durchsehen
- ` + "`C`" + ` Notizen durchsehen
- ` + "`/`" + ` Suche (Text, Farbe oder Buch, Kapitel, Vers); in Listen: filtern
- ` + "`Enter`" + ` zum Vers springen

## Befehle (:)

- ` + "`:goto`" + ` Referenz öffnen
- ` + "`:ttsroot`" + ` Audio-Verzeichnis wechseln
- ` + "`:theme`" + ` Farbschema wechseln
- ` + "`:quit`" + ` Beenden
`

// NewHelpModal creates a new HelpModal instance
func NewHelpModal() HelpModal {
	return HelpModal{
		Modal: NewModal("", 80, 30), // Will be sized dynamically
	}
}

// SetSize updates the modal size based on terminal dimensions
func (m *HelpModal) SetSize(width, height int) {
	// Calculate modal size - more conservative for help modal
	modalWidth := int(float64(width) * 0.75) // 75% instead of 85%
	modalHeight := height - 8

	// Minimum reasonable size
	if modalWidth < 50 {
		modalWidth = 50
	}
	if modalHeight < 20 {
		modalHeight = 20
	}

	// But don't exceed terminal size
	if modalWidth > width-4 {
		modalWidth = width - 4
	}

	m.width = modalWidth
	m.height = modalHeight
	m.Modal.width = modalWidth
	m.Modal.height = modalHeight
}

// Update handles input for the help modal
func (m HelpModal) Update(msg tea.Msg) (HelpModal, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			m.Hide()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the help modal
func (m HelpModal) View() string {
	if !m.visible {
		return ""
	}

	theme := CleanCyberTheme
	body := helpMarkdown

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(theme.ToGlamourStyle()),
		glamour.WithWordWrap(m.width-6),
	)
	if err == nil {
		if rendered, rerr := renderer.Render(helpMarkdown); rerr == nil {
			body = rendered
		}
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(theme.Gray).
		Italic(true)
	content := strings.TrimRight(body, "\n") + "\n\n" +
		footerStyle.Render("esc oder ? schließt")

	// Build the modal frame - matching other modals exactly
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Cyan).
		Width(m.width).
		Height(m.height).
		Padding(1, 2).
		Align(lipgloss.Left)

	return modalStyle.Render(content)
}

// ViewWithOverlay renders the modal over a dimmed background
func (m HelpModal) ViewWithOverlay(backgroundView string, width, height int) string {
	if !m.visible {
		return backgroundView
	}

	// Get modal view
	modalView := m.View()

	// Split background into lines
	bgLines := strings.Split(backgroundView, "\n")

	// Keep the first line (header) undimmed, clear everything else
	for i := range bgLines {
		if i == 0 {
			// Keep the header line as-is (title gradient bar)
			continue
		} else {
			// Replace all other lines with empty space
			bgLines[i] = strings.Repeat(" ", width)
		}
	}

	// Rejoin the modified background
	dimmedBg := strings.Join(bgLines, "\n")

	// Calculate position to center modal
	modalLines := strings.Split(modalView, "\n")
	modalHeight := len(modalLines)
	modalWidth := m.width + 4 // Account for border and padding

	startY := max(0, (height-modalHeight)/2)
	startX := max(0, (width-modalWidth)/2)

	// Overlay modal on background
	bgLinesArray := strings.Split(dimmedBg, "\n")
	result := make([]string, max(len(bgLinesArray), startY+len(modalLines)))
	copy(result, bgLinesArray)

	// Place modal lines at the calculated position
	for i, modalLine := range modalLines {
		lineIdx := startY + i
		if lineIdx < len(result) {
			padding := strings.Repeat(" ", startX)
			result[lineIdx] = padding + modalLine
		}
	}

	return strings.Join(result, "\n")
}
