package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leseraum/leseraum/internal/bible"
	"github.com/leseraum/leseraum/internal/commands"
	"github.com/leseraum/leseraum/internal/store"
	"github.com/leseraum/leseraum/internal/tts"
)

// markerDoublePressWindow is how fast a second marker press must follow to
// unmark instead of mark.
const markerDoublePressWindow = 340 * time.Millisecond

// Model represents the application state for the TUI
type Model struct {
	dataset  *bible.Dataset
	state    *store.State
	resolver *tts.Resolver
	wpm      int

	themeIdx int

	selection bible.Selection
	segments  []Segment // current chapter
	cursor    int       // selected row in the active list

	browse  browseSession
	search  searchBar
	reading readingEngine
	picker  picker

	viewport    viewport.Model
	lineOffsets []int // first viewport line of each active row
	ready       bool
	width       int
	height      int

	statusMessage string

	commentCard CommentCard
	helpModal   HelpModal
	commandMode CommandMode

	lastMarkerAt time.Time
}

// clearStatusMsg is sent to clear the status message after a delay
type clearStatusMsg struct{}

// NewModel creates a Model over a loaded dataset. The last location is
// restored from the store and clamped to the dataset.
func NewModel(dataset *bible.Dataset, state *store.State, resolver *tts.Resolver, wpm int) Model {
	fallback := bible.Selection{BookIndex: 1, Chapter: 1}
	if len(dataset.Books) > 0 {
		fallback.BookIndex = dataset.Books[0].BookIndex
		if numbers := dataset.Books[0].ChapterNumbers(); len(numbers) > 0 {
			fallback.Chapter = numbers[0]
		}
	}
	sel := state.LoadLocation(fallback)
	sel.BookIndex, sel.Chapter = dataset.ClampSelection(sel.BookIndex, sel.Chapter)

	m := Model{
		dataset:     dataset,
		state:       state,
		resolver:    resolver,
		wpm:         wpm,
		selection:   sel,
		viewport:    viewport.New(80, 20),
		search:      newSearchBar(),
		commentCard: NewCommentCard(),
		helpModal:   NewHelpModal(),
		commandMode: NewCommandMode(),
	}
	m.reading.wordIndex = -1
	m.rebuildChapter()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) theme() StyleTheme {
	return AvailableThemes[m.themeIdx%len(AvailableThemes)]
}

// activeSegments returns the rows the cursor and the reading engine run
// over: browse results, search results, or the current chapter.
func (m *Model) activeSegments() []Segment {
	if m.browse.showingResults() {
		return m.browse.segments()
	}
	if m.search.active && len(m.search.results) > 0 {
		return m.search.results
	}
	return m.segments
}

// rebuildChapter rebuilds the chapter segments after a navigation change.
func (m *Model) rebuildChapter() {
	book := m.dataset.BookByIndex(m.selection.BookIndex)
	var chapter *bible.Chapter
	if book != nil {
		chapter = book.ChapterByNumber(m.selection.Chapter)
	}
	m.segments = chapterSegments(book, chapter)
	if m.cursor >= len(m.segments) {
		m.cursor = 0
	}
	m.syncViewport()
}

// setSelection navigates to a chapter, persists the location, and resets
// the cursor.
func (m *Model) setSelection(bookIndex, chapter int) {
	bookIndex, chapter = m.dataset.ClampSelection(bookIndex, chapter)
	m.selection = bible.Selection{BookIndex: bookIndex, Chapter: chapter}
	m.cursor = 0
	m.rebuildChapter()
	m.viewport.GotoTop()
	m.state.SaveLocation(m.selection)
}

// setStatus shows a transient status message.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	return clearStatusAfterDelay(3 * time.Second)
}

// clearStatusAfterDelay returns a command that clears the status message
// after a delay
func clearStatusAfterDelay(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// selectedSegment returns the segment under the cursor.
func (m *Model) selectedSegment() (Segment, bool) {
	rows := m.activeSegments()
	if len(rows) == 0 || m.cursor < 0 || m.cursor >= len(rows) {
		return Segment{}, false
	}
	return rows[m.cursor], true
}

// syncViewport re-renders the body and keeps the cursor row visible.
func (m *Model) syncViewport() {
	body, offsets := m.renderBody()
	m.lineOffsets = offsets
	m.viewport.SetContent(body)

	if m.cursor >= 0 && m.cursor < len(offsets) {
		top := offsets[m.cursor]
		bottom := m.viewport.TotalLineCount()
		if m.cursor+1 < len(offsets) {
			bottom = offsets[m.cursor+1]
		}
		if top < m.viewport.YOffset {
			m.viewport.SetYOffset(top)
		} else if bottom > m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(bottom - m.viewport.Height)
		}
	}
}

// jumpTo navigates to a resolved verse reference, closing any overlay.
func (m *Model) jumpTo(bookIndex, chapter, verse int) {
	m.closeBrowse()
	m.search.close()
	m.stopReading(false)
	m.setSelection(bookIndex, chapter)
	for i, seg := range m.segments {
		if seg.Verse == verse {
			m.cursor = i
			break
		}
	}
	m.syncViewport()
}

// closeBrowse leaves any annotation browse and returns to the chapter.
func (m *Model) closeBrowse() {
	if !m.browse.active() {
		return
	}
	m.browse = browseSession{}
	m.cursor = 0
	m.syncViewport()
}

// openHighlightBrowse enters the highlight browse for a color. Reading mode
// stops; its cursor would point into the wrong list.
func (m *Model) openHighlightBrowse(color string) {
	m.stopReading(false)
	m.search.close()
	m.browse = browseSession{
		kind:           browseHighlights,
		color:          color,
		results:        highlightResults(m.dataset, m.state, color),
		viewingResults: true,
	}
	m.cursor = 0
	m.viewport.GotoTop()
	m.syncViewport()
}

// openCommentBrowse enters the comment browse.
func (m *Model) openCommentBrowse() {
	m.stopReading(false)
	m.search.close()
	m.browse = browseSession{
		kind:           browseComments,
		results:        commentResults(m.dataset, m.state),
		viewingResults: true,
	}
	m.cursor = 0
	m.viewport.GotoTop()
	m.syncViewport()
}

// drillIntoResult leaves the result list for the row's verse in normal
// chapter view, keeping the session in the background.
func (m *Model) drillIntoResult(seg Segment) {
	m.browse.savedCursor = m.cursor
	m.browse.viewingResults = false
	m.search.close()
	m.stopReading(false)
	m.setSelection(seg.BookIndex, seg.Chapter)
	for i, s := range m.segments {
		if s.Verse == seg.Verse {
			m.cursor = i
			break
		}
	}
	m.syncViewport()
}

// openBrowseResults returns from a drilled-in verse to the result list at
// its previous position.
func (m *Model) openBrowseResults() {
	if !m.browse.active() {
		return
	}
	m.stopReading(false)
	m.browse.viewingResults = true
	m.cursor = m.browse.savedCursor
	if m.cursor >= len(m.browse.results) {
		m.cursor = len(m.browse.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncViewport()
}

// refreshBrowse rebuilds the active browse rows after an annotation change.
func (m *Model) refreshBrowse() {
	switch m.browse.kind {
	case browseHighlights:
		m.browse.results = filterResults(
			highlightResults(m.dataset, m.state, m.browse.color), m.browse.filter)
	case browseComments:
		m.browse.results = filterResults(
			commentResults(m.dataset, m.state), m.browse.filter)
	default:
		return
	}
	if m.cursor >= len(m.browse.results) {
		m.cursor = len(m.browse.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncViewport()
}

// startReading opens the reading bar and begins narrating at the row.
func (m *Model) startReading(index int) tea.Cmd {
	rows := m.activeSegments()
	if len(rows) == 0 || !m.browse.allowsReading() {
		return nil
	}
	if index < 0 || index >= len(rows) {
		index = 0
	}

	m.reading.stopPlayback()
	token := m.reading.bump()
	m.reading.open = true
	m.reading.running = true
	m.reading.index = index
	m.reading.hasCursor = true
	m.reading.wordIndex = -1
	m.cursor = index
	m.syncViewport()
	return speakVerseCmd(m.resolver, rows[index], token, index)
}

// pauseReading halts narration but keeps the cursor.
func (m *Model) pauseReading() {
	m.reading.bump()
	m.reading.stopPlayback()
	m.reading.running = false
	m.syncViewport()
}

// stopReading closes the reading bar. The cursor survives only when the
// stop came from a playback failure.
func (m *Model) stopReading(preserveCursor bool) {
	m.reading.bump()
	m.reading.stopPlayback()
	m.reading.open = false
	m.reading.running = false
	m.reading.hasCursor = preserveCursor
	m.syncViewport()
}

// skipReading moves the reading cursor one verse without leaving the mode.
// Skipping before the first verse does nothing; skipping past the last one
// stops reading.
func (m *Model) skipReading(direction int) tea.Cmd {
	rows := m.activeSegments()
	if !m.reading.open || len(rows) == 0 {
		return nil
	}
	next := m.reading.index + direction
	if next < 0 {
		return nil
	}
	if next >= len(rows) {
		m.stopReading(false)
		return nil
	}
	m.reading.stopPlayback()
	m.reading.index = next
	m.cursor = next
	m.syncViewport()
	if !m.reading.running {
		return nil
	}
	token := m.reading.bump()
	m.reading.running = true
	return speakVerseCmd(m.resolver, rows[next], token, next)
}

// advanceReading moves to the next verse, crossing into the next chapter
// when the current one ends.
func (m *Model) advanceReading() tea.Cmd {
	rows := m.activeSegments()
	next := m.reading.index + 1
	if next < len(rows) {
		m.reading.index = next
		m.cursor = next
		m.syncViewport()
		token := m.reading.bump()
		return speakVerseCmd(m.resolver, rows[next], token, next)
	}

	// End of the list. Browse lists just stop; the chapter view rolls into
	// the next chapter.
	if m.browse.showingResults() || m.search.active {
		m.stopReading(false)
		return m.setStatus("Ende der Liste")
	}

	book, chapter, ok := m.dataset.AdjacentChapter(m.selection.BookIndex, m.selection.Chapter, 1)
	if !ok {
		m.stopReading(false)
		return m.setStatus("Ende erreicht")
	}
	m.setSelection(book, chapter)
	if len(m.segments) == 0 {
		m.stopReading(false)
		return nil
	}
	m.reading.index = 0
	m.cursor = 0
	m.syncViewport()
	token := m.reading.bump()
	return speakVerseCmd(m.resolver, m.segments[0], token, 0)
}

// reportPlaybackError shows a narration failure, rate limited, and stops
// reading while keeping the cursor in place.
func (m *Model) reportPlaybackError(err error) tea.Cmd {
	var cmds []tea.Cmd
	if time.Since(m.reading.lastError) >= playbackErrorInterval {
		m.reading.lastError = time.Now()
		cmds = append(cmds, m.setStatus(fmt.Sprintf("Audio-Fehler: %v", err)))
	}
	m.stopReading(true)
	if len(cmds) > 0 {
		return tea.Batch(cmds...)
	}
	return nil
}

// cycleHighlight rotates the selected verse through none, purple, blue, red.
func (m *Model) cycleHighlight() {
	seg, ok := m.selectedSegment()
	if !ok {
		return
	}
	current := m.state.Highlight(seg.BookIndex, seg.Chapter, seg.Verse)
	next := ""
	switch current {
	case "":
		next = store.Colors[0]
	case store.Colors[len(store.Colors)-1]:
		next = ""
	default:
		for i, color := range store.Colors {
			if color == current && i+1 < len(store.Colors) {
				next = store.Colors[i+1]
			}
		}
	}
	m.state.SetHighlight(seg.BookIndex, seg.Chapter, seg.Verse, next)
	if m.browse.kind == browseHighlights {
		m.refreshBrowse()
	}
	m.syncViewport()
}

// pressMarker marks the chapter read, or unmarks it on a quick double
// press.
func (m *Model) pressMarker() tea.Cmd {
	now := time.Now()
	doublePress := now.Sub(m.lastMarkerAt) <= markerDoublePressWindow
	m.lastMarkerAt = now

	book := m.dataset.BookByIndex(m.selection.BookIndex)
	if book == nil {
		return nil
	}

	if doublePress {
		m.state.UnmarkChapterRead(m.selection.BookIndex, m.selection.Chapter)
		m.syncViewport()
		return m.setStatus(fmt.Sprintf("Kapitel %d nicht gelesen", m.selection.Chapter))
	}
	m.state.MarkChaptersFromStart(book, m.selection.Chapter)
	m.syncViewport()
	return m.setStatus(fmt.Sprintf("Gelesen bis Kapitel %d", m.selection.Chapter))
}

// openComment opens the note editor for the selected verse.
func (m *Model) openComment() {
	seg, ok := m.selectedSegment()
	if !ok {
		return
	}
	m.stopReading(false)
	m.commentCard.SetWidth(m.width)
	m.commentCard.Open(seg, m.state.Comment(seg.BookIndex, seg.Chapter, seg.Verse))
}

// flushComment writes the editor text through to the store.
func (m *Model) flushComment() {
	seg := m.commentCard.Segment()
	m.state.SetComment(seg.BookIndex, seg.Chapter, seg.Verse, m.commentCard.Value())
	if m.browse.kind == browseComments {
		m.refreshBrowse()
	}
	m.syncViewport()
}

// evaluateSearch interprets the query. Inside a browse it filters the rows.
// Otherwise a color opens the highlight browse, a verse reference resolves
// to one row, and anything else is a text scan.
func (m *Model) evaluateSearch() {
	query := m.search.input.Value()
	m.search.term = query

	if m.browse.showingResults() {
		m.browse.filter = query
		m.refreshBrowse()
		return
	}

	if color, ok := store.NormalizeColor(query); ok {
		m.search.close()
		m.openHighlightBrowse(color)
		return
	}

	if _, ok := bible.ParseVerseQuery(query); ok {
		if ref, resolved := m.dataset.ResolveVerseQuery(query); resolved {
			verse := ref.Verse
			if !ref.VerseExists {
				verse = 0
			}
			if seg, found := segmentFor(m.dataset, bible.VerseKey(ref.BookIndex, ref.Chapter, verse)); found {
				m.search.results = []Segment{seg}
			} else {
				// Chapter exists but the verse does not; offer its first verse.
				book := m.dataset.BookByIndex(ref.BookIndex)
				chapter := book.ChapterByNumber(ref.Chapter)
				m.search.results = chapterSegments(book, chapter)
			}
			m.cursor = 0
			m.syncViewport()
			return
		}
	}

	m.search.results = textSearch(m.dataset, query)
	m.cursor = 0
	m.viewport.GotoTop()
	m.syncViewport()
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6
		if m.viewport.Height < 4 {
			m.viewport.Height = 4
		}
		m.ready = true
		m.helpModal.SetSize(msg.Width, msg.Height)
		m.commandMode.SetWidth(msg.Width)
		m.commentCard.SetWidth(msg.Width)
		m.syncViewport()
		return m, nil
	}

	// Command mode has the highest priority.
	if m.commandMode.IsActive() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			m.commandMode, cmd = m.commandMode.Update(msg)
			return m, cmd
		}
		if _, isClear := msg.(clearErrorMsg); isClear {
			m.commandMode, cmd = m.commandMode.Update(msg)
			return m, cmd
		}
	}

	// Note editor next.
	if m.commentCard.IsVisible() {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "esc":
				m.commentCard.Close()
				m.flushComment()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			default:
				areaCmd, changed := m.commentCard.Update(msg)
				cmds = append(cmds, areaCmd)
				if changed {
					cmds = append(cmds, m.commentCard.autosaveCmd())
				}
				return m, tea.Batch(cmds...)
			}
		case commentSaveMsg:
			if msg.seq == m.commentCard.seq && m.commentCard.IsVisible() {
				m.flushComment()
			}
			return m, nil
		}
	}

	// Help modal swallows keys while visible.
	if m.helpModal.IsVisible() {
		m.helpModal, cmd = m.helpModal.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case commands.ErrorMsg:
		return m, m.commandMode.SetError(msg.Message)

	case commands.HelpMsg:
		m.helpModal.SetSize(m.width, m.height)
		m.helpModal.Show()
		return m, nil

	case commands.ThemeMsg:
		m.themeIdx = (m.themeIdx + 1) % len(AvailableThemes)
		m.syncViewport()
		return m, m.setStatus("Theme: " + m.theme().Name)

	case commands.GotoMsg:
		if _, ok := bible.ParseVerseQuery(msg.Query); !ok {
			return m, m.commandMode.SetError("goto: Referenz nicht lesbar (Buch, Kapitel, Vers)")
		}
		ref, resolved := m.dataset.ResolveVerseQuery(msg.Query)
		if !resolved {
			return m, m.commandMode.SetError("goto: Buch nicht gefunden")
		}
		m.jumpTo(ref.BookIndex, ref.Chapter, ref.Verse)
		if !ref.VerseExists {
			return m, m.setStatus("Vers nicht vorhanden, Kapitel geöffnet")
		}
		return m, nil

	case commands.ReadMsg:
		return m, m.startReading(m.cursor)

	case commands.StopMsg:
		m.stopReading(false)
		return m, nil

	case commands.MarkMsg:
		return m, m.pressMarker()

	case commands.UnmarkMsg:
		m.state.UnmarkChapterRead(m.selection.BookIndex, m.selection.Chapter)
		m.syncViewport()
		return m, m.setStatus(fmt.Sprintf("Kapitel %d nicht gelesen", m.selection.Chapter))

	case commands.HighlightMsg:
		if seg, ok := m.selectedSegment(); ok {
			if m.state.SetHighlight(seg.BookIndex, seg.Chapter, seg.Verse, msg.Token) {
				if m.browse.kind == browseHighlights {
					m.refreshBrowse()
				}
				m.syncViewport()
			}
		}
		return m, nil

	case commands.CommentMsg:
		m.openComment()
		return m, nil

	case commands.TTSRootMsg:
		root := m.resolver.SetRoot(msg.Path)
		return m, m.setStatus("Audio-Verzeichnis: " + root)

	case verseAudioMsg:
		if msg.token != m.reading.token {
			// Stale start; kill the process it may have spawned.
			if msg.playback != nil {
				msg.playback.Stop()
			}
			return m, nil
		}
		if msg.err != nil {
			return m, m.reportPlaybackError(msg.err)
		}
		if msg.noAudio {
			rows := m.activeSegments()
			words := 0
			if msg.index < len(rows) {
				words = len(rows[msg.index].Words)
			}
			return m, verseDelayCmd(words, m.wpm, msg.token, msg.index)
		}
		m.reading.playback = msg.playback
		m.reading.track = msg.track
		m.reading.startedAt = msg.playback.StartedAt()
		m.reading.wordIndex = tts.ActiveWordIndex(msg.track, 0)
		m.syncViewport()
		return m, tea.Batch(
			waitPlaybackCmd(msg.playback, msg.token, msg.index),
			wordTickCmd(msg.token),
		)

	case playbackDoneMsg:
		if msg.token != m.reading.token {
			return m, nil
		}
		m.reading.playback = nil
		if msg.err != nil {
			return m, m.reportPlaybackError(msg.err)
		}
		return m, m.advanceReading()

	case verseDelayMsg:
		if msg.token != m.reading.token {
			return m, nil
		}
		return m, m.advanceReading()

	case wordTickMsg:
		if msg.token != m.reading.token || !m.reading.running || len(m.reading.track) == 0 {
			return m, nil
		}
		elapsed := time.Since(m.reading.startedAt).Seconds()
		next := tts.ActiveWordIndex(m.reading.track, elapsed)
		if next != m.reading.wordIndex {
			m.reading.wordIndex = next
			m.syncViewport()
		}
		return m, wordTickCmd(msg.token)

	case searchDebounceMsg:
		if m.search.active && msg.seq == m.search.seq {
			m.evaluateSearch()
		}
		return m, nil

	case commentSaveMsg:
		// Card already closed; the close flush covered it.
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if len(cmds) > 0 {
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

// handleKey processes normal-mode keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input grabs printable keys while open.
	if m.search.active {
		switch msg.String() {
		case "esc":
			m.search.close()
			if m.browse.showingResults() {
				m.browse.filter = ""
				m.refreshBrowse()
			}
			m.cursor = 0
			m.syncViewport()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.browse.showingResults() {
				// Keep the filtered rows, hand the keys back to the list.
				m.search.active = false
				m.search.input.Blur()
				return m, nil
			}
			if seg, ok := m.selectedSegment(); ok && len(m.search.results) > 0 {
				m.jumpTo(seg.BookIndex, seg.Chapter, seg.Verse)
			}
			return m, nil
		case "down":
			if m.cursor < len(m.activeSegments())-1 {
				m.cursor++
				m.syncViewport()
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
				m.syncViewport()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			before := m.search.input.Value()
			m.search.input, cmd = m.search.input.Update(msg)
			if m.search.input.Value() != before {
				return m, tea.Batch(cmd, m.search.debounceCmd())
			}
			return m, cmd
		}
	}

	// Chooser overlay: cursor moves preview only, enter commits.
	if m.picker.active() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q":
			if m.picker.kind == pickerChapters {
				m.openBookPicker()
			} else {
				m.picker.close()
			}
		case "j", "down":
			m.picker.move(1)
		case "k", "up":
			m.picker.move(-1)
		case "g":
			m.picker.cursor = 0
		case "G":
			m.picker.move(len(m.picker.items))
		case "enter":
			item, ok := m.picker.selected()
			if !ok {
				m.picker.close()
				return m, nil
			}
			if m.picker.kind == pickerBooks {
				m.openChapterPicker(item.value)
				return m, nil
			}
			book := m.picker.book
			m.picker.close()
			m.stopReading(false)
			m.closeBrowse()
			m.setSelection(book, item.value)
		}
		return m, nil
	}

	switch msg.String() {
	case ":":
		m.commandMode.Show()
		return m, nil

	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.browse.active() {
			m.closeBrowse()
			return m, nil
		}
		if m.reading.open {
			m.stopReading(false)
			return m, nil
		}
		return m, tea.Quit

	case "esc":
		switch {
		case m.browse.showingResults():
			m.closeBrowse()
		case m.browse.active():
			m.openBrowseResults()
		case m.reading.open:
			m.stopReading(false)
		}
		return m, nil

	case "/":
		// Inside a browse the bar filters the rows instead of searching.
		m.stopReading(false)
		m.search.open()
		return m, nil

	case "?":
		m.helpModal.SetSize(m.width, m.height)
		m.helpModal.Show()
		return m, nil

	case "j", "down":
		if m.cursor < len(m.activeSegments())-1 {
			m.cursor++
			m.syncViewport()
		}
		return m, m.maybeMarkOnScroll()

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.syncViewport()
		}
		return m, nil

	case "g":
		m.cursor = 0
		m.viewport.GotoTop()
		m.syncViewport()
		return m, nil

	case "G":
		if rows := m.activeSegments(); len(rows) > 0 {
			m.cursor = len(rows) - 1
		}
		m.viewport.GotoBottom()
		m.syncViewport()
		return m, m.maybeMarkOnScroll()

	case "h", "left":
		if m.reading.open {
			return m, m.skipReading(-1)
		}
		if m.browse.showingResults() {
			return m, nil
		}
		if book, chapter, ok := m.dataset.AdjacentChapter(m.selection.BookIndex, m.selection.Chapter, -1); ok {
			m.stopReading(false)
			m.setSelection(book, chapter)
		}
		return m, nil

	case "l", "right":
		if m.reading.open {
			return m, m.skipReading(1)
		}
		if m.browse.showingResults() {
			return m, nil
		}
		if book, chapter, ok := m.dataset.AdjacentChapter(m.selection.BookIndex, m.selection.Chapter, 1); ok {
			m.stopReading(false)
			m.setSelection(book, chapter)
		}
		return m, nil

	case "H":
		return m.gotoAdjacentBook(-1), nil

	case "L":
		return m.gotoAdjacentBook(1), nil

	case " ":
		if !m.reading.open {
			return m, m.startReading(m.cursor)
		}
		if m.reading.running {
			m.pauseReading()
			return m, nil
		}
		return m, m.startReading(m.reading.index)

	case "s":
		m.stopReading(false)
		return m, nil

	case "a":
		m.cycleHighlight()
		return m, nil

	case "m":
		return m, m.pressMarker()

	case "c":
		m.openComment()
		return m, nil

	case "b":
		m.stopReading(false)
		m.openBookPicker()
		return m, nil

	case "B":
		if m.browse.kind == browseHighlights {
			if m.browse.viewingResults {
				m.closeBrowse()
			} else {
				m.openBrowseResults()
			}
			return m, nil
		}
		color := store.Colors[0]
		if seg, ok := m.selectedSegment(); ok {
			if stored := m.state.Highlight(seg.BookIndex, seg.Chapter, seg.Verse); stored != "" {
				color = stored
			}
		}
		m.openHighlightBrowse(color)
		return m, nil

	case "C":
		if m.browse.kind == browseComments {
			if m.browse.viewingResults {
				m.closeBrowse()
			} else {
				m.openBrowseResults()
			}
			return m, nil
		}
		m.openCommentBrowse()
		return m, nil

	case "y":
		if seg, ok := m.selectedSegment(); ok {
			if err := CopyToClipboard(seg.Ref() + "  " + seg.Text); err != nil {
				return m, m.setStatus("Kopieren fehlgeschlagen")
			}
			return m, m.setStatus("Vers kopiert")
		}
		return m, nil

	case "enter":
		if m.browse.showingResults() {
			if seg, ok := m.selectedSegment(); ok {
				m.drillIntoResult(seg)
			}
		}
		return m, nil
	}

	return m, nil
}

// openBookPicker opens the chooser over all books, cursor on the current
// one. Read-through books carry a check mark.
func (m *Model) openBookPicker() {
	items := make([]pickerItem, 0, len(m.dataset.Books))
	for i := range m.dataset.Books {
		book := &m.dataset.Books[i]
		label := book.Name
		if m.state.IsBookRead(book) {
			label += " ✓"
		}
		items = append(items, pickerItem{label: label, value: book.BookIndex})
	}
	m.picker.setItems(pickerBooks, items, m.selection.BookIndex)
}

// openChapterPicker opens the chooser over one book's chapters.
func (m *Model) openChapterPicker(bookIndex int) {
	book := m.dataset.BookByIndex(bookIndex)
	if book == nil {
		m.picker.close()
		return
	}
	numbers := book.ChapterNumbers()
	items := make([]pickerItem, 0, len(numbers))
	for _, n := range numbers {
		label := fmt.Sprintf("Kapitel %d", n)
		if m.state.IsChapterRead(bookIndex, n) {
			label += " ✓"
		}
		items = append(items, pickerItem{label: label, value: n})
	}
	current := 0
	if bookIndex == m.selection.BookIndex {
		current = m.selection.Chapter
	}
	m.picker.setItems(pickerChapters, items, current)
	m.picker.book = bookIndex
}

// gotoAdjacentBook jumps to the first chapter of the previous or next book.
func (m Model) gotoAdjacentBook(direction int) Model {
	if m.browse.showingResults() {
		return m
	}
	pos := -1
	for i := range m.dataset.Books {
		if m.dataset.Books[i].BookIndex == m.selection.BookIndex {
			pos = i
			break
		}
	}
	next := pos + direction
	if pos < 0 || next < 0 || next >= len(m.dataset.Books) {
		return m
	}
	book := m.dataset.Books[next]
	chapter := 1
	if numbers := book.ChapterNumbers(); len(numbers) > 0 {
		chapter = numbers[0]
	}
	m.stopReading(false)
	m.setSelection(book.BookIndex, chapter)
	return m
}

// maybeMarkOnScroll marks the chapter read once the view reaches its end.
func (m *Model) maybeMarkOnScroll() tea.Cmd {
	if m.browse.showingResults() || m.search.active || len(m.segments) == 0 {
		return nil
	}
	if m.cursor != len(m.segments)-1 && !chapterEndReached(m.viewport) {
		return nil
	}
	if m.state.IsChapterRead(m.selection.BookIndex, m.selection.Chapter) {
		return nil
	}
	book := m.dataset.BookByIndex(m.selection.BookIndex)
	if book == nil {
		return nil
	}
	m.state.MarkChaptersFromStart(book, m.selection.Chapter)
	m.syncViewport()
	return m.setStatus(fmt.Sprintf("Kapitel %d gelesen", m.selection.Chapter))
}
