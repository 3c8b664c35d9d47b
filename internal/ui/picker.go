package ui

// pickerKind names which chooser list is open.
type pickerKind int

const (
	pickerNone pickerKind = iota
	pickerBooks
	pickerChapters
)

// pickerItem is one selectable row in the chooser.
type pickerItem struct {
	label string
	value int
}

// picker is the book/chapter chooser overlay. Moving the cursor only
// previews; enter commits the selection, esc backs out one level.
type picker struct {
	kind   pickerKind
	items  []pickerItem
	cursor int
	book   int // chosen book while picking a chapter
}

// active reports whether a chooser list is on screen.
func (p picker) active() bool {
	return p.kind != pickerNone
}

// setItems replaces the list and scrolls the cursor to the current value.
func (p *picker) setItems(kind pickerKind, items []pickerItem, current int) {
	p.kind = kind
	p.items = items
	p.cursor = 0
	for i, item := range items {
		if item.value == current {
			p.cursor = i
			break
		}
	}
}

// move steps the cursor, clamped to the list.
func (p *picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(p.items) {
		next = len(p.items) - 1
	}
	if next >= 0 {
		p.cursor = next
	}
}

// selected returns the item under the cursor.
func (p picker) selected() (pickerItem, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return pickerItem{}, false
	}
	return p.items[p.cursor], true
}

// close discards the chooser.
func (p *picker) close() {
	*p = picker{}
}

// window returns the slice of items visible in a list of the given height,
// kept centered on the cursor, and the index of its first item.
func (p picker) window(height int) ([]pickerItem, int) {
	if height <= 0 || len(p.items) <= height {
		return p.items, 0
	}
	start := p.cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(p.items) {
		start = len(p.items) - height
	}
	return p.items[start : start+height], start
}
