package ui

import "testing"

func makePicker(n int) picker {
	items := make([]pickerItem, n)
	for i := range items {
		items[i] = pickerItem{label: "item", value: i + 1}
	}
	var p picker
	p.setItems(pickerBooks, items, 1)
	return p
}

func TestPickerMoveClamps(t *testing.T) {
	p := makePicker(3)
	p.move(-1)
	if p.cursor != 0 {
		t.Errorf("cursor = %d, want 0", p.cursor)
	}
	p.move(10)
	if p.cursor != 2 {
		t.Errorf("cursor = %d, want 2", p.cursor)
	}
}

func TestPickerWindow(t *testing.T) {
	p := makePicker(20)

	// Fits entirely.
	if items, start := p.window(25); len(items) != 20 || start != 0 {
		t.Errorf("window(25) = %d items at %d", len(items), start)
	}

	// Cursor at the top.
	items, start := p.window(5)
	if len(items) != 5 || start != 0 {
		t.Errorf("window(5) at top = %d items at %d", len(items), start)
	}

	// Cursor in the middle stays centered.
	p.cursor = 10
	items, start = p.window(5)
	if len(items) != 5 || start != 8 {
		t.Errorf("window(5) mid = %d items at %d, want start 8", len(items), start)
	}

	// Cursor at the bottom pins the window.
	p.cursor = 19
	_, start = p.window(5)
	if start != 15 {
		t.Errorf("window(5) bottom start = %d, want 15", start)
	}
}

func TestPickerSetItemsScrollsToValue(t *testing.T) {
	items := []pickerItem{{"a", 10}, {"b", 20}, {"c", 30}}
	var p picker
	p.setItems(pickerChapters, items, 30)
	if p.cursor != 2 {
		t.Errorf("cursor = %d, want 2", p.cursor)
	}

	// Unknown value lands on the first row.
	p.setItems(pickerChapters, items, 99)
	if p.cursor != 0 {
		t.Errorf("cursor = %d, want 0", p.cursor)
	}
}
