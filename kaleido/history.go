package kaleido

// History is a linear undo/redo log of element-set snapshots. The cursor
// marks the currently displayed entry: -1 when empty, otherwise a valid
// index. Recording after an undo discards the abandoned branch.
type History struct {
	entries [][]Element
	cursor  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the current cursor index (-1 when empty).
func (h *History) Cursor() int {
	return h.cursor
}

// Record appends a snapshot of elements after the cursor, discarding any
// entries past it, and advances the cursor to the new entry. The snapshot
// is an independent copy.
func (h *History) Record(elements []Element) {
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, snapshot(elements))
	h.cursor++
}

// Undo moves the cursor back one entry and returns a copy of it. At the
// base (cursor <= 0) it is a no-op and returns (nil, false).
func (h *History) Undo() ([]Element, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return snapshot(h.entries[h.cursor]), true
}

// Redo moves the cursor forward one entry and returns a copy of it. At the
// tip it is a no-op and returns (nil, false).
func (h *History) Redo() ([]Element, bool) {
	if h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	return snapshot(h.entries[h.cursor]), true
}

// Clear empties the log and resets the cursor.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}

// snapshot deep-copies an element set. Elements hold only value fields, so
// a slice copy is a full copy.
func snapshot(elements []Element) []Element {
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}
