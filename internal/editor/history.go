package editor

import "slices"

// Checkpoint is a full copy of the document plus the cursor to restore.
type Checkpoint struct {
	Lines  []string
	Cursor Position
}

func (c Checkpoint) equalLines(lines []string) bool {
	return slices.Equal(c.Lines, lines)
}

// Entry is one undoable mutation: the document before and after it.
type Entry struct {
	ID     string
	Before Checkpoint
	After  Checkpoint
}

// History is a linear undo/redo stack of snapshot entries.
//
// undoIndex points at the entry Undo will revert next:
//   - -1 means there is nothing to undo
//   - len(entries)-1 means there is nothing to redo
//
// Pushing after an undo discards everything past undoIndex.
type History struct {
	entries   []Entry
	undoIndex int
	limit     int
}

// NewHistory creates an empty history keeping at most limit entries.
// A limit of zero or less keeps everything.
func NewHistory(limit int) *History {
	return &History{undoIndex: -1, limit: limit}
}

// Push records a mutation and drops the redo tail.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries[:h.undoIndex+1], e)
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append([]Entry(nil), h.entries[drop:]...)
	}
	h.undoIndex = len(h.entries) - 1
}

// Undo steps back one entry and returns the state to restore.
func (h *History) Undo() (Checkpoint, bool) {
	if h.undoIndex < 0 {
		return Checkpoint{}, false
	}
	e := h.entries[h.undoIndex]
	h.undoIndex--
	return e.Before, true
}

// Redo re-applies the next undone entry and returns the state to restore.
func (h *History) Redo() (Checkpoint, bool) {
	if h.undoIndex >= len(h.entries)-1 {
		return Checkpoint{}, false
	}
	h.undoIndex++
	return h.entries[h.undoIndex].After, true
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool {
	return h.undoIndex >= 0
}

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool {
	return h.undoIndex < len(h.entries)-1
}

// Len returns the number of recorded entries, including undone ones.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear empties the history.
func (h *History) Clear() {
	h.entries = nil
	h.undoIndex = -1
}
