package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, before, after string) Entry {
	return Entry{
		ID:     id,
		Before: Checkpoint{Lines: []string{before}},
		After:  Checkpoint{Lines: []string{after}},
	}
}

func TestHistory_EmptyHasNothingToDo(t *testing.T) {
	h := NewHistory(10)

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory(10)
	h.Push(entry("a", "", "a"))
	h.Push(entry("b", "a", "ab"))

	cp, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, cp.Lines)
	assert.True(t, h.CanRedo())

	cp, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, []string{""}, cp.Lines)
	assert.False(t, h.CanUndo())

	cp, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, cp.Lines)

	cp, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, []string{"ab"}, cp.Lines)
	assert.False(t, h.CanRedo())
}

func TestHistory_PushAfterUndoDropsRedoTail(t *testing.T) {
	h := NewHistory(10)
	h.Push(entry("a", "", "a"))
	h.Push(entry("b", "a", "ab"))
	_, _ = h.Undo()

	h.Push(entry("c", "a", "ac"))

	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanRedo())

	cp, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, cp.Lines)
}

func TestHistory_LimitDropsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := range 5 {
		h.Push(entry(fmt.Sprint(i), fmt.Sprint(i), fmt.Sprint(i+1)))
	}
	require.Equal(t, 3, h.Len())

	var undone []string
	for {
		cp, ok := h.Undo()
		if !ok {
			break
		}
		undone = append(undone, cp.Lines[0])
	}
	assert.Equal(t, []string{"4", "3", "2"}, undone)
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(0)
	h.Push(entry("a", "", "a"))

	h.Clear()

	assert.Zero(t, h.Len())
	assert.False(t, h.CanUndo())
}

func TestCheckpoint_EqualLines(t *testing.T) {
	cp := Checkpoint{Lines: []string{"a", "b"}}

	assert.True(t, cp.equalLines([]string{"a", "b"}))
	assert.False(t, cp.equalLines([]string{"a"}))
	assert.False(t, cp.equalLines([]string{"a", "c"}))
}
