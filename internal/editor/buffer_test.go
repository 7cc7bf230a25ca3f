package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewBuffer_AlwaysHasOneLine(t *testing.T) {
	b := NewBuffer("")
	assert.Equal(t, 1, b.LineCount())
	assert.True(t, b.IsEmpty())
	assert.False(t, b.Dirty())
}

func TestNewBuffer_NormalisesCRLF(t *testing.T) {
	b := NewBuffer("one\r\ntwo\r\n")
	assert.Equal(t, []string{"one", "two", ""}, b.Lines())
}

func TestBuffer_InsertSingleLine(t *testing.T) {
	b := NewBuffer("hello world")

	end, err := b.Insert(Position{Row: 0, Col: 5}, ",")
	require.NoError(t, err)

	assert.Equal(t, "hello, world", b.Line(0))
	assert.Equal(t, Position{Row: 0, Col: 6}, end)
	assert.True(t, b.Dirty())
}

func TestBuffer_InsertSplitsLines(t *testing.T) {
	b := NewBuffer("headtail")

	end, err := b.Insert(Position{Row: 0, Col: 4}, "A\nB\nC")
	require.NoError(t, err)

	assert.Equal(t, []string{"headA", "B", "Ctail"}, b.Lines())
	assert.Equal(t, Position{Row: 2, Col: 1}, end)
}

func TestBuffer_InsertAtLineEndAndNewline(t *testing.T) {
	b := NewBuffer("a\nb")

	end, err := b.Insert(Position{Row: 0, Col: 1}, "\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "", "b"}, b.Lines())
	assert.Equal(t, Position{Row: 1, Col: 0}, end)
}

func TestBuffer_InsertGraphemeColumns(t *testing.T) {
	// e + combining acute is a single column.
	b := NewBuffer("cafe\u0301!")
	require.Equal(t, 5, b.LineLen(0))

	_, err := b.Insert(Position{Row: 0, Col: 4}, "?")
	require.NoError(t, err)
	assert.Equal(t, "cafe\u0301?!", b.Line(0))
}

func TestBuffer_InsertOutOfRange(t *testing.T) {
	b := NewBuffer("abc")

	tests := []Position{
		{Row: 1, Col: 0},
		{Row: 0, Col: 4},
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
	}
	for _, p := range tests {
		_, err := b.Insert(p, "x")
		assert.True(t, errors.Is(err, ErrOutOfRange), "position %+v", p)
	}
	assert.Equal(t, "abc", b.Text())
	assert.False(t, b.Dirty())
}

func TestBuffer_DeleteWithinLine(t *testing.T) {
	b := NewBuffer("hello world")

	removed, err := b.Delete(Range{Start: Position{Col: 0}, End: Position{Col: 5}})
	require.NoError(t, err)

	assert.Equal(t, "hello", removed)
	assert.Equal(t, " world", b.Line(0))
}

func TestBuffer_DeleteAcrossLinesMerges(t *testing.T) {
	b := NewBuffer("line1\nline2\nline3")

	removed, err := b.Delete(Range{Start: Position{Row: 0, Col: 3}, End: Position{Row: 2, Col: 2}})
	require.NoError(t, err)

	assert.Equal(t, "e1\nline2\nli", removed)
	assert.Equal(t, []string{"linne3"}, b.Lines())
}

func TestBuffer_DeleteNormalisesReversedRange(t *testing.T) {
	b := NewBuffer("abcdef")

	removed, err := b.Delete(Range{Start: Position{Col: 4}, End: Position{Col: 1}})
	require.NoError(t, err)

	assert.Equal(t, "bcd", removed)
	assert.Equal(t, "aef", b.Line(0))
}

func TestBuffer_DeleteEverythingLeavesOneLine(t *testing.T) {
	b := NewBuffer("a\nb\nc")

	_, err := b.Delete(Range{End: b.End()})
	require.NoError(t, err)

	assert.Equal(t, 1, b.LineCount())
	assert.True(t, b.IsEmpty())
}

func TestBuffer_DeleteOutOfRange(t *testing.T) {
	b := NewBuffer("abc")
	_, err := b.Delete(Range{End: Position{Row: 3}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestBuffer_SliceDoesNotMutate(t *testing.T) {
	b := NewBuffer("one\ntwo")

	got, err := b.Slice(Range{Start: Position{Col: 1}, End: Position{Row: 1, Col: 1}})
	require.NoError(t, err)

	assert.Equal(t, "ne\nt", got)
	assert.Equal(t, "one\ntwo", b.Text())
	assert.False(t, b.Dirty())
}

func TestBuffer_MarkClean(t *testing.T) {
	b := NewBuffer("x")
	_, _ = b.Insert(Position{}, "y")
	require.True(t, b.Dirty())

	b.MarkClean()
	assert.False(t, b.Dirty())
}

func TestBuffer_Clamp(t *testing.T) {
	b := NewBuffer("ab\nabcd")

	assert.Equal(t, Position{Row: 1, Col: 4}, b.Clamp(Position{Row: 9, Col: 9}))
	assert.Equal(t, Position{Row: 0, Col: 2}, b.Clamp(Position{Row: 0, Col: 7}))
	assert.Equal(t, Position{}, b.Clamp(Position{Row: -3, Col: -1}))
}

// TestBuffer_LineCountInvariant_Property checks that no mix of inserts and
// deletes can leave the buffer without a line or with an embedded newline.
func TestBuffer_LineCountInvariant_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(rapid.StringMatching(`[a-c \n]{0,20}`).Draw(t, "initial"))

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			p := randomPosition(t, b, "p")
			if rapid.Bool().Draw(t, "insert") {
				_, err := b.Insert(p, rapid.StringMatching(`[a-c\n]{0,5}`).Draw(t, "text"))
				require.NoError(t, err)
			} else {
				q := randomPosition(t, b, "q")
				_, err := b.Delete(Range{Start: p, End: q})
				require.NoError(t, err)
			}

			require.GreaterOrEqual(t, b.LineCount(), 1)
			for _, line := range b.Lines() {
				require.NotContains(t, line, "\n")
			}
		}
	})
}

func randomPosition(t *rapid.T, b *Buffer, label string) Position {
	row := rapid.IntRange(0, b.LineCount()-1).Draw(t, label+"_row")
	col := rapid.IntRange(0, b.LineLen(row)).Draw(t, label+"_col")
	return Position{Row: row, Col: col}
}
