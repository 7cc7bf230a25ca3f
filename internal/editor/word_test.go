package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		cluster string
		want    CharClass
	}{
		{"a", ClassWord},
		{"Z", ClassWord},
		{"_", ClassWord},
		{"9", ClassWord},
		{"é", ClassWord},
		{" ", ClassSpace},
		{"\t", ClassSpace},
		{"", ClassSpace},
		{".", ClassPunct},
		{"#", ClassPunct},
		{"😀", ClassPunct},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.cluster), "cluster %q", tt.cluster)
	}
}

func TestForwardWordBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		from Position
		want Position
	}{
		{"word to next word", "hello world foo", Position{Col: 0}, Position{Col: 6}},
		{"middle of word", "hello world foo", Position{Col: 2}, Position{Col: 6}},
		{"from whitespace", "hello world foo", Position{Col: 5}, Position{Col: 6}},
		{"last word hits end", "hello world foo", Position{Col: 12}, Position{Col: 15}},
		{"word stops at punctuation", "foo.bar", Position{Col: 0}, Position{Col: 3}},
		{"punctuation stops at word", "foo.bar", Position{Col: 3}, Position{Col: 4}},
		{"crosses line break and indent", "abc\n  def", Position{Col: 0}, Position{Row: 1, Col: 2}},
		{"at document end", "abc", Position{Col: 3}, Position{Col: 3}},
		{"empty document", "", Position{}, Position{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.text)
			assert.Equal(t, tt.want, ForwardWordBoundary(b, tt.from))
		})
	}
}

func TestBackwardWordBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		from Position
		want Position
	}{
		{"inside word", "hello world", Position{Col: 8}, Position{Col: 6}},
		{"at word start", "hello world", Position{Col: 6}, Position{Col: 0}},
		{"at line end", "hello world", Position{Col: 11}, Position{Col: 6}},
		{"crosses line break", "abc\n  def", Position{Row: 1, Col: 2}, Position{Col: 0}},
		{"punctuation run", "a.b", Position{Col: 2}, Position{Col: 1}},
		{"document start", "abc", Position{}, Position{}},
		{"only whitespace before", "   abc", Position{Col: 3}, Position{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.text)
			assert.Equal(t, tt.want, BackwardWordBoundary(b, tt.from))
		})
	}
}

func TestWordDeleteForward(t *testing.T) {
	b := NewBuffer("hello world\nnext")

	r, ok := wordDeleteForward(b, Position{Col: 0})
	require.True(t, ok)
	assert.Equal(t, Range{Start: Position{Col: 0}, End: Position{Col: 5}}, r)

	r, ok = wordDeleteForward(b, Position{Col: 5})
	require.True(t, ok)
	assert.Equal(t, Range{Start: Position{Col: 5}, End: Position{Col: 6}}, r, "whitespace run only")

	r, ok = wordDeleteForward(b, Position{Col: 11})
	require.True(t, ok)
	assert.Equal(t, Range{Start: Position{Col: 11}, End: Position{Row: 1}}, r, "line break")

	_, ok = wordDeleteForward(b, Position{Row: 1, Col: 4})
	assert.False(t, ok, "document end has nothing to delete")
}

func TestWordDeleteBackward(t *testing.T) {
	b := NewBuffer("hello world")

	r, ok := wordDeleteBackward(b, Position{Col: 8})
	require.True(t, ok)
	assert.Equal(t, Range{Start: Position{Col: 6}, End: Position{Col: 8}}, r)

	_, ok = wordDeleteBackward(b, Position{})
	assert.False(t, ok)
}

// TestWordBoundary_Ordering_Property checks that going forward then back never
// lands after where we started.
func TestWordBoundary_Ordering_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(rapid.StringMatching(`[ab.,_ \n]{0,30}`).Draw(t, "text"))
		p := randomPosition(t, b, "p")

		forward := ForwardWordBoundary(b, p)
		require.False(t, forward.Before(p), "forward %+v before %+v", forward, p)

		back := BackwardWordBoundary(b, forward)
		require.False(t, p.Before(back), "backward(forward(%+v)) = %+v", p, back)
	})
}

// TestWordBoundary_Movement_Property checks that both boundaries always make
// progress unless already at the document edge.
func TestWordBoundary_Movement_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(rapid.StringMatching(`[ab.\n ]{0,30}`).Draw(t, "text"))
		p := randomPosition(t, b, "p")

		if p.Before(b.End()) {
			require.True(t, p.Before(ForwardWordBoundary(b, p)))
		}
		if (Position{}).Before(p) {
			require.True(t, BackwardWordBoundary(b, p).Before(p))
		}
	})
}
