package editor

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrOutOfRange is returned by Buffer operations given a position outside
// the document. Engine entry points clamp before reaching the buffer, so
// seeing this error means a caller skipped clamping.
var ErrOutOfRange = errors.New("position out of range")

// Position is a location in the buffer.
// Col is a grapheme index and may equal the line length ("after the last
// character").
type Position struct {
	Row int
	Col int
}

// Before reports whether p comes strictly before q in document order.
func (p Position) Before(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Range is a span of the buffer. Start is inclusive, End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// Normalized returns r with Start <= End.
func (r Range) Normalized() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Empty reports whether the range covers no text.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Buffer holds document text as lines. It never contains zero lines and no
// line ever holds a '\n'.
type Buffer struct {
	lines []string
	// clean is the text as of creation or the last MarkClean.
	clean []string
	dirty bool
}

// NewBuffer creates a buffer from text. "\r\n" line endings are normalised.
func NewBuffer(text string) *Buffer {
	lines := splitLines(text)
	return &Buffer{lines: lines, clean: slices.Clone(lines)}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// Line returns the line at index i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of line i in grapheme clusters.
func (b *Buffer) LineLen(i int) int {
	return GraphemeCount(b.Line(i))
}

// IsEmpty reports whether the document is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the document as one blob joined by '\n'.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// End returns the position after the last character of the document.
func (b *Buffer) End() Position {
	last := len(b.lines) - 1
	return Position{Row: last, Col: b.LineLen(last)}
}

// Dirty reports whether the text differs from the last clean state. Edits
// that are later undone or cancelled leave the buffer clean again.
func (b *Buffer) Dirty() bool {
	return b.dirty && !slices.Equal(b.lines, b.clean)
}

// MarkClean records the current text as clean, typically after a save.
func (b *Buffer) MarkClean() {
	b.clean = slices.Clone(b.lines)
	b.dirty = false
}

// Valid reports whether p addresses a real location in the buffer.
func (b *Buffer) Valid(p Position) bool {
	if p.Row < 0 || p.Row >= len(b.lines) || p.Col < 0 {
		return false
	}
	return p.Col <= b.LineLen(p.Row)
}

// Clamp returns the nearest valid position to p.
func (b *Buffer) Clamp(p Position) Position {
	p.Row = max(0, min(p.Row, len(b.lines)-1))
	p.Col = max(0, min(p.Col, b.LineLen(p.Row)))
	return p
}

// Insert inserts text at p and returns the position just after it.
// Line breaks in text split the line.
func (b *Buffer) Insert(p Position, text string) (Position, error) {
	if !b.Valid(p) {
		return p, fmt.Errorf("%w: insert at %d:%d", ErrOutOfRange, p.Row, p.Col)
	}
	if text == "" {
		return p, nil
	}

	line := b.lines[p.Row]
	off := graphemeOffset(line, p.Col)
	head, tail := line[:off], line[off:]

	parts := splitLines(text)
	if len(parts) == 1 {
		b.lines[p.Row] = head + parts[0] + tail
		b.dirty = true
		return Position{Row: p.Row, Col: p.Col + GraphemeCount(parts[0])}, nil
	}

	last := parts[len(parts)-1]
	replacement := make([]string, 0, len(parts))
	replacement = append(replacement, head+parts[0])
	replacement = append(replacement, parts[1:len(parts)-1]...)
	replacement = append(replacement, last+tail)

	lines := make([]string, 0, len(b.lines)+len(parts)-1)
	lines = append(lines, b.lines[:p.Row]...)
	lines = append(lines, replacement...)
	lines = append(lines, b.lines[p.Row+1:]...)
	b.lines = lines
	b.dirty = true

	return Position{Row: p.Row + len(parts) - 1, Col: GraphemeCount(last)}, nil
}

// Slice returns the text covered by r without modifying the buffer.
func (b *Buffer) Slice(r Range) (string, error) {
	r = r.Normalized()
	if !b.Valid(r.Start) || !b.Valid(r.End) {
		return "", fmt.Errorf("%w: range %d:%d-%d:%d", ErrOutOfRange,
			r.Start.Row, r.Start.Col, r.End.Row, r.End.Col)
	}
	if r.Start.Row == r.End.Row {
		return SliceGraphemes(b.lines[r.Start.Row], r.Start.Col, r.End.Col), nil
	}

	var sb strings.Builder
	first := b.lines[r.Start.Row]
	sb.WriteString(SliceGraphemes(first, r.Start.Col, GraphemeCount(first)))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[row])
	}
	sb.WriteByte('\n')
	sb.WriteString(SliceGraphemes(b.lines[r.End.Row], 0, r.End.Col))
	return sb.String(), nil
}

// Delete removes the text covered by r, merging lines when r crosses a line
// boundary, and returns the removed text.
func (b *Buffer) Delete(r Range) (string, error) {
	removed, err := b.Slice(r)
	if err != nil {
		return "", err
	}
	r = r.Normalized()
	if r.Empty() {
		return "", nil
	}

	startLine := b.lines[r.Start.Row]
	endLine := b.lines[r.End.Row]
	merged := startLine[:graphemeOffset(startLine, r.Start.Col)] +
		endLine[graphemeOffset(endLine, r.End.Col):]

	lines := make([]string, 0, len(b.lines)-(r.End.Row-r.Start.Row))
	lines = append(lines, b.lines[:r.Start.Row]...)
	lines = append(lines, merged)
	lines = append(lines, b.lines[r.End.Row+1:]...)
	b.lines = lines
	b.dirty = true

	return removed, nil
}

// replace swaps in a full set of lines, used when restoring history.
func (b *Buffer) replace(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
	b.dirty = true
}

