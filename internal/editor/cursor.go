package editor

import "math"

// Motion identifies a cursor movement.
type Motion int

const (
	MotionCharLeft Motion = iota
	MotionCharRight
	MotionLineUp
	MotionLineDown
	MotionLineStart
	MotionLineEnd
	MotionFirstNonBlank
	MotionWordForward
	MotionWordBackward
	MotionDocumentStart
	MotionDocumentEnd
)

// String returns a short name for the motion, used in command IDs.
func (m Motion) String() string {
	switch m {
	case MotionCharLeft:
		return "left"
	case MotionCharRight:
		return "right"
	case MotionLineUp:
		return "up"
	case MotionLineDown:
		return "down"
	case MotionLineStart:
		return "line_start"
	case MotionLineEnd:
		return "line_end"
	case MotionFirstNonBlank:
		return "first_non_blank"
	case MotionWordForward:
		return "word_forward"
	case MotionWordBackward:
		return "word_backward"
	case MotionDocumentStart:
		return "document_start"
	case MotionDocumentEnd:
		return "document_end"
	default:
		return "unknown"
	}
}

func (m Motion) vertical() bool {
	return m == MotionLineUp || m == MotionLineDown
}

// stickyEnd is the desired column after "$": every vertical move lands on
// the end of the target line.
const stickyEnd = math.MaxInt

// Selection is the Visual-mode anchor. The other end is always the cursor.
type Selection struct {
	Anchor Position
	Active bool
}

// Cursor tracks the cursor position, the column vertical motions try to
// return to, and the selection anchor.
type Cursor struct {
	pos        Position
	desiredCol int
	sel        Selection
}

// Position returns the cursor position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Selection returns the selection state.
func (c *Cursor) Selection() Selection {
	return c.sel
}

// SetPosition moves the cursor to p, clamped to b, and resets the desired
// column.
func (c *Cursor) SetPosition(b *Buffer, p Position) {
	c.pos = b.Clamp(p)
	c.desiredCol = c.pos.Col
}

// Clamp pulls the cursor and anchor back inside b after a mutation.
func (c *Cursor) Clamp(b *Buffer) {
	c.pos = b.Clamp(c.pos)
	if c.sel.Active {
		c.sel.Anchor = b.Clamp(c.sel.Anchor)
	}
}

// MoveBy applies motion count times. Motions clamp at document and line
// bounds; horizontal motions never wrap to a neighbouring line.
func (c *Cursor) MoveBy(b *Buffer, m Motion, count int) {
	count = max(count, 1)
	p := b.Clamp(c.pos)

	switch m {
	case MotionCharLeft:
		p.Col = max(p.Col-count, 0)
	case MotionCharRight:
		p.Col = min(p.Col+count, b.LineLen(p.Row))
	case MotionLineUp:
		p.Row = max(p.Row-count, 0)
	case MotionLineDown:
		p.Row = min(p.Row+count, b.LineCount()-1)
	case MotionLineStart:
		p.Col = 0
	case MotionLineEnd:
		p.Col = b.LineLen(p.Row)
	case MotionFirstNonBlank:
		p.Col = firstNonBlank(b.Line(p.Row))
	case MotionWordForward:
		for range count {
			p = ForwardWordBoundary(b, p)
		}
	case MotionWordBackward:
		for range count {
			p = BackwardWordBoundary(b, p)
		}
	case MotionDocumentStart:
		p = Position{}
	case MotionDocumentEnd:
		p = b.End()
	}

	if m.vertical() {
		p.Col = min(c.desiredCol, b.LineLen(p.Row))
		c.pos = p
		return
	}
	c.pos = p
	c.desiredCol = p.Col
	if m == MotionLineEnd {
		c.desiredCol = stickyEnd
	}
}

// ExtendSelection moves like MoveBy while keeping a selection anchored. With
// no active selection it first anchors one at the current position.
func (c *Cursor) ExtendSelection(b *Buffer, m Motion, count int) {
	if !c.sel.Active {
		c.StartSelection()
	}
	c.MoveBy(b, m, count)
}

// StartSelection anchors a selection at the cursor.
func (c *Cursor) StartSelection() {
	c.sel = Selection{Anchor: c.pos, Active: true}
}

// ClearSelection drops the selection.
func (c *Cursor) ClearSelection() {
	c.sel = Selection{}
}

// NormalizedRange returns the selection bounds in document order. Both ends
// are inclusive: the character under end is part of the selection.
func (c *Cursor) NormalizedRange() (start, end Position, ok bool) {
	if !c.sel.Active {
		return Position{}, Position{}, false
	}
	start, end = c.sel.Anchor, c.pos
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, true
}

// SelectionRange converts the inclusive selection into a Buffer range. An end
// that sits past the last character of a line takes in the line break.
func (c *Cursor) SelectionRange(b *Buffer) (Range, bool) {
	start, end, ok := c.NormalizedRange()
	if !ok {
		return Range{}, false
	}
	start, end = b.Clamp(start), b.Clamp(end)
	switch {
	case end.Col < b.LineLen(end.Row):
		end.Col++
	case end.Row+1 < b.LineCount():
		end = Position{Row: end.Row + 1}
	}
	return Range{Start: start, End: end}, true
}
