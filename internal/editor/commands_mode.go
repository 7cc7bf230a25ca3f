package editor

// ============================================================================
// Insert mode entry
// ============================================================================

type insertAnchor int

const (
	insertBeforeCursor insertAnchor = iota // i
	insertAfterCursor                      // a
	insertLineStart                        // I
	insertLineEnd                          // A
)

// EnterInsertCommand switches to Insert mode with the cursor placed per the
// trigger key.
type EnterInsertCommand struct {
	ModeEntryBase
	at insertAnchor
}

// Execute positions the cursor and opens an Insert session.
func (c *EnterInsertCommand) Execute(e *Engine) ExecuteResult {
	p := e.cursor.Position()
	line := e.buf.Line(p.Row)
	switch c.at {
	case insertAfterCursor:
		p.Col = min(p.Col+1, GraphemeCount(line))
	case insertLineStart:
		p.Col = firstNonBlank(line)
	case insertLineEnd:
		p.Col = GraphemeCount(line)
	}
	e.cursor.SetPosition(e.buf, p)
	e.beginInsert()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertCommand) Keys() []string {
	switch c.at {
	case insertAfterCursor:
		return []string{"a"}
	case insertLineStart:
		return []string{"I"}
	case insertLineEnd:
		return []string{"A"}
	default:
		return []string{"i"}
	}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertCommand) ID() string {
	switch c.at {
	case insertAfterCursor:
		return "mode.insert_after"
	case insertLineStart:
		return "mode.insert_line_start"
	case insertLineEnd:
		return "mode.insert_line_end"
	default:
		return "mode.insert"
	}
}

// OpenLineCommand opens a new line below (o) or above (O) the cursor and
// enters Insert mode on it. The new line is part of the Insert session, so
// cancelling or undoing the session removes it again.
type OpenLineCommand struct {
	above bool
}

// Execute opens the line, keeping the current line's indentation.
func (c *OpenLineCommand) Execute(e *Engine) ExecuteResult {
	e.beginInsert()

	row := e.cursor.Position().Row
	line := e.buf.Line(row)
	indent := leadingWhitespace(line)

	if c.above {
		e.cursor.SetPosition(e.buf, Position{Row: row})
		e.insert(indent + "\n")
		e.cursor.SetPosition(e.buf, Position{Row: row, Col: GraphemeCount(indent)})
		return Executed
	}
	e.cursor.SetPosition(e.buf, Position{Row: row, Col: GraphemeCount(line)})
	e.insert("\n" + indent)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *OpenLineCommand) Keys() []string {
	if c.above {
		return []string{"O"}
	}
	return []string{"o"}
}

// Mode returns the mode this command operates in.
func (c *OpenLineCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *OpenLineCommand) ID() string {
	if c.above {
		return "mode.open_above"
	}
	return "mode.open_below"
}

func (c *OpenLineCommand) IsUndoable() bool     { return false }
func (c *OpenLineCommand) ChangesContent() bool { return true }
func (c *OpenLineCommand) IsModeChange() bool   { return true }

// ============================================================================
// Insert mode exit
// ============================================================================

// CommitInsertCommand leaves Insert mode and records the whole session as a
// single history entry. The entry restores the cursor from before the
// session, so undo lands just before the inserted text.
type CommitInsertCommand struct {
	ModeEntryBase
}

// Execute closes the Insert session.
func (c *CommitInsertCommand) Execute(e *Engine) ExecuteResult {
	if start := e.insertStart; start != nil && !start.equalLines(e.buf.lines) {
		e.history.Push(Entry{ID: "insert.session", Before: *start, After: e.checkpoint()})
	}
	e.insertStart = nil
	e.resetState()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *CommitInsertCommand) Keys() []string {
	return []string{keyEsc}
}

// Mode returns the mode this command operates in.
func (c *CommitInsertCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *CommitInsertCommand) ID() string {
	return "insert.commit"
}

// CancelInsertCommand leaves Insert mode and throws the session away,
// restoring the document and cursor from before it began.
type CancelInsertCommand struct{}

// Execute rolls the session back.
func (c *CancelInsertCommand) Execute(e *Engine) ExecuteResult {
	if start := e.insertStart; start != nil {
		if start.equalLines(e.buf.lines) {
			e.cursor.SetPosition(e.buf, start.Cursor)
		} else {
			e.restore(*start)
		}
	}
	e.insertStart = nil
	e.resetState()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *CancelInsertCommand) Keys() []string {
	return []string{keyCtrlC}
}

// Mode returns the mode this command operates in.
func (c *CancelInsertCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *CancelInsertCommand) ID() string {
	return "insert.cancel"
}

func (c *CancelInsertCommand) IsUndoable() bool     { return false }
func (c *CancelInsertCommand) ChangesContent() bool { return true }
func (c *CancelInsertCommand) IsModeChange() bool   { return true }

// ============================================================================
// Visual mode
// ============================================================================

// EnterVisualCommand starts a selection anchored at the cursor.
type EnterVisualCommand struct {
	ModeEntryBase
}

// Execute enters Visual mode.
func (c *EnterVisualCommand) Execute(e *Engine) ExecuteResult {
	e.cursor.StartSelection()
	e.state = State{Mode: ModeVisual}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterVisualCommand) Keys() []string {
	return []string{"v"}
}

// Mode returns the mode this command operates in.
func (c *EnterVisualCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterVisualCommand) ID() string {
	return "mode.visual"
}

// VisualEscapeCommand drops the selection without touching the text.
type VisualEscapeCommand struct {
	ModeEntryBase
}

// Execute leaves Visual mode.
func (c *VisualEscapeCommand) Execute(e *Engine) ExecuteResult {
	e.resetState()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *VisualEscapeCommand) Keys() []string {
	return []string{keyEsc, "v"}
}

// Mode returns the mode this command operates in.
func (c *VisualEscapeCommand) Mode() Mode {
	return ModeVisual
}

// ID returns the hierarchical identifier for this command.
func (c *VisualEscapeCommand) ID() string {
	return "visual.cancel"
}

// ============================================================================
// Normal mode
// ============================================================================

// StartPendingCommand begins an operator (d, y, g) and waits for its target.
type StartPendingCommand struct {
	ModeEntryBase
	operator rune
}

// Execute enters OperatorPending. A count typed before the operator is kept
// for the target.
func (c *StartPendingCommand) Execute(e *Engine) ExecuteResult {
	e.state = State{Mode: ModeOperatorPending, Operator: c.operator, Count: e.state.Count}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *StartPendingCommand) Keys() []string {
	return []string{string(c.operator)}
}

// Mode returns the mode this command operates in.
func (c *StartPendingCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *StartPendingCommand) ID() string {
	return "pending." + string(c.operator)
}

// NormalEscapeCommand clears a half-typed count. With nothing to clear it
// passes <esc> through so the application can leave the editor.
type NormalEscapeCommand struct {
	MotionBase
}

// Execute clears the count or passes through.
func (c *NormalEscapeCommand) Execute(e *Engine) ExecuteResult {
	if e.state.Count > 0 {
		e.state.Count = 0
		return Executed
	}
	return PassThrough
}

// Keys returns the trigger keys for this command.
func (c *NormalEscapeCommand) Keys() []string {
	return []string{keyEsc}
}

// Mode returns the mode this command operates in.
func (c *NormalEscapeCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *NormalEscapeCommand) ID() string {
	return "normal.escape"
}
