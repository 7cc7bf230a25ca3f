package editor

// ============================================================================
// Yank Commands
// ============================================================================

// yankBase is embedded by yank commands: they write the register but never
// the text.
type yankBase struct{}

func (yankBase) IsUndoable() bool     { return false }
func (yankBase) ChangesContent() bool { return false }
func (yankBase) IsModeChange() bool   { return true }

// YankLineCommand copies the cursor line (yy), or count lines from it, into
// the register as line-wise text.
type YankLineCommand struct {
	yankBase
}

// Execute yanks whole lines.
func (c *YankLineCommand) Execute(e *Engine) ExecuteResult {
	row := e.cursor.Position().Row
	last := min(row+e.count()-1, e.buf.LineCount()-1)
	text, err := e.buf.Slice(Range{
		Start: Position{Row: row},
		End:   Position{Row: last, Col: e.buf.LineLen(last)},
	})
	must(err)
	e.setRegister(text, Linewise)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *YankLineCommand) Keys() []string {
	return []string{"y"}
}

// Mode returns the mode this command operates in.
func (c *YankLineCommand) Mode() Mode {
	return ModeOperatorPending
}

// ID returns the hierarchical identifier for this command.
func (c *YankLineCommand) ID() string {
	return "yank.line"
}

// YankWordCommand copies the same span delete-word-forward would remove
// (yw) as char-wise text.
type YankWordCommand struct {
	yankBase
}

// Execute yanks the word under the cursor.
func (c *YankWordCommand) Execute(e *Engine) ExecuteResult {
	r, ok := wordDeleteForward(e.buf, e.cursor.Position())
	if !ok {
		return Skipped
	}
	text, err := e.buf.Slice(r)
	must(err)
	e.setRegister(text, Charwise)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *YankWordCommand) Keys() []string {
	return []string{"w"}
}

// Mode returns the mode this command operates in.
func (c *YankWordCommand) Mode() Mode {
	return ModeOperatorPending
}

// ID returns the hierarchical identifier for this command.
func (c *YankWordCommand) ID() string {
	return "yank.word"
}

// VisualYankCommand copies the selection into the register as char-wise
// text and returns to Normal with the cursor at the start of the selection.
type VisualYankCommand struct {
	yankBase
}

// Execute yanks the selection.
func (c *VisualYankCommand) Execute(e *Engine) ExecuteResult {
	r, ok := e.cursor.SelectionRange(e.buf)
	e.resetState()
	if !ok {
		return Skipped
	}
	text, err := e.buf.Slice(r)
	must(err)
	e.setRegister(text, Charwise)
	e.cursor.SetPosition(e.buf, r.Start)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *VisualYankCommand) Keys() []string {
	return []string{"y"}
}

// Mode returns the mode this command operates in.
func (c *VisualYankCommand) Mode() Mode {
	return ModeVisual
}

// ID returns the hierarchical identifier for this command.
func (c *VisualYankCommand) ID() string {
	return "visual.yank"
}
