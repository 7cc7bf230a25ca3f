package editor

// ============================================================================
// Delete Commands
// ============================================================================

// DeleteCharCommand deletes the grapheme under the cursor (x). With a count
// it deletes that many, stopping at the end of the line.
type DeleteCharCommand struct {
	EditBase
}

// Execute deletes characters into the register.
func (c *DeleteCharCommand) Execute(e *Engine) ExecuteResult {
	p := e.cursor.Position()
	n := e.buf.LineLen(p.Row)
	if p.Col >= n {
		return Skipped
	}
	end := Position{Row: p.Row, Col: min(p.Col+e.count(), n)}
	removed := e.remove(Range{Start: p, End: end})
	e.setRegister(removed, Charwise)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteCharCommand) Keys() []string {
	return []string{"x"}
}

// Mode returns the mode this command operates in.
func (c *DeleteCharCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteCharCommand) ID() string {
	return "delete.char"
}

// DeleteTargetCommand resolves the target of the d operator. It does not
// delete anything: it computes the range, marks it, and moves to
// DeleteConfirm. A count typed before d covers that many lines or word
// runs. A target that covers no text cancels back to Normal.
type DeleteTargetCommand struct {
	ModeEntryBase
	target DeleteTarget
}

// Execute computes the pending range.
func (c *DeleteTargetCommand) Execute(e *Engine) ExecuteResult {
	p := e.cursor.Position()
	pd := PendingDelete{Operator: 'd', Target: c.target, Kind: Charwise}

	var ok bool
	switch c.target {
	case TargetLine:
		pd.Range, pd.Kind, ok = lineRange(e.buf, p.Row, p.Row+e.count()-1), Linewise, true
	case TargetWordForward:
		pd.Range, ok = wordsForward(e.buf, p, e.count())
	case TargetWordBackward:
		pd.Range, ok = wordsBackward(e.buf, p, e.count())
	}
	if !ok {
		e.resetState()
		return Skipped
	}

	e.state = State{Mode: ModeDeleteConfirm, Confirm: &pd}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteTargetCommand) Keys() []string {
	switch c.target {
	case TargetWordForward:
		return []string{"w"}
	case TargetWordBackward:
		return []string{"b"}
	default:
		return []string{"d"}
	}
}

// Mode returns the mode this command operates in.
func (c *DeleteTargetCommand) Mode() Mode {
	return ModeOperatorPending
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteTargetCommand) ID() string {
	return "delete.target." + c.target.String()
}

// wordsForward extends the delete-word-forward target over n runs. It
// stops early at the end of the document.
func wordsForward(b *Buffer, p Position, n int) (Range, bool) {
	r, ok := wordDeleteForward(b, p)
	if !ok {
		return Range{}, false
	}
	for range n - 1 {
		next, more := wordDeleteForward(b, r.End)
		if !more {
			break
		}
		r.End = next.End
	}
	return r, true
}

// wordsBackward extends the delete-word-backward target over n words. It
// stops early at the start of the document.
func wordsBackward(b *Buffer, p Position, n int) (Range, bool) {
	r, ok := wordDeleteBackward(b, p)
	if !ok {
		return Range{}, false
	}
	for range n - 1 {
		prev, more := wordDeleteBackward(b, r.Start)
		if !more {
			break
		}
		r.Start = prev.Start
	}
	return r, true
}

// ConfirmDeleteCommand performs the pending delete: the text goes to the
// register and the change becomes one history entry.
type ConfirmDeleteCommand struct {
	EditBase
}

// Execute commits the pending delete.
func (c *ConfirmDeleteCommand) Execute(e *Engine) ExecuteResult {
	pd := e.state.Confirm
	e.resetState()
	if pd == nil {
		return Skipped
	}

	removed := e.remove(pd.Range)
	if pd.Kind == Linewise {
		e.setRegister(trimLineBreak(removed), Linewise)
		row := min(pd.Range.Start.Row, e.buf.LineCount()-1)
		e.cursor.SetPosition(e.buf, Position{Row: row, Col: firstNonBlank(e.buf.Line(row))})
		return Executed
	}
	e.setRegister(removed, Charwise)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *ConfirmDeleteCommand) Keys() []string {
	return []string{"d"}
}

// Mode returns the mode this command operates in.
func (c *ConfirmDeleteCommand) Mode() Mode {
	return ModeDeleteConfirm
}

// ID returns the hierarchical identifier for this command.
func (c *ConfirmDeleteCommand) ID() string {
	return "delete.confirm"
}

func (c *ConfirmDeleteCommand) IsModeChange() bool { return true }

// CancelDeleteCommand discards the pending delete.
type CancelDeleteCommand struct {
	ModeEntryBase
}

// Execute returns to Normal mode.
func (c *CancelDeleteCommand) Execute(e *Engine) ExecuteResult {
	e.resetState()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *CancelDeleteCommand) Keys() []string {
	return []string{keyEsc}
}

// Mode returns the mode this command operates in.
func (c *CancelDeleteCommand) Mode() Mode {
	return ModeDeleteConfirm
}

// ID returns the hierarchical identifier for this command.
func (c *CancelDeleteCommand) ID() string {
	return "delete.cancel"
}

// VisualDeleteCommand removes the selection into the register.
type VisualDeleteCommand struct {
	EditBase
}

// Execute deletes the selected text.
func (c *VisualDeleteCommand) Execute(e *Engine) ExecuteResult {
	r, ok := e.cursor.SelectionRange(e.buf)
	e.resetState()
	if !ok {
		return Skipped
	}
	e.setRegister(e.remove(r), Charwise)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *VisualDeleteCommand) Keys() []string {
	return []string{"d", "x"}
}

// Mode returns the mode this command operates in.
func (c *VisualDeleteCommand) Mode() Mode {
	return ModeVisual
}

// ID returns the hierarchical identifier for this command.
func (c *VisualDeleteCommand) ID() string {
	return "visual.delete"
}

func (c *VisualDeleteCommand) IsModeChange() bool { return true }
