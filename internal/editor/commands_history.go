package editor

// historyBase is embedded by undo and redo: they change the text but are
// not themselves recorded.
type historyBase struct{}

func (historyBase) IsUndoable() bool     { return false }
func (historyBase) ChangesContent() bool { return true }
func (historyBase) IsModeChange() bool   { return false }

// UndoCommand reverts the most recent history entry (u), count times.
type UndoCommand struct {
	historyBase
}

// Execute restores the state before the last change.
func (c *UndoCommand) Execute(e *Engine) ExecuteResult {
	result := Skipped
	for range e.count() {
		cp, ok := e.history.Undo()
		if !ok {
			break
		}
		e.restore(cp)
		result = Executed
	}
	return result
}

// Keys returns the trigger keys for this command.
func (c *UndoCommand) Keys() []string {
	return []string{"u"}
}

// Mode returns the mode this command operates in.
func (c *UndoCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *UndoCommand) ID() string {
	return "history.undo"
}

// RedoCommand re-applies the most recently undone entry (ctrl+r).
type RedoCommand struct {
	historyBase
}

// Execute restores the state after the next undone change.
func (c *RedoCommand) Execute(e *Engine) ExecuteResult {
	result := Skipped
	for range e.count() {
		cp, ok := e.history.Redo()
		if !ok {
			break
		}
		e.restore(cp)
		result = Executed
	}
	return result
}

// Keys returns the trigger keys for this command.
func (c *RedoCommand) Keys() []string {
	return []string{keyCtrlR}
}

// Mode returns the mode this command operates in.
func (c *RedoCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *RedoCommand) ID() string {
	return "history.redo"
}
