package editor

// Dispatch processes one key to completion. A key that cancels an operator
// or a pending delete is handed back once as fresh Normal-mode input; that
// second pass can never cancel anything again, so dispatch ends there.
func (e *Engine) Dispatch(k Key) Outcome {
	out, next, again := e.step(k)
	if again {
		second, _, _ := e.step(next)
		out = out.merge(second)
	}
	e.cursor.Clamp(e.buf)
	return out
}

// step runs a single state transition. It returns the key to re-dispatch,
// if any.
func (e *Engine) step(k Key) (Outcome, Key, bool) {
	switch e.state.Mode {
	case ModeOperatorPending:
		return e.stepOperator(k)

	case ModeDeleteConfirm:
		cmd, ok := e.commands.Get(ModeDeleteConfirm, k.Name)
		if !ok || k.Name != string(e.state.Confirm.Operator) && k.Name != keyEsc {
			e.resetState()
			return Outcome{Result: Executed, ModeChanged: true}, k, true
		}
		return e.executeCommand(cmd), Key{}, false

	case ModeNormal:
		if d, ok := countDigit(k, e.state.Count); ok {
			e.state.Count = e.state.Count*10 + d
			return Outcome{Result: Executed}, Key{}, false
		}
	}

	cmd, ok := e.commands.Get(e.state.Mode, k.Name)
	if !ok && e.state.Mode == ModeInsert && k.Text != "" {
		cmd, ok = &InsertTextCommand{text: k.Text}, true
	}
	if !ok {
		e.state.Count = 0
		return Outcome{Result: Skipped}, Key{}, false
	}

	out := e.executeCommand(cmd)
	if _, starts := cmd.(*StartPendingCommand); !starts {
		e.state.Count = 0
	}
	return out, Key{}, false
}

// stepOperator resolves the target of a pending operator. <esc> cancels
// quietly; any other unknown key cancels and is re-dispatched.
func (e *Engine) stepOperator(k Key) (Outcome, Key, bool) {
	op := e.state.Operator
	count := e.state.Count
	e.resetState()

	if k.Name == keyEsc {
		return Outcome{Result: Executed, ModeChanged: true}, Key{}, false
	}
	cmd, ok := e.pending.Get(op, k.Name)
	if !ok {
		return Outcome{Result: Executed, ModeChanged: true}, k, true
	}

	e.state.Count = count
	out := e.executeCommand(cmd)
	e.state.Count = 0
	out.ModeChanged = true
	return out, Key{}, false
}

// Executor runs one resolved command against the engine.
type Executor func(cmd Command) Outcome

// Middleware wraps command execution. It sees every command the dispatcher
// resolves, after key lookup and before the outcome is returned.
type Middleware func(next Executor) Executor

// Use adds middleware around command execution. Within one call the first
// middleware is the outermost; a later call wraps everything added before.
func (e *Engine) Use(mw ...Middleware) {
	for i := len(mw) - 1; i >= 0; i-- {
		e.exec = mw[i](e.exec)
	}
}

func (e *Engine) executeCommand(cmd Command) Outcome {
	return e.exec(cmd)
}

// runCommand runs cmd and records a history entry for undoable commands
// that actually changed the document.
func (e *Engine) runCommand(cmd Command) Outcome {
	var before Checkpoint
	if cmd.IsUndoable() {
		before = e.checkpoint()
	}
	prevMode := e.state.Mode
	prevYank := e.yankSeq

	result := cmd.Execute(e)
	e.cursor.Clamp(e.buf)

	out := Outcome{Result: result, ModeChanged: e.state.Mode != prevMode}
	if result != Executed {
		return out
	}

	if cmd.IsUndoable() && !before.equalLines(e.buf.lines) {
		e.history.Push(Entry{ID: cmd.ID(), Before: before, After: e.checkpoint()})
	}
	out.ContentChanged = cmd.ChangesContent()
	out.RegisterChanged = e.yankSeq != prevYank
	return out
}

// countDigit reports whether k extends a count prefix. A leading 0 is the
// line-start motion, not a count.
func countDigit(k Key, current int) (int, bool) {
	if len(k.Name) != 1 {
		return 0, false
	}
	c := k.Name[0]
	if c < '0' || c > '9' || (c == '0' && current == 0) {
		return 0, false
	}
	return int(c - '0'), true
}
