package editor

import (
	"fmt"
	"strings"
)

// Config tunes engine behaviour.
type Config struct {
	// TabWidth is the number of spaces <tab> inserts when ExpandTabs is set.
	TabWidth int
	// ExpandTabs inserts spaces instead of a tab character.
	ExpandTabs bool
	// HistoryLimit caps the undo stack. Zero keeps everything.
	HistoryLimit int
	// ListContinuation repeats markdown list markers on <enter>.
	ListContinuation bool
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		TabWidth:         4,
		ExpandTabs:       true,
		HistoryLimit:     500,
		ListContinuation: true,
	}
}

// Outcome reports what a dispatched key did.
type Outcome struct {
	Result          ExecuteResult
	ContentChanged  bool
	ModeChanged     bool
	RegisterChanged bool
}

func (o Outcome) merge(next Outcome) Outcome {
	return Outcome{
		Result:          next.Result,
		ContentChanged:  o.ContentChanged || next.ContentChanged,
		ModeChanged:     o.ModeChanged || next.ModeChanged,
		RegisterChanged: o.RegisterChanged || next.RegisterChanged,
	}
}

// Snapshot is the read-only view of the engine handed to renderers after
// every event. Lines is a copy; mutating it has no effect on the engine.
type Snapshot struct {
	Lines  []string
	Cursor Position
	Mode   Mode
	// Selection is the Visual selection as a Buffer range (exclusive end).
	Selection *Range
	// Pending is the range a DeleteConfirm would remove.
	Pending *Range
	// Operator is the operator awaiting a target in ModeOperatorPending.
	Operator rune
	Dirty    bool
}

// Engine owns one buffer and everything that edits it. It is not safe for
// concurrent use; callers drive it from a single goroutine.
type Engine struct {
	cfg Config

	buf      *Buffer
	cursor   Cursor
	history  *History
	register Register
	yankSeq  int
	state    State

	// insertStart is the document as it was when the current Insert session
	// began. nil outside Insert mode.
	insertStart *Checkpoint

	commands *CommandRegistry
	pending  *PendingCommandRegistry

	// exec is runCommand wrapped in every middleware added with Use.
	exec Executor
}

// New creates an engine holding an empty document.
func New(cfg Config) *Engine {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultConfig().TabWidth
	}
	e := &Engine{
		cfg:      cfg,
		buf:      NewBuffer(""),
		history:  NewHistory(cfg.HistoryLimit),
		state:    normalState(),
		commands: DefaultRegistry,
		pending:  DefaultPendingRegistry,
	}
	e.exec = e.runCommand
	return e
}

// Load replaces the document with text and resets cursor, mode and history.
// The register survives so text can be carried between notes.
func (e *Engine) Load(text string) {
	e.buf = NewBuffer(text)
	e.cursor = Cursor{}
	e.history.Clear()
	e.state = normalState()
	e.insertStart = nil
}

// Value returns the document as one '\n'-joined blob.
func (e *Engine) Value() string {
	return e.buf.Text()
}

// Lines returns a copy of the document lines.
func (e *Engine) Lines() []string {
	return e.buf.Lines()
}

// Cursor returns the cursor position.
func (e *Engine) Cursor() Position {
	return e.cursor.Position()
}

// SetCursor moves the cursor, clamping to the document. Used to restore a
// remembered position when a note is reopened.
func (e *Engine) SetCursor(p Position) {
	e.cursor.SetPosition(e.buf, p)
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	return e.state.Mode
}

// State returns a copy of the state machine's state.
func (e *Engine) State() State {
	s := e.state
	if s.Confirm != nil {
		pd := *s.Confirm
		s.Confirm = &pd
	}
	return s
}

// Dirty reports whether the document changed since load or the last
// MarkSaved.
func (e *Engine) Dirty() bool {
	return e.buf.Dirty()
}

// MarkSaved clears the dirty flag.
func (e *Engine) MarkSaved() {
	e.buf.MarkClean()
}

// Register returns the current register content.
func (e *Engine) Register() (text string, kind RegisterKind, ok bool) {
	return e.register.Get()
}

// CanUndo reports whether there is history to undo.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether there is undone history to redo.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// Snapshot returns the state renderers need.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Lines:  e.buf.Lines(),
		Cursor: e.cursor.Position(),
		Mode:   e.state.Mode,
		Dirty:  e.buf.Dirty(),
	}
	if e.state.Mode == ModeVisual {
		if r, ok := e.cursor.SelectionRange(e.buf); ok {
			s.Selection = &r
		}
	}
	if e.state.Mode == ModeOperatorPending {
		s.Operator = e.state.Operator
	}
	if e.state.Mode == ModeDeleteConfirm && e.state.Confirm != nil {
		r := e.state.Confirm.Range
		s.Pending = &r
	}
	return s
}

// Settle brings the engine back to Normal mode without losing work: an open
// Insert session is committed, a selection or pending operator is dropped.
// The application calls it before saving.
func (e *Engine) Settle() Outcome {
	switch e.state.Mode {
	case ModeInsert:
		return e.executeCommand(&CommitInsertCommand{})
	case ModeVisual:
		return e.executeCommand(&VisualEscapeCommand{})
	case ModeOperatorPending, ModeDeleteConfirm:
		e.resetState()
		return Outcome{Result: Executed, ModeChanged: true}
	}
	return Outcome{Result: Skipped}
}

// ============================================================================
// Helpers shared by commands
// ============================================================================

func (e *Engine) checkpoint() Checkpoint {
	return Checkpoint{Lines: e.buf.Lines(), Cursor: e.cursor.Position()}
}

// restore replaces the document and cursor with cp and leaves Normal mode
// state behind.
func (e *Engine) restore(cp Checkpoint) {
	e.buf.replace(cp.Lines)
	e.cursor.ClearSelection()
	e.cursor.SetPosition(e.buf, cp.Cursor)
}

func (e *Engine) resetState() {
	e.state = normalState()
	e.cursor.ClearSelection()
}

// count returns the numeric prefix, defaulting to 1.
func (e *Engine) count() int {
	return max(e.state.Count, 1)
}

// move applies a motion, extending the selection in Visual mode.
func (e *Engine) move(m Motion, count int) {
	if e.state.Mode == ModeVisual {
		e.cursor.ExtendSelection(e.buf, m, count)
		return
	}
	e.cursor.MoveBy(e.buf, m, count)
}

func (e *Engine) beginInsert() {
	cp := e.checkpoint()
	e.insertStart = &cp
	e.state = State{Mode: ModeInsert}
}

func (e *Engine) setRegister(text string, kind RegisterKind) {
	e.register.Set(text, kind)
	e.yankSeq++
}

// insert inserts text at the cursor and moves the cursor past it.
func (e *Engine) insert(text string) {
	end, err := e.buf.Insert(e.cursor.Position(), text)
	must(err)
	e.cursor.SetPosition(e.buf, end)
}

// remove deletes r, leaves the cursor at its start and returns the text.
func (e *Engine) remove(r Range) string {
	removed, err := e.buf.Delete(r)
	must(err)
	e.cursor.SetPosition(e.buf, r.Normalized().Start)
	return removed
}

// must panics on errors that can only come from a broken invariant: every
// position handed to the buffer here was clamped or computed from it.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("editor: invariant violated: %v", err))
	}
}

// lineRange returns the range that removes rows first..last as whole
// lines, including one adjacent line break when there is one. last is
// clamped to the document.
func lineRange(b *Buffer, first, last int) Range {
	last = min(last, b.LineCount()-1)
	switch {
	case first == 0 && last == b.LineCount()-1:
		return Range{End: Position{Row: last, Col: b.LineLen(last)}}
	case last+1 < b.LineCount():
		return Range{Start: Position{Row: first}, End: Position{Row: last + 1}}
	default:
		return Range{
			Start: Position{Row: first - 1, Col: b.LineLen(first - 1)},
			End:   Position{Row: last, Col: b.LineLen(last)},
		}
	}
}

// trimLineBreak strips the single line break a whole-line range carries.
func trimLineBreak(s string) string {
	if strings.HasSuffix(s, "\n") {
		return strings.TrimSuffix(s, "\n")
	}
	return strings.TrimPrefix(s, "\n")
}
