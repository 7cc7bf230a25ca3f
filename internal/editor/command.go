package editor

// ExecuteResult indicates the outcome of command execution.
type ExecuteResult int

const (
	// Executed means the command ran and consumed the key.
	Executed ExecuteResult = iota
	// PassThrough means the command declined the key so the enclosing
	// application can handle it.
	PassThrough
	// Skipped means pre-conditions were not met (nothing to undo, empty
	// register, an operator target that covers no text). The key is consumed
	// and nothing changes.
	Skipped
)

func (r ExecuteResult) String() string {
	switch r {
	case Executed:
		return "executed"
	case PassThrough:
		return "pass_through"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Command is one engine operation bound to a key in a mode.
//
// Undo is not a per-command concern: the engine snapshots the document
// around every command that reports IsUndoable and restores the snapshot on
// undo. Insert-mode edits are not undoable one by one; the whole Insert
// session becomes a single entry when it is committed.
type Command interface {
	// Execute applies the command to the engine.
	Execute(e *Engine) ExecuteResult

	// Keys returns the key names that trigger the command. Aliases share a
	// command ("h" and "<left>").
	Keys() []string

	// Mode returns the mode the command is registered for.
	Mode() Mode

	// ID returns a hierarchical identifier such as "delete.line". History
	// entries and debug logs carry it.
	ID() string

	// IsUndoable reports whether a successful execution becomes a history
	// entry.
	IsUndoable() bool

	// ChangesContent reports whether the command may modify the text.
	ChangesContent() bool

	// IsModeChange reports whether the command may switch modes.
	IsModeChange() bool
}

// ============================================================================
// Base structs
// ============================================================================

// MotionBase is embedded by commands that only move the cursor.
type MotionBase struct{}

func (MotionBase) IsUndoable() bool     { return false }
func (MotionBase) ChangesContent() bool { return false }
func (MotionBase) IsModeChange() bool   { return false }

// EditBase is embedded by Normal and Visual mode commands that mutate text
// and get their own history entry.
type EditBase struct{}

func (EditBase) IsUndoable() bool     { return true }
func (EditBase) ChangesContent() bool { return true }
func (EditBase) IsModeChange() bool   { return false }

// ModeEntryBase is embedded by commands that switch modes without touching
// the text.
type ModeEntryBase struct{}

func (ModeEntryBase) IsUndoable() bool     { return false }
func (ModeEntryBase) ChangesContent() bool { return false }
func (ModeEntryBase) IsModeChange() bool   { return true }

// InsertBase is embedded by Insert-mode editing commands. They change text
// but are recorded as part of the Insert session, not individually.
type InsertBase struct{}

func (InsertBase) IsUndoable() bool     { return false }
func (InsertBase) ChangesContent() bool { return true }
func (InsertBase) IsModeChange() bool   { return false }

// ============================================================================
// CommandRegistry
// ============================================================================

// CommandRegistry maps a mode and key name to a command.
type CommandRegistry struct {
	commands map[Mode]map[string]Command
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[Mode]map[string]Command)}
}

// Register adds cmd under its own Mode for each of its Keys.
func (r *CommandRegistry) Register(cmd Command) {
	r.registerWithMode(cmd.Mode(), cmd)
}

// registerWithMode adds cmd under an explicit mode. Motions use this to be
// shared between Normal, Visual and Insert.
func (r *CommandRegistry) registerWithMode(mode Mode, cmd Command) {
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// Get retrieves the command for a mode and key.
func (r *CommandRegistry) Get(mode Mode, key string) (Command, bool) {
	if key == "" {
		return nil, false
	}
	cmd, ok := r.commands[mode][key]
	return cmd, ok
}

// ============================================================================
// PendingCommandRegistry
// ============================================================================

// PendingCommandRegistry maps an operator and its target key to a command.
// ('d', "w") resolves the delete-word-forward target.
type PendingCommandRegistry struct {
	commands map[rune]map[string]Command
}

// NewPendingCommandRegistry creates an empty pending command registry.
func NewPendingCommandRegistry() *PendingCommandRegistry {
	return &PendingCommandRegistry{commands: make(map[rune]map[string]Command)}
}

// Register adds a command for an operator and target key.
func (r *PendingCommandRegistry) Register(operator rune, target string, cmd Command) {
	if r.commands[operator] == nil {
		r.commands[operator] = make(map[string]Command)
	}
	r.commands[operator][target] = cmd
}

// Get retrieves the command for an operator and target key.
func (r *PendingCommandRegistry) Get(operator rune, target string) (Command, bool) {
	cmd, ok := r.commands[operator][target]
	return cmd, ok
}

// Operators reports whether any targets are registered for operator.
func (r *PendingCommandRegistry) Operators(operator rune) bool {
	return len(r.commands[operator]) > 0
}

// ============================================================================
// Default registries
// ============================================================================

// DefaultPendingRegistry holds every operator target.
var DefaultPendingRegistry = newDefaultPendingRegistry()

func newDefaultPendingRegistry() *PendingCommandRegistry {
	r := NewPendingCommandRegistry()

	// d: delete, confirmed by a second d
	r.Register('d', "d", &DeleteTargetCommand{target: TargetLine})
	r.Register('d', "w", &DeleteTargetCommand{target: TargetWordForward})
	r.Register('d', "b", &DeleteTargetCommand{target: TargetWordBackward})

	// y: yank
	r.Register('y', "y", &YankLineCommand{})
	r.Register('y', "w", &YankWordCommand{})

	// g: go
	r.Register('g', "g", &MoveCommand{motion: MotionDocumentStart})

	return r
}

// DefaultRegistry holds every single-key command.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	motions := []*MoveCommand{
		{motion: MotionCharLeft, keys: []string{"h", keyLeft}},
		{motion: MotionCharRight, keys: []string{"l", keyRight}},
		{motion: MotionLineDown, keys: []string{"j", keyDown}},
		{motion: MotionLineUp, keys: []string{"k", keyUp}},
		{motion: MotionWordForward, keys: []string{"w"}},
		{motion: MotionWordBackward, keys: []string{"b"}},
		{motion: MotionLineStart, keys: []string{"0", keyHome}},
		{motion: MotionLineEnd, keys: []string{"$", keyEnd}},
		{motion: MotionFirstNonBlank, keys: []string{"^"}},
		{motion: MotionDocumentEnd, keys: []string{"G"}},
	}

	// ============================================================================
	// Normal mode
	// ============================================================================

	for _, m := range motions {
		r.registerWithMode(ModeNormal, m)
		r.registerWithMode(ModeVisual, m)
	}

	r.Register(&EnterInsertCommand{at: insertBeforeCursor})
	r.Register(&EnterInsertCommand{at: insertAfterCursor})
	r.Register(&EnterInsertCommand{at: insertLineStart})
	r.Register(&EnterInsertCommand{at: insertLineEnd})
	r.Register(&OpenLineCommand{above: false})
	r.Register(&OpenLineCommand{above: true})
	r.Register(&EnterVisualCommand{})

	r.Register(&DeleteCharCommand{})
	r.Register(&PasteCommand{before: false})
	r.Register(&PasteCommand{before: true})

	r.Register(&StartPendingCommand{operator: 'd'})
	r.Register(&StartPendingCommand{operator: 'y'})
	r.Register(&StartPendingCommand{operator: 'g'})

	r.Register(&UndoCommand{})
	r.Register(&RedoCommand{})
	r.Register(&NormalEscapeCommand{})

	// ============================================================================
	// DeleteConfirm mode
	// ============================================================================

	r.Register(&ConfirmDeleteCommand{})
	r.Register(&CancelDeleteCommand{})

	// ============================================================================
	// Visual mode
	// ============================================================================

	r.Register(&VisualYankCommand{})
	r.Register(&VisualDeleteCommand{})
	r.Register(&VisualEscapeCommand{})

	// ============================================================================
	// Insert mode
	// ============================================================================

	for _, m := range motions {
		if m.arrowOnly() {
			r.registerWithMode(ModeInsert, &MoveCommand{motion: m.motion, keys: m.namedKeys()})
		}
	}
	r.Register(&CommitInsertCommand{})
	r.Register(&CancelInsertCommand{})
	r.Register(&SplitLineCommand{})
	r.Register(&BackspaceCommand{})
	r.Register(&DeleteForwardCommand{})
	r.Register(&TabCommand{})
	r.Register(&SpaceCommand{})

	return r
}
