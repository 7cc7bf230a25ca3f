package editor

// Mode is the editing mode of the state machine.
type Mode int

const (
	// ModeNormal is the default mode for navigation and commands.
	ModeNormal Mode = iota
	// ModeInsert is the mode for typing text.
	ModeInsert
	// ModeVisual is the mode for character-wise selection.
	ModeVisual
	// ModeOperatorPending waits for the target of an operator such as d.
	ModeOperatorPending
	// ModeDeleteConfirm holds a computed delete range until it is confirmed.
	ModeDeleteConfirm
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeOperatorPending:
		return "PENDING"
	case ModeDeleteConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

// DeleteTarget names what a pending delete covers.
type DeleteTarget int

const (
	TargetLine DeleteTarget = iota
	TargetWordForward
	TargetWordBackward
)

func (t DeleteTarget) String() string {
	switch t {
	case TargetLine:
		return "line"
	case TargetWordForward:
		return "word_forward"
	case TargetWordBackward:
		return "word_backward"
	default:
		return "unknown"
	}
}

// PendingDelete is a computed delete awaiting confirmation.
type PendingDelete struct {
	Operator rune
	Target   DeleteTarget
	Range    Range
	Kind     RegisterKind
}

// State is the state machine's tagged union. Operator is meaningful only in
// ModeOperatorPending and Confirm only in ModeDeleteConfirm. Count holds a
// numeric prefix typed in Normal mode.
type State struct {
	Mode     Mode
	Operator rune
	Count    int
	Confirm  *PendingDelete
}

func normalState() State {
	return State{Mode: ModeNormal}
}
