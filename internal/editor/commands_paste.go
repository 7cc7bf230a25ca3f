package editor

import "strings"

// PasteCommand inserts the register (p, P). Char-wise text goes in at the
// cursor. Line-wise text becomes whole lines below the cursor line (p) or
// above it (P). An empty register is a silent no-op.
type PasteCommand struct {
	EditBase
	before bool
}

// Execute pastes count copies of the register.
func (c *PasteCommand) Execute(e *Engine) ExecuteResult {
	text, kind, ok := e.register.Get()
	if !ok {
		return Skipped
	}
	n := e.count()

	if kind == Charwise {
		if text == "" {
			return Skipped
		}
		e.insert(strings.Repeat(text, n))
		return Executed
	}

	block := make([]string, n)
	for i := range block {
		block[i] = text
	}
	joined := strings.Join(block, "\n")
	row := e.cursor.Position().Row

	if c.before {
		_, err := e.buf.Insert(Position{Row: row}, joined+"\n")
		must(err)
	} else {
		_, err := e.buf.Insert(Position{Row: row, Col: e.buf.LineLen(row)}, "\n"+joined)
		must(err)
		row++
	}
	e.cursor.SetPosition(e.buf, Position{Row: row, Col: firstNonBlank(e.buf.Line(row))})
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *PasteCommand) Keys() []string {
	if c.before {
		return []string{"P"}
	}
	return []string{"p"}
}

// Mode returns the mode this command operates in.
func (c *PasteCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *PasteCommand) ID() string {
	if c.before {
		return "paste.before"
	}
	return "paste.after"
}
