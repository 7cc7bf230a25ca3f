package editor

import "strings"

// MoveCommand applies one motion, honouring the count prefix. In Visual mode
// the same command extends the selection.
type MoveCommand struct {
	MotionBase
	motion Motion
	keys   []string
}

// Execute moves the cursor.
func (c *MoveCommand) Execute(e *Engine) ExecuteResult {
	e.move(c.motion, e.count())
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveCommand) Keys() []string {
	return c.keys
}

// Mode returns the mode this command operates in.
func (c *MoveCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveCommand) ID() string {
	return "move." + c.motion.String()
}

// arrowOnly reports whether the command has a named key alias, which makes
// it usable from Insert mode where letters insert text.
func (c *MoveCommand) arrowOnly() bool {
	return len(c.namedKeys()) > 0
}

func (c *MoveCommand) namedKeys() []string {
	var named []string
	for _, k := range c.keys {
		if strings.HasPrefix(k, "<") && len(k) > 1 {
			named = append(named, k)
		}
	}
	return named
}
