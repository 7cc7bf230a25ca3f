package editor

import "strings"

// ============================================================================
// Insert Mode Commands
// ============================================================================

// InsertTextCommand inserts typed or pasted text at the cursor.
type InsertTextCommand struct {
	InsertBase
	text string
}

// Execute inserts the text.
func (c *InsertTextCommand) Execute(e *Engine) ExecuteResult {
	if c.text == "" {
		return Skipped
	}
	e.insert(c.text)
	return Executed
}

// Keys returns nil: text input is the Insert-mode fallback, not a
// registered key.
func (c *InsertTextCommand) Keys() []string {
	return nil
}

// Mode returns the mode this command operates in.
func (c *InsertTextCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *InsertTextCommand) ID() string {
	return "insert.text"
}

// SpaceCommand inserts a space.
type SpaceCommand struct {
	InsertBase
}

// Execute inserts a space.
func (c *SpaceCommand) Execute(e *Engine) ExecuteResult {
	e.insert(" ")
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *SpaceCommand) Keys() []string {
	return []string{keySpace}
}

// Mode returns the mode this command operates in.
func (c *SpaceCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *SpaceCommand) ID() string {
	return "insert.space"
}

// TabCommand inserts a tab, or spaces when tabs are expanded.
type TabCommand struct {
	InsertBase
}

// Execute inserts indentation.
func (c *TabCommand) Execute(e *Engine) ExecuteResult {
	if e.cfg.ExpandTabs {
		e.insert(strings.Repeat(" ", e.cfg.TabWidth))
		return Executed
	}
	e.insert("\t")
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *TabCommand) Keys() []string {
	return []string{keyTab}
}

// Mode returns the mode this command operates in.
func (c *TabCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *TabCommand) ID() string {
	return "insert.tab"
}

// SplitLineCommand breaks the line at the cursor (<enter>). On a markdown
// list item the new line repeats the marker; on an item with nothing after
// its marker the marker is removed instead, ending the list.
type SplitLineCommand struct {
	InsertBase
}

// Execute splits the line.
func (c *SplitLineCommand) Execute(e *Engine) ExecuteResult {
	p := e.cursor.Position()
	line := e.buf.Line(p.Row)

	if e.cfg.ListContinuation {
		if item, ok := parseListItem(line); ok && p.Col >= GraphemeCount(item.prefix) {
			if item.empty {
				e.remove(Range{Start: Position{Row: p.Row}, End: Position{Row: p.Row, Col: GraphemeCount(line)}})
				return Executed
			}
			e.insert("\n" + item.next)
			return Executed
		}
	}

	e.insert("\n")
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *SplitLineCommand) Keys() []string {
	return []string{keyEnter}
}

// Mode returns the mode this command operates in.
func (c *SplitLineCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *SplitLineCommand) ID() string {
	return "insert.split_line"
}

// BackspaceCommand deletes the grapheme before the cursor, joining with the
// previous line at column 0.
type BackspaceCommand struct {
	InsertBase
}

// Execute deletes backwards.
func (c *BackspaceCommand) Execute(e *Engine) ExecuteResult {
	p := e.cursor.Position()
	switch {
	case p.Col > 0:
		e.remove(Range{Start: Position{Row: p.Row, Col: p.Col - 1}, End: p})
	case p.Row > 0:
		e.remove(Range{Start: Position{Row: p.Row - 1, Col: e.buf.LineLen(p.Row - 1)}, End: p})
	default:
		return Skipped
	}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *BackspaceCommand) Keys() []string {
	return []string{keyBackspace}
}

// Mode returns the mode this command operates in.
func (c *BackspaceCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *BackspaceCommand) ID() string {
	return "insert.backspace"
}

// DeleteForwardCommand deletes the grapheme under the cursor, joining the
// next line at end of line.
type DeleteForwardCommand struct {
	InsertBase
}

// Execute deletes forwards.
func (c *DeleteForwardCommand) Execute(e *Engine) ExecuteResult {
	p := e.cursor.Position()
	switch {
	case p.Col < e.buf.LineLen(p.Row):
		e.remove(Range{Start: p, End: Position{Row: p.Row, Col: p.Col + 1}})
	case p.Row+1 < e.buf.LineCount():
		e.remove(Range{Start: p, End: Position{Row: p.Row + 1}})
	default:
		return Skipped
	}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteForwardCommand) Keys() []string {
	return []string{keyDelete}
}

// Mode returns the mode this command operates in.
func (c *DeleteForwardCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteForwardCommand) ID() string {
	return "insert.delete"
}
