// Package noteeditor is the bubbletea pane around an editor.Engine.
//
// The pane translates key messages into engine keys, reports what each key
// did as messages for the parent model, and renders the engine snapshot
// with line numbers, markdown highlighting, the selection, a pending delete
// and the cursor.
package noteeditor

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/folio/internal/editor"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/ui/styles"
)

// ChangeMsg is sent after a key changed the document.
type ChangeMsg struct {
	Dirty bool
}

// ModeChangeMsg is sent after a key moved the engine to another mode.
type ModeChangeMsg struct {
	From editor.Mode
	To   editor.Mode
}

// UnhandledKeyMsg carries a key the engine passed through, such as <esc>
// in Normal mode with nothing to cancel.
type UnhandledKeyMsg struct {
	Key editor.Key
	Msg tea.KeyMsg
}

// ClipboardErrMsg reports a failed system clipboard write.
type ClipboardErrMsg struct {
	Err error
}

// Option configures a Model.
type Option func(*Model)

// WithLexer replaces the markdown highlighter. A nil lexer disables
// highlighting.
func WithLexer(l SyntaxLexer) Option {
	return func(m *Model) { m.lexer = l }
}

// WithClipboard mirrors every register write to cb.
func WithClipboard(cb Clipboard) Option {
	return func(m *Model) { m.clipboard = cb }
}

// WithLineNumbers toggles the line number gutter.
func WithLineNumbers(on bool) Option {
	return func(m *Model) { m.lineNumbers = on }
}

// WithTabWidth sets how many columns a tab character occupies on screen.
func WithTabWidth(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.tabWidth = n
		}
	}
}

// Model is the editor pane.
type Model struct {
	engine    *editor.Engine
	lexer     SyntaxLexer
	clipboard Clipboard
	cache     *highlightCache

	path        string
	lineNumbers bool
	tabWidth    int
	focused     bool

	width   int
	height  int
	yOffset int
	xOffset int
}

// New wraps engine. The pane starts focused with line numbers and the
// chroma markdown lexer.
func New(engine *editor.Engine, opts ...Option) Model {
	m := Model{
		engine:      engine,
		lexer:       NewMarkdownLexer(),
		cache:       &highlightCache{},
		lineNumbers: true,
		tabWidth:    4,
		focused:     true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Load opens a note in the engine and places the cursor.
func (m Model) Load(path, content string, cursor editor.Position) Model {
	m.engine.Load(content)
	m.engine.SetCursor(cursor)
	m.path = path
	m.yOffset = 0
	m.xOffset = 0
	m.ensureCursorVisible()
	log.Debug(log.CatEditor, "loaded note", "path", path, "lines", len(m.engine.Lines()))
	return m
}

// JumpTo puts the cursor at the start of row and scrolls it to the top of
// the pane.
func (m *Model) JumpTo(row int) {
	m.engine.SetCursor(editor.Position{Row: row})
	m.yOffset = m.engine.Cursor().Row
	m.xOffset = 0
	m.ensureCursorVisible()
}

// Engine returns the wrapped engine.
func (m Model) Engine() *editor.Engine {
	return m.engine
}

// Path returns the note being edited.
func (m Model) Path() string {
	return m.path
}

// Focus makes the pane accept keys.
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops the pane from accepting keys.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the pane accepts keys.
func (m Model) Focused() bool {
	return m.focused
}

// SetSize sets the drawable area, excluding any border the parent adds.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.ensureCursorVisible()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update feeds key messages to the engine.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}
	k, ok := keyFromMsg(keyMsg)
	if !ok {
		return m, nil
	}

	before := m.engine.Mode()
	out := m.engine.Dispatch(k)
	after := m.engine.Mode()
	m.ensureCursorVisible()

	log.Debug(log.CatEditor, "dispatch",
		"key", k.String(),
		"result", out.Result,
		"mode", after)

	var cmds []tea.Cmd
	if out.Result == editor.PassThrough {
		cmds = append(cmds, func() tea.Msg { return UnhandledKeyMsg{Key: k, Msg: keyMsg} })
	}
	if out.ContentChanged {
		dirty := m.engine.Dirty()
		cmds = append(cmds, func() tea.Msg { return ChangeMsg{Dirty: dirty} })
	}
	if before != after {
		cmds = append(cmds, func() tea.Msg { return ModeChangeMsg{From: before, To: after} })
	}
	if out.RegisterChanged && m.clipboard != nil {
		if text, _, ok := m.engine.Register(); ok {
			cmds = append(cmds, copyCmd(m.clipboard, text))
		}
	}
	return m, tea.Batch(cmds...)
}

// ModeLabel is the plain mode name, with the pending operator appended
// while one waits for its target.
func (m Model) ModeLabel() string {
	snap := m.engine.Snapshot()
	if snap.Mode == editor.ModeOperatorPending && snap.Operator != 0 {
		return fmt.Sprintf("%s %c", snap.Mode, snap.Operator)
	}
	return snap.Mode.String()
}

// ModeIndicator renders the mode label as a colored badge.
func (m Model) ModeIndicator() string {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(styles.ButtonTextColor).
		Background(styles.ModeColor(m.engine.Mode())).
		Render(m.ModeLabel())
}

// BorderColor is the pane border for the current mode, or the default
// border when unfocused.
func (m Model) BorderColor() lipgloss.TerminalColor {
	if !m.focused {
		return styles.BorderDefaultColor
	}
	return styles.ModeColor(m.engine.Mode())
}

// Position renders the cursor as "row:col", both 1-based.
func (m Model) Position() string {
	c := m.engine.Cursor()
	return fmt.Sprintf("%d:%d", c.Row+1, c.Col+1)
}

// ensureCursorVisible scrolls so the cursor cell is on screen.
func (m *Model) ensureCursorVisible() {
	if m.engine == nil || m.height == 0 {
		return
	}
	lines := m.engine.Lines()
	cur := m.engine.Cursor()

	if cur.Row < m.yOffset {
		m.yOffset = cur.Row
	}
	if cur.Row >= m.yOffset+m.height {
		m.yOffset = cur.Row - m.height + 1
	}
	m.yOffset = max(0, min(m.yOffset, len(lines)-1))

	cw := m.contentWidth(len(lines))
	if cw <= 0 {
		return
	}
	x := displayColumn(lines[cur.Row], cur.Col, m.tabWidth)
	if x < m.xOffset {
		m.xOffset = x
	}
	if x >= m.xOffset+cw {
		m.xOffset = x - cw + 1
	}
}
