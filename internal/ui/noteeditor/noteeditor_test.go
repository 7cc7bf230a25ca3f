package noteeditor

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/folio/internal/editor"
	"github.com/zjrosen/folio/internal/mocks"
	"github.com/zjrosen/folio/internal/ui/styles"
)

func newModel(t *testing.T, content string, opts ...Option) Model {
	t.Helper()
	m := New(editor.New(editor.DefaultConfig()), opts...)
	m.SetSize(40, 5)
	return m.Load("note.md", content, editor.Position{})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and any batched commands it expands to.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func send(m Model, msgs ...tea.KeyMsg) (Model, []tea.Msg) {
	var out []tea.Msg
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		out = append(out, collect(cmd)...)
	}
	return m, out
}

func TestKeyFromMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want editor.Key
	}{
		{"letter", runes("d"), editor.Key{Name: "d", Text: "d"}},
		{"multi rune typed fast", runes("ab"), editor.Key{Text: "ab"}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true}, editor.Key{Text: "a\nb\nc"}},
		{"alt", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, editor.Key{Name: "<alt+x>"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, editor.Key{Name: "<space>", Text: " "}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, editor.Named("<enter>")},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, editor.Named("<esc>")},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, editor.Named("<backspace>")},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, editor.Named("<tab>")},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, editor.Named("<left>")},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, editor.Named("<ctrl+r>")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, editor.Named("<ctrl+c>")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keyFromMsg(tt.msg)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	_, ok := keyFromMsg(tea.KeyMsg{Type: tea.KeyRunes})
	require.False(t, ok)
}

func TestUpdate_InsertSession(t *testing.T) {
	m := newModel(t, "")

	m, msgs := send(m, runes("i"))
	require.Contains(t, msgs, tea.Msg(ModeChangeMsg{From: editor.ModeNormal, To: editor.ModeInsert}))
	require.Equal(t, "INSERT", m.ModeLabel())

	m, msgs = send(m, runes("h"), runes("i"))
	require.Contains(t, msgs, tea.Msg(ChangeMsg{Dirty: true}))

	m, msgs = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Contains(t, msgs, tea.Msg(ModeChangeMsg{From: editor.ModeInsert, To: editor.ModeNormal}))
	require.Equal(t, "hi", m.Engine().Value())
	require.True(t, m.Engine().Dirty())
}

func TestUpdate_EscapeInNormalPassesThrough(t *testing.T) {
	m := newModel(t, "text")

	_, msgs := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Len(t, msgs, 1)
	unhandled, ok := msgs[0].(UnhandledKeyMsg)
	require.True(t, ok)
	require.Equal(t, "<esc>", unhandled.Key.Name)
}

func TestUpdate_IgnoredWhenBlurred(t *testing.T) {
	m := newModel(t, "text")
	m.Blur()

	m, msgs := send(m, runes("x"))
	require.Empty(t, msgs)
	require.Equal(t, "text", m.Engine().Value())
	require.Equal(t, styles.BorderDefaultColor, m.BorderColor())
}

func TestUpdate_OperatorPendingLabel(t *testing.T) {
	m := newModel(t, "one two")

	m, _ = send(m, runes("d"))
	require.Equal(t, editor.ModeOperatorPending, m.Engine().Mode())
	require.Equal(t, "PENDING d", m.ModeLabel())
	require.Equal(t, styles.ModeOperatorColor, m.BorderColor())

	m, _ = send(m, runes("w"))
	require.Equal(t, editor.ModeDeleteConfirm, m.Engine().Mode())
	require.Equal(t, styles.ModeConfirmColor, m.BorderColor())
}

func TestUpdate_YankMirrorsToClipboard(t *testing.T) {
	cb := mocks.NewMockClipboard(t)
	cb.On("WriteAll", "hello").Return(nil).Once()
	m := newModel(t, "hello", WithClipboard(cb))

	_, msgs := send(m, runes("y"), runes("y"))
	for _, msg := range msgs {
		require.IsType(t, ModeChangeMsg{}, msg)
	}
}

func TestUpdate_ClipboardFailureReported(t *testing.T) {
	cb := mocks.NewMockClipboard(t)
	boom := errors.New("no xclip")
	cb.On("WriteAll", "hello").Return(boom).Once()
	m := newModel(t, "hello", WithClipboard(cb))

	_, msgs := send(m, runes("y"), runes("y"))
	require.Contains(t, msgs, tea.Msg(ClipboardErrMsg{Err: boom}))
}

func TestLoad_RestoresCursorAndScrolls(t *testing.T) {
	content := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10"
	m := New(editor.New(editor.DefaultConfig()))
	m.SetSize(20, 3)
	m = m.Load("long.md", content, editor.Position{Row: 8})

	require.Equal(t, "long.md", m.Path())
	require.Equal(t, editor.Position{Row: 8}, m.Engine().Cursor())
	require.Equal(t, 6, m.yOffset)
	require.Equal(t, "9:1", m.Position())

	view := ansi.Strip(m.View())
	require.Contains(t, view, " 9 9")
	require.NotContains(t, view, " 1 1\n")
}

func TestJumpTo_ScrollsHeadingToTop(t *testing.T) {
	content := "# One\n2\n3\n## Four\n5\n6\n7\n8"
	m := New(editor.New(editor.DefaultConfig()))
	m.SetSize(20, 3)
	m = m.Load("long.md", content, editor.Position{Row: 7})
	require.Equal(t, 5, m.yOffset)

	m.JumpTo(3)
	require.Equal(t, editor.Position{Row: 3}, m.Engine().Cursor())
	require.Equal(t, 3, m.yOffset)

	m.JumpTo(0)
	require.Equal(t, 0, m.yOffset)

	m.JumpTo(99)
	require.Equal(t, editor.Position{Row: 7}, m.Engine().Cursor(), "clamped to the last line")
}

func TestView_GutterAndTildes(t *testing.T) {
	m := newModel(t, "alpha\nbeta")

	lines := bytes.Split([]byte(ansi.Strip(m.View())), []byte("\n"))
	require.Len(t, lines, 5)
	require.Equal(t, "1 alpha", string(lines[0]))
	require.Equal(t, "2 beta", string(lines[1]))
	require.Equal(t, "~ ", string(lines[2]))
}

func TestView_NoLineNumbers(t *testing.T) {
	m := newModel(t, "alpha", WithLineNumbers(false))

	first := strings.Split(ansi.Strip(m.View()), "\n")[0]
	require.Equal(t, "alpha", first)
}

func TestView_HorizontalScrollFollowsCursor(t *testing.T) {
	m := New(editor.New(editor.DefaultConfig()), WithLineNumbers(false))
	m.SetSize(5, 1)
	m = m.Load("wide.md", "abcdefghij", editor.Position{})

	m, _ = send(m, runes("$"))
	require.Equal(t, 5, m.xOffset)
	require.Equal(t, "fghij", ansi.Strip(m.View()))

	m, _ = send(m, runes("0"))
	require.Equal(t, "abcde", ansi.Strip(m.View()))
}

func TestLineCells_MarksSelectionPendingAndCursor(t *testing.T) {
	m := newModel(t, "hello world")

	m, _ = send(m, runes("l"), runes("l"), runes("v"), runes("l"), runes("l"))
	snap := m.Engine().Snapshot()
	require.NotNil(t, snap.Selection)

	cells := m.lineCells(snap, 0, nil)
	var selected []int
	for i, c := range cells {
		if c.kind.selected {
			selected = append(selected, i)
		}
	}
	require.Equal(t, []int{2, 3, 4}, selected)
	require.True(t, cells[4].kind.cursor)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc}, runes("0"), runes("d"), runes("w"))
	snap = m.Engine().Snapshot()
	require.NotNil(t, snap.Pending)

	cells = m.lineCells(snap, 0, nil)
	for i, c := range cells {
		require.Equal(t, i < 5, c.kind.pending, "cell %d", i)
	}
}

func TestLineCells_CursorPastEndOfLine(t *testing.T) {
	m := newModel(t, "")

	cells := m.lineCells(m.Engine().Snapshot(), 0, nil)
	require.Len(t, cells, 1)
	require.True(t, cells[0].kind.cursor)
}

func TestLineCells_TabsAndWideRunes(t *testing.T) {
	m := newModel(t, "\t世")

	cells := m.lineCells(m.Engine().Snapshot(), 0, nil)
	require.Equal(t, 4, cells[0].width)
	require.Equal(t, 2, cells[1].width)
	require.Equal(t, 6, displayColumn("\t世x", 2, 4))
}

func TestMarkdownLexer_Highlights(t *testing.T) {
	lines := []string{"# Title", "plain words", "- item"}
	spans := NewMarkdownLexer().Highlight(lines)

	require.Len(t, spans, 3)
	require.NotEmpty(t, spans[0])
	require.Equal(t, ClassHeading, spans[0][0].Class)
	require.Equal(t, 0, spans[0][0].Start)
	require.Equal(t, 7, spans[0][0].End)
	for _, s := range spans[1] {
		require.NotEqual(t, ClassHeading, s.Class)
	}
}

type stubLexer struct{ calls int }

func (s *stubLexer) Highlight(lines []string) [][]Span {
	s.calls++
	out := make([][]Span, len(lines))
	out[0] = []Span{{Start: 0, End: 2, Class: ClassCode}}
	return out
}

func TestHighlightCache_ReusesSpans(t *testing.T) {
	lexer := &stubLexer{}
	m := newModel(t, "abc", WithLexer(lexer))

	_ = m.View()
	_ = m.View()
	require.Equal(t, 1, lexer.calls)

	cells := m.lineCells(m.Engine().Snapshot(), 0, m.cache.get(lexer, m.Engine().Lines())[0])
	require.Equal(t, ClassCode, cells[0].kind.class)
	require.Equal(t, ClassCode, cells[1].kind.class)
	require.Equal(t, ClassNone, cells[2].kind.class)

	m, _ = send(m, runes("x"))
	_ = m.View()
	require.Equal(t, 2, lexer.calls)
}

// harness adapts the pane to tea.Model for teatest.
type harness struct {
	pane Model
}

func (h harness) Init() tea.Cmd { return nil }

func (h harness) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	h.pane, cmd = h.pane.Update(msg)
	return h, cmd
}

func (h harness) View() string { return h.pane.View() }

func TestTeatest_EditSession(t *testing.T) {
	m := New(editor.New(editor.DefaultConfig()))
	m.SetSize(30, 4)
	m = m.Load("session.md", "", editor.Position{})

	tm := teatest.NewTestModel(t, harness{pane: m}, teatest.WithInitialTermSize(30, 4))
	tm.Type("ihello")
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Type("yyp")

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(ansi.Strip(string(b)), "2 hello")
	}, teatest.WithDuration(3*time.Second))

	require.NoError(t, tm.Quit())
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(harness)
	require.Equal(t, "hello\nhello", final.pane.Engine().Value())
	require.Equal(t, editor.ModeNormal, final.pane.Engine().Mode())
}

func TestMarkdownLexer_FencedCodeIsCode(t *testing.T) {
	lines := []string{"```go", "func main() {}", "```", "after"}
	spans := NewMarkdownLexer().Highlight(lines)

	for i := range 3 {
		require.Equal(t, []Span{{Start: 0, End: len(lines[i]), Class: ClassCode}}, spans[i], "line %d", i)
	}
	for _, s := range spans[3] {
		require.NotEqual(t, ClassCode, s.Class)
	}
}
