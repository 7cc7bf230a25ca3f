package logoverlay

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/folio/internal/log"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func shown(t *testing.T) Model {
	t.Helper()
	m := New()
	m.SetSize(100, 30)
	m.Show()
	return m
}

func TestAppend_CapsBuffer(t *testing.T) {
	m := New()
	for i := range MaxEntries + 10 {
		m = m.Append(fmt.Sprintf("line %d\n", i))
	}
	require.Equal(t, MaxEntries, m.Len())
	require.Equal(t, "line 10", m.entries[0])
}

func TestUpdate_HiddenIgnoresKeys(t *testing.T) {
	m := New()
	m, cmd := m.Update(key("e"))
	require.Nil(t, cmd)
	require.Equal(t, log.LevelDebug, m.MinLevel())
}

func TestUpdate_LevelFilter(t *testing.T) {
	m := shown(t)
	m = m.Append("2025-01-01T00:00:00.000 [DEBUG] [ui] noisy")
	m = m.Append("2025-01-01T00:00:00.000 [WARN] [watch] slow")
	m = m.Append("2025-01-01T00:00:00.000 [ERROR] [notes] broken")

	view := ansi.Strip(m.View())
	require.Contains(t, view, "noisy")
	require.Contains(t, view, "broken")

	m, _ = m.Update(key("w"))
	require.Equal(t, log.LevelWarn, m.MinLevel())
	view = ansi.Strip(m.View())
	require.NotContains(t, view, "noisy")
	require.Contains(t, view, "slow")
	require.Contains(t, view, "broken")

	m, _ = m.Update(key("e"))
	view = ansi.Strip(m.View())
	require.NotContains(t, view, "slow")
	require.Contains(t, view, "broken")
}

func TestUpdate_ClearAndEmptyState(t *testing.T) {
	m := shown(t)
	m = m.Append("[INFO] [app] hello")
	m, _ = m.Update(key("c"))
	require.Zero(t, m.Len())
	require.Contains(t, ansi.Strip(m.View()), "No logs to display")
}

func TestUpdate_CloseKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlX}, key("q")} {
		m := shown(t)
		m, cmd := m.Update(k)
		require.False(t, m.Visible(), k.String())
		require.NotNil(t, cmd)
		require.Equal(t, CloseMsg{}, cmd())
	}
}

func TestToggle(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	m.Toggle()
	require.True(t, m.Visible())
	m.Toggle()
	require.False(t, m.Visible())
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	m := New()
	require.Equal(t, "bg", m.Overlay("bg"))
}

func TestView_TitleAndHints(t *testing.T) {
	m := shown(t)
	view := ansi.Strip(m.View())
	require.Contains(t, view, "Logs")
	require.Contains(t, view, "[w] Warn")
}

func TestLevelOf(t *testing.T) {
	require.Equal(t, log.LevelInfo, levelOf("x [INFO] y"))
	require.Greater(t, levelOf("plain"), log.LevelError)
}
