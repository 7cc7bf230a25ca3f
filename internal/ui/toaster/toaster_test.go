package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNew_Hidden(t *testing.T) {
	m := New()

	require.False(t, m.Visible())
	require.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := New().Show("Saved todo.md", StyleSuccess, time.Millisecond)

	require.True(t, m.Visible())
	require.NotNil(t, cmd)
	require.Contains(t, m.View(), "✓ Saved todo.md")
	require.Equal(t, "Saved todo.md", m.Message())
}

func TestShow_Icons(t *testing.T) {
	tests := map[Style]string{
		StyleSuccess: "✓",
		StyleError:   "✗",
		StyleInfo:    "i",
		StyleWarn:    "!",
	}
	for style, icon := range tests {
		m, _ := New().Show("msg", style, time.Second)
		require.Contains(t, m.View(), icon+" msg")
	}
}

func TestDismiss_MatchesLatestToastOnly(t *testing.T) {
	m, first := New().Show("first", StyleInfo, time.Millisecond)
	m, second := m.Show("second", StyleWarn, time.Millisecond)

	stale := first().(DismissMsg)
	m = m.Update(stale)
	require.True(t, m.Visible(), "dismiss for an older toast is ignored")
	require.Contains(t, m.View(), "second")

	m = m.Update(second())
	require.False(t, m.Visible())
}

func TestOverlay_BottomRight(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 30)+"\n", 8), "\n")
	m, _ := New().Show("hi", StyleSuccess, time.Second)

	lines := strings.Split(ansi.Strip(m.Overlay(bg, 30, 8)), "\n")

	require.Len(t, lines, 8)
	require.Equal(t, strings.Repeat(".", 30), lines[0])
	require.Contains(t, lines[5], "✓ hi")
	require.True(t, strings.HasSuffix(lines[5], "│."))
	require.Equal(t, strings.Repeat(".", 30), lines[7])
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	require.Equal(t, "bg", New().Overlay("bg", 10, 1))
}
