package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := New(&buf)
	l.now = func() time.Time { return time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC) }

	prev := defaultLogger
	SetDefault(l)
	t.Cleanup(func() { SetDefault(prev) })
	return &buf
}

func TestLog_Format(t *testing.T) {
	buf := withLogger(t)

	Info(CatNotes, "saved note", "path", "todo.md", "bytes", 42)

	require.Equal(t, "2025-12-06T10:45:00.000 [INFO] [notes] saved note path=todo.md bytes=42\n", buf.String())
}

func TestLog_OddFieldCount(t *testing.T) {
	buf := withLogger(t)

	Warn(CatWatch, "dangling", "orphan")

	require.Contains(t, buf.String(), "orphan=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := withLogger(t)

	ErrorErr(CatStore, "open failed", errors.New("disk full"))
	ErrorErr(CatStore, "no error", nil)

	require.Contains(t, buf.String(), "[ERROR] [store] open failed error=disk full")
	require.Contains(t, buf.String(), "no error error=<nil>")
}

func TestLog_MinLevelAndDisable(t *testing.T) {
	buf := withLogger(t)

	SetMinLevel(LevelWarn)
	Debug(CatEditor, "hidden")
	Error(CatEditor, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	SetEnabled(false)
	require.False(t, Enabled())
	Error(CatEditor, "muted")
	require.NotContains(t, buf.String(), "muted")
}

func TestLog_NilLoggerIsSafe(t *testing.T) {
	prev := defaultLogger
	SetDefault(nil)
	t.Cleanup(func() { SetDefault(prev) })

	require.NotPanics(t, func() { Info(CatApp, "nobody listening") })
	require.False(t, Enabled())
	require.Nil(t, NewListener(context.Background()))
}

func TestLog_ListenerReceivesLines(t *testing.T) {
	withLogger(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewListener(ctx)
	require.NotNil(t, l)

	Debug(CatUI, "resized", "w", 80)

	ev, ok := l.Listen()().(LogEvent)
	require.True(t, ok)
	require.Contains(t, ev.Payload, "[DEBUG] [ui] resized w=80")
}
