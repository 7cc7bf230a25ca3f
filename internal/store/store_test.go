package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_CursorRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, _, ok, err := s.Cursor("todo.md")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SaveCursor("todo.md", 12, 4, time.Now()))
	row, col, ok, err := s.Cursor("todo.md")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 12, row)
	require.Equal(t, 4, col)

	require.NoError(t, s.SaveCursor("todo.md", 1, 0, time.Now()))
	row, col, _, err = s.Cursor("todo.md")
	require.NoError(t, err)
	require.Equal(t, 1, row)
	require.Equal(t, 0, col)
}

func TestStore_Recent(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveCursor("a.md", 0, 0, base))
	require.NoError(t, s.SaveCursor("b.md", 0, 0, base.Add(time.Minute)))
	require.NoError(t, s.SaveCursor("c.md", 0, 0, base.Add(2*time.Minute)))
	require.NoError(t, s.SaveCursor("a.md", 3, 0, base.Add(3*time.Minute)))

	recent, err := s.Recent(2)
	require.NoError(t, err)
	require.Equal(t, []string{"a.md", "c.md"}, recent)

	all, err := s.Recent(10)
	require.NoError(t, err)
	require.Equal(t, []string{"a.md", "c.md", "b.md"}, all)

	none, err := s.Recent(0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestStore_Forget(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveCursor("gone.md", 5, 5, time.Now()))

	require.NoError(t, s.Forget("gone.md"))
	require.NoError(t, s.Forget("never-there.md"))

	_, _, ok, err := s.Cursor("gone.md")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_Move(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveCursor("old.md", 4, 1, time.Now()))
	require.NoError(t, s.SaveCursor("new.md", 9, 9, time.Now()))

	require.NoError(t, s.Move("old.md", "new.md"))

	_, _, ok, err := s.Cursor("old.md")
	require.NoError(t, err)
	require.False(t, ok)

	row, col, ok, err := s.Cursor("new.md")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, row)
	require.Equal(t, 1, col)

	require.NoError(t, s.Move("never-there.md", "elsewhere.md"))
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveCursor("keep.md", 7, 2, time.Now()))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	row, col, ok, err := reopened.Cursor("keep.md")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, row)
	require.Equal(t, 2, col)
}
