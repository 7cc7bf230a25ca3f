package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, "notes"), Expand("~/notes"))
	require.Equal(t, home, Expand("~"))
	require.Equal(t, filepath.Clean("a/b"), Expand("a//b/"))
	require.Equal(t, "~user/x", Expand("~user/x"), "only the current user's home is expanded")
	require.Empty(t, Expand(""))
}

func TestDirs_HonourXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")

	require.Equal(t, filepath.Join("/tmp/cfg", "folio"), ConfigDir())
	require.Equal(t, filepath.Join("/tmp/cfg", "folio", "config.yaml"), UserConfig())
	require.Equal(t, filepath.Join("/tmp/data", "folio", "state.db"), StateDB())
	require.Equal(t, filepath.Join("/tmp/data", "folio", "debug.log"), LogFile())
	require.Equal(t, filepath.Join("/tmp/data", "folio", "traces.jsonl"), TraceFile())
}

func TestDirs_DefaultUnderHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, ".config", "folio"), ConfigDir())
	require.Equal(t, filepath.Join(home, ".local", "share", "folio"), DataDir())
}
