package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/notes"
	"github.com/zjrosen/folio/internal/paths"
	"github.com/zjrosen/folio/internal/tracing"
)

// isolate points the user config at a temp dir and runs from an empty
// working directory, so no real config is read or written.
func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return xdg
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
notes_dir: /tmp/my-notes
watch_debounce: 400ms
editor:
  tab_width: 2
ui:
  sidebar_width: 42
  show_preview: false
theme:
  colors:
    mode.insert: "#00FF00"
`), 0o600))

	cfg, used, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "/tmp/my-notes", cfg.NotesDir)
	require.Equal(t, 400*time.Millisecond, cfg.WatchDebounce)
	require.Equal(t, 2, cfg.Editor.TabWidth)
	require.Equal(t, 42, cfg.UI.SidebarWidth)
	require.False(t, cfg.UI.ShowPreview)
	require.Equal(t, map[string]string{"mode.insert": "#00FF00"}, cfg.Theme.FlattenedColors())

	// Unset keys keep their defaults.
	defaults := config.Defaults()
	require.Equal(t, defaults.Editor.HistoryLimit, cfg.Editor.HistoryLimit)
	require.True(t, cfg.Watch)
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_ProjectConfigWins(t *testing.T) {
	xdg := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "folio"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "folio", "config.yaml"), []byte("notes_dir: /user\n"), 0o600))
	require.NoError(t, os.MkdirAll(".folio", 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(".folio", "config.yaml"), []byte("notes_dir: /project\n"), 0o600))

	cfg, used, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, "/project", cfg.NotesDir)
	require.Equal(t, filepath.Join(".folio", "config.yaml"), used)
}

func TestLoadConfig_UserConfig(t *testing.T) {
	xdg := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "folio"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "folio", "config.yaml"), []byte("notes_dir: /user\n"), 0o600))

	cfg, _, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, "/user", cfg.NotesDir)
}

func TestLoadConfig_FirstRunWritesDefaults(t *testing.T) {
	xdg := isolate(t)

	cfg, used, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(xdg, "folio", "config.yaml"), used)
	require.FileExists(t, used)
	require.Equal(t, config.Defaults().NotesDir, cfg.NotesDir)
	require.Equal(t, config.Defaults().WatchDebounce, cfg.WatchDebounce)
}

func TestResolveNotesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "notes")
	cfg := config.Defaults()

	require.NoError(t, resolveNotesDir(&cfg, []string{dir}))
	require.Equal(t, dir, cfg.ResolvedNotesDir())
	require.DirExists(t, dir)

	bad := config.Defaults()
	bad.Editor.TabWidth = 0
	require.ErrorContains(t, resolveNotesDir(&bad, nil), "tab_width")
}

func TestRenderTree(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	list := []notes.Note{
		{Path: "alpha.md", Title: "Alpha Title", Size: 14},
		{Path: "journal/2026/march.md", Title: "march", Size: 2048},
		{Path: "journal/today.md", Title: "Today", Size: 7},
		{Path: "zeta.md", Title: "zeta", Size: 0},
	}

	want := strings.Join([]string{
		"notes",
		"├── [14 B]  alpha.md  Alpha Title",
		"├── journal/",
		"│   ├── 2026/",
		"│   │   └── [2.0 kB]  march.md",
		"│   └── [7 B]  today.md  Today",
		"└── [0 B]  zeta.md",
		"",
	}, "\n")
	require.Equal(t, want, renderTree("notes", list))
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		cfgFile, listFlat, initForce, trace = "", false, false, false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand_Flat(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	store := notes.NewStore(dir)
	_, err := store.Save("b.md", "# B\n")
	require.NoError(t, err)
	_, err = store.Save("a/c.md", "# C\n")
	require.NoError(t, err)

	out, err := runRoot(t, "list", "--flat", dir)
	require.NoError(t, err)
	require.Equal(t, "a/c.md\nb.md\n", out)
}

func TestListCommand_MissingDir(t *testing.T) {
	isolate(t)

	_, err := runRoot(t, "list", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, notes.ErrNotFound)
}

func TestInitConfigCommand(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")

	out, err := runRoot(t, "init-config", path)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+path)
	require.FileExists(t, path)

	_, err = runRoot(t, "init-config", path)
	require.ErrorContains(t, err, "already exists")

	_, err = runRoot(t, "init-config", "--force", path)
	require.NoError(t, err)
}

func TestScratchModel(t *testing.T) {
	m := newScratchModel(config.Defaults())

	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	require.Contains(t, ansi.Strip(model.View()), "# Scratch")

	for _, r := range "dd" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.Contains(t, ansi.Strip(model.View()), "CONFIRM")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTraceConfig(t *testing.T) {
	isolate(t)

	off := traceConfig(config.Defaults().Trace, false)
	require.False(t, off.Enabled)
	require.Equal(t, paths.TraceFile(), off.FilePath)

	forced := traceConfig(config.Defaults().Trace, true)
	require.True(t, forced.Enabled, "--trace turns tracing on")
	require.Equal(t, tracing.ExporterFile, forced.Exporter)

	custom := traceConfig(config.TraceConfig{
		Enabled:      true,
		Exporter:     "otlp",
		FilePath:     "~/spans.jsonl",
		OTLPEndpoint: "collector:4317",
		SampleRate:   0.25,
	}, false)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.True(t, custom.Enabled)
	require.Equal(t, tracing.ExporterOTLP, custom.Exporter)
	require.Equal(t, filepath.Join(home, "spans.jsonl"), custom.FilePath)
	require.Equal(t, "collector:4317", custom.OTLPEndpoint)
	require.Equal(t, 0.25, custom.SampleRate)
}

func TestListCommand_Trace(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A\n"), 0o644))

	_, err := runRoot(t, "list", "--flat", "--trace", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(paths.TraceFile())
	require.NoError(t, err)
	require.Contains(t, string(data), `"Name":"notes.list"`)
}
