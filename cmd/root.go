package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/folio/internal/app"
	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/notes"
	"github.com/zjrosen/folio/internal/paths"
	"github.com/zjrosen/folio/internal/store"
	"github.com/zjrosen/folio/internal/tracing"
	"github.com/zjrosen/folio/internal/ui/markdown"
	"github.com/zjrosen/folio/internal/ui/noteeditor"
	"github.com/zjrosen/folio/internal/ui/styles"
	"github.com/zjrosen/folio/internal/watcher"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts,
	// otherwise the OSC 11 reply races the input loop and shows up as
	// typed text.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// logEnv names a log file to write even without --debug.
const logEnv = "FOLIO_LOG"

var (
	version = "dev"
	cfgFile string
	debug   bool
	noWatch bool
	trace   bool
)

var rootCmd = &cobra.Command{
	Use:   "folio [notes-dir]",
	Short: "A terminal notebook for markdown notes",
	Long: `Browse, preview and edit a directory of markdown notes with a modal,
vim-style editor.

The notes directory comes from the argument, or notes_dir in the config.`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.folio/config.yaml, then ~/.config/folio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log and enable the log overlay (ctrl+x)")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false,
		"record spans for editor commands and note I/O (see trace: in the config)")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false,
		"do not reload when notes change on disk")
}

// loadConfig reads the config with viper. The returned path is the file
// last_note is written back to; it is empty when no file could be found
// or created.
func loadConfig(explicit string) (config.Config, string, error) {
	v := viper.New()
	setDefaults(v, config.Defaults())

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(paths.ProjectConfig()):
		v.SetConfigFile(paths.ProjectConfig())
	default:
		v.AddConfigPath(paths.ConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return config.Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		// First run: write the commented defaults where the user will look.
		path := paths.UserConfig()
		if writeErr := config.WriteDefaultConfig(path); writeErr == nil {
			v.SetConfigFile(path)
			_ = v.ReadInConfig()
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	return cfg, v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper, d config.Config) {
	v.SetDefault("notes_dir", d.NotesDir)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("watch_debounce", d.WatchDebounce)
	v.SetDefault("editor.tab_width", d.Editor.TabWidth)
	v.SetDefault("editor.expand_tabs", d.Editor.ExpandTabs)
	v.SetDefault("editor.history_limit", d.Editor.HistoryLimit)
	v.SetDefault("editor.list_continuation", d.Editor.ListContinuation)
	v.SetDefault("editor.system_clipboard", d.Editor.SystemClipboard)
	v.SetDefault("editor.line_numbers", d.Editor.LineNumbers)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.sidebar_width", d.UI.SidebarWidth)
	v.SetDefault("ui.show_preview", d.UI.ShowPreview)
	v.SetDefault("trace.enabled", d.Trace.Enabled)
	v.SetDefault("trace.exporter", d.Trace.Exporter)
	v.SetDefault("trace.otlp_endpoint", d.Trace.OTLPEndpoint)
	v.SetDefault("trace.sample_rate", d.Trace.SampleRate)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// initLogging turns on the file log for --debug or FOLIO_LOG.
func initLogging() (func(), error) {
	path := os.Getenv(logEnv)
	if path == "" && !debug {
		return func() {}, nil
	}
	if path == "" {
		path = paths.LogFile()
	}
	if err := os.MkdirAll(paths.DataDir(), 0o750); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	closeLog, err := log.Init(paths.Expand(path))
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	return closeLog, nil
}

// resolveNotesDir applies the positional argument over the config.
func resolveNotesDir(cfg *config.Config, args []string) error {
	if len(args) == 1 {
		cfg.NotesDir = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	dir := cfg.ResolvedNotesDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating notes directory: %w", err)
	}
	return nil
}

func runApp(cmd *cobra.Command, args []string) error {
	closeLog, err := initLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, cfgPath, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	if err := resolveNotesDir(&cfg, args); err != nil {
		return err
	}
	dir := cfg.ResolvedNotesDir()
	log.Info(log.CatApp, "starting", "version", version, "notes", dir, "config", cfgPath)

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	provider, err := tracing.NewProvider(traceConfig(cfg.Trace, trace))
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer shutdownTracing(provider)

	ns := notes.NewStore(dir)
	opts := app.Options{
		Config:        cfg,
		ConfigPath:    cfgPath,
		Notes:         ns,
		MarkdownStyle: markdown.ResolveStyle(cfg.UI.MarkdownStyle, termenv.NewOutput(os.Stdout)),
		Debug:         debug,
	}
	if provider.Enabled() {
		ns.SetTracer(provider.Tracer())
		opts.Tracer = provider.Tracer()
		log.Info(log.CatApp, "tracing enabled", "exporter", cfg.Trace.Exporter)
	}

	st, err := store.Open(paths.StateDB())
	if err != nil {
		// Cursor memory is a convenience; run without it.
		log.ErrorErr(log.CatStore, "state database unavailable", err)
	} else {
		opts.State = st
		defer func() { _ = st.Close() }()
	}

	if cfg.Watch && !noWatch {
		w, err := watcher.New(watcher.Config{Dir: dir, Debounce: cfg.WatchDebounce})
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			_ = w.Stop()
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		opts.Watcher = w
	}

	if cfg.Editor.SystemClipboard {
		if noteeditor.SystemClipboardAvailable() {
			opts.Clipboard = noteeditor.SystemClipboard{}
		} else {
			log.Warn(log.CatConfig, "system clipboard requested but unavailable")
		}
	}

	zone.NewGlobal()
	model := app.New(opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
