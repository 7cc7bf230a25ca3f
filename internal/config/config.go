// Package config provides configuration types, defaults, and persistence for folio.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/folio/internal/editor"
	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/paths"
)

// Config holds all folio configuration.
type Config struct {
	NotesDir      string        `mapstructure:"notes_dir"`
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
	Editor        EditorConfig  `mapstructure:"editor"`
	UI            UIConfig      `mapstructure:"ui"`
	Theme         ThemeConfig   `mapstructure:"theme"`
	Trace         TraceConfig   `mapstructure:"trace"`
	// LastNote is the note that was open when folio last exited. It is
	// written back by SetLastNote.
	LastNote string `mapstructure:"last_note"`
}

// EditorConfig tunes the note editor.
type EditorConfig struct {
	TabWidth         int  `mapstructure:"tab_width"`
	ExpandTabs       bool `mapstructure:"expand_tabs"`
	HistoryLimit     int  `mapstructure:"history_limit"`
	ListContinuation bool `mapstructure:"list_continuation"`
	SystemClipboard  bool `mapstructure:"system_clipboard"` // mirror yanks to the OS clipboard
	LineNumbers      bool `mapstructure:"line_numbers"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"` // "auto" (default), "dark" or "light"
	SidebarWidth  int    `mapstructure:"sidebar_width"`
	ShowPreview   bool   `mapstructure:"show_preview"`
}

// TraceConfig controls OpenTelemetry spans for editor commands and note
// file operations. --trace turns it on for one run.
type TraceConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`      // "file" (default), "console", "otlp" or "none"
	FilePath     string  `mapstructure:"file_path"`     // for the file exporter; empty = data dir
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"` // host:port of an OTLP gRPC collector
	SampleRate   float64 `mapstructure:"sample_rate"`   // 0..1
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base.
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors overrides individual color tokens, either nested:
	//   colors:
	//     mode:
	//       insert: "#73F59F"
	// or with quoted dot notation:
	//   colors:
	//     "mode.insert": "#73F59F"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// yaml.v2-style decoding yields map[any]any
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Markdown styles accepted by ui.markdown_style.
const (
	MarkdownStyleAuto  = "auto"
	MarkdownStyleDark  = "dark"
	MarkdownStyleLight = "light"
)

// Defaults returns the default configuration.
func Defaults() Config {
	ed := editor.DefaultConfig()
	return Config{
		NotesDir:      "~/notes",
		Watch:         true,
		WatchDebounce: 150 * time.Millisecond,
		Editor: EditorConfig{
			TabWidth:         ed.TabWidth,
			ExpandTabs:       ed.ExpandTabs,
			HistoryLimit:     ed.HistoryLimit,
			ListContinuation: ed.ListContinuation,
			SystemClipboard:  false,
			LineNumbers:      true,
		},
		UI: UIConfig{
			MarkdownStyle: MarkdownStyleAuto,
			SidebarWidth:  30,
			ShowPreview:   true,
		},
		Trace: TraceConfig{
			Exporter:     "file",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// EngineConfig converts the editor section into engine settings.
func (c Config) EngineConfig() editor.Config {
	return editor.Config{
		TabWidth:         c.Editor.TabWidth,
		ExpandTabs:       c.Editor.ExpandTabs,
		HistoryLimit:     c.Editor.HistoryLimit,
		ListContinuation: c.Editor.ListContinuation,
	}
}

// ResolvedNotesDir returns NotesDir with "~" expanded.
func (c Config) ResolvedNotesDir() string {
	return paths.Expand(c.NotesDir)
}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs []error
	if c.NotesDir == "" {
		errs = append(errs, errors.New("notes_dir is required"))
	}
	if c.WatchDebounce < 0 {
		errs = append(errs, fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce))
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("editor.tab_width must be between 1 and 16, got %d", c.Editor.TabWidth))
	}
	if c.Editor.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("editor.history_limit must not be negative, got %d", c.Editor.HistoryLimit))
	}
	switch c.UI.MarkdownStyle {
	case "", MarkdownStyleAuto, MarkdownStyleDark, MarkdownStyleLight:
	default:
		errs = append(errs, fmt.Errorf("ui.markdown_style must be \"auto\", \"dark\", or \"light\", got %q", c.UI.MarkdownStyle))
	}
	if c.UI.SidebarWidth < 10 {
		errs = append(errs, fmt.Errorf("ui.sidebar_width must be at least 10, got %d", c.UI.SidebarWidth))
	}
	switch c.Trace.Exporter {
	case "", "file", "console", "otlp", "none":
	default:
		errs = append(errs, fmt.Errorf("trace.exporter must be \"file\", \"console\", \"otlp\", or \"none\", got %q", c.Trace.Exporter))
	}
	if c.Trace.SampleRate < 0 || c.Trace.SampleRate > 1 {
		errs = append(errs, fmt.Errorf("trace.sample_rate must be between 0 and 1, got %g", c.Trace.SampleRate))
	}
	return errors.Join(errs...)
}

// DefaultConfigTemplate returns the commented YAML written by init-config.
func DefaultConfigTemplate() string {
	return `# Folio Configuration

# Directory holding your markdown notes
notes_dir: ~/notes

# Reload the note list when files change on disk
watch: true
watch_debounce: 150ms

# Editor settings
editor:
  tab_width: 4              # Spaces inserted by <tab> when expand_tabs is on
  expand_tabs: true
  history_limit: 500        # Undo steps kept per note (0 = unlimited)
  list_continuation: true   # Continue "- ", "* " and "1. " lists on <enter>
  system_clipboard: false   # Mirror yanks and deletes to the OS clipboard
  line_numbers: true

# UI settings
ui:
  markdown_style: auto      # Preview style: "auto", "dark" or "light"
  sidebar_width: 30
  show_preview: true

# Tracing of editor commands and note file I/O (also: folio --trace)
trace:
  enabled: false
  exporter: file            # "file", "console", "otlp" or "none"
  # file_path: ~/.local/share/folio/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Theme configuration
theme:
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default folio theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   mode.insert: "#73F59F"
  #   editor.selection: "#44475A"
`
}

// WriteDefaultConfig creates a config file with default settings.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
