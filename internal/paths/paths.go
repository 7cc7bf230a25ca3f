// Package paths resolves the directories folio reads and writes.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "folio"

// Expand replaces a leading "~" with the user's home directory and cleans
// the result. Paths without "~" are only cleaned.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// ConfigDir is where the user config lives: $XDG_CONFIG_HOME/folio, or
// ~/.config/folio.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".config", appName)
}

// DataDir holds the state database and logs: $XDG_DATA_HOME/folio, or
// ~/.local/share/folio.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".local", "share", appName)
}

// ProjectConfig is the per-directory config file checked before the user
// config.
func ProjectConfig() string {
	return filepath.Join("."+appName, "config.yaml")
}

// UserConfig is the config file inside ConfigDir.
func UserConfig() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDB is the sqlite file remembering cursors and recent notes.
func StateDB() string {
	return filepath.Join(DataDir(), "state.db")
}

// LogFile is the default debug log location.
func LogFile() string {
	return filepath.Join(DataDir(), "debug.log")
}

// TraceFile is where the file trace exporter writes spans.
func TraceFile() string {
	return filepath.Join(DataDir(), "traces.jsonl")
}
