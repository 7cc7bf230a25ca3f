package noteeditor

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/log"
)

// Clipboard receives a copy of every yank and delete.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboardAvailable reports whether a clipboard utility was found.
func SystemClipboardAvailable() bool {
	return !clipboard.Unsupported
}

func copyCmd(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		if err := cb.WriteAll(text); err != nil {
			log.ErrorErr(log.CatEditor, "clipboard write failed", err)
			return ClipboardErrMsg{Err: err}
		}
		return nil
	}
}
