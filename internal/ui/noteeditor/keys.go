package noteeditor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/folio/internal/editor"
)

// keyFromMsg translates a bubbletea key into an engine key. Pasted text
// becomes a nameless key so it can only ever be inserted.
func keyFromMsg(msg tea.KeyMsg) (editor.Key, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		text := string(msg.Runes)
		if text == "" {
			return editor.Key{}, false
		}
		if msg.Paste {
			return editor.Key{Text: normalizeNewlines(text)}, true
		}
		if msg.Alt {
			return editor.Named("<alt+" + text + ">"), true
		}
		return editor.Char(text), true
	case tea.KeySpace:
		return editor.Key{Name: "<space>", Text: " "}, true
	case tea.KeyEnter:
		return editor.Named("<enter>"), true
	case tea.KeyEsc:
		return editor.Named("<esc>"), true
	case tea.KeyBackspace:
		return editor.Named("<backspace>"), true
	case tea.KeyDelete:
		return editor.Named("<delete>"), true
	case tea.KeyTab:
		return editor.Named("<tab>"), true
	case tea.KeyUp:
		return editor.Named("<up>"), true
	case tea.KeyDown:
		return editor.Named("<down>"), true
	case tea.KeyLeft:
		return editor.Named("<left>"), true
	case tea.KeyRight:
		return editor.Named("<right>"), true
	case tea.KeyHome:
		return editor.Named("<home>"), true
	case tea.KeyEnd:
		return editor.Named("<end>"), true
	}

	name := msg.String()
	if name == "" {
		return editor.Key{}, false
	}
	return editor.Named("<" + name + ">"), true
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
