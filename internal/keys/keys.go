// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// BrowseKeyMap is active while the note list has focus.
type BrowseKeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Filter key.Binding

	// Preview scrolling
	PreviewDown key.Binding
	PreviewUp   key.Binding

	// Actions
	Open   key.Binding
	New    key.Binding
	Rename key.Binding
	Delete key.Binding
	Reload key.Binding

	// General
	ToggleLog key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultBrowseKeyMap returns the default browse bindings.
func DefaultBrowseKeyMap() BrowseKeyMap {
	return BrowseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous note"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next note"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first note"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last note"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),

		PreviewDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "scroll preview down"),
		),
		PreviewUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "scroll preview up"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "edit"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		Rename: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename note"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete note"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),

		ToggleLog: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "debug log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k BrowseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.New, k.Filter, k.Delete, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k BrowseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Filter},
		{k.Open, k.New, k.Rename, k.Delete, k.Reload},
		{k.PreviewDown, k.PreviewUp},
		{k.ToggleLog, k.Help, k.Quit},
	}
}

// EditKeyMap is checked before keys reach the editor.
type EditKeyMap struct {
	Save      key.Binding
	Outline   key.Binding
	ToggleLog key.Binding

	// Leave is only a help entry. Escape goes to the editor first and
	// leaves edit mode when the editor passes it through.
	Leave key.Binding
}

// DefaultEditKeyMap returns the default edit bindings.
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Outline: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "outline"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "debug log"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Outline, k.Leave}
}

// FullHelp returns keybindings for the full help view.
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.Outline, k.Leave, k.ToggleLog}}
}

// OutlineKeyMap drives the heading list shown beside the editor.
type OutlineKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Jump  key.Binding
	Close key.Binding
}

// DefaultOutlineKeyMap returns the default outline bindings. Up and Down
// wrap around.
func DefaultOutlineKeyMap() OutlineKeyMap {
	return OutlineKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up", "ctrl+p"),
			key.WithHelp("k/↑", "previous heading"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down", "ctrl+n"),
			key.WithHelp("j/↓", "next heading"),
		),
		Jump: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump to heading"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "ctrl+o"),
			key.WithHelp("esc", "close outline"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k OutlineKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Jump, k.Close}
}

// FullHelp returns keybindings for the full help view.
func (k OutlineKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
