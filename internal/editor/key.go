package editor

// Key is one logical input event.
//
// Name is what the command registry matches on: a printable key is its own
// text ("d", "$") and other keys use angle brackets ("<esc>", "<enter>",
// "<ctrl+r>"). Text is the literal text a key inserts in Insert mode. Pasted
// input carries Text with an empty Name so it can never trigger a command.
type Key struct {
	Name string
	Text string
}

// Named returns a non-printing key such as "<esc>".
func Named(name string) Key {
	return Key{Name: name}
}

// Char returns a key for typed text. Single graphemes double as command
// names; longer text is treated as a paste.
func Char(text string) Key {
	if GraphemeCount(text) == 1 {
		return Key{Name: text, Text: text}
	}
	return Key{Text: text}
}

// Keys converts a string of single-character keys into a key sequence.
// Handy for driving the engine from tests: Keys("dw") is d then w.
func Keys(s string) []Key {
	var out []Key
	for _, g := range graphemes(s) {
		out = append(out, Char(g))
	}
	return out
}

// String returns the registry name, or the text for paste input.
func (k Key) String() string {
	if k.Name != "" {
		return k.Name
	}
	return k.Text
}

const (
	keyEsc       = "<esc>"
	keyEnter     = "<enter>"
	keyBackspace = "<backspace>"
	keyDelete    = "<delete>"
	keyTab       = "<tab>"
	keySpace     = "<space>"
	keyLeft      = "<left>"
	keyRight     = "<right>"
	keyUp        = "<up>"
	keyDown      = "<down>"
	keyHome      = "<home>"
	keyEnd       = "<end>"
	keyCtrlC     = "<ctrl+c>"
	keyCtrlR     = "<ctrl+r>"
)
