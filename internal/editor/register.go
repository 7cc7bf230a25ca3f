package editor

import "strings"

// RegisterKind says how register content is pasted.
type RegisterKind int

const (
	// Charwise content is pasted inline at the cursor.
	Charwise RegisterKind = iota
	// Linewise content is pasted as whole lines.
	Linewise
)

func (k RegisterKind) String() string {
	if k == Linewise {
		return "linewise"
	}
	return "charwise"
}

// Register holds the most recent yank or delete. Each write replaces the
// previous content.
type Register struct {
	text string
	kind RegisterKind
	set  bool
}

// Set overwrites the register. Linewise text is stored without a trailing
// line break.
func (r *Register) Set(text string, kind RegisterKind) {
	if kind == Linewise {
		text = strings.TrimSuffix(text, "\n")
	}
	r.text = text
	r.kind = kind
	r.set = true
}

// Get returns the register content. ok is false when nothing was ever yanked.
func (r *Register) Get() (text string, kind RegisterKind, ok bool) {
	return r.text, r.kind, r.set
}

// Empty reports whether the register has never been written.
func (r *Register) Empty() bool {
	return !r.set
}
