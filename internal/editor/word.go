package editor

import "unicode"

// CharClass is the word-motion classification of a grapheme cluster.
type CharClass int

const (
	// ClassSpace covers whitespace and line breaks. Spaces separate words but
	// are never words themselves.
	ClassSpace CharClass = iota
	// ClassWord covers letters, digits and underscore.
	ClassWord
	// ClassPunct covers everything else, including symbols and emoji.
	ClassPunct
)

// Classify returns the class of a grapheme cluster based on its first rune.
func Classify(cluster string) CharClass {
	for _, r := range cluster {
		switch {
		case unicode.IsSpace(r):
			return ClassSpace
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			return ClassWord
		default:
			return ClassPunct
		}
	}
	return ClassSpace
}

// walker steps through the document one grapheme at a time, treating the end
// of every line except the last as a single whitespace character.
type walker struct {
	buf   *Buffer
	cache map[int][]string
}

func newWalker(b *Buffer) *walker {
	return &walker{buf: b, cache: make(map[int][]string)}
}

func (w *walker) row(i int) []string {
	if g, ok := w.cache[i]; ok {
		return g
	}
	g := graphemes(w.buf.Line(i))
	w.cache[i] = g
	return g
}

func (w *walker) classAt(p Position) CharClass {
	g := w.row(p.Row)
	if p.Col >= len(g) {
		return ClassSpace
	}
	return Classify(g[p.Col])
}

func (w *walker) next(p Position) Position {
	if p.Col < len(w.row(p.Row)) {
		return Position{Row: p.Row, Col: p.Col + 1}
	}
	if p.Row+1 < w.buf.LineCount() {
		return Position{Row: p.Row + 1}
	}
	return p
}

func (w *walker) prev(p Position) Position {
	if p.Col > 0 {
		return Position{Row: p.Row, Col: p.Col - 1}
	}
	if p.Row > 0 {
		return Position{Row: p.Row - 1, Col: len(w.row(p.Row - 1))}
	}
	return p
}

// ForwardWordBoundary returns the start of the next word after p. From
// inside a word or punctuation run it skips the rest of that run, then any
// whitespace (line breaks included). At document end it returns the end.
func ForwardWordBoundary(b *Buffer, p Position) Position {
	w := newWalker(b)
	end := b.End()
	p = b.Clamp(p)
	if !p.Before(end) {
		return end
	}

	if cls := w.classAt(p); cls != ClassSpace {
		for p.Before(end) && w.classAt(p) == cls {
			p = w.next(p)
		}
	}
	for p.Before(end) && w.classAt(p) == ClassSpace {
		p = w.next(p)
	}
	return p
}

// BackwardWordBoundary returns the start of the word under or before p,
// skipping whitespace that precedes p. At document start it returns (0,0).
func BackwardWordBoundary(b *Buffer, p Position) Position {
	w := newWalker(b)
	start := Position{}
	p = b.Clamp(p)
	if !start.Before(p) {
		return start
	}

	p = w.prev(p)
	for start.Before(p) && w.classAt(p) == ClassSpace {
		p = w.prev(p)
	}
	cls := w.classAt(p)
	if cls == ClassSpace {
		return p
	}
	for start.Before(p) {
		q := w.prev(p)
		if w.classAt(q) != cls {
			break
		}
		p = q
	}
	return p
}

// wordDeleteForward is the target of the delete-word-forward operator: from p
// to the end of the run under p. A whitespace run counts as a run so the
// operator never reaches into the following word. At the end of a line the
// target is the line break itself.
func wordDeleteForward(b *Buffer, p Position) (Range, bool) {
	w := newWalker(b)
	p = b.Clamp(p)
	g := w.row(p.Row)
	if p.Col >= len(g) {
		if p.Row+1 < b.LineCount() {
			return Range{Start: p, End: Position{Row: p.Row + 1}}, true
		}
		return Range{}, false
	}

	cls := w.classAt(p)
	end := p
	for end.Col < len(g) && w.classAt(end) == cls {
		end.Col++
	}
	return Range{Start: p, End: end}, true
}

// wordDeleteBackward is the target of the delete-word-backward operator:
// from the backward word boundary up to, not including, p.
func wordDeleteBackward(b *Buffer, p Position) (Range, bool) {
	p = b.Clamp(p)
	start := BackwardWordBoundary(b, p)
	if start == p {
		return Range{}, false
	}
	return Range{Start: start, End: p}, true
}
