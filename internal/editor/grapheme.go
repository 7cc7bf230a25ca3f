// Package editor implements the modal text editing engine behind the note
// editor pane: a line buffer, cursor and selection motions, word boundaries,
// snapshot undo history, a single yank register, and the vim-style mode state
// machine that drives them.
//
// Columns are grapheme cluster indices, not byte offsets. "é" written as "e"
// plus a combining accent is one column, as is a ZWJ emoji sequence. Display
// width is a rendering concern and lives in the noteeditor package.
package editor

import (
	"strings"

	"github.com/rivo/uniseg"
)

// graphemes splits s into grapheme clusters.
func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		out = append(out, cluster)
	}
	return out
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// graphemeOffset converts a grapheme index into a byte offset into s.
// Indices at or past the end map to len(s).
func graphemeOffset(s string, idx int) int {
	if idx <= 0 {
		return 0
	}
	n := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		_, rest, _, state = uniseg.StepString(rest, state)
		n++
		if n == idx {
			return len(s) - len(rest)
		}
	}
	return len(s)
}

// SliceGraphemes returns s[start:end] measured in grapheme clusters.
func SliceGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	return s[graphemeOffset(s, start):graphemeOffset(s, end)]
}

// GraphemeAt returns the cluster at idx, or "" when idx is out of range.
func GraphemeAt(s string, idx int) string {
	if idx < 0 {
		return ""
	}
	return SliceGraphemes(s, idx, idx+1)
}

// leadingWhitespace returns the run of spaces and tabs that starts s.
func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

// firstNonBlank returns the grapheme column of the first non-whitespace
// character, or the line length for blank lines.
func firstNonBlank(s string) int {
	return GraphemeCount(leadingWhitespace(s))
}
