package notes

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Summary counts the lines that differ between two versions of a note.
type Summary struct {
	Added   int
	Removed int
}

// Empty reports whether the versions have the same lines.
func (s Summary) Empty() bool {
	return s.Added == 0 && s.Removed == 0
}

func (s Summary) String() string {
	if s.Empty() {
		return "no changes"
	}
	return fmt.Sprintf("+%d -%d lines", s.Added, s.Removed)
}

// Summarize diffs before and after line by line.
func Summarize(before, after string) Summary {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var s Summary
	for _, d := range diffs {
		n := countLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Added += n
		case diffmatchpatch.DiffDelete:
			s.Removed += n
		}
	}
	return s
}

// countLines counts text's lines, including an unterminated last one.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
