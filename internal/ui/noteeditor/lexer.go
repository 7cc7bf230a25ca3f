package noteeditor

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/rivo/uniseg"
)

// TokenClass is the highlight category of a span of text.
type TokenClass int

const (
	ClassNone TokenClass = iota
	ClassHeading
	ClassEmphasis
	ClassCode
	ClassLink
	ClassList
	ClassQuote
)

// Span marks grapheme columns [Start, End) of one line.
type Span struct {
	Start int
	End   int
	Class TokenClass
}

// SyntaxLexer assigns highlight spans to every line of a document.
type SyntaxLexer interface {
	Highlight(lines []string) [][]Span
}

// MarkdownLexer highlights markdown with chroma.
type MarkdownLexer struct {
	lexer chroma.Lexer
}

// NewMarkdownLexer returns the chroma-backed markdown lexer. It falls back
// to plain text if chroma has no markdown lexer registered.
func NewMarkdownLexer() *MarkdownLexer {
	l := lexers.Get("markdown")
	if l == nil {
		l = lexers.Fallback
	}
	return &MarkdownLexer{lexer: chroma.Coalesce(l)}
}

// Highlight tokenises the whole document so fenced code blocks that span
// lines are classified correctly.
func (ml *MarkdownLexer) Highlight(lines []string) [][]Span {
	out := make([][]Span, len(lines))
	it, err := ml.lexer.Tokenise(nil, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return out
	}

	row, col := 0, 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		class := classify(tok)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				row++
				col = 0
			}
			if row >= len(lines) {
				return out
			}
			n := uniseg.GraphemeClusterCount(part)
			if n > 0 && class != ClassNone {
				out[row] = appendSpan(out[row], Span{Start: col, End: col + n, Class: class})
			}
			col += n
		}
	}
	markFences(lines, out)
	return out
}

// markFences classifies every line of a fenced code block as code,
// replacing whatever the fence's language lexer produced.
func markFences(lines []string, spans [][]Span) {
	inFence := false
	for i, line := range lines {
		fence := strings.HasPrefix(strings.TrimSpace(line), "```")
		if fence || inFence {
			spans[i] = nil
			if n := uniseg.GraphemeClusterCount(line); n > 0 {
				spans[i] = []Span{{Start: 0, End: n, Class: ClassCode}}
			}
		}
		if fence {
			inFence = !inFence
		}
	}
}

// appendSpan merges s into the previous span when they touch and share a
// class.
func appendSpan(spans []Span, s Span) []Span {
	if n := len(spans); n > 0 && spans[n-1].End == s.Start && spans[n-1].Class == s.Class {
		spans[n-1].End = s.End
		return spans
	}
	return append(spans, s)
}

func classify(tok chroma.Token) TokenClass {
	t := tok.Type
	switch {
	case t == chroma.GenericHeading || t == chroma.GenericSubheading:
		return ClassHeading
	case t == chroma.GenericEmph || t == chroma.GenericStrong:
		return ClassEmphasis
	case t.InSubCategory(chroma.LiteralString) || t == chroma.Literal:
		return ClassCode
	case t == chroma.NameTag || t == chroma.NameAttribute || t == chroma.NameEntity:
		return ClassLink
	case t.InCategory(chroma.Keyword):
		if strings.HasPrefix(strings.TrimSpace(tok.Value), ">") {
			return ClassQuote
		}
		return ClassList
	}
	return ClassNone
}

// highlightCache keeps the spans of the last rendered document.
type highlightCache struct {
	text  string
	spans [][]Span
}

func (c *highlightCache) get(lexer SyntaxLexer, lines []string) [][]Span {
	if lexer == nil {
		return nil
	}
	text := strings.Join(lines, "\n")
	if c.spans != nil && c.text == text {
		return c.spans
	}
	c.text = text
	c.spans = lexer.Highlight(lines)
	return c.spans
}
