// Package markdown renders notes for the preview pane with glamour.
package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// noMarginStyle removes the document margin glamour adds by default.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour renderer for a fixed wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New creates a renderer wrapping at width. style is "dark" or "light";
// anything else falls back to dark. Resolve "auto" with ResolveStyle first:
// glamour's own auto style queries the terminal while the program is
// running, and the reply leaks into the input stream.
func New(width int, style string) (*Renderer, error) {
	if style != "light" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// ResolveStyle turns the configured markdown style into "dark" or "light".
// "auto" asks the terminal whether the terminal background is dark, so call it
// before the UI takes over the terminal.
func ResolveStyle(configured string, out *termenv.Output) string {
	switch configured {
	case "dark", "light":
		return configured
	}
	if out != nil && !out.HasDarkBackground() {
		return "light"
	}
	return "dark"
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style is the resolved glamour style name.
func (r *Renderer) Style() string {
	return r.style
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
