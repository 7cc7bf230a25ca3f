// Package panes renders bordered panes with titles set into the border.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/folio/internal/ui/styles"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures a bordered pane.
type BorderConfig struct {
	Content string
	Width   int // total width including borders
	Height  int // total height including borders

	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	Focused bool
	// BorderColor overrides the border when set. Otherwise the border is
	// BorderFocusColor when focused and BorderDefaultColor when not.
	BorderColor lipgloss.TerminalColor
	TitleColor  lipgloss.TerminalColor
}

// BorderedPane renders cfg.Content clipped to the pane's inner area.
//
//	╭─ TopLeft ───────── TopRight ─╮
//	│content                       │
//	╰─ BottomLeft ─── BottomRight ─╯
func BorderedPane(cfg BorderConfig) string {
	borderColor := cfg.BorderColor
	if borderColor == nil {
		borderColor = styles.BorderDefaultColor
		if cfg.Focused {
			borderColor = styles.BorderFocusColor
		}
	}
	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = borderColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(cfg.Focused)

	innerWidth := max(cfg.Width-2, 1)
	innerHeight := max(cfg.Height-2, 1)

	lines := strings.Split(cfg.Content, "\n")
	body := make([]string, innerHeight)
	for i := range body {
		var line string
		if i < len(lines) {
			line = truncate.String(lines[i], uint(innerWidth))
		}
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		body[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	var b strings.Builder
	b.WriteString(titledEdge(borderTopLeft, borderTopRight, cfg.TopLeft, cfg.TopRight, innerWidth, borderStyle, titleStyle))
	b.WriteString("\n")
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n")
	b.WriteString(titledEdge(borderBottomLeft, borderBottomRight, cfg.BottomLeft, cfg.BottomRight, innerWidth, borderStyle, titleStyle))
	return b.String()
}

// titledEdge draws a horizontal border with an optional title at each end.
// The left title wins space over the right one; titles that do not fit are
// truncated, and dropped entirely when the pane is too narrow.
func titledEdge(leftCorner, rightCorner, left, right string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	// Each title costs its width plus "─ " before and " " after.
	const frame = 3

	avail := innerWidth - 1 // keep one trailing dash before the corner
	leftW := 0
	if left != "" && avail > frame {
		left = truncate.StringWithTail(left, uint(avail-frame), "…")
		leftW = lipgloss.Width(left) + frame
	} else {
		left = ""
	}
	avail -= leftW

	rightW := 0
	if right != "" && avail > frame+1 {
		right = truncate.StringWithTail(right, uint(avail-frame-1), "…")
		rightW = lipgloss.Width(right) + frame
	} else {
		right = ""
	}

	fill := max(innerWidth-leftW-rightW, 0)

	var b strings.Builder
	b.WriteString(borderStyle.Render(leftCorner))
	if left != "" {
		b.WriteString(borderStyle.Render(borderHorizontal+" ") + titleStyle.Render(left) + borderStyle.Render(" "))
	}
	if right != "" {
		b.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, fill)+" ") + titleStyle.Render(right) + borderStyle.Render(" "+borderHorizontal))
	} else {
		b.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, fill)))
	}
	b.WriteString(borderStyle.Render(rightCorner))
	return b.String()
}
