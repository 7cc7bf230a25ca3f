package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/folio/internal/editor"
)

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"}

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#D4A017", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}

	// Buttons
	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDangerBgColor         = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor    = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}

	// Forms
	FormTextInputBorderColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormTextInputFocusedBorderColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}
	FormTextInputLabelColor         = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormTextInputFocusedLabelColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}

	// Overlays
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	// Toasts
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#D4A017", Dark: "#FECA57"}

	// Editor modes. Operator-pending is yellow, delete-confirm red.
	ModeNormalColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	ModeInsertColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ModeVisualColor   = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	ModeOperatorColor = lipgloss.AdaptiveColor{Light: "#D4A017", Dark: "#FECA57"}
	ModeConfirmColor  = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF8787"}

	// Editor pane
	EditorLineNumberColor        = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#696969"}
	EditorLineNumberCurrentColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	EditorSelectionColor         = lipgloss.AdaptiveColor{Light: "#CCD0DA", Dark: "#44475A"} // background
	EditorPendingColor           = lipgloss.AdaptiveColor{Light: "#F2C7CF", Dark: "#5C2B2B"} // background

	// Markdown highlighting
	MarkdownHeadingColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	MarkdownEmphasisColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	MarkdownCodeColor     = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"}
	MarkdownLinkColor     = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}
	MarkdownListColor     = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	MarkdownQuoteColor    = lipgloss.AdaptiveColor{Light: "#6C6F85", Dark: "#999999"}

	// Sidebar
	SidebarTitleColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	SidebarMetaColor  = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}
)

var (
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle          lipgloss.Style
	PrimaryButtonFocusedStyle   lipgloss.Style
	SecondaryButtonStyle        lipgloss.Style
	SecondaryButtonFocusedStyle lipgloss.Style
	DangerButtonStyle           lipgloss.Style
	DangerButtonFocusedStyle    lipgloss.Style

	HintStyle      lipgloss.Style
	StatusBarStyle lipgloss.Style
	ErrorStyle     lipgloss.Style

	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style

	SidebarTitleStyle    lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarMetaStyle     lipgloss.Style
)

func init() {
	rebuildStyles()
}

// ModeColor returns the indicator color for an editor mode.
func ModeColor(mode editor.Mode) lipgloss.AdaptiveColor {
	switch mode {
	case editor.ModeInsert:
		return ModeInsertColor
	case editor.ModeVisual:
		return ModeVisualColor
	case editor.ModeOperatorPending:
		return ModeOperatorColor
	case editor.ModeDeleteConfirm:
		return ModeConfirmColor
	default:
		return ModeNormalColor
	}
}
