// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator ColorToken = "selection.indicator"

	// Buttons
	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"
	TokenButtonDangerBg         ColorToken = "button.danger.bg"
	TokenButtonDangerFocusBg    ColorToken = "button.danger.focus"

	// Forms
	TokenFormBorder      ColorToken = "form.border"
	TokenFormBorderFocus ColorToken = "form.border.focus" //nolint:gosec // UI color token, not credentials
	TokenFormLabel       ColorToken = "form.label"
	TokenFormLabelFocus  ColorToken = "form.label.focus"

	// Overlays/Modals
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	// Editor modes
	TokenModeNormal   ColorToken = "mode.normal"
	TokenModeInsert   ColorToken = "mode.insert"
	TokenModeVisual   ColorToken = "mode.visual"
	TokenModeOperator ColorToken = "mode.operator"
	TokenModeConfirm  ColorToken = "mode.confirm"

	// Editor pane
	TokenEditorLineNumber        ColorToken = "editor.line_number"
	TokenEditorLineNumberCurrent ColorToken = "editor.line_number.current"
	TokenEditorSelection         ColorToken = "editor.selection"
	TokenEditorPending           ColorToken = "editor.pending"

	// Markdown highlighting in the editor
	TokenMarkdownHeading  ColorToken = "markdown.heading"
	TokenMarkdownEmphasis ColorToken = "markdown.emphasis"
	TokenMarkdownCode     ColorToken = "markdown.code"
	TokenMarkdownLink     ColorToken = "markdown.link"
	TokenMarkdownList     ColorToken = "markdown.list"
	TokenMarkdownQuote    ColorToken = "markdown.quote"

	// Sidebar
	TokenSidebarTitle ColorToken = "sidebar.title"
	TokenSidebarMeta  ColorToken = "sidebar.meta"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenSelectionIndicator,

		TokenButtonText,
		TokenButtonPrimaryBg,
		TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg,
		TokenButtonSecondaryFocusBg,
		TokenButtonDangerBg,
		TokenButtonDangerFocusBg,

		TokenFormBorder,
		TokenFormBorderFocus,
		TokenFormLabel,
		TokenFormLabelFocus,

		TokenOverlayTitle,
		TokenOverlayBorder,

		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,

		TokenModeNormal,
		TokenModeInsert,
		TokenModeVisual,
		TokenModeOperator,
		TokenModeConfirm,

		TokenEditorLineNumber,
		TokenEditorLineNumberCurrent,
		TokenEditorSelection,
		TokenEditorPending,

		TokenMarkdownHeading,
		TokenMarkdownEmphasis,
		TokenMarkdownCode,
		TokenMarkdownLink,
		TokenMarkdownList,
		TokenMarkdownQuote,

		TokenSidebarTitle,
		TokenSidebarMeta,
	}
}
