package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

// tokenTargets lists the color variables each token sets.
func tokenTargets() map[ColorToken][]*lipgloss.AdaptiveColor {
	return map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:     {&TextPrimaryColor},
		TokenTextSecondary:   {&TextSecondaryColor},
		TokenTextMuted:       {&TextMutedColor},
		TokenTextPlaceholder: {&TextPlaceholderColor},

		TokenBorderDefault: {&BorderDefaultColor},
		TokenBorderFocus:   {&BorderFocusColor},

		TokenStatusSuccess: {&StatusSuccessColor},
		TokenStatusWarning: {&StatusWarningColor},
		TokenStatusError:   {&StatusErrorColor},

		TokenSelectionIndicator: {&SelectionIndicatorColor},

		TokenButtonText:             {&ButtonTextColor},
		TokenButtonPrimaryBg:        {&ButtonPrimaryBgColor},
		TokenButtonPrimaryFocusBg:   {&ButtonPrimaryFocusBgColor},
		TokenButtonSecondaryBg:      {&ButtonSecondaryBgColor},
		TokenButtonSecondaryFocusBg: {&ButtonSecondaryFocusBgColor},
		TokenButtonDangerBg:         {&ButtonDangerBgColor},
		TokenButtonDangerFocusBg:    {&ButtonDangerFocusBgColor},

		TokenFormBorder:      {&FormTextInputBorderColor},
		TokenFormBorderFocus: {&FormTextInputFocusedBorderColor},
		TokenFormLabel:       {&FormTextInputLabelColor},
		TokenFormLabelFocus:  {&FormTextInputFocusedLabelColor},

		TokenOverlayTitle:  {&OverlayTitleColor},
		TokenOverlayBorder: {&OverlayBorderColor},

		TokenToastSuccess: {&ToastBorderSuccessColor},
		TokenToastError:   {&ToastBorderErrorColor},
		TokenToastInfo:    {&ToastBorderInfoColor},
		TokenToastWarn:    {&ToastBorderWarnColor},

		TokenModeNormal:   {&ModeNormalColor},
		TokenModeInsert:   {&ModeInsertColor},
		TokenModeVisual:   {&ModeVisualColor},
		TokenModeOperator: {&ModeOperatorColor},
		TokenModeConfirm:  {&ModeConfirmColor},

		TokenEditorLineNumber:        {&EditorLineNumberColor},
		TokenEditorLineNumberCurrent: {&EditorLineNumberCurrentColor},
		TokenEditorSelection:         {&EditorSelectionColor},
		TokenEditorPending:           {&EditorPendingColor},

		TokenMarkdownHeading:  {&MarkdownHeadingColor},
		TokenMarkdownEmphasis: {&MarkdownEmphasisColor},
		TokenMarkdownCode:     {&MarkdownCodeColor},
		TokenMarkdownLink:     {&MarkdownLinkColor},
		TokenMarkdownList:     {&MarkdownListColor},
		TokenMarkdownQuote:    {&MarkdownQuoteColor},

		TokenSidebarTitle: {&SidebarTitleColor},
		TokenSidebarMeta:  {&SidebarMetaColor},
	}
}

func applyColors(colors map[ColorToken]string) {
	targets := tokenTargets()
	for token, hex := range colors {
		for _, target := range targets[token] {
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// lipgloss.Style captures colors at creation time.
func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	SecondaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonSecondaryBgColor)

	SecondaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonSecondaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	DangerButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonDangerBgColor)

	DangerButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonDangerFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)

	LineNumberStyle = lipgloss.NewStyle().Foreground(EditorLineNumberColor)
	CurrentLineNumberStyle = lipgloss.NewStyle().Foreground(EditorLineNumberCurrentColor).Bold(true)

	SidebarTitleStyle = lipgloss.NewStyle().Foreground(SidebarTitleColor)
	SidebarSelectedStyle = lipgloss.NewStyle().Foreground(SelectionIndicatorColor).Bold(true)
	SidebarMetaStyle = lipgloss.NewStyle().Foreground(SidebarMetaColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
