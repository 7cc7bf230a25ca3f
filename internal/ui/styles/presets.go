package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset mirrors the dark values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default folio theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		// Borders
		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Selection
		TokenSelectionIndicator: "#FFFFFF",

		// Buttons
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDangerBg:         "#922B21",
		TokenButtonDangerFocusBg:    "#E74C3C",

		// Forms
		TokenFormBorder:      "#8C8C8C",
		TokenFormBorderFocus: "#FFFFFF",
		TokenFormLabel:       "#8C8C8C",
		TokenFormLabelFocus:  "#FFFFFF",

		// Overlays/Modals
		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		// Toast notifications
		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",

		// Editor modes
		TokenModeNormal:   "#54A0FF",
		TokenModeInsert:   "#73F59F",
		TokenModeVisual:   "#7D56F4",
		TokenModeOperator: "#FECA57",
		TokenModeConfirm:  "#FF8787",

		// Editor pane
		TokenEditorLineNumber:        "#696969",
		TokenEditorLineNumberCurrent: "#CCCCCC",
		TokenEditorSelection:         "#44475A",
		TokenEditorPending:           "#5C2B2B",

		// Markdown
		TokenMarkdownHeading:  "#54A0FF",
		TokenMarkdownEmphasis: "#CBA6F7",
		TokenMarkdownCode:     "#FAB387",
		TokenMarkdownLink:     "#94E2D5",
		TokenMarkdownList:     "#FECA57",
		TokenMarkdownQuote:    "#999999",

		// Sidebar
		TokenSidebarTitle: "#CCCCCC",
		TokenSidebarMeta:  "#696969",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha theme.
// Colors from https://catppuccin.com/palette (Mocha).
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CDD6F4",
		TokenTextSecondary:   "#BAC2DE",
		TokenTextMuted:       "#6C7086",
		TokenTextPlaceholder: "#585B70",

		// Borders
		TokenBorderDefault: "#6C7086",
		TokenBorderFocus:   "#CDD6F4",

		// Status indicators
		TokenStatusSuccess: "#A6E3A1",
		TokenStatusWarning: "#F9E2AF",
		TokenStatusError:   "#F38BA8",

		// Selection
		TokenSelectionIndicator: "#CDD6F4",

		// Buttons
		TokenButtonText:             "#1E1E2E",
		TokenButtonPrimaryBg:        "#89B4FA",
		TokenButtonPrimaryFocusBg:   "#B4BEFE",
		TokenButtonSecondaryBg:      "#45475A",
		TokenButtonSecondaryFocusBg: "#585B70",
		TokenButtonDangerBg:         "#F38BA8",
		TokenButtonDangerFocusBg:    "#EBA0AC",

		// Forms
		TokenFormBorder:      "#6C7086",
		TokenFormBorderFocus: "#CDD6F4",
		TokenFormLabel:       "#A6ADC8",
		TokenFormLabelFocus:  "#CDD6F4",

		// Overlays/Modals
		TokenOverlayTitle:  "#CDD6F4",
		TokenOverlayBorder: "#6C7086",

		// Toast notifications
		TokenToastSuccess: "#A6E3A1",
		TokenToastError:   "#F38BA8",
		TokenToastInfo:    "#89B4FA",
		TokenToastWarn:    "#F9E2AF",

		// Editor modes
		TokenModeNormal:   "#89B4FA",
		TokenModeInsert:   "#A6E3A1",
		TokenModeVisual:   "#CBA6F7",
		TokenModeOperator: "#F9E2AF",
		TokenModeConfirm:  "#F38BA8",

		// Editor pane
		TokenEditorLineNumber:        "#6C7086",
		TokenEditorLineNumberCurrent: "#CDD6F4",
		TokenEditorSelection:         "#45475A",
		TokenEditorPending:           "#5A3344",

		// Markdown
		TokenMarkdownHeading:  "#89B4FA",
		TokenMarkdownEmphasis: "#CBA6F7",
		TokenMarkdownCode:     "#FAB387",
		TokenMarkdownLink:     "#94E2D5",
		TokenMarkdownList:     "#F9E2AF",
		TokenMarkdownQuote:    "#A6ADC8",

		// Sidebar
		TokenSidebarTitle: "#CDD6F4",
		TokenSidebarMeta:  "#6C7086",
	},
}

// CatppuccinLattePreset is the Catppuccin Latte theme.
// Colors from https://catppuccin.com/palette (Latte).
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#4C4F69",
		TokenTextSecondary:   "#5C5F77",
		TokenTextMuted:       "#9CA0B0",
		TokenTextPlaceholder: "#ACB0BE",

		// Borders
		TokenBorderDefault: "#9CA0B0",
		TokenBorderFocus:   "#4C4F69",

		// Status indicators
		TokenStatusSuccess: "#40A02B",
		TokenStatusWarning: "#DF8E1D",
		TokenStatusError:   "#D20F39",

		// Selection
		TokenSelectionIndicator: "#4C4F69",

		// Buttons
		TokenButtonText:             "#EFF1F5",
		TokenButtonPrimaryBg:        "#1E66F5",
		TokenButtonPrimaryFocusBg:   "#7287FD",
		TokenButtonSecondaryBg:      "#BCC0CC",
		TokenButtonSecondaryFocusBg: "#ACB0BE",
		TokenButtonDangerBg:         "#D20F39",
		TokenButtonDangerFocusBg:    "#E64553",

		// Forms
		TokenFormBorder:      "#9CA0B0",
		TokenFormBorderFocus: "#4C4F69",
		TokenFormLabel:       "#6C6F85",
		TokenFormLabelFocus:  "#4C4F69",

		// Overlays/Modals
		TokenOverlayTitle:  "#4C4F69",
		TokenOverlayBorder: "#9CA0B0",

		// Toast notifications
		TokenToastSuccess: "#40A02B",
		TokenToastError:   "#D20F39",
		TokenToastInfo:    "#1E66F5",
		TokenToastWarn:    "#DF8E1D",

		// Editor modes
		TokenModeNormal:   "#1E66F5",
		TokenModeInsert:   "#40A02B",
		TokenModeVisual:   "#8839EF",
		TokenModeOperator: "#DF8E1D",
		TokenModeConfirm:  "#D20F39",

		// Editor pane
		TokenEditorLineNumber:        "#9CA0B0",
		TokenEditorLineNumberCurrent: "#4C4F69",
		TokenEditorSelection:         "#CCD0DA",
		TokenEditorPending:           "#F2C7CF",

		// Markdown
		TokenMarkdownHeading:  "#1E66F5",
		TokenMarkdownEmphasis: "#8839EF",
		TokenMarkdownCode:     "#FE640B",
		TokenMarkdownLink:     "#179299",
		TokenMarkdownList:     "#DF8E1D",
		TokenMarkdownQuote:    "#6C6F85",

		// Sidebar
		TokenSidebarTitle: "#4C4F69",
		TokenSidebarMeta:  "#9CA0B0",
	},
}

// DraculaPreset is the Dracula theme.
// Colors from https://draculatheme.com/contribute.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#F8F8F2",
		TokenTextSecondary:   "#E0E0E0",
		TokenTextMuted:       "#6272A4",
		TokenTextPlaceholder: "#6272A4",

		// Borders
		TokenBorderDefault: "#6272A4",
		TokenBorderFocus:   "#F8F8F2",

		// Status indicators
		TokenStatusSuccess: "#50FA7B",
		TokenStatusWarning: "#F1FA8C",
		TokenStatusError:   "#FF5555",

		// Selection
		TokenSelectionIndicator: "#F8F8F2",

		// Buttons
		TokenButtonText:             "#282A36",
		TokenButtonPrimaryBg:        "#BD93F9",
		TokenButtonPrimaryFocusBg:   "#FF79C6",
		TokenButtonSecondaryBg:      "#44475A",
		TokenButtonSecondaryFocusBg: "#6272A4",
		TokenButtonDangerBg:         "#FF5555",
		TokenButtonDangerFocusBg:    "#FF6E6E",

		// Forms
		TokenFormBorder:      "#6272A4",
		TokenFormBorderFocus: "#F8F8F2",
		TokenFormLabel:       "#6272A4",
		TokenFormLabelFocus:  "#F8F8F2",

		// Overlays/Modals
		TokenOverlayTitle:  "#F8F8F2",
		TokenOverlayBorder: "#6272A4",

		// Toast notifications
		TokenToastSuccess: "#50FA7B",
		TokenToastError:   "#FF5555",
		TokenToastInfo:    "#8BE9FD",
		TokenToastWarn:    "#F1FA8C",

		// Editor modes
		TokenModeNormal:   "#BD93F9",
		TokenModeInsert:   "#50FA7B",
		TokenModeVisual:   "#FF79C6",
		TokenModeOperator: "#F1FA8C",
		TokenModeConfirm:  "#FF5555",

		// Editor pane
		TokenEditorLineNumber:        "#6272A4",
		TokenEditorLineNumberCurrent: "#F8F8F2",
		TokenEditorSelection:         "#44475A",
		TokenEditorPending:           "#5C2A33",

		// Markdown
		TokenMarkdownHeading:  "#BD93F9",
		TokenMarkdownEmphasis: "#FF79C6",
		TokenMarkdownCode:     "#FFB86C",
		TokenMarkdownLink:     "#8BE9FD",
		TokenMarkdownList:     "#F1FA8C",
		TokenMarkdownQuote:    "#6272A4",

		// Sidebar
		TokenSidebarTitle: "#F8F8F2",
		TokenSidebarMeta:  "#6272A4",
	},
}

// NordPreset is the Nord theme.
// Colors from https://www.nordtheme.com/docs/colors-and-palettes.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#ECEFF4",
		TokenTextSecondary:   "#E5E9F0",
		TokenTextMuted:       "#4C566A",
		TokenTextPlaceholder: "#4C566A",

		// Borders
		TokenBorderDefault: "#4C566A",
		TokenBorderFocus:   "#ECEFF4",

		// Status indicators
		TokenStatusSuccess: "#A3BE8C",
		TokenStatusWarning: "#EBCB8B",
		TokenStatusError:   "#BF616A",

		// Selection
		TokenSelectionIndicator: "#ECEFF4",

		// Buttons
		TokenButtonText:             "#2E3440",
		TokenButtonPrimaryBg:        "#88C0D0",
		TokenButtonPrimaryFocusBg:   "#8FBCBB",
		TokenButtonSecondaryBg:      "#434C5E",
		TokenButtonSecondaryFocusBg: "#4C566A",
		TokenButtonDangerBg:         "#BF616A",
		TokenButtonDangerFocusBg:    "#D08770",

		// Forms
		TokenFormBorder:      "#4C566A",
		TokenFormBorderFocus: "#ECEFF4",
		TokenFormLabel:       "#D8DEE9",
		TokenFormLabelFocus:  "#ECEFF4",

		// Overlays/Modals
		TokenOverlayTitle:  "#ECEFF4",
		TokenOverlayBorder: "#4C566A",

		// Toast notifications
		TokenToastSuccess: "#A3BE8C",
		TokenToastError:   "#BF616A",
		TokenToastInfo:    "#81A1C1",
		TokenToastWarn:    "#EBCB8B",

		// Editor modes
		TokenModeNormal:   "#81A1C1",
		TokenModeInsert:   "#A3BE8C",
		TokenModeVisual:   "#B48EAD",
		TokenModeOperator: "#EBCB8B",
		TokenModeConfirm:  "#BF616A",

		// Editor pane
		TokenEditorLineNumber:        "#4C566A",
		TokenEditorLineNumberCurrent: "#ECEFF4",
		TokenEditorSelection:         "#434C5E",
		TokenEditorPending:           "#5E3A40",

		// Markdown
		TokenMarkdownHeading:  "#88C0D0",
		TokenMarkdownEmphasis: "#B48EAD",
		TokenMarkdownCode:     "#D08770",
		TokenMarkdownLink:     "#8FBCBB",
		TokenMarkdownList:     "#EBCB8B",
		TokenMarkdownQuote:    "#D8DEE9",

		// Sidebar
		TokenSidebarTitle: "#ECEFF4",
		TokenSidebarMeta:  "#4C566A",
	},
}

// HighContrastPreset is the High contrast for accessibility theme.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#BBBBBB",
		TokenTextPlaceholder: "#AAAAAA",

		// Borders
		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		// Status indicators
		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		// Selection
		TokenSelectionIndicator: "#FFFF00",

		// Buttons
		TokenButtonText:             "#000000",
		TokenButtonPrimaryBg:        "#00FFFF",
		TokenButtonPrimaryFocusBg:   "#FFFFFF",
		TokenButtonSecondaryBg:      "#808080",
		TokenButtonSecondaryFocusBg: "#C0C0C0",
		TokenButtonDangerBg:         "#FF0000",
		TokenButtonDangerFocusBg:    "#FF6666",

		// Forms
		TokenFormBorder:      "#FFFFFF",
		TokenFormBorderFocus: "#FFFF00",
		TokenFormLabel:       "#FFFFFF",
		TokenFormLabelFocus:  "#FFFF00",

		// Overlays/Modals
		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		// Toast notifications
		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",

		// Editor modes
		TokenModeNormal:   "#00FFFF",
		TokenModeInsert:   "#00FF00",
		TokenModeVisual:   "#FF00FF",
		TokenModeOperator: "#FFFF00",
		TokenModeConfirm:  "#FF0000",

		// Editor pane
		TokenEditorLineNumber:        "#BBBBBB",
		TokenEditorLineNumberCurrent: "#FFFFFF",
		TokenEditorSelection:         "#0000AA",
		TokenEditorPending:           "#AA0000",

		// Markdown
		TokenMarkdownHeading:  "#00FFFF",
		TokenMarkdownEmphasis: "#FF00FF",
		TokenMarkdownCode:     "#FFFF00",
		TokenMarkdownLink:     "#00FF00",
		TokenMarkdownList:     "#FFFFFF",
		TokenMarkdownQuote:    "#BBBBBB",

		// Sidebar
		TokenSidebarTitle: "#FFFFFF",
		TokenSidebarMeta:  "#BBBBBB",
	},
}
