// Package modal provides confirmation and single-input dialogs.
package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/folio/internal/ui/overlay"
	"github.com/zjrosen/folio/internal/ui/styles"
)

const minWidth = 40

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonDanger                // destructive actions
)

// InputConfig defines the dialog's text field.
type InputConfig struct {
	Label       string
	Placeholder string
	Value       string
	MaxLength   int  // 0 = unlimited
	AllowEmpty  bool // submit even when the field is blank
}

// Config controls modal appearance and behavior.
type Config struct {
	// Tag is echoed in SubmitMsg and CancelMsg so the owner can tell
	// dialogs apart.
	Tag          string
	Title        string
	Message      string
	Details      []string     // extra lines under the message, rendered muted
	Input        *InputConfig // nil for a confirmation dialog
	ConfirmLabel string       // defaults to "Save" with an input, "Confirm" without
	Variant      ButtonVariant
}

// SubmitMsg is sent when the dialog is confirmed. Value is the trimmed
// field text, empty for confirmation dialogs.
type SubmitMsg struct {
	Tag   string
	Value string
}

// CancelMsg is sent when the dialog is dismissed.
type CancelMsg struct {
	Tag string
}

// Field identifies which element is focused.
type Field int

const (
	FieldInput Field = iota
	FieldConfirm
	FieldCancel
)

// Model is the modal component state.
type Model struct {
	config Config
	input  textinput.Model
	focus  Field
	width  int
	height int
}

// New creates a modal. Dialogs with an input start focused on it; others
// start on the confirm button.
func New(cfg Config) Model {
	m := Model{config: cfg, focus: FieldConfirm}
	if cfg.Input != nil {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = cfg.Input.Placeholder
		ti.Width = minWidth - 4
		ti.CharLimit = cfg.Input.MaxLength
		ti.SetValue(cfg.Input.Value)
		ti.Focus()
		m.input = ti
		m.focus = FieldInput
	}
	return m
}

// Init starts the cursor blink for input dialogs.
func (m Model) Init() tea.Cmd {
	if m.hasInput() {
		return textinput.Blink
	}
	return nil
}

// Tag returns the dialog's tag.
func (m Model) Tag() string {
	return m.config.Tag
}

// Focused returns the focused element.
func (m Model) Focused() Field {
	return m.focus
}

// Value returns the current field text.
func (m Model) Value() string {
	return m.input.Value()
}

func (m Model) hasInput() bool {
	return m.config.Input != nil
}

// Update handles messages for the modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, m.cancel()
		case "tab", "down":
			return m.cycle(1), nil
		case "shift+tab", "up":
			return m.cycle(-1), nil
		case "enter":
			if m.focus == FieldCancel {
				return m, m.cancel()
			}
			return m.submit()
		}

		if m.focus != FieldInput {
			switch msg.String() {
			case "left", "h":
				m.focus = FieldConfirm
				return m, nil
			case "right", "l":
				m.focus = FieldCancel
				return m, nil
			case "y":
				if !m.hasInput() {
					return m.submit()
				}
			case "n":
				if !m.hasInput() {
					return m, m.cancel()
				}
			}
			return m, nil
		}
	}

	if m.focus == FieldInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if m.hasInput() && value == "" && !m.config.Input.AllowEmpty {
		return m, nil
	}
	tag := m.config.Tag
	return m, func() tea.Msg { return SubmitMsg{Tag: tag, Value: value} }
}

func (m Model) cancel() tea.Cmd {
	tag := m.config.Tag
	return func() tea.Msg { return CancelMsg{Tag: tag} }
}

// cycle moves focus by step through the input (if any) and the buttons.
func (m Model) cycle(step int) Model {
	order := []Field{FieldConfirm, FieldCancel}
	if m.hasInput() {
		order = []Field{FieldInput, FieldConfirm, FieldCancel}
	}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	m.focus = order[(idx+step+len(order))%len(order)]

	if m.focus == FieldInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// View renders the dialog box.
func (m Model) View() string {
	contentWidth := max(minWidth, lipgloss.Width(m.config.Title))
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	if m.config.Message != "" {
		content.WriteString(lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor).
			Width(contentWidth).
			Render(m.config.Message))
		content.WriteString("\n\n")
	}
	if len(m.config.Details) > 0 {
		content.WriteString(styles.HintStyle.Render(strings.Join(m.config.Details, "\n")))
		content.WriteString("\n\n")
	}
	if m.hasInput() {
		label := m.config.Input.Label
		if label == "" {
			label = "Input"
		}
		content.WriteString(styles.Section{
			Title:   label,
			Rows:    []string{" " + m.input.View()},
			Width:   contentWidth,
			Focused: m.focus == FieldInput,
			Accent:  styles.FormTextInputFocusedBorderColor,
		}.Render())
		content.WriteString("\n\n")
	}
	content.WriteString(m.renderButtons())

	body := titleStyle.Render(m.config.Title) + "\n" + divider + "\n" +
		lipgloss.NewStyle().Padding(1, 1).Render(content.String())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(body)
}

func (m Model) renderButtons() string {
	confirmStyle := styles.PrimaryButtonStyle
	if m.focus == FieldConfirm {
		confirmStyle = styles.PrimaryButtonFocusedStyle
	}
	if m.config.Variant == ButtonDanger {
		confirmStyle = styles.DangerButtonStyle
		if m.focus == FieldConfirm {
			confirmStyle = styles.DangerButtonFocusedStyle
		}
	}

	label := m.config.ConfirmLabel
	if label == "" {
		label = "Confirm"
		if m.hasInput() {
			label = "Save"
		}
	}

	cancelStyle := styles.SecondaryButtonStyle
	if m.focus == FieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}
	return confirmStyle.Render(label) + "  " + cancelStyle.Render("Cancel")
}

// Overlay renders the modal centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// SetSize records the viewport size used to center the overlay.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
