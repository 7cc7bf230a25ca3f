package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zjrosen/folio/internal/config"
	"github.com/zjrosen/folio/internal/editor"
	"github.com/zjrosen/folio/internal/ui/noteeditor"
	"github.com/zjrosen/folio/internal/ui/styles"
)

var scratchCmd = &cobra.Command{
	Use:   "scratch",
	Short: "Open the editor on an unsaved scratch buffer",
	Long: `Open the modal editor on an in-memory buffer to try out key bindings.
Nothing is written to disk. Press ctrl+q to leave.`,
	Args: cobra.NoArgs,
	RunE: runScratch,
}

func init() {
	rootCmd.AddCommand(scratchCmd)
}

const scratchText = `# Scratch

Try dd, dw and db: each asks for confirmation.
- yy then p duplicates a line
- v selects, d deletes the selection
- u undoes, ctrl+r redoes
`

// scratchModel hosts a lone editor pane.
type scratchModel struct {
	editor noteeditor.Model
	width  int
	height int
}

func newScratchModel(cfg config.Config) scratchModel {
	ed := noteeditor.New(editor.New(cfg.EngineConfig()),
		noteeditor.WithLineNumbers(cfg.Editor.LineNumbers),
		noteeditor.WithTabWidth(cfg.Editor.TabWidth),
	)
	return scratchModel{editor: ed.Load("scratch", scratchText, editor.Position{})}
}

func (m scratchModel) Init() tea.Cmd {
	return nil
}

func (m scratchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor.SetSize(msg.Width, max(msg.Height-1, 1))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m scratchModel) View() string {
	status := m.editor.ModeIndicator() + styles.StatusBarStyle.Render(m.editor.Position()+"  ctrl+q quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.editor.View(), status)
}

func runScratch(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newScratchModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running scratch editor: %w", err)
	}
	return nil
}
