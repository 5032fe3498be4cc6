package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/luthier/pkg/convert"
	"github.com/matzehuels/luthier/pkg/errors"
	"github.com/matzehuels/luthier/pkg/ruler"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	cursorStyle = lipgloss.NewStyle().Foreground(colorCyan)
	helpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ConvertModel - Live measurement converter
// =============================================================================

// ConvertModel is the bubbletea model for the interactive converter. Every
// edit re-runs the conversion.
type ConvertModel struct {
	Input  string
	Opts   ruler.Options
	Result *convert.Conversion
	Err    error
}

// NewConvertModel creates a converter with an empty input.
func NewConvertModel(opts ruler.Options) ConvertModel {
	return ConvertModel{Opts: opts}
}

func (m ConvertModel) Init() tea.Cmd {
	return nil
}

func (m ConvertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.Input = ""
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(key.Runes)
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// refresh recomputes the result for the current input.
func (m *ConvertModel) refresh() {
	m.Result, m.Err = nil, nil
	if strings.TrimSpace(m.Input) == "" {
		return
	}
	c, err := convert.Convert(m.Input, m.Opts)
	if err != nil {
		m.Err = err
		return
	}
	m.Result = &c
}

func (m ConvertModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Luthier converter"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type a length (25.5in, 648mm, 1 3/4, 5')  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(promptStyle.Render("> "))
	b.WriteString(m.Input)
	b.WriteString(cursorStyle.Render("█"))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(StyleError.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
	case m.Result != nil:
		b.WriteString(reportTable(*m.Result))
		b.WriteString("\n")
	}

	return b.String()
}

// interactiveCommand creates the interactive command.
func (c *CLI) interactiveCommand() *cobra.Command {
	var ro rulerOpts

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Convert lengths as you type",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewConvertModel(c.rulerOptions(cmd, ro))
			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}

	ro.register(cmd)
	return cmd
}
