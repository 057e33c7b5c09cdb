package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/unitext/transcode/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// InteractiveCmd shows the UTF-16 code units of the typed text as it
// changes.
type InteractiveCmd struct{}

func (c *InteractiveCmd) Run(_ *zap.Logger) error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type interactiveModel struct {
	err   error
	units []uint16
	input textinput.Model
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type UTF-8 text"
	ti.Prompt = "> "
	ti.Width = 48
	ti.Focus()
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.units, m.err = transcoder.FromString(m.input.Value())
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF-16 Preview"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case len(m.units) == 0:
		b.WriteString(helpStyle.Render("code units appear here"))
	default:
		parts := make([]string, len(m.units))
		for i, u := range m.units {
			parts[i] = fmt.Sprintf("0x%04X", u)
		}
		b.WriteString(unitStyle.Render(strings.Join(parts, " ")))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d units", len(m.units))))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc quit"))
	return b.String()
}
