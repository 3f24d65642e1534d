package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fileSelectAction is the outcome of a keystroke on the file select screen.
type fileSelectAction int

const (
	fileSelectNoop fileSelectAction = iota
	fileSelectConfirm
	fileSelectRandom
	fileSelectCancel
)

// fileSelectModel asks for a .go file to play on, or a random buffer.
type fileSelectModel struct {
	input  textinput.Model
	errMsg string
}

func newFileSelectModel() fileSelectModel {
	input := textinput.New()
	input.Placeholder = "path/to/file.go"
	input.CharLimit = 256
	input.Focus()

	return fileSelectModel{input: input}
}

// Path returns the confirmed file path.
func (m *fileSelectModel) Path() string {
	return strings.TrimSpace(m.input.Value())
}

func (m *fileSelectModel) reset() {
	m.input.SetValue("")
	m.errMsg = ""
	m.input.Focus()
}

func (m *fileSelectModel) handleKey(msg tea.KeyMsg) (fileSelectAction, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlR:
		return fileSelectRandom, nil

	case tea.KeyEsc:
		return fileSelectCancel, nil

	case tea.KeyEnter:
		path := m.Path()
		switch {
		case path == "":
			m.errMsg = "please enter a file path"
			return fileSelectNoop, nil
		case !strings.HasSuffix(path, ".go"):
			m.errMsg = "file must be a .go file"
			return fileSelectNoop, nil
		default:
			return fileSelectConfirm, nil
		}
	}

	m.errMsg = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return fileSelectNoop, cmd
}

func (m *fileSelectModel) view(theme Theme, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(fileSelectTitle))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Help.Render(fileSelectHelp))

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Error.Render(m.errMsg))
	}

	box := theme.Border.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
