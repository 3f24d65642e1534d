package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuAction is the outcome of a keystroke on the menu screen.
type menuAction int

const (
	menuNoop menuAction = iota
	menuStart
	menuQuit
)

var menuOptions = []string{"Start", "Quit"}

// menuModel is the main menu: two options plus the last round's score.
type menuModel struct {
	selected  int
	lastScore int // -1 until a round has been played
	notice    string
}

func newMenuModel() menuModel {
	return menuModel{lastScore: -1}
}

func (m *menuModel) handleKey(msg tea.KeyMsg) menuAction {
	m.notice = ""

	switch msg.String() {
	case "j", "down":
		if m.selected < len(menuOptions)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "enter":
		if menuOptions[m.selected] == "Start" {
			return menuStart
		}
		return menuQuit
	case "y":
		m.copyScore()
	}
	return menuNoop
}

// copyScore puts a score summary on the system clipboard.
func (m *menuModel) copyScore() {
	if m.lastScore < 0 {
		return
	}
	summary := fmt.Sprintf("%s: intercepted %d enemies", gameTitle, m.lastScore)
	if err := clipboard.WriteAll(summary); err != nil {
		m.notice = "clipboard unavailable"
		return
	}
	m.notice = "score copied"
}

func (m *menuModel) view(theme Theme, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(gameTitle))
	b.WriteString("\n\n")
	b.WriteString(theme.Help.Render(menuTitle))
	b.WriteString("\n\n")

	for i, option := range menuOptions {
		if i == m.selected {
			b.WriteString(theme.MenuSelected.Render("> " + option))
		} else {
			b.WriteString(theme.MenuItem.Render("  " + option))
		}
		b.WriteString("\n")
	}

	if m.lastScore >= 0 {
		b.WriteString("\n")
		b.WriteString(theme.Message.Render(fmt.Sprintf("Last score: %d", m.lastScore)))
		b.WriteString("\n")
		b.WriteString(theme.Help.Render(menuCopyHelp))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Message.Render(m.notice))
	}

	box := theme.Border.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
