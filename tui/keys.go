package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/hjkl/core"
)

// convertKey translates a bubbletea key into the engine's key event.
func convertKey(msg tea.KeyMsg) core.KeyEvent {
	key := core.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = core.KeyEnter
	case tea.KeySpace:
		key.Key = core.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = core.KeyEscape
	case tea.KeyBackspace:
		key.Key = core.KeyBackspace
	case tea.KeyUp:
		key.Key = core.KeyUp
	case tea.KeyDown:
		key.Key = core.KeyDown
	case tea.KeyLeft:
		key.Key = core.KeyLeft
	case tea.KeyRight:
		key.Key = core.KeyRight
	}

	return key
}
