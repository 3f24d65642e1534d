package tui

import "github.com/charmbracelet/lipgloss"

const (
	gameTitle          = "HJKL: Code Invaders"
	menuTitle          = "Menu"
	fileSelectTitle    = "Select Go File"
	fileSelectHelp     = "Enter path to .go file | Ctrl+R for random | ESC to go back"
	statusInstructions = "':q' to quit, ':n' for new round"
	menuCopyHelp       = "y copies the last score"

	// Both glyphs are one terminal cell wide, keeping buffer columns and
	// screen columns aligned.
	playerChar = "▓"
	enemyChar  = "◆"

	statusBarHeight = 2

	syntaxTheme = "monokai"
)

// Theme groups the lipgloss styles used across the screens.
type Theme struct {
	Title        lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	StatusBar    lipgloss.Style
	ModeNormal   lipgloss.Style
	ModeCommand  lipgloss.Style
	CommandLine  lipgloss.Style
	Message      lipgloss.Style
	Error        lipgloss.Style
	Player       lipgloss.Style
	Enemy        lipgloss.Style
	Collision    lipgloss.Style
	Trail        lipgloss.Style
	Border       lipgloss.Style
	Help         lipgloss.Style
}

var DefaultTheme = Theme{
	Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
	MenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	MenuSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
	StatusBar:    lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	ModeNormal:   lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	ModeCommand:  lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	CommandLine:  lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	Message:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	Player:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	Enemy:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	Collision:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	Trail:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3),
	Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}
