package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/hjkl/core"
	"github.com/ionut-t/hjkl/game"
	"github.com/ionut-t/hjkl/tui/highlighter"
)

// screen identifies the active view.
type screen int

const (
	screenMenu screen = iota
	screenFileSelect
	screenGame
)

const (
	tickRate      = 50 * time.Millisecond
	recentKeysMax = 5

	// trailDepth is how many departed cells get a trail effect per move.
	trailDepth = 4
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the root bubbletea model. It routes keys to the active screen
// and, while a round is running, keeps the world ticking and the viewport
// following the cursor.
type Model struct {
	cfg   game.Config
	theme Theme

	screen screen
	width  int
	height int

	menu       menuModel
	fileSelect fileSelectModel

	world      *game.World
	effects    *Effects
	scroll     scrollState
	vp         viewport.Model
	hl         *highlighter.Highlighter
	recentKeys []string
}

// New creates the root model. When cfg.FilePath is set, the model starts a
// round on it immediately and skips the menu.
func New(cfg game.Config) *Model {
	m := &Model{
		cfg:        cfg,
		theme:      DefaultTheme,
		menu:       newMenuModel(),
		fileSelect: newFileSelectModel(),
		effects:    NewEffects(),
		scroll:     newScrollState(),
		vp:         viewport.New(0, 0),
	}

	if cfg.FilePath != "" {
		m.startRound(cfg.FilePath)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.gameHeight()
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.screen == screenGame {
			m.world.Tick(now)
		}
		m.effects.Cleanup(now)
		return m, tickCmd()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		switch m.menu.handleKey(msg) {
		case menuStart:
			if m.cfg.FilePath != "" {
				m.startRound(m.cfg.FilePath)
			} else {
				m.fileSelect.reset()
				m.screen = screenFileSelect
			}
		case menuQuit:
			return m, tea.Quit
		}
		return m, nil

	case screenFileSelect:
		action, cmd := m.fileSelect.handleKey(msg)
		switch action {
		case fileSelectConfirm:
			m.startRound(m.fileSelect.Path())
		case fileSelectRandom:
			m.startRound("")
		case fileSelectCancel:
			m.screen = screenMenu
		}
		return m, cmd

	default:
		m.handleGameKey(msg)
		return m, nil
	}
}

func (m *Model) handleGameKey(msg tea.KeyMsg) {
	key := convertKey(msg)
	m.recordKey(key)

	switch m.world.HandleKey(key) {
	case core.SignalQuit:
		m.menu.lastScore = m.world.Score()
		m.screen = screenMenu
	case core.SignalNewRound:
		m.fileSelect.reset()
		m.screen = screenFileSelect
	default:
		m.absorbEvents()
	}
}

// recordKey keeps the last few keystrokes for the status bar, the way the
// pending count is echoed in an editor.
func (m *Model) recordKey(key core.KeyEvent) {
	m.recentKeys = append(m.recentKeys, key.String())
	if len(m.recentKeys) > recentKeysMax {
		m.recentKeys = m.recentKeys[len(m.recentKeys)-recentKeysMax:]
	}
}

// absorbEvents turns world events into visual effects. The trail comes from
// the cursor's own position history, so each departed cell fades on its own
// clock; the collision flash is spawned last and wins its cell.
func (m *Model) absorbEvents() {
	for _, event := range m.world.PullEvents() {
		switch e := event.(type) {
		case game.CursorMovedEvent:
			for _, tp := range m.world.Session().Cursor().Trail(trailDepth) {
				m.effects.Spawn(Effect{Kind: EffectTrail, Pos: tp.Pos, At: tp.At})
			}
		case game.EnemyDestroyedEvent:
			m.effects.Spawn(Effect{Kind: EffectCollision, Pos: e.Position, At: time.Now()})
		}
	}
}

// startRound builds a fresh world and switches to the game screen.
func (m *Model) startRound(path string) {
	cfg := m.cfg
	cfg.FilePath = path
	m.world = game.NewWorld(cfg)

	m.hl = highlighter.New("go", syntaxTheme)
	m.hl.SetContent(m.world.Buffer().Lines())

	m.effects = NewEffects()
	m.scroll = newScrollState()
	m.recentKeys = nil
	m.screen = screenGame
}

// gameHeight is the viewport height left after the title and status rows.
func (m *Model) gameHeight() int {
	h := m.height - 1 - statusBarHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) View() string {
	switch m.screen {
	case screenMenu:
		return m.menu.view(m.theme, m.width, m.height)
	case screenFileSelect:
		return m.fileSelect.view(m.theme, m.width, m.height)
	default:
		return m.gameView()
	}
}

func (m *Model) gameView() string {
	now := time.Now()

	cursor := m.world.Session().Position()
	m.scroll.adjust(cursor, m.world.Buffer().LineCount(), m.gameHeight())

	m.vp.Width = m.width
	m.vp.Height = m.gameHeight()
	m.vp.SetContent(m.renderBuffer(now))
	m.vp.SetYOffset(m.scroll.top)

	title := m.theme.Title.Render(" " + gameTitle + " ")
	return title + "\n" + m.vp.View() + "\n" + m.statusView()
}
