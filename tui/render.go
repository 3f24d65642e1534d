package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/hjkl/core"
)

// renderBuffer draws the whole buffer with syntax colors, then overlays the
// game sprites cell by cell: effects win over the player, the player over
// enemies, enemies over text.
func (m *Model) renderBuffer(now time.Time) string {
	buf := m.world.Buffer()
	cursor := m.world.Session().Position()
	enemies := m.world.Enemies().PositionSet()

	var b strings.Builder
	for row := 0; row < buf.LineCount(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}

		line := buf.Line(row)
		styles := m.hl.LineStyles(row, len(line))

		// An empty line still gets one cell so the cursor is visible on it.
		width := max(len(line), 1)
		for col := 0; col < width; col++ {
			pos := core.Position{Row: row, Col: col}

			switch {
			case m.drawEffect(&b, pos, now):

			case pos == cursor:
				b.WriteString(m.theme.Player.Render(playerChar))

			case contains(enemies, pos):
				b.WriteString(m.theme.Enemy.Render(enemyChar))

			case col < len(line):
				b.WriteString(styles[col].Render(string(line[col])))

			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// drawEffect renders the effect overlay at pos, if one is active.
func (m *Model) drawEffect(b *strings.Builder, pos core.Position, now time.Time) bool {
	effect, ok := m.effects.Get(pos)
	if !ok {
		return false
	}

	switch effect.Kind {
	case EffectCollision:
		b.WriteString(m.theme.Collision.Render("*"))
	default:
		// The trail dims in its second half.
		char := "•"
		if effect.Elapsed(now) > 0.5 {
			char = "·"
		}
		b.WriteString(m.theme.Trail.Render(char))
	}
	return true
}

func contains(set map[core.Position]struct{}, pos core.Position) bool {
	_, ok := set[pos]
	return ok
}

// statusView renders the two status rows: mode/score line and command line.
func (m *Model) statusView() string {
	session := m.world.Session()
	cursor := session.Position()

	var mode string
	if session.Mode() == core.CommandMode {
		mode = m.theme.ModeCommand.Render(" COMMAND ")
	} else {
		mode = m.theme.ModeNormal.Render(" NORMAL ")
	}

	info := strings.Builder{}
	info.WriteString(" Score: ")
	info.WriteString(strconv.Itoa(m.world.Score()))
	info.WriteString(" | Enemies: ")
	info.WriteString(strconv.Itoa(m.world.Enemies().Len()))
	info.WriteString(" | ")
	info.WriteString(strconv.Itoa(cursor.Row + 1))
	info.WriteString(":")
	info.WriteString(strconv.Itoa(cursor.Col + 1))
	if len(m.recentKeys) > 0 {
		info.WriteString(" | [")
		info.WriteString(strings.Join(m.recentKeys, " "))
		info.WriteString("]")
	}
	info.WriteString(" | ")
	info.WriteString(statusInstructions)

	status := mode + m.theme.StatusBar.Render(info.String())
	if pad := m.width - lipgloss.Width(status); pad > 0 {
		status += m.theme.StatusBar.Render(strings.Repeat(" ", pad))
	}

	commandLine := session.CommandLine()
	if commandLine == "" {
		commandLine = session.Pending()
	}
	if msg := session.Message(); msg != "" {
		commandLine = m.theme.Error.Render(msg)
	}
	if pad := m.width - lipgloss.Width(commandLine); pad > 0 {
		commandLine += m.theme.CommandLine.Render(strings.Repeat(" ", pad))
	}

	return status + "\n" + commandLine
}
