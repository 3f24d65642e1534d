package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSession(lines ...string) *Session {
	return NewSession(NewBuffer(lines))
}

func typeKeys(s *Session, input string) RoundSignal {
	signal := SignalNone
	for _, r := range input {
		signal = s.HandleKey(KeyEvent{Rune: r})
	}
	return signal
}

func TestSession_MotionMovesCursor(t *testing.T) {
	s := newTestSession("hello world", "second line")

	typeKeys(s, "3l")
	require.Equal(t, Position{0, 3}, s.Position())

	typeKeys(s, "j")
	require.Equal(t, Position{1, 3}, s.Position())

	typeKeys(s, "0")
	require.Equal(t, Position{1, 0}, s.Position())
}

func TestSession_SearchAndRepeat(t *testing.T) {
	s := newTestSession("hello world")

	typeKeys(s, "fo")
	require.Equal(t, Position{0, 4}, s.Position())

	typeKeys(s, ";")
	require.Equal(t, Position{0, 7}, s.Position())

	typeKeys(s, ",")
	require.Equal(t, Position{0, 4}, s.Position())

	// ',' did not flip the remembered direction.
	typeKeys(s, ";")
	require.Equal(t, Position{0, 7}, s.Position())
}

func TestSession_FailedSearchRecordsNothing(t *testing.T) {
	s := newTestSession("hello world")

	typeKeys(s, "fz")
	require.Equal(t, Position{0, 0}, s.Position())

	// No successful search happened, so ';' is a no-op.
	typeKeys(s, ";")
	require.Equal(t, Position{0, 0}, s.Position())
}

func TestSession_FailedSearchKeepsPreviousSearch(t *testing.T) {
	s := newTestSession("hello world")

	typeKeys(s, "fo")
	require.Equal(t, Position{0, 4}, s.Position())

	// A miss leaves the earlier search intact.
	typeKeys(s, "fz")
	typeKeys(s, ";")
	require.Equal(t, Position{0, 7}, s.Position())
}

func TestSession_TillMotion(t *testing.T) {
	s := newTestSession("hello world")

	typeKeys(s, "to")
	require.Equal(t, Position{0, 3}, s.Position())
}

func TestSession_StickyColumn(t *testing.T) {
	s := newTestSession(
		"a long first line",
		"ok",
		"a long third line",
	)

	typeKeys(s, "9l")
	require.Equal(t, Position{0, 9}, s.Position())

	// Passing through the short line keeps aiming at column 9.
	typeKeys(s, "j")
	require.Equal(t, Position{1, 1}, s.Position())

	typeKeys(s, "j")
	require.Equal(t, Position{2, 9}, s.Position())

	// A horizontal motion re-anchors the column.
	typeKeys(s, "h")
	typeKeys(s, "kk")
	require.Equal(t, Position{0, 8}, s.Position())
}

func TestSession_CommandQuit(t *testing.T) {
	s := newTestSession("hello")

	typeKeys(s, ":q")
	require.Equal(t, CommandMode, s.Mode())
	require.Equal(t, ":q", s.CommandLine())

	signal := s.HandleKey(KeyEvent{Key: KeyEnter})
	require.Equal(t, SignalQuit, signal)
	require.Equal(t, NormalMode, s.Mode())
}

func TestSession_CommandQuitLongForm(t *testing.T) {
	s := newTestSession("hello")

	typeKeys(s, ":quit")
	signal := s.HandleKey(KeyEvent{Key: KeyEnter})
	require.Equal(t, SignalQuit, signal)
}

func TestSession_CommandNewRound(t *testing.T) {
	s := newTestSession("hello")

	typeKeys(s, ":n")
	signal := s.HandleKey(KeyEvent{Key: KeyEnter})
	require.Equal(t, SignalNewRound, signal)
}

func TestSession_UnknownCommand(t *testing.T) {
	s := newTestSession("hello")

	typeKeys(s, ":wq")
	signal := s.HandleKey(KeyEvent{Key: KeyEnter})
	require.Equal(t, SignalNone, signal)
	require.Equal(t, NormalMode, s.Mode())
	require.Contains(t, s.Message(), "wq")

	// The message survives until the next keystroke.
	s.HandleKey(KeyEvent{Rune: 'l'})
	require.Empty(t, s.Message())
}

func TestSession_CommandEscapeCancels(t *testing.T) {
	s := newTestSession("hello")

	typeKeys(s, ":q")
	s.HandleKey(KeyEvent{Key: KeyEscape})
	require.Equal(t, NormalMode, s.Mode())
	require.Empty(t, s.CommandLine())

	// Nothing executed: the next Enter-like input does not quit.
	signal := typeKeys(s, "l")
	require.Equal(t, SignalNone, signal)
}

func TestSession_CommandBackspace(t *testing.T) {
	s := newTestSession("hello")

	typeKeys(s, ":qn")
	s.HandleKey(KeyEvent{Key: KeyBackspace})
	require.Equal(t, ":q", s.CommandLine())

	// Backspacing past the prompt leaves command mode.
	s.HandleKey(KeyEvent{Key: KeyBackspace})
	require.Equal(t, CommandMode, s.Mode())
	s.HandleKey(KeyEvent{Key: KeyBackspace})
	require.Equal(t, NormalMode, s.Mode())
}

func TestSession_MotionKeysAreInertInCommandMode(t *testing.T) {
	s := newTestSession("hello world")

	typeKeys(s, ":jjj")
	require.Equal(t, Position{0, 0}, s.Position())
	require.Equal(t, ":jjj", s.CommandLine())
}

func TestSession_Reset(t *testing.T) {
	s := newTestSession("hello world")

	typeKeys(s, "fo3l")
	require.NotEqual(t, Position{}, s.Position())

	next := NewBuffer([]string{"fresh buffer"})
	s.Reset(next)

	require.Same(t, next, s.Buffer())
	require.Equal(t, Position{}, s.Position())
	require.Equal(t, NormalMode, s.Mode())

	// Search memory did not survive the reset.
	typeKeys(s, ";")
	require.Equal(t, Position{}, s.Position())
}

func TestSession_PendingDisplay(t *testing.T) {
	s := newTestSession("hello")

	typeKeys(s, "2f")
	require.Equal(t, "2f", s.Pending())

	typeKeys(s, "l")
	require.Empty(t, s.Pending())
}
