package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ionut-t/hjkl/core"
)

func newTestWorld() *World {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return NewWorld(cfg)
}

func pressKeys(w *World, input string) core.RoundSignal {
	signal := core.SignalNone
	for _, r := range input {
		signal = w.HandleKey(core.KeyEvent{Rune: r})
	}
	return signal
}

func placeEnemy(w *World, pos core.Position) EnemyID {
	enemy := newEnemy(EnemyID(99), w.cfg.Enemy)
	enemy.spawn(pos, time.Now())
	w.enemies.active[enemy.ID()] = enemy
	return enemy.ID()
}

func TestNewWorld_GeneratesBuffer(t *testing.T) {
	w := newTestWorld()

	require.Positive(t, w.Buffer().LineCount())
	require.Zero(t, w.Score())
	require.Equal(t, core.Position{}, w.Session().Position())
}

func TestWorld_MotionEmitsCursorMoved(t *testing.T) {
	w := newTestWorld()

	pressKeys(w, "l")
	events := w.PullEvents()
	require.Len(t, events, 1)

	moved, ok := events[0].(CursorMovedEvent)
	require.True(t, ok)
	require.Equal(t, core.Position{Row: 0, Col: 1}, moved.Position)
	require.False(t, moved.At.IsZero())

	// Events are consumed by the pull.
	require.Empty(t, w.PullEvents())
}

func TestWorld_NoEventWhenCursorStuck(t *testing.T) {
	w := newTestWorld()

	// h at the origin cannot move.
	pressKeys(w, "h")
	require.Empty(t, w.PullEvents())
}

func TestWorld_CursorCatchesEnemy(t *testing.T) {
	w := newTestWorld()
	placeEnemy(w, core.Position{Row: 0, Col: 1})

	pressKeys(w, "l")

	require.Equal(t, 1, w.Score())
	require.Zero(t, w.Enemies().Len())

	events := w.PullEvents()
	require.Len(t, events, 2)
	destroyed, ok := events[1].(EnemyDestroyedEvent)
	require.True(t, ok)
	require.Equal(t, core.Position{Row: 0, Col: 1}, destroyed.Position)
}

func TestWorld_MissLeavesEnemyAlone(t *testing.T) {
	w := newTestWorld()
	placeEnemy(w, core.Position{Row: 0, Col: 5})

	pressKeys(w, "l")

	require.Zero(t, w.Score())
	require.Equal(t, 1, w.Enemies().Len())
}

func TestWorld_TickSpawnsEnemies(t *testing.T) {
	w := newTestWorld()

	w.Tick(time.Now().Add(w.cfg.Enemy.SpawnInterval + time.Second))
	require.Equal(t, 1, w.Enemies().Len())
}

func TestWorld_QuitSignal(t *testing.T) {
	w := newTestWorld()

	pressKeys(w, ":q")
	signal := w.HandleKey(core.KeyEvent{Key: core.KeyEnter})
	require.Equal(t, core.SignalQuit, signal)
}

func TestWorld_NewRoundSignalAndReset(t *testing.T) {
	w := newTestWorld()
	placeEnemy(w, core.Position{Row: 0, Col: 1})
	pressKeys(w, "l")
	require.Equal(t, 1, w.Score())

	pressKeys(w, ":n")
	signal := w.HandleKey(core.KeyEvent{Key: core.KeyEnter})
	require.Equal(t, core.SignalNewRound, signal)

	w.Reset()
	require.Zero(t, w.Score())
	require.Zero(t, w.Enemies().Len())
	require.Equal(t, core.Position{}, w.Session().Position())
	require.Empty(t, w.PullEvents())
}

func TestWorld_LoadsFileWhenConfigured(t *testing.T) {
	path := writeTempFile(t, "alpha beta\ngamma\n")

	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.FilePath = path
	w := NewWorld(cfg)

	require.Equal(t, []string{"alpha beta", "gamma"}, w.Buffer().Lines())
}

func TestWorld_FallsBackToGeneratorOnBadPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.FilePath = "/does/not/exist.go"
	w := NewWorld(cfg)

	require.Positive(t, w.Buffer().LineCount())
}
