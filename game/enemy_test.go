package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ionut-t/hjkl/core"
)

func testEnemyConfig() EnemyConfig {
	return EnemyConfig{
		PoolSize:      2,
		MoveInterval:  100 * time.Millisecond,
		MoveRadius:    3,
		SpawnInterval: time.Second,
	}
}

func TestEnemyPool_Exhaustion(t *testing.T) {
	p := newEnemyPool(testEnemyConfig())

	first := p.take()
	second := p.take()
	require.NotNil(t, first)
	require.NotNil(t, second)
	require.NotEqual(t, first.ID(), second.ID())

	require.Nil(t, p.take())

	p.put(first)
	require.NotNil(t, p.take())
}

func TestSpawner_Pacing(t *testing.T) {
	now := time.Now()
	s := newSpawner(time.Second, now)

	require.False(t, s.shouldSpawn(now))
	require.False(t, s.shouldSpawn(now.Add(999*time.Millisecond)))
	require.True(t, s.shouldSpawn(now.Add(time.Second)))

	// The timer restarts after each spawn.
	require.False(t, s.shouldSpawn(now.Add(1500*time.Millisecond)))
	require.True(t, s.shouldSpawn(now.Add(2*time.Second)))
}

func TestEnemies_TickSpawnsFromPool(t *testing.T) {
	cfg := testEnemyConfig()
	b := core.NewBuffer([]string{"some text to stand on"})
	rng := rand.New(rand.NewSource(7))
	now := time.Now()

	e := NewEnemies(cfg, now)
	require.Zero(t, e.Len())

	e.Tick(b, rng, now.Add(cfg.SpawnInterval))
	require.Equal(t, 1, e.Len())

	// Enemies spawn on printable characters only.
	for pos := range e.PositionSet() {
		require.False(t, b.IsSpace(pos))
	}

	// Pool of two runs dry on the third spawn.
	e.Tick(b, rng, now.Add(2*cfg.SpawnInterval))
	e.Tick(b, rng, now.Add(3*cfg.SpawnInterval))
	require.Equal(t, 2, e.Len())
}

func TestEnemies_DestroyReturnsToPool(t *testing.T) {
	cfg := testEnemyConfig()
	b := core.NewBuffer([]string{"some text to stand on"})
	rng := rand.New(rand.NewSource(7))
	now := time.Now()

	e := NewEnemies(cfg, now)
	e.Tick(b, rng, now.Add(cfg.SpawnInterval))
	e.Tick(b, rng, now.Add(2*cfg.SpawnInterval))
	require.Equal(t, 2, e.Len())

	var id EnemyID
	for _, enemy := range e.active {
		id = enemy.ID()
		break
	}
	e.Destroy(id)
	require.Equal(t, 1, e.Len())

	// The destroyed enemy is reusable.
	e.Tick(b, rng, now.Add(3*cfg.SpawnInterval))
	require.Equal(t, 2, e.Len())

	// Destroying an unknown id is harmless.
	e.Destroy(EnemyID(99))
	require.Equal(t, 2, e.Len())
}

func TestEnemy_TickMovesWithinRadius(t *testing.T) {
	cfg := testEnemyConfig()
	b := core.NewBuffer([]string{
		"0123456789abcdefghij",
		"0123456789abcdefghij",
		"0123456789abcdefghij",
	})
	rng := rand.New(rand.NewSource(3))
	now := time.Now()

	enemy := newEnemy(0, cfg)
	start := core.Position{Row: 1, Col: 10}
	enemy.spawn(start, now)

	require.False(t, enemy.tick(b, rng, now.Add(cfg.MoveInterval/2)))
	require.Equal(t, start, enemy.Pos())

	require.True(t, enemy.tick(b, rng, now.Add(cfg.MoveInterval)))
	pos := enemy.Pos()
	require.LessOrEqual(t, abs(pos.Row-start.Row), cfg.MoveRadius)
	require.LessOrEqual(t, abs(pos.Col-start.Col), cfg.MoveRadius)
}

func TestEnemies_PositionSet(t *testing.T) {
	cfg := testEnemyConfig()
	now := time.Now()

	e := NewEnemies(cfg, now)
	enemy := newEnemy(0, cfg)
	enemy.spawn(core.Position{Row: 0, Col: 3}, now)
	e.active[enemy.ID()] = enemy

	set := e.PositionSet()
	_, ok := set[core.Position{Row: 0, Col: 3}]
	require.True(t, ok)
	require.Len(t, set, 1)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
