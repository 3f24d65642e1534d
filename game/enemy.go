package game

import (
	"math/rand"
	"time"

	"github.com/ionut-t/hjkl/core"
)

// EnemyID uniquely identifies an enemy across its pool lifetime.
type EnemyID int

// Enemy is a single target on the buffer. It sits still between moves and
// relocates to a nearby printable character every MoveInterval.
type Enemy struct {
	id           EnemyID
	pos          core.Position
	lastMoved    time.Time
	moveInterval time.Duration
	moveRadius   int
}

func newEnemy(id EnemyID, cfg EnemyConfig) *Enemy {
	return &Enemy{
		id:           id,
		moveInterval: cfg.MoveInterval,
		moveRadius:   cfg.MoveRadius,
	}
}

func (e *Enemy) ID() EnemyID        { return e.id }
func (e *Enemy) Pos() core.Position { return e.pos }

// spawn places the enemy and starts its move timer.
func (e *Enemy) spawn(pos core.Position, now time.Time) {
	e.pos = pos
	e.lastMoved = now
}

// tick relocates the enemy when its interval has elapsed. Reports whether
// it moved.
func (e *Enemy) tick(b *core.Buffer, rng *rand.Rand, now time.Time) bool {
	if now.Sub(e.lastMoved) < e.moveInterval {
		return false
	}

	if next, ok := b.RandomPositionNear(rng, e.pos, e.moveRadius, false); ok {
		e.pos = next
	}
	e.lastMoved = now
	return true
}

// Enemies is the collection of targets in the world: the active set, the
// reuse pool and the spawn timer.
type Enemies struct {
	active  map[EnemyID]*Enemy
	pool    *enemyPool
	spawner *spawner
}

func NewEnemies(cfg EnemyConfig, now time.Time) *Enemies {
	return &Enemies{
		active:  make(map[EnemyID]*Enemy),
		pool:    newEnemyPool(cfg),
		spawner: newSpawner(cfg.SpawnInterval, now),
	}
}

// Len returns the number of active enemies.
func (e *Enemies) Len() int {
	return len(e.active)
}

// PositionSet returns the active positions as a lookup set for rendering.
func (e *Enemies) PositionSet() map[core.Position]struct{} {
	out := make(map[core.Position]struct{}, len(e.active))
	for _, enemy := range e.active {
		out[enemy.pos] = struct{}{}
	}
	return out
}

// At returns the active enemies sitting exactly on pos.
func (e *Enemies) At(pos core.Position) []*Enemy {
	var hits []*Enemy
	for _, enemy := range e.active {
		if enemy.pos == pos {
			hits = append(hits, enemy)
		}
	}
	return hits
}

// Tick spawns a pooled enemy when the spawn timer fires and advances every
// active enemy. Spawning silently skips a beat when the pool is exhausted
// or the buffer has no printable characters.
func (e *Enemies) Tick(b *core.Buffer, rng *rand.Rand, now time.Time) {
	if e.spawner.shouldSpawn(now) {
		if enemy := e.pool.take(); enemy != nil {
			if pos, ok := b.RandomPosition(rng, false); ok {
				enemy.spawn(pos, now)
				e.active[enemy.id] = enemy
			} else {
				e.pool.put(enemy)
			}
		}
	}

	for _, enemy := range e.active {
		enemy.tick(b, rng, now)
	}
}

// Destroy removes an active enemy and returns it to the pool.
func (e *Enemies) Destroy(id EnemyID) {
	enemy, ok := e.active[id]
	if !ok {
		return
	}
	delete(e.active, id)
	e.pool.put(enemy)
}
