package game

import (
	"math/rand"
	"time"

	"github.com/ionut-t/hjkl/core"
)

// World ties a round together: the session being played, the enemies on its
// buffer, the score and the events produced since the last pull.
type World struct {
	session *core.Session
	enemies *Enemies
	events  []Event
	score   int
	cfg     Config
	rng     *rand.Rand
}

// NewWorld creates a world for the given configuration. The buffer comes
// from cfg.FilePath when set and readable, otherwise from the generator.
func NewWorld(cfg Config) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		session: core.NewSession(loadOrGenerate(cfg.FilePath, rng)),
		enemies: NewEnemies(cfg.Enemy, time.Now()),
		cfg:     cfg,
		rng:     rng,
	}
	return w
}

func loadOrGenerate(path string, rng *rand.Rand) *core.Buffer {
	if path != "" {
		if b, err := LoadBuffer(path); err == nil {
			return b
		}
	}
	return Generate(rng)
}

// Reset starts a fresh round: new buffer, cursor at the origin, enemies
// back in the pool, score at zero.
func (w *World) Reset() {
	w.session.Reset(loadOrGenerate(w.cfg.FilePath, w.rng))
	w.enemies = NewEnemies(w.cfg.Enemy, time.Now())
	w.events = w.events[:0]
	w.score = 0
}

func (w *World) Session() *core.Session { return w.session }
func (w *World) Buffer() *core.Buffer   { return w.session.Buffer() }
func (w *World) Enemies() *Enemies      { return w.enemies }
func (w *World) Score() int             { return w.score }

// PullEvents consumes all events generated since the last pull.
func (w *World) PullEvents() []Event {
	events := w.events
	w.events = nil
	return events
}

// HandleKey feeds one keystroke to the session, then settles the
// consequences: a cursor-moved event when the position changed and a
// destroy per enemy the cursor landed on. The round signal passes through
// for the host to act on.
func (w *World) HandleKey(key core.KeyEvent) core.RoundSignal {
	oldPos := w.session.Position()
	signal := w.session.HandleKey(key)
	newPos := w.session.Position()

	if newPos != oldPos {
		w.events = append(w.events, CursorMovedEvent{Position: newPos, At: time.Now()})
	}

	for _, hit := range checkCollisions(newPos, w.enemies) {
		w.enemies.Destroy(hit.id)
		w.score++
		w.events = append(w.events, EnemyDestroyedEvent{Position: hit.pos})
	}

	return signal
}

// Tick advances the enemies. Interceptions only happen on player input;
// an enemy wandering onto an idle cursor is not a catch.
func (w *World) Tick(now time.Time) {
	w.enemies.Tick(w.session.Buffer(), w.rng, now)
}
