package tui

import (
	"time"

	"github.com/ionut-t/hjkl/core"
)

const (
	collisionEffectTTL = 200 * time.Millisecond
	trailEffectTTL     = 200 * time.Millisecond
)

// EffectKind distinguishes the visual effects drawn over the buffer.
type EffectKind int

const (
	// EffectCollision flashes where an enemy was destroyed.
	EffectCollision EffectKind = iota
	// EffectTrail marks where the cursor recently passed.
	EffectTrail
)

// Effect is a short-lived overlay at one buffer position.
type Effect struct {
	Kind EffectKind
	Pos  core.Position
	At   time.Time
}

// TTL returns how long the effect stays visible.
func (e Effect) TTL() time.Duration {
	if e.Kind == EffectCollision {
		return collisionEffectTTL
	}
	return trailEffectTTL
}

// Elapsed returns how far through its lifetime the effect is, in [0, 1].
func (e Effect) Elapsed(now time.Time) float64 {
	frac := float64(now.Sub(e.At)) / float64(e.TTL())
	return min(max(frac, 0), 1)
}

// Effects holds the active overlays, at most one per position; a newer
// effect replaces an older one on the same cell.
type Effects struct {
	active map[core.Position]Effect
}

func NewEffects() *Effects {
	return &Effects{active: make(map[core.Position]Effect)}
}

func (e *Effects) Spawn(effect Effect) {
	e.active[effect.Pos] = effect
}

// Get returns the effect at pos, if any.
func (e *Effects) Get(pos core.Position) (Effect, bool) {
	effect, ok := e.active[pos]
	return effect, ok
}

func (e *Effects) Len() int {
	return len(e.active)
}

// Cleanup drops effects past their lifetime.
func (e *Effects) Cleanup(now time.Time) {
	for pos, effect := range e.active {
		if now.Sub(effect.At) >= effect.TTL() {
			delete(e.active, pos)
		}
	}
}
