package game

import (
	"time"

	"github.com/ionut-t/hjkl/core"
)

// Event is something that happened in the world on this tick. The TUI pulls
// events to drive effects; the concrete types below are the full set.
type Event any

// CursorMovedEvent fires when a motion actually changed the cursor position.
type CursorMovedEvent struct {
	Position core.Position
	At       time.Time
}

// EnemyDestroyedEvent fires when the cursor lands on an enemy.
type EnemyDestroyedEvent struct {
	Position core.Position
}
