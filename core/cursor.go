package core

import "time"

// trailLen bounds the remembered position history used for motion trails.
const trailLen = 16

// TrailPoint is a past cursor position with the time it was left.
type TrailPoint struct {
	At  time.Time
	Pos Position
}

// Cursor is the player's position on the buffer, plus the memory needed
// for Vim-like behavior: the preferred column for vertical motions and a
// short trail of recent positions for rendering.
type Cursor struct {
	pos Position

	// preferred is the column vertical motions aim for, so moving through
	// short lines does not lose the horizontal position. -1 means unset.
	preferred int

	trail *boundedQueue[TrailPoint]
}

func NewCursor() *Cursor {
	return &Cursor{
		preferred: -1,
		trail:     newBoundedQueue[TrailPoint](trailLen),
	}
}

// Pos returns the current position.
func (c *Cursor) Pos() Position {
	return c.pos
}

// Trail returns up to n recent positions, oldest first.
func (c *Cursor) Trail(n int) []TrailPoint {
	return c.trail.Last(n)
}

// Reset moves the cursor to the buffer origin and clears its memory.
func (c *Cursor) Reset() {
	c.pos = Position{}
	c.preferred = -1
	c.trail.Clear()
}

// Apply resolves the motion against the buffer and moves the cursor.
// Vertical motions keep aiming at the preferred column; every horizontal
// motion re-anchors it.
func (c *Cursor) Apply(b *Buffer, m Motion, count int) {
	c.trail.Push(TrailPoint{At: time.Now(), Pos: c.pos})

	c.pos = Resolve(b, c.pos, m, count)

	if m.IsVertical() {
		if c.preferred >= 0 {
			c.pos.Col = min(c.preferred, b.lastCol(c.pos.Row))
		}
	} else {
		c.preferred = c.pos.Col
	}
}
