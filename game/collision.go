package game

import "github.com/ionut-t/hjkl/core"

// collision is a cursor landing exactly on an enemy.
type collision struct {
	pos core.Position
	id  EnemyID
}

// checkCollisions reports every enemy occupying the cursor position.
func checkCollisions(cursor core.Position, enemies *Enemies) []collision {
	var hits []collision
	for _, enemy := range enemies.At(cursor) {
		hits = append(hits, collision{pos: enemy.Pos(), id: enemy.ID()})
	}
	return hits
}
