package game

// enemyPool holds the reusable enemy instances that are not on the board.
type enemyPool struct {
	idle []*Enemy
}

func newEnemyPool(cfg EnemyConfig) *enemyPool {
	p := &enemyPool{idle: make([]*Enemy, 0, cfg.PoolSize)}
	for i := 0; i < cfg.PoolSize; i++ {
		p.idle = append(p.idle, newEnemy(EnemyID(i), cfg))
	}
	return p
}

// take removes an enemy from the pool, or nil when all are active.
func (p *enemyPool) take() *Enemy {
	if len(p.idle) == 0 {
		return nil
	}
	enemy := p.idle[len(p.idle)-1]
	p.idle = p.idle[:len(p.idle)-1]
	return enemy
}

// put returns a destroyed enemy to the pool.
func (p *enemyPool) put(e *Enemy) {
	p.idle = append(p.idle, e)
}
