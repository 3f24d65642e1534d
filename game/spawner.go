package game

import "time"

// spawner paces enemy spawns.
type spawner struct {
	lastSpawn time.Time
	interval  time.Duration
}

func newSpawner(interval time.Duration, now time.Time) *spawner {
	return &spawner{lastSpawn: now, interval: interval}
}

func (s *spawner) shouldSpawn(now time.Time) bool {
	if now.Sub(s.lastSpawn) < s.interval {
		return false
	}
	s.lastSpawn = now
	return true
}
