package game

import "time"

// Config is the top level configuration for the game domain layer.
type Config struct {
	// Enemy behavior tuning.
	Enemy EnemyConfig

	// FilePath is the file to play on. When empty, a random code buffer
	// is generated instead.
	FilePath string

	// Seed for the world's RNG. Zero means seed from the clock.
	Seed int64
}

// EnemyConfig tunes enemy behavior.
type EnemyConfig struct {
	// PoolSize caps how many enemies can be active at once.
	PoolSize int

	// MoveInterval is how often an active enemy relocates.
	MoveInterval time.Duration

	// MoveRadius bounds each relocation in rows and columns.
	MoveRadius int

	// SpawnInterval is how often a pooled enemy is placed on the buffer.
	SpawnInterval time.Duration
}

// DefaultConfig returns the standard game tuning.
func DefaultConfig() Config {
	return Config{
		Enemy: EnemyConfig{
			PoolSize:      32,
			MoveInterval:  2500 * time.Millisecond,
			MoveRadius:    3,
			SpawnInterval: 2 * time.Second,
		},
	}
}
