package core

// RuntimeConfig contains configuration passed to a game session at start.
// Sessions use it to size the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in terminal cells
	ScreenH  int   // Screen height in terminal cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
