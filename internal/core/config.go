package core

// RuntimeConfig contains settings passed to frontends at start-up.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal frontend only)
	ScreenH  int   // Terminal height in characters (terminal frontend only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
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
