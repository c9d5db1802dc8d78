package core

// RuntimeConfig contains configuration passed to a session at start.
// Screen geometry and title are presentation only; Seed drives every
// pseudo-random choice so a session can be replayed.
type RuntimeConfig struct {
	Title    string // Window/program title
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second (default 60)
	Seed     int64  // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Title:    "Bomber",
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
