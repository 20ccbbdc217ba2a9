package core

// RuntimeConfig carries host settings into a game session.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	Seed       int64  // RNG seed; 0 means pick one from the clock
	Randomizer string // Registered randomizer name
	Player     string // Name recorded with archived scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0,
		Randomizer: "uniform",
		Player:     "local",
	}
}
