package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState is the slice of game status the platform needs for
// persistence and input routing.
type GameState struct {
	Score     int    // Current score
	HighScore int    // Best score seen this process (seeded from storage)
	GameOver  bool   // Whether the current life has ended
	Paused    bool   // Whether the game is paused
	InMenu    bool   // Whether the title menu is showing
	Skin      int    // Selected bird skin index
	DarkMode  bool   // Display-mode flag
	Message   string // Terminal message for the last finished life
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// LifeEnded is true only on the tick where the game-over transition happened.
	LifeEnded bool
	// NewHighScore is true when this tick raised the high score.
	NewHighScore bool
}
