package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what a game reports back to the platform after each tick.
type GameState struct {
	Score    int  // Tiles cleared so far
	GameOver bool // Move budget exhausted
	Paused   bool
	Busy     bool // A swap is still resolving; input is locked
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
