package core

import "time"

// DefaultFrameTime is the interval between simulation ticks.
const DefaultFrameTime = 50 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	FrameTime time.Duration // Fixed simulation delta per tick
	Seed      int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameTime: DefaultFrameTime,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// Frame returns the configured tick delta, falling back to the default.
func (c RuntimeConfig) Frame() time.Duration {
	if c.FrameTime <= 0 {
		return DefaultFrameTime
	}
	return c.FrameTime
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Misses   int           // Mismatched pairs so far
	Pairs    int           // Pairs removed from the board
	Ready    bool          // Whether clicks are currently accepted
	Won      bool          // Whether every pair has been matched
	Winner   string        // Display name of the final pair, empty until won
	Link     string        // Winner link, empty until revealed
	GameOver bool          // Win scene finished and link revealed
	Elapsed  time.Duration // Simulated time from reset until the win
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
