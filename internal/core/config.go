package core

import "time"

// RuntimeConfig is what the platform hands a game when it starts a session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Seed for in-play randomness; 0 means the platform picks one
	// DailySeed fixes the brick layout. 0 means derive it from today's date.
	DailySeed int64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState is the summary a game reports back to the platform every tick.
type GameState struct {
	Score    int  // Current score, floored
	Level    int  // Current level, 1-based
	Lives    int  // Remaining lives
	MaxCombo int  // Best combo of the run
	GameOver bool // The run has ended (terminal game over or campaign complete)
	Paused   bool // The game is paused
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
