// Package core provides the runtime types shared between games and the CLI.
// It contains no external dependencies to keep game logic pure and testable.
package core

// RuntimeConfig contains configuration passed to games at initialization.
// Zero board fields mean "use the game's configured default".
type RuntimeConfig struct {
	Width     int   // Board width in cells
	Height    int   // Board height in cells
	ItemTypes int   // Number of distinct item types
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0, // 0 means use current time in the CLI layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the caller.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Moves    int  // Accepted moves so far
	Level    int  // Current level, 1-indexed; 0 when the mode has no levels
}

// StepResult is returned by Game.Step() after each played turn.
type StepResult struct {
	State       GameState
	Cascades    int // Match passes resolved during the turn
	ScoreGained int
}
