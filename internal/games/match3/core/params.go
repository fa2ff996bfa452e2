package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// Params configures board generation and scoring.
type Params struct {
	Width     int // Board width in cells
	Height    int // Board height in cells
	ItemTypes int // Number of distinct item types

	BonusChance  float64 // Probability that a generated item carries a bonus (0-1)
	BonusShape   Shape   // Shape given to generated bonuses
	BonusRadiusX int
	BonusRadiusY int

	ScoreMultiplier int // Points per destroyed cell

	// MaxGenAttempts bounds the random fill retries in MakeNewBoard before
	// the board is patched deterministically.
	MaxGenAttempts int
}

// DefaultParams returns sensible defaults for an 8x8 board.
func DefaultParams() Params {
	return Params{
		Width:           8,
		Height:          8,
		ItemTypes:       6,
		BonusChance:     0.05,
		BonusShape:      ShapeCross,
		BonusRadiusX:    1,
		BonusRadiusY:    1,
		ScoreMultiplier: 10,
		MaxGenAttempts:  1000,
	}
}

// ErrNoMoveGeometry is returned for boards too small to ever hold a possible move.
var ErrNoMoveGeometry = errors.New("board too small for any move")

// validateShape checks the parameters every board needs, including fixtures.
func (p Params) validateShape() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d", p.Width, p.Height)
	}
	if p.ItemTypes < 1 {
		return fmt.Errorf("invalid item type count %d", p.ItemTypes)
	}
	if p.BonusChance < 0 || p.BonusChance > 1 {
		return fmt.Errorf("bonus chance %v out of range [0, 1]", p.BonusChance)
	}
	if p.BonusRadiusX < 0 || p.BonusRadiusY < 0 {
		return fmt.Errorf("negative bonus radius %d,%d", p.BonusRadiusX, p.BonusRadiusY)
	}
	if p.ScoreMultiplier < 0 {
		return fmt.Errorf("negative score multiplier %d", p.ScoreMultiplier)
	}
	return nil
}

// Validate checks that a random board satisfying the generation constraints
// (no runs, at least one possible move) can exist for these parameters.
func (p Params) Validate() error {
	if err := p.validateShape(); err != nil {
		return err
	}
	if p.ItemTypes < 2 {
		return fmt.Errorf("need at least 2 item types, got %d", p.ItemTypes)
	}
	if !moveGeometry(p.Width, p.Height) {
		return fmt.Errorf("%dx%d: %w", p.Width, p.Height, ErrNoMoveGeometry)
	}
	return nil
}

// moveGeometry reports whether any pattern in the catalog fits on a w x h board.
func moveGeometry(w, h int) bool {
	return (w >= 3 && h >= 2) || (h >= 3 && w >= 2) || w >= 4 || h >= 4
}

// Random is the source of randomness used for item generation.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded random source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
