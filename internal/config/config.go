// Package config provides YAML-based board configuration loading and
// difficulty management for the match-3 engine.
package config

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// Match3Config contains all configuration for a match-3 game.
type Match3Config struct {
	Board      Match3Board      `yaml:"board"`
	Bonus      Match3Bonus      `yaml:"bonus"`
	Scoring    Match3Scoring    `yaml:"scoring"`
	Generation Match3Generation `yaml:"generation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Match3Board defines board dimensions and item variety.
type Match3Board struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	ItemTypes int `yaml:"item_types"`
}

// Match3Bonus defines how generated items receive bonuses.
type Match3Bonus struct {
	Chance  float64 `yaml:"chance"` // 0.0-1.0
	Shape   string  `yaml:"shape"`  // "cross" or "none"
	RadiusX int     `yaml:"radius_x"`
	RadiusY int     `yaml:"radius_y"`
}

// Match3Scoring defines scoring parameters.
type Match3Scoring struct {
	Multiplier int `yaml:"multiplier"` // Points per destroyed cell
}

// Match3Generation bounds random board generation.
type Match3Generation struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BonusReduction float64 `yaml:"bonus_reduction"` // Fraction of bonus chance removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a flag value to a preset.
// The empty string maps to normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ToParams converts the configuration to engine parameters and validates them.
func (c Match3Config) ToParams() (core.Params, error) {
	shape, ok := core.ParseShape(c.Bonus.Shape)
	if !ok {
		return core.Params{}, fmt.Errorf("config: unknown bonus shape %q", c.Bonus.Shape)
	}

	p := core.Params{
		Width:           c.Board.Width,
		Height:          c.Board.Height,
		ItemTypes:       c.Board.ItemTypes,
		BonusChance:     c.Bonus.Chance,
		BonusShape:      shape,
		BonusRadiusX:    c.Bonus.RadiusX,
		BonusRadiusY:    c.Bonus.RadiusY,
		ScoreMultiplier: c.Scoring.Multiplier,
		MaxGenAttempts:  c.Generation.MaxAttempts,
	}
	if err := p.Validate(); err != nil {
		return core.Params{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}
