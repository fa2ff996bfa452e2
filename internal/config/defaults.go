package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: Match3Board{
			Width:     8,
			Height:    8,
			ItemTypes: 6,
		},
		Bonus: Match3Bonus{
			Chance:  0.05,
			Shape:   "cross",
			RadiusX: 1,
			RadiusY: 1,
		},
		Scoring: Match3Scoring{
			Multiplier: 10,
		},
		Generation: Match3Generation{
			MaxAttempts: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				BonusReduction: 0.8,
			},
		},
	}
}
