package match3

import (
	"errors"

	"github.com/vovakirdan/match3/internal/registry"
)

// RunResult summarizes an autoplayed game.
type RunResult struct {
	Turns    int
	Cascades int
	Score    int
	GameOver bool
}

// Autoplay plays hinted moves until the game ends or maxTurns is reached.
// maxTurns <= 0 means no limit. The game must already be reset.
func Autoplay(g registry.Game, maxTurns int) (RunResult, error) {
	var res RunResult
	for maxTurns <= 0 || res.Turns < maxTurns {
		step, err := g.Step()
		if errors.Is(err, ErrGameOver) {
			break
		}
		if err != nil {
			return res, err
		}
		res.Turns++
		res.Cascades += step.Cascades
		if step.State.GameOver {
			break
		}
	}

	state := g.State()
	res.Score = state.Score
	res.GameOver = state.GameOver
	return res, nil
}
