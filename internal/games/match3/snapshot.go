package match3

import "github.com/vovakirdan/match3/internal/games/match3/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateNotStarted GameStateType = "not_started"
	StatePlaying    GameStateType = "playing"
	StateGameOver   GameStateType = "game_over"
	StateWin        GameStateType = "win"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Mode      string // "classic" or "endless"
	Level     int    // Current level (1-indexed for display), 0 for endless
	Target    int    // Points still to score in this level, 0 for endless
	MovesLeft int    // Swaps left in this level, 0 for endless
	Moves     int
	Cascades  int
	Score     int
	ItemTypes int
	Board     core.Snapshot
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:     string(g.mode),
		Moves:    g.moves,
		Cascades: g.cascades,
		Score:    g.score,
		State:    StatePlaying,
	}

	switch {
	case g.board == nil:
		s.State = StateNotStarted
		return s
	case g.won:
		s.State = StateWin
	case g.gameOver:
		s.State = StateGameOver
	}

	if g.mode == ModeClassic {
		s.Level = g.levelIndex + 1
		s.Target = max(g.target-g.levelScore, 0)
		s.MovesLeft = g.movesLeft
	}
	s.ItemTypes = g.board.ItemTypes()
	s.Board = g.board.Snapshot()
	return s
}
