// Package match3 provides the match-3 game modes for the registry.
// It drives the board engine through full turns: swap, chain reaction,
// level progression and game over detection.
package match3

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match3/internal/config"
	platformcore "github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/games/match3/core"
	"github.com/vovakirdan/match3/internal/games/match3/levels"
	"github.com/vovakirdan/match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Errors returned by Swap and Step.
var (
	ErrNotStarted  = errors.New("match3: game not started")
	ErrGameOver    = errors.New("match3: game over")
	ErrOutOfBounds = errors.New("match3: coordinate outside the board")
	ErrNotAdjacent = errors.New("match3: cells are not adjacent")
	ErrInvalidMove = errors.New("match3: swap does not create a run")
)

// Cascade is one pass of the chain reaction, in the order a renderer would animate it.
type Cascade struct {
	Runs    []core.Run   // Destroyed runs, bonus blasts last
	Drops   []core.Swap  // Items falling into destroyed slots
	Spawned []core.Coord // Slots refilled with new items
	Score   int
}

// Turn describes everything an accepted swap caused.
type Turn struct {
	Move         core.Move
	Cascades     []Cascade
	ScoreGained  int
	Hint         core.Move // Next suggested move; zero when GameOver
	LevelCleared bool
	GameOver     bool
}

// Game implements the match-3 game.
type Game struct {
	mode       Mode
	rng        *rand.Rand
	params     core.Params
	board      *core.Board
	difficulty *config.DifficultyManager
	baseBonus  float64
	itemTypes  int // Runtime override, 0 when unset

	score      int
	moves      int
	cascades   int
	levelIndex int
	levelScore int
	target     int
	movesLeft  int

	gameOver bool
	won      bool
}

// Package-level variables for configuration set by the CLI.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	selectedLayout     *levels.Level
	logger             = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty uses the config as is.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting classic level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetLayout makes the next Reset start from a fixed board layout.
func SetLayout(l *levels.Level) {
	selectedLayout = l
}

// SetLogger sets the logger used by all games. nil silences logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "match3_endless"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) error {
	mcfg, err := config.LoadMatch3(configPath)
	if err != nil {
		return fmt.Errorf("match3: %w", err)
	}
	if difficultyPreset != "" {
		config.ApplyMatch3Preset(&mcfg, difficultyPreset)
	}
	if cfg.Width > 0 {
		mcfg.Board.Width = cfg.Width
	}
	if cfg.Height > 0 {
		mcfg.Board.Height = cfg.Height
	}
	params, err := mcfg.ToParams()
	if err != nil {
		return fmt.Errorf("match3: %w", err)
	}

	// A failed reset leaves the game unstarted.
	g.board = nil
	g.rng = core.NewRand(cfg.Seed)
	g.params = params
	g.itemTypes = cfg.ItemTypes
	g.difficulty = config.NewDifficultyManager(mcfg.Difficulty)
	g.baseBonus = params.BonusChance
	g.score = 0
	g.moves = 0
	g.cascades = 0
	g.levelScore = 0
	g.gameOver = false
	g.won = false

	// Apply selected start level (classic only)
	if g.mode == ModeClassic && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}
	g.loadLevel()

	p := g.levelParams()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("match3: %w", err)
	}
	if layout := selectedLayout; layout != nil {
		selectedLayout = nil // Reset after use
		g.board, err = layout.NewBoard(p, g.rng)
	} else {
		g.board, err = core.NewBoard(p, g.rng)
	}
	if err != nil {
		g.board = nil
		return fmt.Errorf("match3: %w", err)
	}

	logger.Debug("game reset",
		"mode", g.mode,
		"seed", cfg.Seed,
		"width", g.board.Width(),
		"height", g.board.Height(),
		"types", g.board.ItemTypes(),
	)

	g.checkStalemate()
	return nil
}

// loadLevel sets up target and move limit for the current level.
func (g *Game) loadLevel() {
	g.levelScore = 0
	if g.mode == ModeEndless {
		g.target = 0 // No target in endless
		g.movesLeft = 0
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}
	g.target = level.Target
	g.movesLeft = level.Moves
}

// levelParams returns the engine parameters for the current level.
func (g *Game) levelParams() core.Params {
	p := g.params
	if g.mode == ModeClassic {
		if level := GetLevel(g.levelIndex); level != nil && level.ItemTypes > 0 {
			p.ItemTypes = level.ItemTypes
		}
	} else {
		p.BonusChance = g.difficulty.BonusChance(g.baseBonus, g.score, g.moves)
	}
	if g.itemTypes > 0 {
		p.ItemTypes = g.itemTypes
	}
	return p
}

// Swap exchanges two adjacent cells and resolves the full chain reaction.
// Rejected swaps leave the board unchanged.
func (g *Game) Swap(a, b core.Coord) (Turn, error) {
	if g.board == nil {
		return Turn{}, ErrNotStarted
	}
	if g.gameOver {
		return Turn{}, ErrGameOver
	}
	if !g.board.InBounds(a) || !g.board.InBounds(b) {
		return Turn{}, fmt.Errorf("%w: %v, %v", ErrOutOfBounds, a, b)
	}
	if !a.Adjacent(b) {
		return Turn{}, fmt.Errorf("%w: %v, %v", ErrNotAdjacent, a, b)
	}
	if !g.board.CheckMove(a.X, a.Y, b.X, b.Y) {
		return Turn{}, fmt.Errorf("%w: %v, %v", ErrInvalidMove, a, b)
	}

	turn := Turn{Move: core.Move{From: a, To: b}}
	turn.Cascades = g.resolve()
	for _, c := range turn.Cascades {
		turn.ScoreGained += c.Score
	}

	g.score += turn.ScoreGained
	g.levelScore += turn.ScoreGained
	g.moves++
	g.cascades += len(turn.Cascades)

	logger.Debug("turn resolved",
		"move", turn.Move,
		"cascades", len(turn.Cascades),
		"gained", turn.ScoreGained,
		"score", g.score,
	)

	g.afterTurn(&turn)
	return turn, nil
}

// resolve runs matches, drops and refills until the board settles.
func (g *Game) resolve() []Cascade {
	var cascades []Cascade
	for {
		before := g.board.Score()
		runs := g.board.GetMatches()
		if len(runs) == 0 {
			return cascades
		}

		c := Cascade{
			Runs:  runs,
			Score: g.board.Score() - before,
		}
		c.Drops = g.board.GetDropSwaps()
		c.Spawned = g.board.GetDestroyedItemsAndGenerateNew()
		cascades = append(cascades, c)

		logger.Debug("cascade",
			"pass", len(cascades),
			"runs", len(c.Runs),
			"drops", len(c.Drops),
			"spawned", len(c.Spawned),
			"score", c.Score,
		)
	}
}

// afterTurn applies level progression and stalemate detection.
func (g *Game) afterTurn(turn *Turn) {
	switch g.mode {
	case ModeClassic:
		g.movesLeft--
		switch {
		case g.levelScore >= g.target:
			turn.LevelCleared = true
			g.advanceLevel()
		case g.movesLeft <= 0:
			g.gameOver = true
			logger.Info("out of moves", "level", g.levelIndex+1, "score", g.score, "target", g.target)
		}
	case ModeEndless:
		g.board.SetBonusChance(g.difficulty.BonusChance(g.baseBonus, g.score, g.moves))
	}

	if !g.gameOver {
		g.checkStalemate()
	}
	if hint, ok := g.Hint(); ok {
		turn.Hint = hint
	}
	turn.GameOver = g.gameOver
}

// advanceLevel moves to the next level on a fresh board.
func (g *Game) advanceLevel() {
	logger.Info("level cleared", "level", g.levelIndex+1, "score", g.score)

	if g.levelIndex >= LevelCount()-1 {
		// Completed all levels
		g.won = true
		g.gameOver = true
		return
	}

	g.levelIndex++
	g.loadLevel()
	p := g.levelParams()
	g.board.MakeNewBoard(p.Width, p.Height, p.ItemTypes)
}

// checkStalemate ends the game when no move is left on the board.
func (g *Game) checkStalemate() {
	if len(g.board.GetPossibleMoves(true)) > 0 {
		return
	}
	g.gameOver = true
	logger.Info("no moves left", "score", g.score, "moves", g.moves)
}

// Hint returns a move that creates a run, if the game is still running.
func (g *Game) Hint() (core.Move, bool) {
	if g.board == nil || g.gameOver {
		return core.Move{}, false
	}
	moves := g.board.PossibleMoveList(true)
	if len(moves) == 0 {
		return core.Move{}, false
	}
	return moves[0], true
}

// Step plays the hinted move.
func (g *Game) Step() (platformcore.StepResult, error) {
	if g.board == nil {
		return platformcore.StepResult{}, ErrNotStarted
	}
	m, ok := g.Hint()
	if !ok {
		return platformcore.StepResult{State: g.State()}, ErrGameOver
	}

	turn, err := g.Swap(m.From, m.To)
	if err != nil {
		return platformcore.StepResult{State: g.State()}, err
	}

	return platformcore.StepResult{
		State:       g.State(),
		Cascades:    len(turn.Cascades),
		ScoreGained: turn.ScoreGained,
	}, nil
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	level := 0
	if g.mode == ModeClassic {
		level = g.levelIndex + 1
	}
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Moves:    g.moves,
		Level:    level,
	}
}
