package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/games/match3/core"
	"github.com/vovakirdan/match3/internal/games/match3/levels"
	"github.com/vovakirdan/match3/internal/platform/tui"
	"github.com/vovakirdan/match3/internal/registry"
	"github.com/vovakirdan/match3/internal/storage"
)

var (
	flagDifficulty string
	flagTurns      int
	flagStartLevel int
	flagShow       bool
	flagNoSave     bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Autoplay a game",
	Long: `Plays the specified mode automatically, always taking the first
hinted move, until the game ends or the turn limit is reached.
The final score and a run record are saved to the scores database.

Difficulty options:
  easy   - Fewer item types, more bonuses, progression from 0%
  normal - Config board, progression from 30%
  hard   - One more item type, fewer bonuses, progression from 70%
  fixed  - No progression, stays at config's initial level

Examples:
  match3 play match3
  match3 play match3_endless --turns 500 --difficulty hard
  match3 play match3 --level 3 --show
  match3 play match3_endless --layout ./levels/lvl01.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagTurns, "turns", 1000, "Maximum turns to play (0 = until game over)")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Classic start level (1-indexed)")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a YAML board layout for the first board")
	playCmd.Flags().BoolVar(&flagShow, "show", false, "Print the board after every turn")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the result")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'match3 list' to see available modes", gameID)
	}

	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficultyPreset(flagDifficulty)
		if err != nil {
			return err
		}
		match3.SetDifficultyPreset(preset)
		if config.IsFixedPreset(preset) {
			logger.Info("difficulty progression disabled", "preset", preset)
		}
	}
	if flagStartLevel > 0 {
		match3.SetStartLevel(flagStartLevel)
	}
	if flagLayout != "" {
		lvl, err := levels.NewLoader("").LoadFile(flagLayout)
		if err != nil {
			return err
		}
		match3.SetLayout(&lvl)
	}

	g, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := g.(*match3.Game)
	if !ok {
		return fmt.Errorf("mode %q is not a match-3 game", gameID)
	}

	cfg := runtimeConfig()
	if err := game.Reset(cfg); err != nil {
		return err
	}
	logger.Info("game started", "mode", gameID, "seed", cfg.Seed)

	var res match3.RunResult
	if flagShow {
		res, err = playVerbose(game, theme)
	} else {
		res, err = match3.Autoplay(game, flagTurns)
	}
	if err != nil {
		return err
	}

	snap := game.Snapshot()
	fmt.Println(tui.RenderBoard(snap.Board, nil, theme))
	fmt.Println()
	fmt.Println(tui.RenderHUD(game.Title(), hudFields(snap), theme))

	if flagNoSave {
		return nil
	}
	saveResult(gameID, cfg.Seed, snap, res)
	return nil
}

// playVerbose is Autoplay that prints every turn.
func playVerbose(game *match3.Game, theme tui.Theme) (match3.RunResult, error) {
	var res match3.RunResult
	for flagTurns <= 0 || res.Turns < flagTurns {
		hint, ok := game.Hint()
		if !ok {
			break
		}
		turn, err := game.Swap(hint.From, hint.To)
		if err != nil {
			return res, err
		}
		res.Turns++
		res.Cascades += len(turn.Cascades)

		snap := game.Snapshot()
		fmt.Printf("Turn %d: %s, %d cascade(s), +%d\n", res.Turns, turn.Move, len(turn.Cascades), turn.ScoreGained)
		if turn.LevelCleared {
			fmt.Printf("Level cleared! Now on level %d\n", snap.Level)
		}
		var hints []core.Coord
		if !turn.GameOver {
			hints = []core.Coord{turn.Hint.From, turn.Hint.To}
		}
		fmt.Println(tui.RenderBoard(snap.Board, hints, theme))
		fmt.Println()
		if turn.GameOver {
			break
		}
	}

	state := game.State()
	res.Score = state.Score
	res.GameOver = state.GameOver
	return res, nil
}

func hudFields(snap match3.Snapshot) []tui.HUDField {
	fields := []tui.HUDField{
		{Label: "Score", Value: snap.Score},
		{Label: "Moves", Value: snap.Moves},
		{Label: "Cascades", Value: snap.Cascades},
		{Label: "State", Value: snap.State},
	}
	if snap.Mode == string(match3.ModeClassic) {
		fields = append(fields,
			tui.HUDField{Label: "Level", Value: snap.Level},
			tui.HUDField{Label: "To go", Value: snap.Target},
			tui.HUDField{Label: "Moves left", Value: snap.MovesLeft},
		)
	}
	return fields
}

// saveResult records score and run, warning instead of failing.
func saveResult(gameID string, seed int64, snap match3.Snapshot, res match3.RunResult) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveScore(gameID, res.Score); err != nil {
		logger.Warn("could not save score", "error", err)
	}

	runID, err := store.SaveRun(storage.Run{
		GameID:    gameID,
		Seed:      seed,
		Width:     snap.Board.Width,
		Height:    snap.Board.Height,
		ItemTypes: snap.ItemTypes,
		Turns:     res.Turns,
		Cascades:  res.Cascades,
		Score:     res.Score,
		GameOver:  res.GameOver,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "run", runID, "score", res.Score)
}
