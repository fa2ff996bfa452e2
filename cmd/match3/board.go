package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/games/match3/core"
	"github.com/vovakirdan/match3/internal/games/match3/levels"
	"github.com/vovakirdan/match3/internal/platform/tui"
)

var (
	flagLayout  string
	flagAllHint bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a fresh board and its possible moves",
	Long: `Generates a board from the config (or loads a layout file) and prints
it with the cells a player could swap highlighted.

Rows are printed top-down: the highest y is the first line.

Examples:
  match3 board --seed 7
  match3 board --width 6 --height 6 --types 4
  match3 board --layout ./levels/lvl01.yaml --all`,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a YAML board layout")
	boardCmd.Flags().BoolVar(&flagAllHint, "all", false, "Highlight every possible move, not just the first")
}

func runBoard(cmd *cobra.Command, args []string) error {
	theme, err := tui.ThemeByName(flagTheme)
	if err != nil {
		return err
	}

	board, err := buildBoard()
	if err != nil {
		return err
	}

	// Snapshot first: GetPossibleMoves may flag the board as game over.
	snap := board.Snapshot()
	moves := board.PossibleMoveList(!flagAllHint)
	hints := board.GetPossibleMoves(!flagAllHint)

	fmt.Println(tui.RenderBoard(snap, hints, theme))
	fmt.Println()
	fmt.Println(tui.RenderHUD("Board", []tui.HUDField{
		{Label: "Size", Value: fmt.Sprintf("%dx%d", board.Width(), board.Height())},
		{Label: "Types", Value: board.ItemTypes()},
		{Label: "Seed", Value: flagSeed},
		{Label: "State", Value: board.State()},
	}, theme))

	if len(moves) == 0 {
		fmt.Println("No possible moves.")
		return nil
	}
	fmt.Println()
	fmt.Println("Possible moves:")
	for _, m := range moves {
		fmt.Printf("  %s\n", m)
	}
	return nil
}

// buildBoard creates the board from --layout or from the config.
func buildBoard() (*core.Board, error) {
	cfg := runtimeConfig()

	mcfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return nil, err
	}
	if cfg.Width > 0 {
		mcfg.Board.Width = cfg.Width
	}
	if cfg.Height > 0 {
		mcfg.Board.Height = cfg.Height
	}
	if cfg.ItemTypes > 0 {
		mcfg.Board.ItemTypes = cfg.ItemTypes
	}
	params, err := mcfg.ToParams()
	if err != nil {
		return nil, err
	}

	rng := core.NewRand(cfg.Seed)
	if flagLayout != "" {
		lvl, err := levels.NewLoader("").LoadFile(flagLayout)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded layout", "id", lvl.ID, "name", lvl.Name, "path", lvl.FilePath)
		return lvl.NewBoard(params, rng)
	}

	logger.Debug("generating board", "width", params.Width, "height", params.Height, "types", params.ItemTypes, "seed", cfg.Seed)
	return core.NewBoard(params, rng)
}
