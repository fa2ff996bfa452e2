// match3 is a headless match-3 engine with a small command line front end.
//
// Usage:
//
//	match3 list              - List available game modes
//	match3 board             - Print a fresh board with its possible moves
//	match3 play <mode>       - Autoplay a game and record the result
//	match3 scores <mode>     - Show high scores and recent runs for a mode
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Path to custom match3 config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	platformcore "github.com/vovakirdan/match3/internal/core"
	"github.com/vovakirdan/match3/internal/games/match3"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagWidth    int
	flagHeight   int
	flagTypes    int
	flagTheme    string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - a headless match-3 board engine",
	Long: `Match-3 generates boards, resolves swaps and chain reactions, and
plays games automatically using its own move hints.

Available commands:
  list     - Show all game modes
  board    - Print a fresh board and its possible moves
  play     - Autoplay a game and save the score
  scores   - View high scores and recent runs

Examples:
  match3 list
  match3 board --seed 42
  match3 play match3_endless --turns 200
  match3 scores match3`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagTypes, "types", 0, "Number of item types (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Board theme: default, neon, mono")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup configures logging and game settings shared by all commands.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	})
	match3.SetLogger(logger)
	match3.SetConfigPath(flagConfig)

	if flagSeed == 0 {
		flagSeed = time.Now().UnixNano()
	}
	return nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() platformcore.RuntimeConfig {
	cfg := platformcore.DefaultConfig()
	cfg.Width = flagWidth
	cfg.Height = flagHeight
	cfg.ItemTypes = flagTypes
	cfg.Seed = flagSeed
	return cfg
}
