package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows the registered game modes and the classic levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Classic levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-6s  %-5s  %s\n", "#", "Name", "Target", "Moves", "Types")
	for _, lvl := range match3.Levels {
		fmt.Printf("  %-3d  %-20s  %-6d  %-5d  %d\n", lvl.ID, lvl.Name, lvl.Target, lvl.Moves, lvl.ItemTypes)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to autoplay a mode.")
}
