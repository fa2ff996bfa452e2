package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/match3/internal/storage"
)

// Commands share package-level flag variables, so they run in one sequence.
func TestCommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "scores.db")

	run := func(args ...string) error {
		rootCmd.SetArgs(append(args, "--db", db, "--log-level", "error"))
		return rootCmd.Execute()
	}

	require.NoError(t, run("list"))

	require.NoError(t, run("play", "match3_endless", "--seed", "3", "--turns", "5"))

	store, err := storage.Open(db)
	require.NoError(t, err)
	runs, err := store.RecentRuns("match3_endless", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(3), runs[0].Seed)
	assert.LessOrEqual(t, runs[0].Turns, 5)
	assert.Equal(t, 8, runs[0].Width)
	assert.Equal(t, 6, runs[0].ItemTypes)

	high, err := store.HighScore("match3_endless")
	require.NoError(t, err)
	assert.Equal(t, runs[0].Score, high)
	require.NoError(t, store.Close())

	require.NoError(t, run("scores", "match3_endless"))

	layout := filepath.Join("..", "..", "internal", "games", "match3", "testdata", "levels", "lvl01.yaml")
	require.NoError(t, run("board", "--seed", "1", "--layout", layout, "--all"))

	assert.Error(t, run("play", "tetris"))
	assert.Error(t, run("board", "--theme", "sepia"))
}
