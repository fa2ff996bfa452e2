package levels_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/match3/internal/games/match3/core"
	"github.com/vovakirdan/match3/internal/games/match3/levels"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func TestLoaderLoadAllSkipsInvalid(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	require.NoError(t, err)

	ids := make([]string, len(lvls))
	for i, l := range lvls {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"lvl01", "lvl02"}, ids)
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := levels.NewLoader(getTestdataPath()).ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"lvl01", "lvl02"}, ids)
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl01")
	require.NoError(t, err)

	assert.Equal(t, "Warm-up", lvl.Name)
	assert.Equal(t, 4, lvl.Width)
	assert.Equal(t, 4, lvl.Height)
	assert.Equal(t, 4, lvl.ItemTypes)
	assert.Equal(t, "300", lvl.Metadata["target"])
	assert.Empty(t, lvl.Bonuses)
	assert.Equal(t, filepath.Join(getTestdataPath(), "lvl01.yaml"), lvl.FilePath)

	_, err = loader.LoadByID("missing")
	assert.Error(t, err)
}

func TestLoaderInfersItemTypesAndBonuses(t *testing.T) {
	lvl, err := levels.NewLoader(getTestdataPath()).LoadByID("lvl02")
	require.NoError(t, err)

	assert.Equal(t, 5, lvl.ItemTypes)
	assert.Equal(t, map[core.Coord]core.Bonus{core.C(2, 2): core.Cross(1, 1)}, lvl.Bonuses)
}

func TestLoaderLoadFileRejectsRaggedRows(t *testing.T) {
	_, err := levels.NewLoader(getTestdataPath()).LoadFile(filepath.Join(getTestdataPath(), "broken.yaml"))
	assert.Error(t, err)
}

func TestLevelNewBoard(t *testing.T) {
	lvl, err := levels.NewLoader(getTestdataPath()).LoadByID("lvl01")
	require.NoError(t, err)

	b, err := lvl.NewBoard(core.DefaultParams(), core.NewRand(1))
	require.NoError(t, err)

	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 4, b.Height())
	assert.Equal(t, 4, b.ItemTypes())
	assert.Equal(t, core.StatePlaying, b.State())
	assert.Equal(t, lvl.Rows, b.Snapshot().Types())
	assert.False(t, b.HasMatch())

	moves := b.PossibleMoveList(true)
	require.Len(t, moves, 1)
	assert.Equal(t, core.Move{From: core.C(3, 0), To: core.C(2, 0)}, moves[0])
}

func TestLevelNewBoardKeepsBonuses(t *testing.T) {
	lvl, err := levels.NewLoader(getTestdataPath()).LoadByID("lvl02")
	require.NoError(t, err)

	b, err := lvl.NewBoard(core.DefaultParams(), nil)
	require.NoError(t, err)

	assert.True(t, b.At(core.C(2, 2)).HasBonus())
	assert.False(t, b.At(core.C(0, 0)).HasBonus())
}
