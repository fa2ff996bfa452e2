package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/match3/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (s *stubGame) ID() string    { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }

func (s *stubGame) Reset(core.RuntimeConfig) error {
	s.state = core.GameState{}
	return nil
}

func (s *stubGame) Step() (core.StepResult, error) {
	s.state.Moves++
	return core.StepResult{State: s.state}, nil
}

func (s *stubGame) State() core.GameState { return s.state }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id} })
	t.Cleanup(func() {
		mu.Lock()
		delete(entries, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zz_stub")

	assert.True(t, Exists("zz_stub"))
	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	other, err := Create("zz_stub")
	require.NoError(t, err)
	_, err = g.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, g.State().Moves)
	assert.Zero(t, other.State().Moves, "factories must return fresh instances")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	assert.ErrorIs(t, err, ErrUnknownGame)
	assert.False(t, Exists("does_not_exist"))
}

func TestListSortedWithTitles(t *testing.T) {
	register(t, "zz_b")
	register(t, "zz_a")

	list := List()
	ids := IDs()
	require.Len(t, ids, len(list))
	assert.IsIncreasing(t, ids)

	var found []GameInfo
	for _, info := range list {
		if info.ID == "zz_a" || info.ID == "zz_b" {
			found = append(found, info)
		}
	}
	assert.Equal(t, []GameInfo{{ID: "zz_a", Title: "Stub zz_a"}, {ID: "zz_b", Title: "Stub zz_b"}}, found)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "zz_dup")
	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	})
}
