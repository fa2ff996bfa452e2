package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// constRand always returns the same values, forcing generation to its fallback.
type constRand struct {
	n int
	f float64
}

func (r constRand) Intn(n int) int   { return r.n % n }
func (r constRand) Float64() float64 { return r.f }

func params(w, h, types int) core.Params {
	p := core.DefaultParams()
	p.Width = w
	p.Height = h
	p.ItemTypes = types
	return p
}

func layout(t *testing.T, types int, rows ...string) *core.Board {
	t.Helper()
	b, err := core.NewBoardFromLayout(params(0, 0, types), rows, nil, nil)
	if err != nil {
		t.Fatalf("NewBoardFromLayout(%v) failed: %v", rows, err)
	}
	return b
}

func TestNewBoardSatisfiesGenerationConstraints(t *testing.T) {
	sizes := []struct {
		w, h, types int
	}{
		{8, 8, 6},
		{5, 5, 4},
		{9, 7, 7},
		{3, 3, 3},
		{3, 2, 2},
		{4, 1, 2},
		{1, 6, 3},
	}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			b, err := core.NewBoard(params(sz.w, sz.h, sz.types), core.NewRand(seed))
			if err != nil {
				t.Fatalf("NewBoard(%dx%d/%d) failed: %v", sz.w, sz.h, sz.types, err)
			}
			if runs := b.FindMatches(false); len(runs) != 0 {
				t.Errorf("%dx%d seed %d: new board has runs %v", sz.w, sz.h, seed, runs)
			}
			if moves := b.PossibleMoveList(true); len(moves) == 0 {
				t.Errorf("%dx%d seed %d: new board has no possible move", sz.w, sz.h, seed)
			}
			if b.State() != core.StatePlaying {
				t.Errorf("%dx%d seed %d: state = %v, want Playing", sz.w, sz.h, seed, b.State())
			}
			if b.Score() != 0 {
				t.Errorf("%dx%d seed %d: score = %d, want 0", sz.w, sz.h, seed, b.Score())
			}
			if b.DestroyedCount() != 0 {
				t.Errorf("%dx%d seed %d: new board has destroyed cells", sz.w, sz.h, seed)
			}
		}
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	p := core.DefaultParams()

	a, err := core.NewBoard(p, core.NewRand(42))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	b, err := core.NewBoard(p, core.NewRand(42))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	if a.Snapshot().String() != b.Snapshot().String() {
		t.Errorf("same seed produced different boards:\n%s\nvs\n%s", a.Snapshot(), b.Snapshot())
	}
}

func TestNewBoardRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *core.Params)
	}{
		{"zero width", func(p *core.Params) { p.Width = 0 }},
		{"negative height", func(p *core.Params) { p.Height = -3 }},
		{"no item types", func(p *core.Params) { p.ItemTypes = 0 }},
		{"single item type", func(p *core.Params) { p.ItemTypes = 1 }},
		{"bonus chance above one", func(p *core.Params) { p.BonusChance = 1.5 }},
		{"negative radius", func(p *core.Params) { p.BonusRadiusX = -1 }},
		{"2x2 board", func(p *core.Params) { p.Width, p.Height = 2, 2 }},
		{"3x1 board", func(p *core.Params) { p.Width, p.Height = 3, 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := core.DefaultParams()
			tc.mutate(&p)
			if _, err := core.NewBoard(p, core.NewRand(1)); err == nil {
				t.Errorf("NewBoard() accepted invalid params %+v", p)
			}
		})
	}
}

func TestValidateReportsMoveGeometry(t *testing.T) {
	err := params(2, 2, 4).Validate()
	if !errors.Is(err, core.ErrNoMoveGeometry) {
		t.Errorf("Validate() = %v, want ErrNoMoveGeometry", err)
	}
}

func TestMakeNewBoardFallbackPatch(t *testing.T) {
	tests := []struct {
		name        string
		w, h, types int
	}{
		{"three types breaks runs", 8, 8, 3},
		{"two item types", 6, 5, 2},
		{"narrow board", 2, 7, 2},
		{"single row", 7, 1, 2},
		{"single column", 1, 5, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := params(tc.w, tc.h, tc.types)
			p.MaxGenAttempts = 3

			// Every fill is a single type, so every attempt is rejected.
			b, err := core.NewBoard(p, constRand{n: 0, f: 0.99})
			if err != nil {
				t.Fatalf("NewBoard() failed: %v", err)
			}
			if runs := b.FindMatches(false); len(runs) != 0 {
				t.Errorf("patched board has runs %v:\n%s", runs, b.Snapshot())
			}
			if len(b.PossibleMoveList(false)) == 0 {
				t.Errorf("patched board has no move:\n%s", b.Snapshot())
			}
		})
	}
}

func TestMakeNewBoardResetsScoreAndState(t *testing.T) {
	b, err := core.NewBoardFromLayout(params(0, 0, 3), []string{
		"000",
		"121",
		"212",
	}, nil, core.NewRand(7))
	if err != nil {
		t.Fatalf("NewBoardFromLayout() failed: %v", err)
	}
	b.GetMatches()
	if b.Score() != 30 {
		t.Fatalf("score after run = %d, want 30", b.Score())
	}

	b.MakeNewBoard(6, 4, 5)

	if b.Width() != 6 || b.Height() != 4 || b.ItemTypes() != 5 {
		t.Errorf("MakeNewBoard dims = %dx%d/%d, want 6x4/5", b.Width(), b.Height(), b.ItemTypes())
	}
	if b.Score() != 0 {
		t.Errorf("MakeNewBoard score = %d, want 0", b.Score())
	}
	if b.State() != core.StatePlaying {
		t.Errorf("MakeNewBoard state = %v, want Playing", b.State())
	}
	if b.DestroyedCount() != 0 {
		t.Errorf("MakeNewBoard left %d destroyed cells", b.DestroyedCount())
	}
}

func TestMakeNewBoardPanicsOnDegenerateParams(t *testing.T) {
	b, err := core.NewBoard(core.DefaultParams(), core.NewRand(1))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for a single item type")
		}
	}()
	b.MakeNewBoard(8, 8, 1)
}

func TestNewBoardFromLayout(t *testing.T) {
	bonuses := map[core.Coord]core.Bonus{
		core.C(1, 0): core.Cross(1, 2),
	}
	b, err := core.NewBoardFromLayout(params(0, 0, 12), []string{"01a", "b23"}, bonuses, nil)
	if err != nil {
		t.Fatalf("NewBoardFromLayout() failed: %v", err)
	}

	if b.Width() != 3 || b.Height() != 2 {
		t.Errorf("dims = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if got := b.At(core.C(2, 0)).Type; got != 10 {
		t.Errorf("type at (2,0) = %d, want 10", got)
	}
	if got := b.At(core.C(0, 1)).Type; got != 11 {
		t.Errorf("type at (0,1) = %d, want 11", got)
	}
	if got := b.At(core.C(1, 0)).Bonus; got != core.Cross(1, 2) {
		t.Errorf("bonus at (1,0) = %+v, want cross 1x2", got)
	}
	if b.At(core.C(0, 0)).HasBonus() {
		t.Error("unexpected bonus at (0,0)")
	}
}

func TestNewBoardFromLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		bonuses map[core.Coord]core.Bonus
	}{
		{"empty", nil, nil},
		{"ragged", []string{"012", "01"}, nil},
		{"type out of range", []string{"019"}, nil},
		{"invalid char", []string{"0-1"}, nil},
		{"bonus outside", []string{"012"}, map[core.Coord]core.Bonus{core.C(5, 0): core.Cross(1, 1)}},
		{"negative bonus radius", []string{"000"}, map[core.Coord]core.Bonus{core.C(1, 0): core.Cross(-5, 0)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.NewBoardFromLayout(params(0, 0, 4), tc.rows, tc.bonuses, nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	b := layout(t, 4,
		"0120",
		"1201",
	)
	snap := b.Snapshot()

	b.CheckMove(0, 0, 0, 1)
	b.SetItem(core.C(3, 1), core.Item{Type: 3, Destroyed: true})

	if snap.At(core.C(3, 1)).Destroyed {
		t.Error("snapshot changed after board mutation")
	}
	if got := snap.String(); got != "0120\n1201\n" {
		t.Errorf("String() = %q", got)
	}
	if got := b.Snapshot().String(); got != "0120\n120.\n" {
		t.Errorf("String() after destroy = %q", got)
	}
	if types := b.Snapshot().Types(); types[1] != "1203" {
		t.Errorf("Types()[1] = %q, want 1203", types[1])
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	b := layout(t, 3, "012")

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range coordinate")
		}
	}()
	b.At(core.C(3, 0))
}

func TestSetBonusChanceAffectsNewItems(t *testing.T) {
	b, err := core.NewBoardFromLayout(params(0, 0, 1), []string{"000"}, nil, constRand{f: 0.5})
	if err != nil {
		t.Fatalf("NewBoardFromLayout() failed: %v", err)
	}

	refill := func() []core.Coord {
		b.GetMatches()
		b.GetDropSwaps()
		return b.GetDestroyedItemsAndGenerateNew()
	}

	b.SetBonusChance(0.25)
	for _, c := range refill() {
		if b.At(c).HasBonus() {
			t.Errorf("At(%v) has a bonus at chance 0.25 with roll 0.5", c)
		}
	}

	b.SetBonusChance(2)
	if got := b.Params().BonusChance; got != 1 {
		t.Errorf("BonusChance after SetBonusChance(2) = %v, want 1", got)
	}
	spawned := refill()
	if len(spawned) != 3 {
		t.Fatalf("refilled %d cells, want 3", len(spawned))
	}
	for _, c := range spawned {
		if !b.At(c).HasBonus() {
			t.Errorf("At(%v) has no bonus at chance 1", c)
		}
	}

	b.SetBonusChance(-1)
	if got := b.Params().BonusChance; got != 0 {
		t.Errorf("BonusChance after SetBonusChance(-1) = %v, want 0", got)
	}
}
