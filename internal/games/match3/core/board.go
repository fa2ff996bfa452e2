package core

import (
	"fmt"
	"strconv"
)

// Board is a fixed-size grid of items.
// Cells are stored in a flat array: index = x + y*W.
// Every cell always holds an item; Destroyed is a soft flag.
type Board struct {
	params Params
	rng    Random
	cells  []Item
	score  int
	state  State
}

// NewBoard creates a board and fills it with MakeNewBoard.
func NewBoard(p Params, rng Random) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("core: nil random source")
	}
	b := &Board{params: p, rng: rng}
	b.MakeNewBoard(p.Width, p.Height, p.ItemTypes)
	return b, nil
}

// NewBoardFromLayout builds a board from fixed item types.
// rows[y][x] is the type of cell (x, y) written in base 36 ('0'-'9', 'a'-'z').
// The layout is taken as is: runs and stalemates are not rejected.
// rng is used for later regeneration and may be nil for boards that never refill.
func NewBoardFromLayout(p Params, rows []string, bonuses map[Coord]Bonus, rng Random) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("core: empty layout")
	}
	p.Height = len(rows)
	p.Width = len(rows[0])
	if err := p.validateShape(); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}

	b := &Board{
		params: p,
		rng:    rng,
		cells:  make([]Item, p.Width*p.Height),
		state:  StatePlaying,
	}

	for y, row := range rows {
		if len(row) != p.Width {
			return nil, fmt.Errorf("core: layout row %d has width %d, want %d", y, len(row), p.Width)
		}
		for x := 0; x < len(row); x++ {
			t, err := strconv.ParseInt(row[x:x+1], 36, 0)
			if err != nil {
				return nil, fmt.Errorf("core: layout cell (%d,%d): invalid type %q", x, y, row[x])
			}
			if int(t) >= p.ItemTypes {
				return nil, fmt.Errorf("core: layout cell (%d,%d): type %d exceeds %d item types", x, y, t, p.ItemTypes)
			}
			b.cells[b.index(C(x, y))].Type = int(t)
		}
	}

	for c, bonus := range bonuses {
		if !b.InBounds(c) {
			return nil, fmt.Errorf("core: bonus at %v is outside the board", c)
		}
		if bonus.RadiusX < 0 || bonus.RadiusY < 0 {
			return nil, fmt.Errorf("core: bonus at %v: negative radius", c)
		}
		b.cells[b.index(c)].Bonus = bonus
	}

	return b, nil
}

// Width returns the board width.
func (b *Board) Width() int {
	return b.params.Width
}

// Height returns the board height.
func (b *Board) Height() int {
	return b.params.Height
}

// ItemTypes returns the number of distinct item types.
func (b *Board) ItemTypes() int {
	return b.params.ItemTypes
}

// Params returns the parameters the board was built with.
func (b *Board) Params() Params {
	return b.params
}

// Score returns the accumulated score.
func (b *Board) Score() int {
	return b.score
}

// State returns the board lifecycle state.
func (b *Board) State() State {
	return b.state
}

// SetBonusChance changes the bonus probability used for items generated from
// now on. Values are clamped to [0, 1].
func (b *Board) SetBonusChance(p float64) {
	b.params.BonusChance = max(0, min(1, p))
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.params.Width && c.Y >= 0 && c.Y < b.params.Height
}

// At returns a copy of the item at c. Panics if c is outside the board.
func (b *Board) At(c Coord) Item {
	return b.cells[b.mustIndex(c)]
}

// SetItem overwrites the item at c. Intended for fixtures and level loading.
// Panics if c is outside the board or the type is out of range.
func (b *Board) SetItem(c Coord, it Item) {
	if it.Type < 0 || it.Type >= b.params.ItemTypes {
		panic(fmt.Sprintf("core: item type %d out of range [0, %d)", it.Type, b.params.ItemTypes))
	}
	b.cells[b.mustIndex(c)] = it
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.X + c.Y*b.params.Width
}

// mustIndex is index with a precondition check.
func (b *Board) mustIndex(c Coord) int {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("core: coordinate %v outside %dx%d board", c, b.params.Width, b.params.Height))
	}
	return b.index(c)
}

// typeAt returns the type at c, or -1 outside the board.
func (b *Board) typeAt(c Coord) int {
	if !b.InBounds(c) {
		return -1
	}
	return b.cells[b.index(c)].Type
}

// swap exchanges the contents of two cells.
func (b *Board) swap(a, c Coord) {
	i, j := b.index(a), b.index(c)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// newItem draws a fresh item: type first, then the bonus roll.
func (b *Board) newItem() Item {
	it := Item{Type: b.rng.Intn(b.params.ItemTypes)}
	if b.rng.Float64() < b.params.BonusChance {
		it.Bonus = Bonus{
			Shape:   b.params.BonusShape,
			RadiusX: b.params.BonusRadiusX,
			RadiusY: b.params.BonusRadiusY,
		}
	}
	return it
}

// DestroyedCount returns the number of cells flagged destroyed.
func (b *Board) DestroyedCount() int {
	count := 0
	for _, it := range b.cells {
		if it.Destroyed {
			count++
		}
	}
	return count
}
