package core

import "fmt"

// Coord represents a cell position on the board.
// X grows to the right, Y grows in scan order (y = 0 is the bottom row).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// AddCoord returns the sum of two coordinates.
func (c Coord) AddCoord(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Adjacent reports whether two coordinates share an edge.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// Run is a maximal line of same-typed cells, or the cells destroyed by a bonus.
type Run []Coord

// Swap records an exchange of cell contents during compaction.
// The surviving item moves From -> To; the destroyed slot moves the other way.
type Swap struct {
	From Coord
	To   Coord
}

// Move is a swap of two adjacent cells that would create a run.
// From is the hinted cell, To is the neighbour it swaps into.
type Move struct {
	From Coord
	To   Coord
}

// String returns a string representation of the move.
func (m Move) String() string {
	return fmt.Sprintf("%v<->%v", m.From, m.To)
}
