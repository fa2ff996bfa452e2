// Package core provides the match-3 board engine.
// This package is UI-agnostic and deterministic for a given random source.
package core

// Shape identifies how a bonus item destroys its surroundings.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeCross
)

// String returns the string representation of a shape.
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "None"
	case ShapeCross:
		return "Cross"
	default:
		return "Unknown"
	}
}

// ParseShape converts a shape name to a Shape.
func ParseShape(s string) (Shape, bool) {
	switch s {
	case "none", "None", "":
		return ShapeNone, true
	case "cross", "Cross":
		return ShapeCross, true
	default:
		return ShapeNone, false
	}
}

// Bonus describes the extra destruction an item triggers once destroyed.
type Bonus struct {
	Shape   Shape
	RadiusX int // Cells affected left and right of the bonus
	RadiusY int // Cells affected below and above the bonus
}

// IsZero reports whether the bonus is absent.
func (b Bonus) IsZero() bool {
	return b.Shape == ShapeNone
}

// Cross returns a cross-shaped bonus with the given radii.
func Cross(rx, ry int) Bonus {
	return Bonus{Shape: ShapeCross, RadiusX: rx, RadiusY: ry}
}

// area returns the coordinates a bonus at c reaches, clipped to the board.
// The bonus cell itself is not included.
func (b Bonus) area(c Coord, w, h int) []Coord {
	switch b.Shape {
	case ShapeCross:
		return crossArea(c, b.RadiusX, b.RadiusY, w, h)
	default:
		return nil
	}
}

// crossArea lists the horizontal arm left to right, then the vertical arm bottom to top.
func crossArea(c Coord, rx, ry, w, h int) []Coord {
	coords := make([]Coord, 0, 2*rx+2*ry)
	for x := c.X - rx; x <= c.X+rx; x++ {
		if x == c.X || x < 0 || x >= w {
			continue
		}
		coords = append(coords, C(x, c.Y))
	}
	for y := c.Y - ry; y <= c.Y+ry; y++ {
		if y == c.Y || y < 0 || y >= h {
			continue
		}
		coords = append(coords, C(c.X, y))
	}
	return coords
}

// Item is the content of one board cell.
type Item struct {
	Type      int   // Match category in [0, ItemTypes)
	Destroyed bool  // Logically removed, still occupying its slot until compaction
	Bonus     Bonus // Zero value means no bonus
}

// HasBonus reports whether the item carries a bonus.
func (it Item) HasBonus() bool {
	return !it.Bonus.IsZero()
}

// State is the lifecycle of a board.
type State uint8

const (
	StateNotStarted State = iota
	StatePlaying
	StateGameOver
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
