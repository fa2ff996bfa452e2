package core

import (
	"strconv"
	"strings"
)

// Snapshot is a detached copy of the board for consumers and determinism tests.
type Snapshot struct {
	Width  int
	Height int
	Score  int
	State  State
	Items  []Item // Flat, index = x + y*Width
}

// Snapshot returns a deep copy of the board contents.
func (b *Board) Snapshot() Snapshot {
	items := make([]Item, len(b.cells))
	copy(items, b.cells)
	return Snapshot{
		Width:  b.params.Width,
		Height: b.params.Height,
		Score:  b.score,
		State:  b.state,
		Items:  items,
	}
}

// At returns the item at c.
func (s Snapshot) At(c Coord) Item {
	return s.Items[c.X+c.Y*s.Width]
}

// Types returns the item types as layout rows, rows[y][x].
func (s Snapshot) Types() []string {
	rows := make([]string, s.Height)
	var sb strings.Builder
	for y := range s.Height {
		sb.Reset()
		for x := range s.Width {
			sb.WriteString(typeChar(s.At(C(x, y)).Type))
		}
		rows[y] = sb.String()
	}
	return rows
}

// String dumps the grid one row per line, y = 0 first.
// Destroyed cells print as '.'.
func (s Snapshot) String() string {
	var sb strings.Builder
	for y := range s.Height {
		for x := range s.Width {
			it := s.At(C(x, y))
			if it.Destroyed {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(typeChar(it.Type))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func typeChar(t int) string {
	if t < 0 || t >= 36 {
		return "?"
	}
	return strconv.FormatInt(int64(t), 36)
}
