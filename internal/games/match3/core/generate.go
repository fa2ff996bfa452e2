package core

import "fmt"

// MakeNewBoard allocates a width x height board with itemTypes types, resets
// score and state, and fills it until no run exists and at least one move does.
//
// Random fills are retried up to Params.MaxGenAttempts times. If every attempt
// is rejected, the last fill is patched deterministically so the call always
// terminates. Panics on parameters Validate rejects.
func (b *Board) MakeNewBoard(width, height, itemTypes int) {
	p := b.params
	p.Width = width
	p.Height = height
	p.ItemTypes = itemTypes
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("core: MakeNewBoard: %v", err))
	}

	b.params = p
	b.cells = make([]Item, width*height)
	b.score = 0
	b.state = StatePlaying

	attempts := p.MaxGenAttempts
	if attempts < 1 {
		attempts = 1
	}

	for range attempts {
		b.fill()
		if len(b.FindMatches(true)) == 0 && len(b.possibleMoves(true)) > 0 {
			return
		}
	}

	b.patchBoard()
}

// fill replaces every cell with a fresh random item in row-major order.
func (b *Board) fill() {
	for i := range b.cells {
		b.cells[i] = b.newItem()
	}
}

// patchBoard rewrites item types so the board has no runs and a possible move.
// Bonuses from the last fill are kept.
func (b *Board) patchBoard() {
	if b.breakRuns() && len(b.possibleMoves(true)) > 0 {
		return
	}
	b.stripe()
}

// breakRuns retypes every cell that would end a run, scanning row-major so
// the two cells left of and below it are already final.
// Returns false if some run could not be broken.
func (b *Board) breakRuns() bool {
	w, h := b.params.Width, b.params.Height
	for y := range h {
		for x := range w {
			c := C(x, y)
			left, down := -1, -1
			if x >= 2 && b.typeAt(c.Add(-1, 0)) == b.typeAt(c.Add(-2, 0)) {
				left = b.typeAt(c.Add(-1, 0))
			}
			if y >= 2 && b.typeAt(c.Add(0, -1)) == b.typeAt(c.Add(0, -2)) {
				down = b.typeAt(c.Add(0, -1))
			}
			cur := b.typeAt(c)
			if cur != left && cur != down {
				continue
			}
			replaced := false
			for t := range b.params.ItemTypes {
				if t != left && t != down {
					b.cells[b.index(c)].Type = t
					replaced = true
					break
				}
			}
			if !replaced {
				return false
			}
		}
	}
	return true
}

// stripe lays out types 0 and 1 in pairs so no run exists and an edge
// pattern move is always available.
//
//	w >= 3, h >= 2:  0 0 1 1 0 0 ...   (odd rows inverted)
//	h >= 3, w >= 2:  transposed
//	single line:     0 0 1 0 0 1 ...
func (b *Board) stripe() {
	w, h := b.params.Width, b.params.Height
	for y := range h {
		for x := range w {
			var t int
			switch {
			case w >= 3 && h >= 2:
				t = (x/2 + y) % 2
			case h >= 3 && w >= 2:
				t = (y/2 + x) % 2
			case h == 1:
				t = boolToType(x%3 == 2)
			default:
				t = boolToType(y%3 == 2)
			}
			b.cells[b.index(C(x, y))].Type = t
		}
	}
}

func boolToType(v bool) int {
	if v {
		return 1
	}
	return 0
}
