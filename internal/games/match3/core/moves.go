package core

// needOne is a candidate cell and the neighbour it would swap into.
type needOne struct {
	at   Coord // Offset that must hold the anchor's type
	into Coord // Offset the candidate swaps with
}

// pattern describes a latent run around an anchor cell.
type pattern struct {
	must []Coord   // Offsets that must all hold the anchor's type
	need []needOne // At least one must hold the anchor's type
}

// patterns is the fixed catalog of detectable moves.
// Only moves completing a run through a single adjacent swap are covered.
var patterns = []pattern{
	// Horizontal, two in a row plus one.
	{
		must: []Coord{C(1, 0)},
		need: []needOne{
			{C(-2, 0), C(-1, 0)},
			{C(-1, -1), C(-1, 0)},
			{C(-1, 1), C(-1, 0)},
			{C(2, -1), C(2, 0)},
			{C(2, 1), C(2, 0)},
			{C(3, 0), C(2, 0)},
		},
	},
	// Horizontal, gap in the middle.
	{
		must: []Coord{C(2, 0)},
		need: []needOne{
			{C(1, -1), C(1, 0)},
			{C(1, 1), C(1, 0)},
		},
	},
	// Vertical, two in a row plus one.
	{
		must: []Coord{C(0, 1)},
		need: []needOne{
			{C(0, -2), C(0, -1)},
			{C(-1, -1), C(0, -1)},
			{C(1, -1), C(0, -1)},
			{C(-1, 2), C(0, 2)},
			{C(1, 2), C(0, 2)},
			{C(0, 3), C(0, 2)},
		},
	},
	// Vertical, gap in the middle.
	{
		must: []Coord{C(0, 2)},
		need: []needOne{
			{C(-1, 1), C(0, 1)},
			{C(1, 1), C(0, 1)},
		},
	},
}

// GetPossibleMoves returns, for every anchor cell and pattern that matches,
// the cell whose swap would complete a run. Anchors are visited row-major and
// patterns in catalog order. With firstOnly set the scan stops at the first hit.
// An empty result moves the board to StateGameOver.
func (b *Board) GetPossibleMoves(firstOnly bool) []Coord {
	moves := b.possibleMoves(firstOnly)
	if len(moves) == 0 {
		b.state = StateGameOver
		return nil
	}
	coords := make([]Coord, len(moves))
	for i, m := range moves {
		coords[i] = m.From
	}
	return coords
}

// PossibleMoveList is GetPossibleMoves with the full swap pair and no state change.
func (b *Board) PossibleMoveList(firstOnly bool) []Move {
	return b.possibleMoves(firstOnly)
}

func (b *Board) possibleMoves(firstOnly bool) []Move {
	var moves []Move
	w, h := b.params.Width, b.params.Height

	for y := range h {
		for x := range w {
			anchor := C(x, y)
			for _, p := range patterns {
				m, ok := b.matchPattern(anchor, p)
				if !ok {
					continue
				}
				moves = append(moves, m)
				if firstOnly {
					return moves
				}
			}
		}
	}

	return moves
}

// matchPattern tests one pattern at anchor and returns the first satisfied need-one.
func (b *Board) matchPattern(anchor Coord, p pattern) (Move, bool) {
	t := b.typeAt(anchor)
	for _, off := range p.must {
		if b.typeAt(anchor.AddCoord(off)) != t {
			return Move{}, false
		}
	}
	for _, n := range p.need {
		if b.typeAt(anchor.AddCoord(n.at)) == t {
			return Move{From: anchor.AddCoord(n.at), To: anchor.AddCoord(n.into)}, true
		}
	}
	return Move{}, false
}
