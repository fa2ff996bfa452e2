package core

// minRun is the shortest line of same-typed cells that counts as a match.
const minRun = 3

// FindMatches scans the board for runs of three or more same-typed cells.
// Rows are scanned first (row-major, left to right), then columns
// (column-major, increasing y). Destroyed flags are ignored.
// With firstOnly set the scan stops at the first run found.
func (b *Board) FindMatches(firstOnly bool) []Run {
	var runs []Run
	w, h := b.params.Width, b.params.Height

	for y := range h {
		for x := 0; x < w; {
			n := b.runLength(C(x, y), 1, 0)
			if n >= minRun {
				runs = append(runs, line(C(x, y), 1, 0, n))
				if firstOnly {
					return runs
				}
			}
			x += n
		}
	}

	for x := range w {
		for y := 0; y < h; {
			n := b.runLength(C(x, y), 0, 1)
			if n >= minRun {
				runs = append(runs, line(C(x, y), 0, 1, n))
				if firstOnly {
					return runs
				}
			}
			y += n
		}
	}

	return runs
}

// HasMatch reports whether any run exists.
func (b *Board) HasMatch() bool {
	return len(b.FindMatches(true)) > 0
}

// runLength counts same-typed cells from start along (dx, dy).
func (b *Board) runLength(start Coord, dx, dy int) int {
	t := b.typeAt(start)
	n := 1
	for c := start.Add(dx, dy); b.typeAt(c) == t; c = c.Add(dx, dy) {
		n++
	}
	return n
}

// line returns n coordinates from start along (dx, dy).
func line(start Coord, dx, dy, n int) Run {
	run := make(Run, n)
	for i := range n {
		run[i] = start.Add(dx*i, dy*i)
	}
	return run
}
