package core

// CheckMove swaps the items at (x1,y1) and (x2,y2) and keeps the swap if it
// creates a run. Otherwise the swap is undone and false is returned.
// Adjacency is the caller's concern. Panics on out-of-board coordinates.
func (b *Board) CheckMove(x1, y1, x2, y2 int) bool {
	a, c := C(x1, y1), C(x2, y2)
	b.mustIndex(a)
	b.mustIndex(c)

	b.swap(a, c)
	if b.HasMatch() {
		return true
	}
	b.swap(a, c)
	return false
}

// GetMatches destroys every run, then triggers the bonuses of destroyed cells.
//
// Each run adds len(run) * ScoreMultiplier to the score. After the runs, one
// row-major pass visits every destroyed bonus cell and destroys the cells in
// its shape that are not destroyed yet; those form an extra run and are
// scored the same way. The pass is single: a bonus destroyed by another bonus
// still fires if the scan reaches it later, one the scan already passed does not.
func (b *Board) GetMatches() []Run {
	runs := b.FindMatches(false)
	for _, run := range runs {
		for _, c := range run {
			b.cells[b.index(c)].Destroyed = true
		}
		b.addScore(len(run))
	}

	w, h := b.params.Width, b.params.Height
	for y := range h {
		for x := range w {
			c := C(x, y)
			it := b.cells[b.index(c)]
			if !it.Destroyed || !it.HasBonus() {
				continue
			}
			hit := b.destroyAll(it.Bonus.area(c, w, h))
			if len(hit) == 0 {
				continue
			}
			runs = append(runs, hit)
			b.addScore(len(hit))
		}
	}

	return runs
}

// destroyAll flags the given cells and returns those that were not already destroyed.
func (b *Board) destroyAll(coords []Coord) Run {
	var hit Run
	for _, c := range coords {
		i := b.index(c)
		if b.cells[i].Destroyed {
			continue
		}
		b.cells[i].Destroyed = true
		hit = append(hit, c)
	}
	return hit
}

func (b *Board) addScore(cells int) {
	b.score += cells * b.params.ScoreMultiplier
}

// GetDropSwaps compacts every column toward y = 0.
//
// Each column is scanned with increasing y while a FIFO queue collects the
// destroyed slots seen so far. A surviving item swaps into the oldest queued
// slot and its own position joins the queue. Survivors keep their relative
// order and destroyed slots end up at the high-y end of the column.
// The returned swaps are in the order they were applied.
func (b *Board) GetDropSwaps() []Swap {
	var swaps []Swap
	w, h := b.params.Width, b.params.Height

	for x := range w {
		var queue []Coord
		for y := range h {
			c := C(x, y)
			if b.cells[b.index(c)].Destroyed {
				queue = append(queue, c)
				continue
			}
			if len(queue) == 0 {
				continue
			}
			dst := queue[0]
			queue = queue[1:]
			b.swap(c, dst)
			swaps = append(swaps, Swap{From: c, To: dst})
			queue = append(queue, c)
		}
	}

	return swaps
}

// GetDestroyedItemsAndGenerateNew replaces every destroyed item with a fresh
// random one, scanning column by column, and returns the refilled coordinates.
func (b *Board) GetDestroyedItemsAndGenerateNew() []Coord {
	var coords []Coord
	w, h := b.params.Width, b.params.Height

	for x := range w {
		for y := range h {
			c := C(x, y)
			i := b.index(c)
			if !b.cells[i].Destroyed {
				continue
			}
			b.cells[i] = b.newItem()
			coords = append(coords, c)
		}
	}

	return coords
}
