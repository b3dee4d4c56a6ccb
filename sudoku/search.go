package sudoku

import "github.com/hupe1980/sievego/cellmask"

// SolutionFlag classifies the number of completions of a board.
type SolutionFlag int

const (
	// SolutionsNone means the board has no completion.
	SolutionsNone SolutionFlag = 0
	// SolutionsUnique means the board has exactly one completion.
	SolutionsUnique SolutionFlag = 1
	// SolutionsMultiple means the board has at least two completions.
	SolutionsMultiple SolutionFlag = 2
)

// SearchForSolutions enumerates every completion of the board, invoking fn
// once per solution. The search runs to exhaustion unless fn returns false,
// which stops it early. The receiver is not mutated.
func (b *Board) SearchForSolutions(fn func(*Grid) bool) {
	work := b.Clone()
	if !work.Reduce() {
		return
	}
	work.search(fn)
}

// search walks the reduced board depth-first, branching on the open cell
// with the fewest candidates. Returns false once fn has asked to stop.
func (b *Board) search(fn func(*Grid) bool) bool {
	cell, tile, open := b.branchCell()
	if !open {
		g, ok := b.Grid()
		if !ok {
			return true
		}
		return fn(g)
	}
	for d := uint8(1); d <= 9; d++ {
		v := tileOf(d)
		if tile&v == 0 {
			continue
		}
		next := b.Clone()
		if !next.set(cell, v) {
			continue
		}
		if ok, _ := next.hiddenSinglesFix(); !ok {
			continue
		}
		if !next.search(fn) {
			return false
		}
	}
	return true
}

// hiddenSinglesFix runs hidden singles to a fixed point after a branch.
func (b *Board) hiddenSinglesFix() (ok bool, changed bool) {
	for {
		ch, cons := b.hiddenSingles()
		if !cons {
			return false, changed
		}
		if !ch {
			return true, changed
		}
		changed = true
	}
}

// branchCell picks the open cell with the fewest candidates.
func (b *Board) branchCell() (cell int, tile Tile, open bool) {
	best := -1
	bestCount := 10
	for c := 0; c < cellmask.Cells; c++ {
		t := b.tiles[c]
		if t.isKnown() {
			continue
		}
		if n := t.count(); n < bestCount {
			best, bestCount = c, n
			if n == 2 {
				break
			}
		}
	}
	if best == -1 {
		return 0, 0, false
	}
	return best, b.tiles[best], true
}

// SolutionsFlag classifies the board's completions, counting at most two
// before exiting the search early.
func (b *Board) SolutionsFlag() SolutionFlag {
	count := 0
	b.SearchForSolutions(func(*Grid) bool {
		count++
		return count < 2
	})
	switch count {
	case 0:
		return SolutionsNone
	case 1:
		return SolutionsUnique
	default:
		return SolutionsMultiple
	}
}
