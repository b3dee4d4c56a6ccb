package sudoku

import (
	"github.com/hupe1980/sievego/cellmask"
)

// Board is a partial puzzle: one candidate Tile per cell. A Board is derived
// from a Grid by masking out cells and is mutated freely by reduction and
// search; it is cheap to copy by value.
type Board struct {
	tiles [cellmask.Cells]Tile
}

// Filter returns the puzzle obtained by keeping exactly the cells of g that
// are set in keep as clues; all other cells are fully open. No constraint
// reduction is applied.
func (g *Grid) Filter(keep cellmask.Mask) *Board {
	b := &Board{}
	for cell := 0; cell < cellmask.Cells; cell++ {
		if keep.Test(cell) {
			b.tiles[cell] = tileOf(g.digits[cell])
		} else {
			b.tiles[cell] = tAny
		}
	}
	return b
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// EmptyCount returns the number of cells not yet pinned to a single digit.
func (b *Board) EmptyCount() int {
	n := 0
	for _, t := range b.tiles {
		if !t.isKnown() {
			n++
		}
	}
	return n
}

// KnownMask returns the mask of cells pinned to a single digit.
func (b *Board) KnownMask() cellmask.Mask {
	var m cellmask.Mask
	for cell, t := range b.tiles {
		if t.isKnown() {
			m.Set(cell)
		}
	}
	return m
}

// CandidateDigits returns the digits that can legally be placed at cell
// given the currently known peers. For a known cell it returns just its
// digit.
func (b *Board) CandidateDigits(cell int) []uint8 {
	return b.allowed(cell).digits()
}

// allowed returns the candidate tile at cell restricted by its known peers.
func (b *Board) allowed(cell int) Tile {
	t := b.tiles[cell]
	if t.isKnown() {
		return t
	}
	peers := cellmask.PeerMask(cell)
	for p, ok := peers.FirstSet(); ok; p, ok = peers.NextSet(p + 1) {
		if pt := b.tiles[p]; pt.isKnown() {
			t &^= pt
		}
	}
	return t
}

// set restricts the tile at cell to the allowed candidates, cascading peer
// elimination when the cell collapses to a single digit. Returns false on
// contradiction (a cell left with no candidates).
func (b *Board) set(cell int, allowed Tile) bool {
	old := b.tiles[cell]
	next := old & allowed
	if next == old {
		return true
	}
	if next == 0 {
		return false
	}
	b.tiles[cell] = next
	if !next.isKnown() {
		return true
	}
	peers := cellmask.PeerMask(cell)
	for p, ok := peers.FirstSet(); ok; p, ok = peers.NextSet(p + 1) {
		if !b.set(p, ^next) {
			return false
		}
	}
	return true
}

// Reduce applies the solver's internal constraint reduction to a fixed
// point: known-value elimination (cascading naked singles) followed by
// hidden singles in every row, column and region. Returns false when the
// board is contradictory.
func (b *Board) Reduce() bool {
	// Seed the cascade from every known cell.
	for cell := 0; cell < cellmask.Cells; cell++ {
		t := b.tiles[cell]
		if !t.isKnown() {
			continue
		}
		peers := cellmask.PeerMask(cell)
		for p, ok := peers.FirstSet(); ok; p, ok = peers.NextSet(p + 1) {
			if !b.set(p, ^t) {
				return false
			}
		}
	}

	for {
		changed, ok := b.hiddenSingles()
		if !ok {
			return false
		}
		if !changed {
			return true
		}
	}
}

var units = buildUnits()

func buildUnits() [27]cellmask.Mask {
	var u [27]cellmask.Mask
	for i := 0; i < 9; i++ {
		u[i] = cellmask.RowMask(i)
		u[9+i] = cellmask.ColMask(i)
		u[18+i] = cellmask.RegionMask(i)
	}
	return u
}

// hiddenSingles pins every digit that has exactly one possible cell left in
// some unit. Reports whether anything changed and whether the board is
// still consistent.
func (b *Board) hiddenSingles() (changed, ok bool) {
	for _, unit := range units {
	DigitLoop:
		for d := uint8(1); d <= 9; d++ {
			v := tileOf(d)
			candidate := -1
			for cell, more := unit.FirstSet(); more; cell, more = unit.NextSet(cell + 1) {
				t := b.tiles[cell]
				if t == v {
					// already placed in this unit
					continue DigitLoop
				}
				if t&v == 0 {
					continue
				}
				if candidate != -1 {
					continue DigitLoop
				}
				candidate = cell
			}
			if candidate == -1 {
				// no home left for this digit
				return false, false
			}
			if !b.set(candidate, v) {
				return false, false
			}
			changed = true
		}
	}
	return changed, true
}

// Grid converts a fully pinned board into a Grid. ok is false while any
// cell is still open.
func (b *Board) Grid() (*Grid, bool) {
	var digits [cellmask.Cells]uint8
	for cell, t := range b.tiles {
		d := t.digit()
		if d == 0 {
			return nil, false
		}
		digits[cell] = d
	}
	g, err := NewGrid(digits)
	if err != nil {
		// The search only pins peer-consistent digits.
		panic("sudoku: solver produced an invalid solution: " + err.Error())
	}
	return g, true
}

// Antiderivatives returns every board obtained from b by legally filling
// exactly one more open cell: for each open cell, one clone per digit that
// does not conflict with a known peer.
func (b *Board) Antiderivatives() []*Board {
	var out []*Board
	for cell, t := range b.tiles {
		if t.isKnown() {
			continue
		}
		for _, d := range b.allowed(cell).digits() {
			nb := b.Clone()
			nb.tiles[cell] = tileOf(d)
			out = append(out, nb)
		}
	}
	return out
}
