package sieve

import "github.com/hupe1980/sievego/cellmask"

// ReductionMatrix tracks, per cell, how many stored items include that
// cell, alongside an array of cells kept sorted by descending count. The
// highest-coverage cell is available in O(1); each increment or decrement
// restores the sort invariant with a localized bubble instead of a full
// re-sort or a binary heap, since consecutive updates only move a cell by
// small amounts.
//
// The matrix tracks all current items: every insert and every removal
// updates it. See the sieve's insert and remove.
type ReductionMatrix struct {
	counts [cellmask.Cells]int
	order  [cellmask.Cells]int // cells sorted by descending count
	rank   [cellmask.Cells]int // cell -> position in order
}

// NewReductionMatrix returns a zeroed matrix with identity ordering.
func NewReductionMatrix() *ReductionMatrix {
	m := &ReductionMatrix{}
	for cell := 0; cell < cellmask.Cells; cell++ {
		m.order[cell] = cell
		m.rank[cell] = cell
	}
	return m
}

// Count returns how many stored items currently include cell.
func (m *ReductionMatrix) Count(cell int) int { return m.counts[cell] }

// Top returns the cell included in the most stored items. Ties resolve to
// whichever cell bubbled there first.
func (m *ReductionMatrix) Top() int { return m.order[0] }

// Ranked returns the cells in descending count order. The slice is a copy.
func (m *ReductionMatrix) Ranked() []int {
	out := make([]int, cellmask.Cells)
	copy(out, m.order[:])
	return out
}

// Add increments the count of every cell in mask.
func (m *ReductionMatrix) Add(mask cellmask.Mask) {
	for cell, ok := mask.FirstSet(); ok; cell, ok = mask.NextSet(cell + 1) {
		m.counts[cell]++
		m.bubbleUp(cell)
	}
}

// Remove decrements the count of every cell in mask.
func (m *ReductionMatrix) Remove(mask cellmask.Mask) {
	for cell, ok := mask.FirstSet(); ok; cell, ok = mask.NextSet(cell + 1) {
		if m.counts[cell] == 0 {
			panic("sieve: reduction count underflow")
		}
		m.counts[cell]--
		m.bubbleDown(cell)
	}
}

// bubbleUp moves cell toward the front past any now-lower-counted neighbor.
func (m *ReductionMatrix) bubbleUp(cell int) {
	r := m.rank[cell]
	for r > 0 && m.counts[m.order[r-1]] < m.counts[cell] {
		m.swap(r-1, r)
		r--
	}
}

// bubbleDown moves cell toward the back past any now-higher-counted neighbor.
func (m *ReductionMatrix) bubbleDown(cell int) {
	r := m.rank[cell]
	for r < cellmask.Cells-1 && m.counts[m.order[r+1]] > m.counts[cell] {
		m.swap(r, r+1)
		r++
	}
}

func (m *ReductionMatrix) swap(i, j int) {
	m.order[i], m.order[j] = m.order[j], m.order[i]
	m.rank[m.order[i]] = i
	m.rank[m.order[j]] = j
}
