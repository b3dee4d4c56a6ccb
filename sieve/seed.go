package sieve

import (
	"github.com/hupe1980/sievego/cellmask"
	"github.com/hupe1980/sievego/internal/combin"
	"github.com/hupe1980/sievego/sudoku"
)

// AddFromMask filters the config down to the cells in mask, enumerates
// every completion of the resulting puzzle, and offers each solution's
// cell difference against the config to Add. Returns how many items were
// admitted. onItem, if non-nil, is invoked once per admitted item.
func (s *Sieve) AddFromMask(mask cellmask.Mask, onItem func(item cellmask.Mask)) int {
	p := s.config.Filter(mask)
	added := 0
	p.SearchForSolutions(func(sol *sudoku.Grid) bool {
		diff := s.config.Diff(sol)
		if diff.IsEmpty() {
			return true
		}
		if s.Add(diff) > 0 {
			added++
			if onItem != nil {
				onItem(diff)
			}
		}
		return true
	})
	return added
}

// Seed bootstraps the sieve from the digit-class families of the grid. For
// every subset size k from 1 to level it enumerates each k-combination of
// the nine digits and blanks the cells holding those digits. Removing a
// single digit class leaves a uniquely completable puzzle, but for two or
// more digits every completion differs from the config by a union of swap
// components confined to the blanked cells, so the solver-driven harvest
// reliably yields the minimal components as a first generation of items.
//
// Whole rows, columns or regions are deliberately not blanked here: a pair
// of parallel units admits a completion that exchanges the two units
// wholesale, and the cells of that exchange never collapse under reduction,
// so such masks only ever contribute the degenerate unit-swap patterns.
//
// After the passes every bucket is sorted ascending by mask value so that
// enumeration order is deterministic. Returns the total number of admitted
// items. Levels above 9 are clamped.
func (s *Sieve) Seed(level int, onItem func(item cellmask.Mask)) int {
	total := 0
	for _, keep := range s.Families(level) {
		total += s.AddFromMask(keep, onItem)
	}
	if s.logger != nil {
		s.logger.Debug("seed finished", "level", level, "added", total, "len", s.length)
	}
	s.Sort()
	return total
}

// Families returns the keep-masks a Seed run at the given level feeds to
// AddFromMask, in seeding order: for each subset size k from 1 to level,
// each k-combination of the nine digits contributes the complement of its
// digit-class mask.
func (s *Sieve) Families(level int) []cellmask.Mask {
	if level > 9 {
		level = 9
	}
	var out []cellmask.Mask
	for k := 1; k <= level; k++ {
		combin.Each(9, k, func(combo []int) bool {
			out = append(out, s.digitsMask(combo).Complement())
			return true
		})
	}
	return out
}

// digitsMask is the union of the digit-class masks of the combination, read
// as digits 1 through 9.
func (s *Sieve) digitsMask(combo []int) cellmask.Mask {
	var m cellmask.Mask
	for _, i := range combo {
		m = m.Union(s.config.DigitMask(uint8(i + 1)))
	}
	return m
}
