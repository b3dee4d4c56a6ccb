package sieve

import (
	"github.com/hupe1980/sievego/cellmask"
	"github.com/hupe1980/sievego/sudoku"
)

// admissible decides whether mask names a minimal unavoidable set of the
// config. The checks run in order of increasing cost:
//
//  1. Blanking the mask's cells must leave a puzzle the solver's constraint
//     reduction cannot extend by even one cell: an admissible pattern is
//     locally stuck, not trivially completable.
//  2. That puzzle must have multiple completions (not zero, not one).
//  3. Restoring any single cell, in every legal way, must leave exactly one
//     completion. This is the minimality condition: removing the whole set
//     creates ambiguity, removing any proper subset does not.
//
// The empty mask is trivially covered and never admissible.
func (s *Sieve) admissible(mask cellmask.Mask) bool {
	if mask.IsEmpty() {
		return false
	}

	p := s.config.Filter(mask.Complement())
	before := p.EmptyCount()
	if !p.Reduce() {
		return false
	}
	if p.EmptyCount() != before {
		return false
	}

	if p.SolutionsFlag() != sudoku.SolutionsMultiple {
		return false
	}

	for _, anti := range p.Antiderivatives() {
		if anti.SolutionsFlag() != sudoku.SolutionsUnique {
			return false
		}
	}

	return true
}
