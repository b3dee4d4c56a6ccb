package sudoku

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/sievego/cellmask"
)

// ErrInvalidGrid is returned when a grid is not a complete, valid solution.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is an immutable, fully solved Sudoku configuration: one digit 1..9
// per cell, every row, column and region a permutation of 1..9. A Grid is
// validated once at construction and never mutated.
type Grid struct {
	digits [cellmask.Cells]uint8
}

// NewGrid validates digits as a complete solved grid and wraps it.
func NewGrid(digits [cellmask.Cells]uint8) (*Grid, error) {
	if err := validate(digits); err != nil {
		return nil, err
	}
	return &Grid{digits: digits}, nil
}

// ParseGrid parses an 81-rune digit string (row-major) into a Grid.
func ParseGrid(s string) (*Grid, error) {
	if len(s) != cellmask.Cells {
		return nil, fmt.Errorf("%w: want 81 digits, got %d", ErrInvalidGrid, len(s))
	}
	var digits [cellmask.Cells]uint8
	for i := 0; i < cellmask.Cells; i++ {
		c := s[i]
		if c < '1' || c > '9' {
			return nil, fmt.Errorf("%w: cell %d is %q", ErrInvalidGrid, i, c)
		}
		digits[i] = c - '0'
	}
	return NewGrid(digits)
}

func validate(digits [cellmask.Cells]uint8) error {
	var rows, cols, regions [9]uint16
	for cell, d := range digits {
		if d < 1 || d > 9 {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidGrid, cell, d)
		}
		bit := uint16(1) << (d - 1)
		r, c, g := cellmask.RowOf(cell), cellmask.ColOf(cell), cellmask.RegionOf(cell)
		if rows[r]&bit != 0 || cols[c]&bit != 0 || regions[g]&bit != 0 {
			return fmt.Errorf("%w: duplicate digit %d at cell %d", ErrInvalidGrid, d, cell)
		}
		rows[r] |= bit
		cols[c] |= bit
		regions[g] |= bit
	}
	return nil
}

// IsConfig reports whether the grid is a complete valid solution.
// Always true for a constructed Grid; the check lives in NewGrid.
func (g *Grid) IsConfig() bool { return g != nil }

// Digit returns the digit 1..9 at cell.
func (g *Grid) Digit(cell int) uint8 { return g.digits[cell] }

// Digits returns a copy of the 81 digits in row-major order.
func (g *Grid) Digits() [cellmask.Cells]uint8 { return g.digits }

// Diff returns the mask of cells where g and other hold different digits.
func (g *Grid) Diff(other *Grid) cellmask.Mask {
	var m cellmask.Mask
	for cell := 0; cell < cellmask.Cells; cell++ {
		if g.digits[cell] != other.digits[cell] {
			m.Set(cell)
		}
	}
	return m
}

// DigitMask returns the mask of the nine cells holding digit d.
func (g *Grid) DigitMask(d uint8) cellmask.Mask {
	var m cellmask.Mask
	for cell := 0; cell < cellmask.Cells; cell++ {
		if g.digits[cell] == d {
			m.Set(cell)
		}
	}
	return m
}

// String renders the grid as its 81-digit row-major string.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(cellmask.Cells)
	for _, d := range g.digits {
		sb.WriteByte('0' + d)
	}
	return sb.String()
}
