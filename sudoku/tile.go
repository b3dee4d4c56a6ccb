package sudoku

import "math/bits"

// Tile is a set of candidate digits for one cell, one bit per digit:
// bit 0 = digit 1 .. bit 8 = digit 9. A tile with exactly one bit set is
// known; tAny is a fully open cell.
type Tile uint16

const tAny Tile = 0x1ff

// tileOf returns the tile with only the bit for digit d (1..9) set.
func tileOf(d uint8) Tile {
	return Tile(1) << (d - 1)
}

// isKnown reports whether the tile has exactly one candidate left.
func (t Tile) isKnown() bool {
	return t != 0 && t&(t-1) == 0
}

// count returns the number of candidate digits.
func (t Tile) count() int {
	return bits.OnesCount16(uint16(t))
}

// digit returns the digit 1..9 of a known tile, or 0 if the tile is not known.
func (t Tile) digit() uint8 {
	if !t.isKnown() {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(t))) + 1
}

// digits returns the candidate digits in ascending order.
func (t Tile) digits() []uint8 {
	out := make([]uint8, 0, t.count())
	for d := uint8(1); d <= 9; d++ {
		if t&tileOf(d) != 0 {
			out = append(out, d)
		}
	}
	return out
}
