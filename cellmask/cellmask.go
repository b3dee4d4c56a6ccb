// Package cellmask implements fixed-width bitmasks over the 81 cells of a
// Sudoku grid, a mapping between cell indices 0..80 and boolean values.
//
// Studied [github.com/bits-and-blooms/bitset] style fixed-size rewrites and
// kept only what the sieve needs. All masks are bounded at 81 bits, so a
// Mask is two uint64 words and every operation is branch-free popcount and
// word arithmetic rather than arbitrary-precision math.
package cellmask

import (
	"fmt"
	"math/bits"
	"strings"
)

// Cells is the number of cells in a grid.
const Cells = 81

// highMask covers bits 64..80 of the second word.
const highMask = (uint64(1) << (Cells - 64)) - 1

// Mask represents a fixed size bitset over cells [0..80].
// Bit i set means cell i is a member of the set.
type Mask [2]uint64

// All is the universe mask with every cell bit set.
var All = Mask{^uint64(0), highMask}

// CellBit returns the mask with only the given cell's bit set.
func CellBit(cell int) Mask {
	var m Mask
	m.Set(cell)
	return m
}

// Set sets the bit for cell, it panics if cell is out of range by intention.
func (m *Mask) Set(cell int) {
	m[cell>>6] |= 1 << (uint(cell) & 63)
}

// Clear clears the bit for cell.
func (m *Mask) Clear(cell int) {
	m[cell>>6] &^= 1 << (uint(cell) & 63)
}

// Test reports whether the bit for cell is set.
func (m Mask) Test(cell int) bool {
	if cell < 0 || cell >= Cells {
		return false
	}
	return m[cell>>6]&(1<<(uint(cell)&63)) != 0
}

// IsEmpty reports whether no bit is set.
func (m Mask) IsEmpty() bool {
	return m[0]|m[1] == 0
}

// Count returns the number of set bits (the mask's weight).
func (m Mask) Count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1])
}

// ContainsAll reports whether every bit of sub is also set in m.
func (m Mask) ContainsAll(sub Mask) bool {
	return m[0]&sub[0] == sub[0] && m[1]&sub[1] == sub[1]
}

// Intersects reports whether m and other share at least one set bit.
func (m Mask) Intersects(other Mask) bool {
	return m[0]&other[0] != 0 || m[1]&other[1] != 0
}

// Union returns the bitwise union of m and other.
func (m Mask) Union(other Mask) Mask {
	return Mask{m[0] | other[0], m[1] | other[1]}
}

// Intersect returns the bitwise intersection of m and other.
func (m Mask) Intersect(other Mask) Mask {
	return Mask{m[0] & other[0], m[1] & other[1]}
}

// AndNot returns the bits of m that are not set in other.
func (m Mask) AndNot(other Mask) Mask {
	return Mask{m[0] &^ other[0], m[1] &^ other[1]}
}

// Complement returns the cells not in m, bounded to the 81-cell universe.
func (m Mask) Complement() Mask {
	return Mask{^m[0], ^m[1] & highMask}
}

// FirstSet returns the lowest set cell along with an ok code.
func (m Mask) FirstSet() (int, bool) {
	if x := bits.TrailingZeros64(m[0]); x != 64 {
		return x, true
	}
	if x := bits.TrailingZeros64(m[1]); x != 64 {
		return x + 64, true
	}
	return 0, false
}

// NextSet returns the next set cell at or after start, along with an ok code.
func (m Mask) NextSet(start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if start >= Cells {
		return 0, false
	}
	w := start >> 6
	first := m[w] >> (uint(start) & 63)
	if first != 0 {
		return start + bits.TrailingZeros64(first), true
	}
	for w++; w < 2; w++ {
		if m[w] != 0 {
			return w<<6 + bits.TrailingZeros64(m[w]), true
		}
	}
	return 0, false
}

// Cells returns the set cells in ascending order.
func (m Mask) Cells() []int {
	out := make([]int, 0, m.Count())
	for cell, ok := m.FirstSet(); ok; cell, ok = m.NextSet(cell + 1) {
		out = append(out, cell)
	}
	return out
}

// Less orders masks numerically, low word last. Used for deterministic
// in-bucket ordering.
func (m Mask) Less(other Mask) bool {
	if m[1] != other[1] {
		return m[1] < other[1]
	}
	return m[0] < other[0]
}

// String renders the mask as a 9x9 pattern of x/. rows, one row per line.
func (m Mask) String() string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if m.Test(row*9 + col) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		if row < 8 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// GoString implements fmt.GoStringer for debugging.
func (m Mask) GoString() string {
	return fmt.Sprintf("cellmask.Mask{%#x, %#x}", m[0], m[1])
}
