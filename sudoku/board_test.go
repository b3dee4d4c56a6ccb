package sudoku

import (
	"testing"

	"github.com/hupe1980/sievego/cellmask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := ParseGrid(testGrid)
	require.NoError(t, err)
	return g
}

func TestFilter(t *testing.T) {
	g := mustGrid(t)

	t.Run("KeepAll", func(t *testing.T) {
		b := g.Filter(cellmask.All)
		assert.Equal(t, 0, b.EmptyCount())
		assert.Equal(t, cellmask.All, b.KnownMask())

		got, ok := b.Grid()
		require.True(t, ok)
		assert.Equal(t, g.String(), got.String())
	})

	t.Run("KeepNone", func(t *testing.T) {
		b := g.Filter(cellmask.Mask{})
		assert.Equal(t, 81, b.EmptyCount())
		_, ok := b.Grid()
		assert.False(t, ok)
	})
}

func TestReduce(t *testing.T) {
	g := mustGrid(t)

	t.Run("FillsSingleHole", func(t *testing.T) {
		keep := cellmask.All.AndNot(cellmask.CellBit(40))
		b := g.Filter(keep)
		assert.Equal(t, 1, b.EmptyCount())

		require.True(t, b.Reduce())
		assert.Equal(t, 0, b.EmptyCount())

		got, ok := b.Grid()
		require.True(t, ok)
		assert.Equal(t, g.String(), got.String())
	})

	t.Run("LeavesAmbiguousPairOpen", func(t *testing.T) {
		// Blanking every cell of two digits leaves a pattern where the
		// global digit relabeling is a second completion, so no cell is
		// forced and reduction must not fill anything.
		holes := g.DigitMask(1).Union(g.DigitMask(2))
		b := g.Filter(holes.Complement())
		assert.Equal(t, 18, b.EmptyCount())

		require.True(t, b.Reduce())
		assert.Equal(t, 18, b.EmptyCount())
	})
}

func TestSearchForSolutions(t *testing.T) {
	g := mustGrid(t)

	t.Run("CompleteBoardYieldsItself", func(t *testing.T) {
		var got []string
		g.Filter(cellmask.All).SearchForSolutions(func(sol *Grid) bool {
			got = append(got, sol.String())
			return true
		})
		require.Len(t, got, 1)
		assert.Equal(t, g.String(), got[0])
	})

	t.Run("EarlyExit", func(t *testing.T) {
		holes := g.DigitMask(1).Union(g.DigitMask(2))
		calls := 0
		g.Filter(holes.Complement()).SearchForSolutions(func(*Grid) bool {
			calls++
			return false
		})
		assert.Equal(t, 1, calls)
	})
}

func TestSolutionsFlag(t *testing.T) {
	g := mustGrid(t)

	t.Run("Unique", func(t *testing.T) {
		b := g.Filter(cellmask.All.AndNot(cellmask.CellBit(7)))
		assert.Equal(t, SolutionsUnique, b.SolutionsFlag())
	})

	t.Run("Multiple", func(t *testing.T) {
		holes := g.DigitMask(3).Union(g.DigitMask(7))
		b := g.Filter(holes.Complement())
		assert.Equal(t, SolutionsMultiple, b.SolutionsFlag())
	})

	t.Run("MultipleOnEmptyBoard", func(t *testing.T) {
		b := g.Filter(cellmask.Mask{})
		assert.Equal(t, SolutionsMultiple, b.SolutionsFlag())
	})

	t.Run("NoneOnContradiction", func(t *testing.T) {
		// Pin a cell to a digit its row already holds.
		b := g.Filter(cellmask.All.AndNot(cellmask.CellBit(0)))
		b.tiles[0] = tileOf(g.Digit(1))
		assert.Equal(t, SolutionsNone, b.SolutionsFlag())
	})
}

func TestAntiderivatives(t *testing.T) {
	g := mustGrid(t)

	t.Run("SingleHole", func(t *testing.T) {
		b := g.Filter(cellmask.All.AndNot(cellmask.CellBit(40)))
		ads := b.Antiderivatives()
		require.Len(t, ads, 1)
		assert.Equal(t, 0, ads[0].EmptyCount())
		assert.Equal(t, []uint8{g.Digit(40)}, b.CandidateDigits(40))
	})

	t.Run("EachFillsExactlyOneCell", func(t *testing.T) {
		holes := g.DigitMask(1).Union(g.DigitMask(2))
		b := g.Filter(holes.Complement())
		before := b.EmptyCount()

		ads := b.Antiderivatives()
		require.NotEmpty(t, ads)
		for _, ad := range ads {
			assert.Equal(t, before-1, ad.EmptyCount())
		}
	})
}
