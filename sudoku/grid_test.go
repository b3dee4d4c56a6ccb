package sudoku

import (
	"strings"
	"testing"

	"github.com/hupe1980/sievego/cellmask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrid = "218574639573896124469123578721459386354681792986237415147962853695318247832745961"

// swapDigits relabels two digits across the whole grid string. Relabeling
// preserves validity.
func swapDigits(s string, a, b byte) string {
	return strings.Map(func(r rune) rune {
		switch byte(r) {
		case a:
			return rune(b)
		case b:
			return rune(a)
		default:
			return r
		}
	}, s)
}

func TestParseGrid(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		g, err := ParseGrid(testGrid)
		require.NoError(t, err)
		assert.True(t, g.IsConfig())
		assert.Equal(t, testGrid, g.String())
		assert.Equal(t, uint8(2), g.Digit(0))
		assert.Equal(t, uint8(1), g.Digit(80))
	})

	t.Run("WrongLength", func(t *testing.T) {
		_, err := ParseGrid("123")
		require.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("BadRune", func(t *testing.T) {
		_, err := ParseGrid(strings.Replace(testGrid, "2", "0", 1))
		require.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("DuplicateInRow", func(t *testing.T) {
		_, err := ParseGrid(strings.Replace(testGrid, "2", "1", 1))
		require.ErrorIs(t, err, ErrInvalidGrid)
	})
}

func TestGridDiff(t *testing.T) {
	g, err := ParseGrid(testGrid)
	require.NoError(t, err)

	t.Run("SelfIsEmpty", func(t *testing.T) {
		assert.True(t, g.Diff(g).IsEmpty())
	})

	t.Run("RelabeledPair", func(t *testing.T) {
		other, err := ParseGrid(swapDigits(testGrid, '1', '2'))
		require.NoError(t, err)

		diff := g.Diff(other)
		assert.Equal(t, 18, diff.Count())
		assert.Equal(t, g.DigitMask(1).Union(g.DigitMask(2)), diff)
	})
}

func TestDigitMask(t *testing.T) {
	g, err := ParseGrid(testGrid)
	require.NoError(t, err)

	var all cellmask.Mask
	for d := uint8(1); d <= 9; d++ {
		m := g.DigitMask(d)
		assert.Equal(t, 9, m.Count())
		assert.False(t, all.Intersects(m))
		all = all.Union(m)
	}
	assert.Equal(t, cellmask.All, all)
}
