package sievego

import (
	"context"
	"testing"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/cellmask"
	"github.com/hupe1980/sievego/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrid = "218574639573896124469123578721459386354681792986237415147962853695318247832745961"

func TestNew(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s, err := New(testGrid)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, testGrid, s.Config().String())
	})

	t.Run("WrongLength", func(t *testing.T) {
		_, err := New("123")
		require.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("DuplicateInRow", func(t *testing.T) {
		bad := []byte(testGrid)
		bad[1] = bad[0]
		_, err := New(string(bad))
		require.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("NilGrid", func(t *testing.T) {
		_, err := NewFromGrid(nil)
		require.ErrorIs(t, err, ErrNilConfig)
	})
}

func TestWithInitialItems(t *testing.T) {
	donor, err := New(testGrid)
	require.NoError(t, err)
	donor.Seed(2, nil)
	require.NotZero(t, donor.Len())

	item := donor.First()

	// Admissible items are admitted, inadmissible ones silently declined.
	s, err := New(testGrid, WithInitialItems(item, cellmask.Mask{}))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has(item))
}

func TestSaveLoad(t *testing.T) {
	s, err := New(testGrid, WithCompression(persistence.CompressionLZ4))
	require.NoError(t, err)
	s.Seed(2, nil)
	require.Equal(t, 56, s.Len())

	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, s.Save(ctx, store, "grid.sieve"))

	loaded, err := Load(ctx, store, "grid.sieve")
	require.NoError(t, err)
	assert.Equal(t, s.Config().String(), loaded.Config().String())
	assert.Equal(t, s.Items(), loaded.Items())
	for cell := 0; cell < cellmask.Cells; cell++ {
		assert.Equal(t, s.Matrix().Count(cell), loaded.Matrix().Count(cell))
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "nope.sieve")
	require.ErrorIs(t, err, ErrNotFound)
}
