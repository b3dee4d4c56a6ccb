package generator

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/persistence"
	"github.com/hupe1980/sievego/resource"
	"github.com/hupe1980/sievego/sudoku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrid = "218574639573896124469123578721459386354681792986237415147962853695318247832745961"

// relabeled returns the grid with two digits swapped, which is again a
// valid solved grid.
func relabeled(t *testing.T, g *sudoku.Grid, a, b byte) *sudoku.Grid {
	t.Helper()

	swapped := strings.Map(func(r rune) rune {
		switch byte(r) {
		case a:
			return rune(b)
		case b:
			return rune(a)
		default:
			return r
		}
	}, g.String())

	out, err := sudoku.ParseGrid(swapped)
	require.NoError(t, err)
	return out
}

func TestFingerprint(t *testing.T) {
	g, err := sudoku.ParseGrid(testGrid)
	require.NoError(t, err)

	fp := Fingerprint(g)
	assert.Len(t, fp, 16)
	assert.Equal(t, fp, Fingerprint(g))
	assert.NotEqual(t, fp, Fingerprint(relabeled(t, g, '1', '2')))
}

func TestRun(t *testing.T) {
	g, err := sudoku.ParseGrid(testGrid)
	require.NoError(t, err)
	grids := []*sudoku.Grid{g, relabeled(t, g, '3', '7')}

	store := blobstore.NewMemoryStore()
	gen := New(func(o *Options) {
		o.Controller = resource.NewController(resource.Config{MaxWorkers: 2})
		o.Store = store
		o.Compression = persistence.CompressionNone
	})

	// Level 1 finishes fast and admits nothing, so the interesting part
	// is the plumbing: ordering, fingerprints, snapshot publication.
	results, err := gen.Run(context.Background(), grids, 1)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for i, res := range results {
		assert.Same(t, grids[i], res.Grid)
		assert.Equal(t, Fingerprint(grids[i]), res.Fingerprint)
		assert.Equal(t, 0, res.Items)
		assert.Equal(t, fmt.Sprintf("%s-l1.sieve", res.Fingerprint), res.SnapshotKey)

		blob, err := store.Open(context.Background(), res.SnapshotKey)
		require.NoError(t, err)
		snap, err := persistence.ReadSnapshot(blobstore.Reader(blob))
		require.NoError(t, err)
		require.NoError(t, blob.Close())
		assert.Equal(t, grids[i].String(), snap.Grid.String())
		assert.Empty(t, snap.Items)
	}

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestRunWithoutStore(t *testing.T) {
	g, err := sudoku.ParseGrid(testGrid)
	require.NoError(t, err)

	gen := New()
	results, err := gen.Run(context.Background(), []*sudoku.Grid{g}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].SnapshotKey)
	assert.NotNil(t, results[0].Sieve)
}

func TestRunCanceled(t *testing.T) {
	g, err := sudoku.ParseGrid(testGrid)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := New(func(o *Options) {
		o.Controller = resource.NewController(resource.Config{MaxWorkers: 1})
	})
	_, err = gen.Run(ctx, []*sudoku.Grid{g, g}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
