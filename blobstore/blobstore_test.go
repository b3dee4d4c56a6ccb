package blobstore

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeSuite runs the contract every BlobStore implementation must honor.
func storeSuite(t *testing.T, store BlobStore) {
	ctx := context.Background()

	t.Run("OpenMissing", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.sieve")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutOpenRead", func(t *testing.T) {
		data := []byte("hello snapshot")
		require.NoError(t, store.Put(ctx, "a.sieve", data))

		blob, err := store.Open(ctx, "a.sieve")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, int64(len(data)), blob.Size())

		got, err := io.ReadAll(Reader(blob))
		require.NoError(t, err)
		assert.Equal(t, data, got)

		// Random access.
		p := make([]byte, 8)
		_, err = blob.ReadAt(p, 6)
		require.NoError(t, err)
		assert.Equal(t, []byte("snapshot"), p)
	})

	t.Run("CreateStreams", func(t *testing.T) {
		w, err := store.Create(ctx, "b.sieve")
		require.NoError(t, err)
		_, err = w.Write([]byte("part one, "))
		require.NoError(t, err)
		_, err = w.Write([]byte("part two"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		blob, err := store.Open(ctx, "b.sieve")
		require.NoError(t, err)
		defer blob.Close()

		got, err := io.ReadAll(Reader(blob))
		require.NoError(t, err)
		assert.Equal(t, []byte("part one, part two"), got)
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "c.sieve", []byte("old")))
		require.NoError(t, store.Put(ctx, "c.sieve", []byte("new contents")))

		blob, err := store.Open(ctx, "c.sieve")
		require.NoError(t, err)
		defer blob.Close()

		got, err := io.ReadAll(Reader(blob))
		require.NoError(t, err)
		assert.Equal(t, []byte("new contents"), got)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "grids/one.sieve", []byte("1")))
		require.NoError(t, store.Put(ctx, "grids/two.sieve", []byte("2")))

		names, err := store.List(ctx, "grids/")
		require.NoError(t, err)
		assert.Equal(t, []string{"grids/one.sieve", "grids/two.sieve"}, names)

		all, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Contains(t, all, "a.sieve")
		assert.Contains(t, all, "grids/two.sieve")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "d.sieve", []byte("x")))
		require.NoError(t, store.Delete(ctx, "d.sieve"))

		_, err := store.Open(ctx, "d.sieve")
		require.ErrorIs(t, err, ErrNotFound)

		// Deleting again is not an error.
		require.NoError(t, store.Delete(ctx, "d.sieve"))
	})
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	storeSuite(t, store)
}

func TestLocalStoreAbandonedWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	// A write that is abandoned mid-stream, as Put does when Write fails,
	// must leave neither the blob nor its temp file behind.
	wb, err := store.create("partial.sieve")
	require.NoError(t, err)
	_, err = wb.Write([]byte("half a snap"))
	require.NoError(t, err)
	wb.abort()

	_, err = store.Open(context.Background(), "partial.sieve")
	require.ErrorIs(t, err, ErrNotFound)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryStore(t *testing.T) {
	storeSuite(t, NewMemoryStore())
}
