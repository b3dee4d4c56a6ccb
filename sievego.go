package sievego

import (
	"context"
	"log/slog"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/persistence"
	"github.com/hupe1980/sievego/sieve"
	"github.com/hupe1980/sievego/sudoku"
)

// Sieve is the facade over the core sieve: the full query and mutation
// surface of sieve.Sieve plus snapshot save/load against a blob store.
type Sieve struct {
	*sieve.Sieve
	compression persistence.CompressionType
}

// New creates a sieve over the solved grid given as an 81-digit row-major
// string.
func New(gridDigits string, optFns ...Option) (*Sieve, error) {
	grid, err := sudoku.ParseGrid(gridDigits)
	if err != nil {
		return nil, err
	}
	return NewFromGrid(grid, optFns...)
}

// NewFromGrid creates a sieve over an already-validated grid.
func NewFromGrid(grid *sudoku.Grid, optFns ...Option) (*Sieve, error) {
	opts := options{
		compression: persistence.CompressionZSTD,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	core, err := sieve.New(grid, opts.initial, func(o *sieve.Options) {
		o.Logger = coreLogger(opts.logger)
	})
	if err != nil {
		return nil, err
	}

	return &Sieve{
		Sieve:       core,
		compression: opts.compression,
	}, nil
}

// Save writes the sieve as a snapshot blob under the given name.
func (s *Sieve) Save(ctx context.Context, store blobstore.BlobStore, name string) error {
	wb, err := store.Create(ctx, name)
	if err != nil {
		return err
	}
	if err := persistence.WriteSnapshot(wb, s.Sieve, s.compression); err != nil {
		_ = wb.Close()
		return err
	}
	return wb.Close()
}

// Load restores a sieve from a snapshot blob.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Sieve, error) {
	opts := options{
		compression: persistence.CompressionZSTD,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	snap, err := persistence.ReadSnapshot(blobstore.Reader(blob))
	if err != nil {
		return nil, err
	}

	core, err := snap.Restore(coreLogger(opts.logger))
	if err != nil {
		return nil, err
	}
	return &Sieve{
		Sieve:       core,
		compression: opts.compression,
	}, nil
}

// coreLogger unwraps the facade logger for the core packages.
func coreLogger(l *Logger) *slog.Logger {
	if l == nil {
		return nil
	}
	return l.Logger
}
