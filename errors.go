package sievego

import (
	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/sieve"
	"github.com/hupe1980/sievego/sudoku"
)

// Unified sentinels so facade callers do not have to import subpackages to
// classify failures.
var (
	// ErrInvalidGrid is returned when a grid string is not a complete,
	// valid solved grid.
	ErrInvalidGrid = sudoku.ErrInvalidGrid

	// ErrNilConfig is returned when a sieve is constructed without a grid.
	ErrNilConfig = sieve.ErrNilConfig

	// ErrNotFound is returned when a named snapshot does not exist.
	ErrNotFound = blobstore.ErrNotFound
)
