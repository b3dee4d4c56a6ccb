package sievego

import (
	"github.com/hupe1980/sievego/cellmask"
	"github.com/hupe1980/sievego/persistence"
)

type options struct {
	logger      *Logger
	compression persistence.CompressionType
	initial     []cellmask.Mask
}

// Option configures sieve construction and snapshot behavior.
type Option func(*options)

// WithLogger configures structured logging for the sieve and its seeding
// passes. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCompression configures the payload compression used by Save.
// The default is ZSTD.
func WithCompression(ct persistence.CompressionType) Option {
	return func(o *options) {
		o.compression = ct
	}
}

// WithInitialItems adds items at construction. They run through the full
// admission path; inadmissible masks are silently declined.
func WithInitialItems(items ...cellmask.Mask) Option {
	return func(o *options) {
		o.initial = append(o.initial, items...)
	}
}
