// Package generator drives sieve seeding for many grids at once and
// publishes the finished sieves as snapshots.
//
// A sieve is single-threaded by contract, so the generator runs one sieve
// per goroutine and never shares one across jobs. A resource.Controller
// bounds how many jobs run concurrently and how fast solver searches are
// launched.
package generator

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/persistence"
	"github.com/hupe1980/sievego/resource"
	"github.com/hupe1980/sievego/sieve"
	"github.com/hupe1980/sievego/sudoku"
)

// Options contains configuration options for a Generator.
type Options struct {
	// Controller bounds concurrency and search rate. If nil, jobs run
	// one at a time, unthrottled.
	Controller *resource.Controller

	// Store receives one snapshot per finished sieve. If nil, nothing
	// is published.
	Store blobstore.BlobStore

	// Compression is the snapshot payload compression.
	Compression persistence.CompressionType

	// Logger receives progress events. If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultOptions contains the default configuration options for a Generator.
var DefaultOptions = Options{
	Compression: persistence.CompressionZSTD,
}

// Result describes one finished seeding job.
type Result struct {
	Grid        *sudoku.Grid
	Sieve       *sieve.Sieve
	Fingerprint string
	Items       int
	SnapshotKey string // empty when no store is configured
}

// Generator seeds sieves for batches of grids.
type Generator struct {
	opts Options
}

// New creates a Generator.
func New(optFns ...func(o *Options)) *Generator {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{opts: opts}
}

// Fingerprint returns the snapshot naming key for a grid: the FNV-1a hash
// of its digit string.
func Fingerprint(g *sudoku.Grid) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(g.String()))
	return fmt.Sprintf("%016x", h.Sum64())
}

// Run seeds one sieve per grid at the given level and returns one Result
// per grid, in input order. The first job error cancels the remaining
// jobs.
func (g *Generator) Run(ctx context.Context, grids []*sudoku.Grid, level int) ([]Result, error) {
	results := make([]Result, len(grids))

	eg, ctx := errgroup.WithContext(ctx)
	for i, grid := range grids {
		i, grid := i, grid
		eg.Go(func() error {
			if err := g.opts.Controller.AcquireWorker(ctx); err != nil {
				return err
			}
			defer g.opts.Controller.ReleaseWorker()

			res, err := g.runJob(ctx, grid, level)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runJob seeds and optionally publishes a single grid.
func (g *Generator) runJob(ctx context.Context, grid *sudoku.Grid, level int) (Result, error) {
	s, err := sieve.New(grid, nil, func(o *sieve.Options) {
		o.Logger = g.opts.Logger
	})
	if err != nil {
		return Result{}, err
	}

	for _, keep := range s.Families(level) {
		if err := g.opts.Controller.WaitSearch(ctx); err != nil {
			return Result{}, err
		}
		s.AddFromMask(keep, nil)
	}
	s.Sort()

	res := Result{
		Grid:        grid,
		Sieve:       s,
		Fingerprint: Fingerprint(grid),
		Items:       s.Len(),
	}
	if g.opts.Logger != nil {
		g.opts.Logger.Info("sieve seeded",
			"grid", res.Fingerprint,
			"level", level,
			"items", res.Items,
		)
	}

	if g.opts.Store != nil {
		key, err := g.publish(ctx, s, res.Fingerprint, level)
		if err != nil {
			return Result{}, err
		}
		res.SnapshotKey = key
	}

	return res, nil
}

// publish writes the sieve snapshot to the configured store.
func (g *Generator) publish(ctx context.Context, s *sieve.Sieve, fingerprint string, level int) (string, error) {
	key := fmt.Sprintf("%s-l%d.sieve", fingerprint, level)

	wb, err := g.opts.Store.Create(ctx, key)
	if err != nil {
		return "", err
	}
	if err := persistence.WriteSnapshot(wb, s, g.opts.Compression); err != nil {
		_ = wb.Close()
		return "", err
	}
	if err := wb.Close(); err != nil {
		return "", err
	}

	if g.opts.Logger != nil {
		g.opts.Logger.Info("snapshot published", "key", key, "items", s.Len())
	}
	return key, nil
}
