// Package resource bounds the work a seeding run may consume. The sieve
// itself never pre-empts an in-flight solver search, so operational bounds
// live outside the core: a worker semaphore caps concurrent seeding jobs
// and a rate limiter caps how fast solver searches are launched.
package resource

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits for seeding runs.
type Config struct {
	// MaxWorkers is the maximum number of concurrent seeding jobs.
	// If 0, defaults to 1.
	MaxWorkers int64

	// SearchesPerSec caps how many solver searches are started per
	// second across all jobs. If 0, unlimited.
	SearchesPerSec float64
}

// Controller manages seeding resources.
type Controller struct {
	cfg Config

	workerSem     *semaphore.Weighted
	searchLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}
	if cfg.SearchesPerSec > 0 {
		c.searchLimiter = rate.NewLimiter(rate.Limit(cfg.SearchesPerSec), 1)
	}
	return c
}

// MaxWorkers returns the configured worker cap.
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 1
	}
	return c.cfg.MaxWorkers
}

// AcquireWorker blocks until a worker slot is available or ctx is canceled.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// ReleaseWorker returns a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}

// WaitSearch blocks until the next solver search may start.
func (c *Controller) WaitSearch(ctx context.Context) error {
	if c == nil || c.searchLimiter == nil {
		return nil
	}
	return c.searchLimiter.Wait(ctx)
}
