// Package batch runs containment queries for a batch of targets across a
// fixed pool of workers, preserving input order in the output.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gideongrinberg/tesslocate/internal/domain"
	"github.com/gideongrinberg/tesslocate/internal/footprint"
	"github.com/gideongrinberg/tesslocate/internal/observability"
	"github.com/gideongrinberg/tesslocate/internal/sphere"
)

// progressStride is how many completed targets pass between progress
// callbacks. Matches the cadence users expect from long batch runs without
// serializing the workers.
const progressStride = 100

// Progress receives best-effort completion updates during Run. It may be
// called concurrently from several workers and must not block.
type Progress func(done, total int)

// Executor fans a target batch out across workers and reassembles results in
// input order. The index is read-only, so workers share it without locking.
type Executor struct {
	index   *footprint.Index
	logger  *slog.Logger
	metrics *observability.Metrics
	workers int
}

// New creates an Executor. A non-positive worker count defaults to
// GOMAXPROCS.
func New(index *footprint.Index, logger *slog.Logger, metrics *observability.Metrics, workers int) *Executor {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Executor{
		index:   index,
		logger:  logger,
		metrics: metrics,
		workers: workers,
	}
}

// Run queries every target against the index and returns one result per
// target, with results[i] corresponding to targets[i] regardless of worker
// count. Workers claim target indices from a shared counter and write into
// disjoint slots of the result slice, so no further synchronization is
// needed before the final join. progress may be nil.
//
// Individual queries cannot fail; the only error is context cancellation
// between targets, in which case partial results are discarded.
func (e *Executor) Run(ctx context.Context, targets []domain.Target, progress Progress) ([]domain.TargetResult, error) {
	results := make([]domain.TargetResult, len(targets))
	if len(targets) == 0 {
		return results, nil
	}

	workers := e.workers
	if workers > len(targets) {
		workers = len(targets)
	}
	e.logger.Info("batch query starting", "targets", len(targets), "workers", workers)

	var next, done atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				i := int(next.Add(1) - 1)
				if i >= len(targets) {
					return
				}
				results[i] = e.locate(targets[i])

				n := done.Add(1)
				if progress != nil && (n%progressStride == 0 || n == int64(len(targets))) {
					progress(int(n), len(targets))
				}
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// locate resolves one target: normalize its coordinates, query the index,
// and carry the original identifier and coordinates into the result.
func (e *Executor) locate(t domain.Target) domain.TargetResult {
	p := sphere.PointFromRADec(t.RA, t.Dec)

	start := time.Now()
	observations := e.index.Query(p)
	e.metrics.QueryDuration.Observe(time.Since(start).Seconds())
	e.metrics.TargetsProcessed.Inc()
	e.metrics.Matches.Add(float64(len(observations)))

	if observations == nil {
		observations = []string{}
	}
	return domain.TargetResult{
		ID:           t.ID,
		RA:           t.RA,
		Dec:          t.Dec,
		Observations: observations,
	}
}
