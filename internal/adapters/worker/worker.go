// Package worker runs bounded, order-preserving fan-out of per-item work.
package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/okian/matchcore/pkg/logger"
	"github.com/okian/matchcore/pkg/metrics"
)

// Pool limits how many goroutines a single Run may use.
type Pool struct {
	size   int
	name   string
	logger logger.Logger
}

// NewPool creates a pool of size goroutines. A size below one uses
// runtime.NumCPU().
func NewPool(size int, opts ...Option) *Pool {
	if size < 1 {
		size = runtime.NumCPU()
	}
	p := &Pool{
		size: size,
		name: "worker-pool",
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Get().Named(p.name)
	}

	metrics.UpdateWorkerCount(size)
	return p
}

// Size returns the goroutine limit.
func (p *Pool) Size() int {
	return p.size
}

// Run calls fn once for every index in [0, n) with at most Size calls in
// flight. The first error cancels the context handed to the remaining calls
// and is returned. Callers write results by index, so ordering is theirs.
func (p *Pool) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return fn(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		p.logger.Debug(ctx, "fan-out stopped", logger.Int("items", n), logger.Error(err))
		return err
	}
	return ctx.Err()
}

// Map applies fn to every item on p and returns the results in input order.
func Map[T, R any](ctx context.Context, p *Pool, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	err := p.Run(ctx, len(items), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		out[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
