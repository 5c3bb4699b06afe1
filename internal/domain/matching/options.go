package matching

import "context"

// Parallel runs fn for every index in [0, n). Implementations may call fn
// concurrently; each index is visited exactly once.
type Parallel interface {
	Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithParallel scores pools of at least threshold candidates on p.
// Smaller pools are scored on the calling goroutine.
func WithParallel(p Parallel, threshold int) Option {
	return func(e *Engine) {
		if p == nil {
			return
		}
		e.parallel = p
		if threshold > 0 {
			e.threshold = threshold
		}
	}
}
