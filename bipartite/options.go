package bipartite

import (
	"context"
	"fmt"
)

// Option configures GreedyMatch and MatchParallel via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the algorithm is invoked.
type Option func(*MatchOptions)

// MatchOptions holds callbacks and limits for a matching run.
type MatchOptions struct {
	// Ctx allows cancellation between edge decisions.
	Ctx context.Context

	// OnAccept is called after an edge is accepted and its snapshot
	// recorded. step is 1-based.
	OnAccept func(step int, e WeightedEdge)

	// OnSkip is called for an edge whose endpoint was already taken.
	OnSkip func(e WeightedEdge)

	// Workers bounds MatchParallel concurrency. 0 means GOMAXPROCS.
	Workers int

	err error
}

// DefaultOptions returns a background context, no-op hooks and Workers = 0.
func DefaultOptions() MatchOptions {
	return MatchOptions{
		Ctx:      context.Background(),
		OnAccept: func(int, WeightedEdge) {},
		OnSkip:   func(WeightedEdge) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *MatchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnAccept registers a callback for accepted edges. Under MatchParallel
// it is called from several goroutines.
func WithOnAccept(fn func(step int, e WeightedEdge)) Option {
	return func(o *MatchOptions) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// WithOnSkip registers a callback for skipped edges.
func WithOnSkip(fn func(e WeightedEdge)) Option {
	return func(o *MatchOptions) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}

// WithWorkers bounds the number of concurrent runs in MatchParallel.
//
//	n > 0: at most n runs at once
//	n == 0: GOMAXPROCS
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *MatchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

func applyOptions(opts []Option) (MatchOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
