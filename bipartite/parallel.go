package bipartite

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Run is the outcome of one matching run inside MatchParallel.
type Run struct {
	Stream    int
	Matching  Matching
	Snapshots []Snapshot
}

// MatchParallel runs n independent GreedyMatch calls on g concurrently.
// Stream i uses DeriveRand(base, i); all streams are derived before any run
// starts, so results are deterministic for a fixed base seed and returned
// in stream order.
//
// The first failing run cancels the rest. Cancelling ctx stops further runs
// from being scheduled and aborts the ones in flight.
//
// Errors: ErrInvalidGraph, ErrNeedRandSource, ErrOptionViolation, ctx.Err().
func MatchParallel(ctx context.Context, g *Graph, base *rand.Rand, n int, opts ...Option) ([]Run, error) {
	if g == nil || g.g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", MethodMatchParallel, ErrInvalidGraph)
	}
	if base == nil {
		return nil, fmt.Errorf("%s: %w", MethodMatchParallel, ErrNeedRandSource)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: %w: n must be ≥ 1 (%d)", MethodMatchParallel, ErrOptionViolation, n)
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodMatchParallel, err)
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	streams := make([]*rand.Rand, n)
	for i := range streams {
		streams[i] = DeriveRand(base, uint64(i))
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	runs := make([]Run, n)
	runOpts := append(append([]Option(nil), opts...), WithContext(egCtx))
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			m, snaps, err := GreedyMatch(g, streams[i], runOpts...)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			runs[i] = Run{Stream: i, Matching: m, Snapshots: snaps}

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodMatchParallel, err)
	}

	return runs, nil
}
