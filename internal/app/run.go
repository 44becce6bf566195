package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/ronylevy1/algo9/bipartite"
	"github.com/ronylevy1/algo9/builder"
	"github.com/ronylevy1/algo9/internal/codec"
	"github.com/ronylevy1/algo9/internal/config"
	"github.com/ronylevy1/algo9/internal/ctxlog"
)

// ErrNoDistinctMatching is returned when max_attempts matchings all repeat
// the first pair set.
var ErrNoDistinctMatching = errors.New("app: no distinct second matching")

// NoDistinctError carries the attempt count behind ErrNoDistinctMatching.
type NoDistinctError struct {
	Attempts int
}

func (e *NoDistinctError) Error() string {
	return fmt.Sprintf("%v after %d attempts", ErrNoDistinctMatching, e.Attempts)
}

func (e *NoDistinctError) Unwrap() error { return ErrNoDistinctMatching }

// Execute samples the sides, builds the graph and computes two matchings
// with different pair sets. cfg must already be validated.
func Execute(ctx context.Context, cfg *config.Config) (*codec.Report, error) {
	logger := ctxlog.FromContext(ctx)
	rng := bipartite.RandFromSeed(cfg.Seed)

	left, err := builder.SampleLabels(cfg.LeftPool, cfg.SampleSize, rng)
	if err != nil {
		return nil, err
	}
	right, err := builder.SampleLabels(cfg.RightPool, cfg.SampleSize, rng)
	if err != nil {
		return nil, err
	}

	g, err := bipartite.BuildGraph(left, right, rng)
	if err != nil {
		return nil, err
	}
	logger.Info("Graph built.", "left", left, "right", right, "edges", g.EdgeCount())

	first, firstSnaps, err := bipartite.GreedyMatch(g, rng,
		bipartite.WithContext(ctx), bipartite.WithOnAccept(acceptLogger(ctx, 1)))
	if err != nil {
		return nil, err
	}
	logger.Info("Run complete.", "run", 1, "size", len(first), "total_weight", first.TotalWeight())

	second, secondSnaps, attempts, err := distinctMatching(ctx, g, rng, first, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Run complete.", "run", 2, "size", len(second), "total_weight", second.TotalWeight(),
		"attempts", attempts)

	return &codec.Report{
		Seed:  cfg.Seed,
		Left:  left,
		Right: right,
		Edges: g.Edges(),
		Runs: []codec.Run{
			codec.NewRun(1, 1, first, firstSnaps, cfg.Output.Snapshots),
			codec.NewRun(2, attempts, second, secondSnaps, cfg.Output.Snapshots),
		},
	}, nil
}

// distinctMatching reruns GreedyMatch until the pair set differs from first.
// With more than one worker, attempts run in MatchParallel batches and the
// lowest differing stream of a batch wins.
func distinctMatching(ctx context.Context, g *bipartite.Graph, rng *rand.Rand, first bipartite.Matching,
	cfg *config.Config) (bipartite.Matching, []bipartite.Snapshot, int, error) {
	logger := ctxlog.FromContext(ctx)
	attempts := 0

	if cfg.Workers <= 1 {
		for attempts < cfg.MaxAttempts {
			attempts++
			m, snaps, err := bipartite.GreedyMatch(g, rng,
				bipartite.WithContext(ctx), bipartite.WithOnAccept(acceptLogger(ctx, 2)))
			if err != nil {
				return nil, nil, attempts, err
			}
			if !m.SameAs(first) {
				return m, snaps, attempts, nil
			}
			logger.Debug("Matching repeats run 1, retrying.", "attempt", attempts)
		}
		return nil, nil, attempts, &NoDistinctError{Attempts: attempts}
	}

	for attempts < cfg.MaxAttempts {
		batch := cfg.Workers
		if rest := cfg.MaxAttempts - attempts; rest < batch {
			batch = rest
		}
		runs, err := bipartite.MatchParallel(ctx, g, rng, batch, bipartite.WithWorkers(cfg.Workers))
		if err != nil {
			return nil, nil, attempts, err
		}
		for _, r := range runs {
			attempts++
			if !r.Matching.SameAs(first) {
				return r.Matching, r.Snapshots, attempts, nil
			}
		}
		logger.Debug("Batch repeated run 1, retrying.", "batch", batch, "attempts", attempts)
	}
	return nil, nil, attempts, &NoDistinctError{Attempts: attempts}
}

func acceptLogger(ctx context.Context, run int) func(int, bipartite.WeightedEdge) {
	logger := ctxlog.FromContext(ctx)
	return func(step int, e bipartite.WeightedEdge) {
		logger.Debug("Edge accepted.", "run", run, "step", step, "left", e.Left, "right", e.Right, "weight", e.Weight)
	}
}
