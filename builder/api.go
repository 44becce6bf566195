// SPDX-License-Identifier: MIT
// Package: algo9/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/ronylevy1/algo9/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return wrapped
// sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w"; the partially built
// graph is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever sentinel the failing constructor wrapped.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// BuildWeightedBipartite is the common entry point for a weighted,
// undirected K_{|L|,|R|} with column-stochastic weights drawn from rng.
// It is BuildGraph with WithWeighted, WithRand(rng) and LabeledBipartite.
// Extra options are applied after the rng, so a later WithSeed/WithRand wins.
//
// Errors:
//   - ErrNeedRandSource if rng is nil and no option supplies one.
//   - ErrInvalidLabels, ErrDegenerateDistribution from LabeledBipartite.
func BuildWeightedBipartite(left, right []string, rng *rand.Rand, opts ...BuilderOption) (*core.Graph, error) {
	bopts := make([]BuilderOption, 0, len(opts)+1)
	if rng != nil {
		bopts = append(bopts, WithRand(rng))
	}
	bopts = append(bopts, opts...)

	return BuildGraph([]core.GraphOption{core.WithWeighted()}, bopts, LabeledBipartite(left, right))
}
