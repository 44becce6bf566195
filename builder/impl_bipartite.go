// SPDX-License-Identifier: MIT
// Package: algo9/builder
//
// impl_bipartite.go - LabeledBipartite(left,right) and CompleteBipartite(n1,n2).
//
// Contract:
//   • Sides are non-empty, labels unique and disjoint (else ErrInvalidLabels).
//   • Vertices are added left side first, each tagged Metadata[SideAttr].
//   • Weighted graphs get column-stochastic weights: for every right node r,
//     |L| raw values are drawn via cfg.drawFn (in left order) and divided by
//     their sum, so Σ_l w(l,r) = 1. A zero sum is ErrDegenerateDistribution.
//   • Unweighted graphs get weight 0 and consume no randomness.
//   • Edges are emitted column by column: r over right (outer), l over left (inner).
//   • Returns only wrapped sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(|L| + |R|) vertices + O(|L|·|R|) draws and edges.
//   • Space: O(|L|) per column for the raw draws.

package builder

import (
	"fmt"

	"github.com/ronylevy1/algo9/core"
)

// LabeledBipartite returns a Constructor for the complete bipartite graph
// over the given labels. The label slices are copied when the closure is
// created.
func LabeledBipartite(left, right []string) Constructor {
	ls := append([]string(nil), left...)
	rs := append([]string(nil), right...)

	return func(g *core.Graph, cfg builderConfig) error {
		return emitBipartite(MethodLabeledBipartite, g, cfg, ls, rs)
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2} with generated
// labels "<leftPrefix><idFn(i)>" and "<rightPrefix><idFn(j)>".
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + cfg.idFn(i)
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + cfg.idFn(j)
		}

		return emitBipartite(MethodCompleteBipartite, g, cfg, left, right)
	}
}

// emitBipartite validates labels, adds tagged vertices and emits all cross
// edges with column-stochastic weights.
func emitBipartite(method string, g *core.Graph, cfg builderConfig, left, right []string) error {
	if err := validateLabels(method, left, right); err != nil {
		return err
	}

	useWeight := g.Weighted()
	if useWeight && cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "weighted bipartite graph needs an rng")
	}

	// Draw and normalize every column before touching g so a degenerate
	// column leaves nothing half-built.
	weights := make([][]float64, len(right))
	if useWeight {
		raw := make([]float64, len(left))
		for j, r := range right {
			for i := range left {
				raw[i] = cfg.drawFn(cfg.rng)
			}
			col, err := normalizeColumn(method, r, raw)
			if err != nil {
				return err
			}
			weights[j] = col
		}
	}

	for _, id := range left {
		if err := addSideVertex(g, id, SideLeft); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	for _, id := range right {
		if err := addSideVertex(g, id, SideRight); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	for j, r := range right {
		for i, l := range left {
			var w float64
			if useWeight {
				w = weights[j][i]
			}
			if _, err := g.AddEdge(l, r, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", method, l, r, w, err)
			}
		}
	}

	return nil
}

// addSideVertex adds id and records its partition side.
func addSideVertex(g *core.Graph, id, side string) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}

	return g.SetVertexAttr(id, SideAttr, side)
}
