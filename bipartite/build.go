package bipartite

import (
	"fmt"
	"math/rand"

	"github.com/ronylevy1/algo9/builder"
	"github.com/ronylevy1/algo9/core"
)

// BuildGraph creates the complete bipartite graph left × right. For every
// right node r, |left| raw values are drawn from rng (in left order) and
// divided by their sum, so Σ_l w(l, r) = 1.
//
// Options are forwarded to the builder; builder.WithDrawFn replaces the
// uniform draw.
//
// Errors: ErrNeedRandSource, builder.ErrInvalidLabels,
// builder.ErrTooFewVertices, ErrDegenerateDistribution.
//
// Complexity: O(|L|·|R|).
func BuildGraph(left, right []string, rng *rand.Rand, opts ...builder.BuilderOption) (*Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", builder.MethodBuildGraph, ErrNeedRandSource)
	}
	g, err := builder.BuildWeightedBipartite(left, right, rng, opts...)
	if err != nil {
		return nil, err
	}

	return newGraph(g, left, right), nil
}

// FromCore wraps a copy of g after checking that it is undirected, that its
// vertex set is exactly left ∪ right, that every edge crosses the sides and
// that it has at least one edge. Vertices carrying builder.SideAttr must be
// tagged with their actual side.
//
// The graph may be sparse and may be unweighted (all weights zero).
func FromCore(g *core.Graph, left, right []string) (*Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", MethodFromCore, ErrInvalidGraph)
	}
	if g.Directed() {
		return nil, fmt.Errorf("%s: graph is directed: %w", MethodFromCore, ErrInvalidGraph)
	}
	if err := checkSides(left, right); err != nil {
		return nil, err
	}

	bg := newGraph(g.Clone(), left, right)
	for id, want := range bg.side {
		if !bg.g.HasVertex(id) {
			return nil, fmt.Errorf("%s: %s vertex %q missing: %w", MethodFromCore, want, id, ErrInvalidGraph)
		}
		if tag, ok := bg.g.VertexAttr(id, builder.SideAttr); ok && tag != want {
			return nil, fmt.Errorf("%s: vertex %q tagged %v, expected %s: %w", MethodFromCore, id, tag, want, ErrInvalidGraph)
		}
	}
	if n := bg.g.VertexCount(); n != len(bg.side) {
		return nil, fmt.Errorf("%s: graph has %d vertices outside the sides: %w",
			MethodFromCore, n-len(bg.side), ErrInvalidGraph)
	}

	edges := bg.g.Edges()
	if len(edges) == 0 {
		return nil, fmt.Errorf("%s: no edges: %w", MethodFromCore, ErrInvalidGraph)
	}
	for _, e := range edges {
		if bg.side[e.From] == bg.side[e.To] {
			return nil, fmt.Errorf("%s: edge %s %s–%s stays on the %s side: %w",
				MethodFromCore, e.ID, e.From, e.To, bg.side[e.From], ErrInvalidGraph)
		}
	}

	return bg, nil
}

// checkSides rejects empty sides, empty or duplicate labels and labels
// shared by both sides.
func checkSides(left, right []string) error {
	if len(left) == 0 || len(right) == 0 {
		return fmt.Errorf("%s: |left|=%d, |right|=%d: %w", MethodFromCore, len(left), len(right), ErrInvalidGraph)
	}
	seen := make(map[string]string, len(left)+len(right))
	for _, part := range []struct {
		name   string
		labels []string
	}{{builder.SideLeft, left}, {builder.SideRight, right}} {
		for _, id := range part.labels {
			if id == "" {
				return fmt.Errorf("%s: empty %s label: %w", MethodFromCore, part.name, ErrInvalidGraph)
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("%s: label %q on %s and %s: %w", MethodFromCore, id, prev, part.name, ErrInvalidGraph)
			}
			seen[id] = part.name
		}
	}

	return nil
}
