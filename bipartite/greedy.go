package bipartite

import (
	"fmt"
	"math/rand"
)

// GreedyMatch computes a greedy randomized matching on a private copy of g.
//
// The copy's edges, oriented left→right in insertion order, are shuffled
// with rng (Fisher–Yates) and scanned once. An edge is accepted when both
// endpoints are free at that moment; all edges incident to either endpoint
// are then removed and a Snapshot is recorded. Otherwise the edge is
// skipped and nothing changes.
//
// Returns the matching in acceptance order and len(matching)+1 snapshots.
// g itself is never modified, so GreedyMatch may be called repeatedly or
// concurrently on the same graph with distinct rngs.
//
// Errors: ErrInvalidGraph, ErrNeedRandSource, ErrOptionViolation, or the
// context error when Ctx is cancelled mid-scan.
//
// Complexity: O(E·Δ) where Δ is the maximum degree.
func GreedyMatch(g *Graph, rng *rand.Rand, opts ...Option) (Matching, []Snapshot, error) {
	if g == nil || g.g == nil {
		return nil, nil, fmt.Errorf("%s: nil graph: %w", MethodGreedyMatch, ErrInvalidGraph)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodGreedyMatch, ErrNeedRandSource)
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodGreedyMatch, err)
	}

	work := g.g.Clone()
	if work.EdgeCount() == 0 {
		return nil, nil, fmt.Errorf("%s: no edges: %w", MethodGreedyMatch, ErrInvalidGraph)
	}

	freeLeft := make(map[string]struct{}, len(g.left))
	for _, id := range g.left {
		freeLeft[id] = struct{}{}
	}
	freeRight := make(map[string]struct{}, len(g.right))
	for _, id := range g.right {
		freeRight[id] = struct{}{}
	}

	snapshots := []Snapshot{g.snapshot(0, work)}
	order := g.orient(work.Edges())
	shuffleEdges(order, rng)

	matching := make(Matching, 0, minInt(len(g.left), len(g.right)))
	for _, e := range order {
		if err = o.Ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", MethodGreedyMatch, err)
		}

		_, lf := freeLeft[e.Left]
		_, rf := freeRight[e.Right]
		if !lf || !rf {
			o.OnSkip(e)
			continue
		}

		matching = append(matching, e)
		delete(freeLeft, e.Left)
		delete(freeRight, e.Right)
		for _, id := range [2]string{e.Left, e.Right} {
			if _, err = work.RemoveIncidentEdges(id); err != nil {
				return nil, nil, fmt.Errorf("%s: RemoveIncidentEdges(%s): %w", MethodGreedyMatch, id, err)
			}
		}
		snapshots = append(snapshots, g.snapshot(len(matching), work))
		o.OnAccept(len(matching), e)
	}

	return matching, snapshots, nil
}

// shuffleEdges performs an in-place Fisher–Yates shuffle of es using rng.
func shuffleEdges(es []WeightedEdge, rng *rand.Rand) {
	for i := len(es) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		es[i], es[j] = es[j], es[i]
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
