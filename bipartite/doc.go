// Package bipartite implements greedy randomized matching on weighted
// bipartite graphs and records the graph history produced along the way.
//
// A Graph wraps a core.Graph together with its two vertex sides. Graphs are
// created either by BuildGraph, which produces a complete bipartite graph
// with column-stochastic weights (for every right node r the weights of its
// edges sum to 1), or by FromCore, which validates an arbitrary, possibly
// sparse, undirected core graph against a given partition. When the sides
// are unknown, Partition recovers them by breadth-first 2-coloring and
// Infer wraps the result.
//
// GreedyMatch never mutates its input. Each call clones the graph, shuffles
// the current edge list with the supplied *rand.Rand and walks it once:
//
//	for each edge (l, r) in shuffled order:
//	    if l and r are both still free:
//	        accept (l, r)
//	        remove every edge incident to l or r
//	        record a Snapshot
//	    else:
//	        skip
//
// Free-set membership is checked at the moment each edge is considered, so
// an edge whose endpoint was taken earlier in the same pass is skipped. The
// snapshot sequence always has len(matching)+1 entries: snapshot 0 is the
// untouched graph, snapshot i the graph after the i-th accepted edge.
//
// Determinism:
//
//	The base edge order is the graph's insertion order ("e1","e2",...).
//	Same graph + same seed ⇒ identical matching and snapshots.
//
// Concurrency:
//
//	A *rand.Rand is not safe for concurrent use. Give every goroutine its
//	own stream via DeriveRand, share one through NewLockedRand, or let
//	MatchParallel derive the streams for you.
//
// Errors:
//
//	ErrInvalidGraph           - nil graph, not bipartite over the sides, or no edges.
//	ErrNeedRandSource         - nil *rand.Rand.
//	ErrDegenerateDistribution - a right node's raw draws cannot be normalized.
//	ErrInvalidMatching        - a matching repeats a node.
//	ErrOptionViolation        - an Option or MatchParallel argument is out of range.
package bipartite
