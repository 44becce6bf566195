package bipartite

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ronylevy1/algo9/builder"
	"github.com/ronylevy1/algo9/core"
)

// Method names used as error-context prefixes.
const (
	MethodFromCore      = "FromCore"
	MethodGreedyMatch   = "GreedyMatch"
	MethodMatchParallel = "MatchParallel"
	MethodValidate      = "Matching.Validate"
)

// Sentinel errors for bipartite matching.
var (
	// ErrInvalidGraph is returned for a nil graph, a graph that is not
	// bipartite over two disjoint sides, or a graph without edges.
	ErrInvalidGraph = errors.New("bipartite: invalid graph")

	// ErrInvalidMatching is returned when a matching repeats a node.
	ErrInvalidMatching = errors.New("bipartite: invalid matching")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bipartite: invalid option supplied")

	// ErrNeedRandSource is returned when a nil *rand.Rand is passed.
	ErrNeedRandSource = builder.ErrNeedRandSource

	// ErrDegenerateDistribution is returned when a right node's draws sum
	// to zero or contain a negative or non-finite value.
	ErrDegenerateDistribution = builder.ErrDegenerateDistribution
)

// WeightedEdge is an edge oriented from its left endpoint to its right one.
type WeightedEdge struct {
	Left   string  `json:"left" yaml:"left"`
	Right  string  `json:"right" yaml:"right"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Pair is the unweighted (left, right) identity of an edge.
type Pair struct {
	Left, Right string
}

// Pair drops the weight.
func (e WeightedEdge) Pair() Pair { return Pair{Left: e.Left, Right: e.Right} }

// String renders the edge as "l ↔ r (p=0.xx)".
func (e WeightedEdge) String() string {
	return fmt.Sprintf("%s ↔ %s (p=%.2f)", e.Left, e.Right, e.Weight)
}

// Graph is an undirected bipartite graph over two disjoint, ordered sides.
// The wrapped core.Graph is private and never mutated after construction.
type Graph struct {
	left, right []string
	side        map[string]string
	g           *core.Graph
}

// newGraph assumes left/right were validated and g is owned by the result.
func newGraph(g *core.Graph, left, right []string) *Graph {
	side := make(map[string]string, len(left)+len(right))
	for _, id := range left {
		side[id] = builder.SideLeft
	}
	for _, id := range right {
		side[id] = builder.SideRight
	}

	return &Graph{
		left:  append([]string(nil), left...),
		right: append([]string(nil), right...),
		side:  side,
		g:     g,
	}
}

// Left returns a copy of the left side in construction order.
func (bg *Graph) Left() []string { return append([]string(nil), bg.left...) }

// Right returns a copy of the right side in construction order.
func (bg *Graph) Right() []string { return append([]string(nil), bg.right...) }

// Side reports builder.SideLeft or builder.SideRight for id.
func (bg *Graph) Side(id string) (string, bool) {
	s, ok := bg.side[id]
	return s, ok
}

// EdgeCount returns the number of edges.
func (bg *Graph) EdgeCount() int { return bg.g.EdgeCount() }

// Edges returns every edge oriented left→right, in insertion order.
func (bg *Graph) Edges() []WeightedEdge { return bg.orient(bg.g.Edges()) }

// Weight returns the weight of the first edge between l and r.
func (bg *Graph) Weight(l, r string) (float64, bool) {
	e, err := bg.g.EdgeBetween(l, r)
	if err != nil {
		return 0, false
	}

	return e.Weight, true
}

// Core returns a deep copy of the underlying core graph.
func (bg *Graph) Core() *core.Graph { return bg.g.Clone() }

// orient maps core edges to WeightedEdge, swapping endpoints where From is
// on the right side.
func (bg *Graph) orient(es []*core.Edge) []WeightedEdge {
	out := make([]WeightedEdge, 0, len(es))
	for _, e := range es {
		we := WeightedEdge{Left: e.From, Right: e.To, Weight: e.Weight}
		if bg.side[e.From] == builder.SideRight {
			we.Left, we.Right = e.To, e.From
		}
		out = append(out, we)
	}

	return out
}

// snapshot captures the current edge set of work as step.
func (bg *Graph) snapshot(step int, work *core.Graph) Snapshot {
	return Snapshot{
		step:  step,
		left:  bg.left,
		right: bg.right,
		edges: bg.orient(work.Edges()),
	}
}

// Matching is the ordered sequence of accepted edges.
type Matching []WeightedEdge

// Pairs returns the (left, right) pairs in acceptance order.
func (m Matching) Pairs() []Pair {
	out := make([]Pair, len(m))
	for i, e := range m {
		out[i] = e.Pair()
	}

	return out
}

// Lefts returns the matched left nodes in acceptance order.
func (m Matching) Lefts() []string {
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Left
	}

	return out
}

// Rights returns the matched right nodes in acceptance order.
func (m Matching) Rights() []string {
	out := make([]string, len(m))
	for i, e := range m {
		out[i] = e.Right
	}

	return out
}

// TotalWeight sums the accepted weights.
func (m Matching) TotalWeight() float64 {
	var sum float64
	for _, e := range m {
		sum += e.Weight
	}

	return sum
}

// SameAs reports whether m and other contain the same set of (left, right)
// pairs, ignoring order and weights.
func (m Matching) SameAs(other Matching) bool {
	if len(m) != len(other) {
		return false
	}
	set := make(map[Pair]struct{}, len(m))
	for _, e := range m {
		set[e.Pair()] = struct{}{}
	}
	for _, e := range other {
		if _, ok := set[e.Pair()]; !ok {
			return false
		}
	}

	return true
}

// Validate checks that no left or right node appears twice.
func (m Matching) Validate() error {
	seenL := make(map[string]struct{}, len(m))
	seenR := make(map[string]struct{}, len(m))
	for i, e := range m {
		if _, dup := seenL[e.Left]; dup {
			return fmt.Errorf("%s: left node %q repeated at %d: %w", MethodValidate, e.Left, i, ErrInvalidMatching)
		}
		if _, dup := seenR[e.Right]; dup {
			return fmt.Errorf("%s: right node %q repeated at %d: %w", MethodValidate, e.Right, i, ErrInvalidMatching)
		}
		seenL[e.Left] = struct{}{}
		seenR[e.Right] = struct{}{}
	}

	return nil
}

// Sorted returns a copy ordered by (Left, Right).
func (m Matching) Sorted() Matching {
	out := append(Matching(nil), m...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].Right < out[j].Right
	})

	return out
}

// Snapshot is an immutable view of the remaining edges after Step accepted
// edges. Step 0 is the graph before any matching decision.
type Snapshot struct {
	step        int
	left, right []string
	edges       []WeightedEdge
}

// Step returns the number of accepted edges this snapshot follows.
func (s Snapshot) Step() int { return s.step }

// Edges returns a copy of the remaining edges in insertion order.
func (s Snapshot) Edges() []WeightedEdge { return append([]WeightedEdge(nil), s.edges...) }

// EdgeCount returns the number of remaining edges.
func (s Snapshot) EdgeCount() int { return len(s.edges) }

// HasEdge reports whether an edge l–r remains.
func (s Snapshot) HasEdge(l, r string) bool {
	_, ok := s.Weight(l, r)
	return ok
}

// Weight returns the weight of the remaining edge l–r.
func (s Snapshot) Weight(l, r string) (float64, bool) {
	for _, e := range s.edges {
		if e.Left == l && e.Right == r {
			return e.Weight, true
		}
	}

	return 0, false
}

// Graph materializes the snapshot as a fresh weighted core.Graph holding
// every vertex of both sides (tagged with builder.SideAttr) and the
// remaining edges.
func (s Snapshot) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range s.left {
		if err := addTagged(g, id, builder.SideLeft); err != nil {
			return nil, err
		}
	}
	for _, id := range s.right {
		if err := addTagged(g, id, builder.SideRight); err != nil {
			return nil, err
		}
	}
	for _, e := range s.edges {
		if _, err := g.AddEdge(e.Left, e.Right, e.Weight); err != nil {
			return nil, fmt.Errorf("snapshot %d: AddEdge(%s–%s): %w", s.step, e.Left, e.Right, err)
		}
	}

	return g, nil
}

func addTagged(g *core.Graph, id, side string) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}

	return g.SetVertexAttr(id, builder.SideAttr, side)
}
