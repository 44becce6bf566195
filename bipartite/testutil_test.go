package bipartite_test

import (
	"math/rand"
	"testing"

	"github.com/ronylevy1/algo9/bipartite"
	"github.com/ronylevy1/algo9/builder"
	"github.com/ronylevy1/algo9/core"
	"github.com/stretchr/testify/require"
)

var (
	names   = []string{"Ami", "Tami", "Rami", "Sami"}
	letters = []string{"A", "B", "C", "D"}
)

// seeded returns a fresh deterministic stream.
func seeded(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// completeGraph builds the random K4,4 used across tests.
func completeGraph(t testing.TB, seed int64) *bipartite.Graph {
	t.Helper()
	g, err := bipartite.BuildGraph(names, letters, seeded(seed))
	require.NoError(t, err)
	return g
}

// uniformGraph builds K4,4 with every weight equal to 0.25.
func uniformGraph(t testing.TB) *bipartite.Graph {
	t.Helper()
	g, err := bipartite.BuildGraph(names, letters, seeded(1), builder.WithDrawFn(builder.ConstantDraw(1)))
	require.NoError(t, err)
	return g
}

// sparseGraph wraps a weighted path-like bipartite graph:
//
//	a–x, b–x, b–y, c–y, c–z
func sparseGraph(t testing.TB) *bipartite.Graph {
	t.Helper()
	cg := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		l, r string
		w    float64
	}{{"a", "x", 1}, {"b", "x", 0.5}, {"b", "y", 0.25}, {"c", "y", 2}, {"c", "z", 3}} {
		_, err := cg.AddEdge(e.l, e.r, e.w)
		require.NoError(t, err)
	}
	g, err := bipartite.FromCore(cg, []string{"a", "b", "c"}, []string{"x", "y", "z"})
	require.NoError(t, err)
	return g
}

// remainingAfter returns the edges of g not incident to any endpoint of
// the first k matched edges.
func remainingAfter(g *bipartite.Graph, m bipartite.Matching, k int) []bipartite.WeightedEdge {
	taken := map[string]bool{}
	for _, e := range m[:k] {
		taken[e.Left], taken[e.Right] = true, true
	}
	var out []bipartite.WeightedEdge
	for _, e := range g.Edges() {
		if !taken[e.Left] && !taken[e.Right] {
			out = append(out, e)
		}
	}
	return out
}
