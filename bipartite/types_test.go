package bipartite_test

import (
	"testing"

	"github.com/ronylevy1/algo9/bipartite"
	"github.com/ronylevy1/algo9/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatching_SameAs(t *testing.T) {
	t.Parallel()

	a := bipartite.Matching{{"Ami", "A", 0.1}, {"Tami", "B", 0.2}}
	tests := []struct {
		name string
		b    bipartite.Matching
		want bool
	}{
		{"identical", bipartite.Matching{{"Ami", "A", 0.1}, {"Tami", "B", 0.2}}, true},
		{"reordered", bipartite.Matching{{"Tami", "B", 0.2}, {"Ami", "A", 0.1}}, true},
		{"weights ignored", bipartite.Matching{{"Ami", "A", 0.9}, {"Tami", "B", 0.9}}, true},
		{"swapped partners", bipartite.Matching{{"Ami", "B", 0.1}, {"Tami", "A", 0.2}}, false},
		{"shorter", bipartite.Matching{{"Ami", "A", 0.1}}, false},
		{"empty", nil, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.SameAs(tc.b))
			assert.Equal(t, tc.want, tc.b.SameAs(a))
		})
	}
	assert.True(t, bipartite.Matching(nil).SameAs(bipartite.Matching{}))
}

func TestMatching_Accessors(t *testing.T) {
	t.Parallel()

	m := bipartite.Matching{{"Tami", "C", 0.5}, {"Ami", "D", 0.25}}
	assert.Equal(t, []string{"Tami", "Ami"}, m.Lefts())
	assert.Equal(t, []string{"C", "D"}, m.Rights())
	assert.Equal(t, []bipartite.Pair{{"Tami", "C"}, {"Ami", "D"}}, m.Pairs())
	assert.Equal(t, 0.75, m.TotalWeight())
	assert.Equal(t, bipartite.Matching{{"Ami", "D", 0.25}, {"Tami", "C", 0.5}}, m.Sorted())
	assert.Equal(t, "Tami", m[0].Left, "Sorted must not reorder the receiver")
	assert.Equal(t, "Tami ↔ C (p=0.50)", m[0].String())
}

func TestMatching_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, bipartite.Matching{{"a", "x", 1}, {"b", "y", 1}}.Validate())
	require.NoError(t, bipartite.Matching(nil).Validate())

	err := bipartite.Matching{{"a", "x", 1}, {"a", "y", 1}}.Validate()
	require.ErrorIs(t, err, bipartite.ErrInvalidMatching)
	assert.Contains(t, err.Error(), `left node "a"`)

	err = bipartite.Matching{{"a", "x", 1}, {"b", "x", 1}}.Validate()
	require.ErrorIs(t, err, bipartite.ErrInvalidMatching)
	assert.Contains(t, err.Error(), `right node "x"`)
}

func TestSnapshot_Accessors(t *testing.T) {
	t.Parallel()

	g := completeGraph(t, 11)
	m, snaps, err := bipartite.GreedyMatch(g, seeded(11))
	require.NoError(t, err)

	first := m[0]
	s0, s1 := snaps[0], snaps[1]
	assert.True(t, s0.HasEdge(first.Left, first.Right))
	assert.False(t, s1.HasEdge(first.Left, first.Right))
	w, ok := s0.Weight(first.Left, first.Right)
	require.True(t, ok)
	assert.Equal(t, first.Weight, w)

	// Edges returns a copy
	es := s0.Edges()
	es[0].Weight = -1
	assert.NotEqual(t, -1.0, s0.Edges()[0].Weight)
}

func TestSnapshot_Graph(t *testing.T) {
	t.Parallel()

	g := completeGraph(t, 12)
	_, snaps, err := bipartite.GreedyMatch(g, seeded(12))
	require.NoError(t, err)

	for _, s := range snaps {
		cg, err := s.Graph()
		require.NoError(t, err)
		assert.Equal(t, 8, cg.VertexCount(), "snapshots keep every node")
		assert.Equal(t, s.EdgeCount(), cg.EdgeCount())
		side, ok := cg.VertexAttr("D", builder.SideAttr)
		require.True(t, ok)
		assert.Equal(t, builder.SideRight, side)

		// a materialized snapshot wraps back into a bipartite graph
		if s.EdgeCount() > 0 {
			back, err := bipartite.FromCore(cg, names, letters)
			require.NoError(t, err)
			assert.Equal(t, s.Edges(), back.Edges())
		}
	}
}
