package bipartite_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ronylevy1/algo9/bipartite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGreedyMatch_Errors verifies that invalid inputs and options are rejected.
func TestGreedyMatch_Errors(t *testing.T) {
	g := completeGraph(t, 1)

	_, _, err := bipartite.GreedyMatch(nil, seeded(1))
	require.ErrorIs(t, err, bipartite.ErrInvalidGraph)

	_, _, err = bipartite.GreedyMatch(&bipartite.Graph{}, seeded(1))
	require.ErrorIs(t, err, bipartite.ErrInvalidGraph)

	_, _, err = bipartite.GreedyMatch(g, nil)
	require.ErrorIs(t, err, bipartite.ErrNeedRandSource)

	_, _, err = bipartite.GreedyMatch(g, seeded(1), bipartite.WithWorkers(-1))
	require.ErrorIs(t, err, bipartite.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = bipartite.GreedyMatch(g, seeded(1), bipartite.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestGreedyMatch_Complete checks the structural guarantees on random K4,4
// graphs over many seeds.
func TestGreedyMatch_Complete(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := completeGraph(t, seed)
		m, snaps, err := bipartite.GreedyMatch(g, seeded(seed*31))
		require.NoError(t, err)

		require.NoError(t, m.Validate())
		assert.Len(t, m, 4, "seed %d", seed)
		assert.ElementsMatch(t, names, m.Lefts())
		assert.ElementsMatch(t, letters, m.Rights())

		require.Len(t, snaps, len(m)+1)
		assert.Equal(t, 16, snaps[0].EdgeCount())
		assert.Equal(t, 0, snaps[len(snaps)-1].EdgeCount())
		for i, s := range snaps {
			assert.Equal(t, i, s.Step())
			if diff := cmp.Diff(remainingAfter(g, m, i), s.Edges()); diff != "" {
				t.Fatalf("seed %d snapshot %d mismatch (-want +got):\n%s", seed, i, diff)
			}
		}
		for _, e := range m {
			w, ok := g.Weight(e.Left, e.Right)
			require.True(t, ok)
			assert.Equal(t, w, e.Weight)
		}
	}
}

// TestGreedyMatch_Uniform covers the all-0.25 scenario.
func TestGreedyMatch_Uniform(t *testing.T) {
	g := uniformGraph(t)
	m, snaps, err := bipartite.GreedyMatch(g, seeded(42))
	require.NoError(t, err)

	require.Len(t, m, 4)
	assert.ElementsMatch(t, names, m.Lefts())
	assert.ElementsMatch(t, letters, m.Rights())
	for _, e := range m {
		assert.Equal(t, 0.25, e.Weight)
	}
	assert.InDelta(t, 1.0, m.TotalWeight(), 1e-12)

	counts := make([]int, len(snaps))
	for i, s := range snaps {
		counts[i] = s.EdgeCount()
	}
	assert.Equal(t, []int{16, 9, 4, 1, 0}, counts)
}

// TestGreedyMatch_Deterministic requires identical output for identical seeds.
func TestGreedyMatch_Deterministic(t *testing.T) {
	g := completeGraph(t, 42)

	m1, s1, err := bipartite.GreedyMatch(g, seeded(7))
	require.NoError(t, err)
	m2, s2, err := bipartite.GreedyMatch(g, seeded(7))
	require.NoError(t, err)

	if diff := cmp.Diff(m1, m2); diff != "" {
		t.Fatalf("matching mismatch (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(s1, s2, cmp.AllowUnexported(bipartite.Snapshot{})); diff != "" {
		t.Fatalf("snapshot mismatch (-first +second):\n%s", diff)
	}
	assert.True(t, m1.SameAs(m2))
}

// TestGreedyMatch_SeedsDiffer expects some seed to produce another pair set.
func TestGreedyMatch_SeedsDiffer(t *testing.T) {
	g := completeGraph(t, 42)
	first, _, err := bipartite.GreedyMatch(g, seeded(1))
	require.NoError(t, err)

	found := false
	for seed := int64(2); seed < 200 && !found; seed++ {
		m, _, err := bipartite.GreedyMatch(g, seeded(seed))
		require.NoError(t, err)
		found = !m.SameAs(first)
	}
	assert.True(t, found, "no seed produced a different matching")
}

// TestGreedyMatch_InputUntouched confirms runs work on a private copy.
func TestGreedyMatch_InputUntouched(t *testing.T) {
	g := completeGraph(t, 5)
	before := g.Edges()

	for i := int64(0); i < 3; i++ {
		_, _, err := bipartite.GreedyMatch(g, seeded(i))
		require.NoError(t, err)
	}
	assert.Equal(t, 16, g.EdgeCount())
	if diff := cmp.Diff(before, g.Edges()); diff != "" {
		t.Fatalf("graph mutated (-before +after):\n%s", diff)
	}
}

// TestGreedyMatch_LiveCheck records every decision and verifies that an
// edge is skipped exactly when one of its endpoints was accepted earlier.
func TestGreedyMatch_LiveCheck(t *testing.T) {
	type decision struct {
		accepted bool
		e        bipartite.WeightedEdge
	}
	for seed := int64(1); seed <= 30; seed++ {
		for _, g := range []*bipartite.Graph{completeGraph(t, seed), sparseGraph(t)} {
			var log []decision
			m, _, err := bipartite.GreedyMatch(g, seeded(seed),
				bipartite.WithOnAccept(func(step int, e bipartite.WeightedEdge) {
					log = append(log, decision{accepted: true, e: e})
				}),
				bipartite.WithOnSkip(func(e bipartite.WeightedEdge) {
					log = append(log, decision{e: e})
				}),
			)
			require.NoError(t, err)
			require.Len(t, log, g.EdgeCount(), "every edge is decided once")

			taken := map[string]bool{}
			accepted := 0
			for _, d := range log {
				busy := taken[d.e.Left] || taken[d.e.Right]
				assert.Equal(t, !busy, d.accepted, "seed %d edge %v", seed, d.e)
				if d.accepted {
					assert.Equal(t, m[accepted], d.e)
					accepted++
					taken[d.e.Left], taken[d.e.Right] = true, true
				}
			}
			assert.Equal(t, len(m), accepted)
		}
	}
}

// TestGreedyMatch_OnAcceptSteps checks step numbering seen by the hook.
func TestGreedyMatch_OnAcceptSteps(t *testing.T) {
	var steps []int
	_, snaps, err := bipartite.GreedyMatch(completeGraph(t, 3), seeded(3),
		bipartite.WithOnAccept(func(step int, _ bipartite.WeightedEdge) { steps = append(steps, step) }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, steps)
	assert.Len(t, snaps, 5)
}

// TestGreedyMatch_Sparse verifies maximality and snapshot reduction on a
// graph that is not complete.
func TestGreedyMatch_Sparse(t *testing.T) {
	g := sparseGraph(t)
	for seed := int64(1); seed <= 40; seed++ {
		m, snaps, err := bipartite.GreedyMatch(g, seeded(seed))
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		require.Len(t, snaps, len(m)+1)
		assert.GreaterOrEqual(t, len(m), 2)
		assert.LessOrEqual(t, len(m), 3)

		last := snaps[len(snaps)-1]
		if diff := cmp.Diff(remainingAfter(g, m, len(m)), last.Edges()); diff != "" {
			t.Fatalf("seed %d final snapshot (-want +got):\n%s", seed, diff)
		}
		// a greedy pass leaves no edge between two free nodes
		assert.Zero(t, last.EdgeCount())
	}
}
