package bipartite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/ronylevy1/algo9/bipartite"
)

// BenchmarkGreedyMatch_K4 measures one pass on the random K4,4.
func BenchmarkGreedyMatch_K4(b *testing.B) {
	g := completeGraph(b, 42)
	rng := seeded(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bipartite.GreedyMatch(g, rng)
	}
}

// BenchmarkGreedyMatch_Kn measures passes on larger complete graphs, where
// snapshot copying dominates.
func BenchmarkGreedyMatch_Kn(b *testing.B) {
	for _, n := range []int{8, 32, 64} {
		left := make([]string, n)
		right := make([]string, n)
		for i := 0; i < n; i++ {
			left[i] = fmt.Sprintf("l%d", i)
			right[i] = fmt.Sprintf("r%d", i)
		}
		g, err := bipartite.BuildGraph(left, right, seeded(int64(n)))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := seeded(1)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = bipartite.GreedyMatch(g, rng)
			}
		})
	}
}

// BenchmarkMatchParallel measures 64 runs across the default worker pool.
func BenchmarkMatchParallel(b *testing.B) {
	g := completeGraph(b, 42)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bipartite.MatchParallel(ctx, g, seeded(int64(i)), 64)
	}
}
