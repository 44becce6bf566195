// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ronylevy1/algo9/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every edge lands in the catalog.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make([]error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, errs[id] = g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentCloneAndReduce clones a shared graph from many goroutines and
// reduces each clone independently, the way independent matching runs do.
func TestConcurrentCloneAndReduce(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			_, err := g.AddEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", j), 0.25)
			require.NoError(t, err)
		}
	}

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	counts := make([]int, workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			c := g.Clone()
			_, _ = c.RemoveIncidentEdges(fmt.Sprintf("L%d", w%4))
			counts[w] = c.EdgeCount()
		}(w)
	}
	wg.Wait()

	for _, c := range counts {
		require.Equal(t, 12, c)
	}
	require.Equal(t, 16, g.EdgeCount())
}
