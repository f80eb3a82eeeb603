package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rlg/core"
)

// TestConcurrentAddEdge runs disjoint AddEdge calls in parallel; run with -race.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				from := fmt.Sprintf("w%d-%d", w, i)
				to := fmt.Sprintf("w%d-%d", w, i+1)
				_, err := g.AddEdge(from, to, 0)
				assert.NoError(t, err)
				_, _ = g.NeighborIDs(from)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, g.EdgeCount())
	require.Equal(t, workers*(perWorker+1), g.VertexCount())
}
