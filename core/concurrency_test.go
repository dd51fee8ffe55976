package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and every
// neighbor appears once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdge("hub", fmt.Sprintf("w%03d", id)))
		}(i)
	}
	wg.Wait()

	nbrs, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	require.Len(t, nbrs, num)
	require.Equal(t, num, g.EdgeCount())
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReadsDuringWrites mixes queries with inserts.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("base", fmt.Sprintf("w%03d", id))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.NeighborIDs("base")
			_, _ = g.Degree("base")
			_ = g.Vertices()
		}()
	}
	wg.Wait()

	deg, err := g.Degree("base")
	require.NoError(t, err)
	require.Equal(t, rounds, deg)
}
