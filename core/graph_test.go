package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphflow/core"
)

func TestAddVertexAndLookup(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestVerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestAddEdgeCreatesVerticesAndIDs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	id1, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	id2, err := g.AddEdge("B", "C", 0)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"), "directed: reverse not mirrored")

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, id1, edges[0].ID)
	assert.Equal(t, id2, edges[1].ID)
}

func TestUndirectedMirrorsAdjacency(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount(), "mirror is adjacency-only, one catalog entry")
}

func TestEdgeConstraints(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 2.5)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	loops := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithWeighted(), core.WithMultiEdges())
	_, err = loops.AddEdge("A", "A", 1.5)
	require.NoError(t, err)
	_, err = loops.AddEdge("A", "A", 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2, loops.EdgeCount())
}

func TestNeighborIDs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "C", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	got, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, got)

	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestConcurrentAdds(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := g.AddEdge(fmt.Sprintf("v%d", w), fmt.Sprintf("v%d", (w+1)%8), 0)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 400, g.EdgeCount())

	// Edge IDs must all be distinct.
	seen := make(map[string]bool)
	for _, e := range g.Edges() {
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}
