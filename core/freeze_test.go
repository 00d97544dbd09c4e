package core_test

import (
	"testing"

	"github.com/katalvlaran/graphflow/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreezeDenseIDAssignment(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("B", "C", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	frozen := g.Freeze()
	assert.Equal(t, []string{"A", "B", "C"}, frozen.IDs)
	assert.Equal(t, 2, frozen.Row.Len())

	rel, err := frozen.ToCOOBipartite()
	require.NoError(t, err)
	assert.EqualValues(t, 3, rel.NumSrc)
	assert.EqualValues(t, 3, rel.NumDst)
	assert.EqualValues(t, 2, rel.NumEdges())

	ok, err := rel.HasEdgeBetween(0, 1) // A -> B
	require.NoError(t, err)
	assert.True(t, ok)

	name, err := frozen.OriginalVertexID(1)
	require.NoError(t, err)
	assert.Equal(t, "B", name)

	_, err = frozen.OriginalVertexID(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
