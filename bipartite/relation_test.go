package bipartite_test

import (
	"testing"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSample(t *testing.T) *bipartite.Relation {
	t.Helper()
	rel, err := bipartite.NewFromCOO(3, 3,
		idarray.FromSlice([]int64{0, 0, 1, 2}),
		idarray.FromSlice([]int64{1, 2, 2, 0}))
	require.NoError(t, err)
	return rel
}

// Queries must return the same answer no matter which view happened to be
// materialized first.
func TestDispatchEquivalence(t *testing.T) {
	fromCOO := newSample(t)
	outCSR, err := fromCOO.GetAdj()
	require.NoError(t, err)

	fromCSR, err := bipartite.NewFromOutCSR(3, 3, outCSR.Indptr, outCSR.Indices, outCSR.EdgeIDs)
	require.NoError(t, err)

	succA, err := fromCOO.Successors(0)
	require.NoError(t, err)
	succB, err := fromCSR.Successors(0)
	require.NoError(t, err)
	assert.Equal(t, succA.Data(), succB.Data())

	predA, err := fromCOO.Predecessors(2)
	require.NoError(t, err)
	predB, err := fromCSR.Predecessors(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, predA.Data(), predB.Data())
}

func TestHasEdgeBetweenAndDegrees(t *testing.T) {
	rel := newSample(t)
	ok, err := rel.HasEdgeBetween(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rel.HasEdgeBetween(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	out, err := rel.OutDegree(0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, out)

	in, err := rel.InDegree(2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, in)
}

func TestEdgesOrderings(t *testing.T) {
	rel := newSample(t)
	src, dst, eid, err := rel.Edges("eid")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 2}, src)
	assert.Equal(t, []int64{1, 2, 2, 0}, dst)
	assert.Equal(t, []int64{0, 1, 2, 3}, eid)

	_, _, _, err = rel.Edges("bogus")
	assert.ErrorIs(t, err, bipartite.ErrUnknownOrder)
}

func TestEdgeIDsBatch(t *testing.T) {
	rel := newSample(t)
	src, dst, eid, err := rel.EdgeIDs([]int64{0, 2}, []int64{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2}, src)
	assert.Equal(t, []int64{2, 0}, dst)
	assert.Equal(t, []int64{1, 3}, eid)
}

func TestInOutEdgesBatch(t *testing.T) {
	rel := newSample(t)

	src, dst, eid, err := rel.InEdgesBatch([]int64{2})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{0, 1}, src)
	assert.Equal(t, []int64{2, 2}, dst)
	assert.Len(t, eid, 2)

	src, dst, eid, err = rel.OutEdgesBatch([]int64{0})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, src)
	assert.ElementsMatch(t, []int64{1, 2}, dst)
	assert.Len(t, eid, 2)
}

func TestGetAdjCOO(t *testing.T) {
	rel := newSample(t)
	coo, err := rel.GetAdjCOO(false)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 2}, coo.Row.Data())

	swapped, err := rel.GetAdjCOO(true)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 2, 0}, swapped.Row.Data())
}

func TestIsMultigraph(t *testing.T) {
	rel := newSample(t)
	multi, err := rel.IsMultigraph()
	require.NoError(t, err)
	assert.False(t, multi)

	dup, err := bipartite.NewFromCOO(2, 2,
		idarray.FromSlice([]int64{0, 0}),
		idarray.FromSlice([]int64{1, 1}))
	require.NoError(t, err)
	multi2, err := dup.IsMultigraph()
	require.NoError(t, err)
	assert.True(t, multi2)
}

func TestVertexSubgraph(t *testing.T) {
	rel := newSample(t)
	sub, err := rel.VertexSubgraph([]int64{0, 2}, []int64{0, 1, 2})
	require.NoError(t, err)
	assert.EqualValues(t, 2, sub.NumSrc)
	assert.EqualValues(t, 3, sub.NumDst)
	assert.EqualValues(t, 3, sub.NumEdges())
}

func TestEdgeSubgraphPreserveNodes(t *testing.T) {
	rel := newSample(t)
	res, err := rel.EdgeSubgraph([]int64{0, 3}, true)
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.Relation.NumSrc)
	assert.EqualValues(t, 3, res.Relation.NumDst)
	assert.EqualValues(t, 2, res.Relation.NumEdges())
}

func TestEdgeSubgraphNoPreserveNodes(t *testing.T) {
	rel := newSample(t)
	res, err := rel.EdgeSubgraph([]int64{0, 3}, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Relation.NumSrc)
	assert.EqualValues(t, 2, res.Relation.NumDst)
	assert.Equal(t, []int64{0, 2}, res.InducedSrc)
	assert.Equal(t, []int64{0, 1}, res.InducedDst)
}
