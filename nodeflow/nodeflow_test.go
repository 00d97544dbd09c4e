package nodeflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/nodeflow"
	"github.com/katalvlaran/graphflow/rng"
)

func relationFromEdges(t *testing.T, n int64, edges [][2]int64) *bipartite.Relation {
	t.Helper()
	row := make([]int64, len(edges))
	col := make([]int64, len(edges))
	for i, e := range edges {
		row[i], col[i] = e[0], e[1]
	}
	r, err := bipartite.NewFromCOO(n, n, idarray.FromSlice(row), idarray.FromSlice(col))
	require.NoError(t, err)
	return r
}

func lineRelation(t *testing.T, n int64) *bipartite.Relation {
	t.Helper()
	edges := make([][2]int64, n-1)
	for i := int64(0); i < n-1; i++ {
		edges[i] = [2]int64{i, i + 1}
	}
	return relationFromEdges(t, n, edges)
}

// checkShape asserts the structural invariants every NodeFlow must satisfy:
// offset tables consistent with the mapping tables, the CSR spanning
// exactly the mapped nodes and edges, and every edge running from a node
// in one layer to a node in the previous (frontier-side) layer.
func checkShape(t *testing.T, nf *nodeflow.NodeFlow) {
	t.Helper()
	numLayers := nf.NumLayers()
	n := int64(len(nf.NodeMapping))
	m := int64(len(nf.EdgeMapping))

	assert.Equal(t, n, nf.LayerOffsets[numLayers])
	assert.Equal(t, m, nf.FlowOffsets[numLayers-1])
	assert.Equal(t, n, nf.Graph.NumRows)
	assert.Equal(t, m, nf.Graph.NumEdges())
	assert.Equal(t, m, nf.Graph.Indptr.MustAt(int(n)))

	layerOf := func(id int64) int {
		for l := 0; l < numLayers; l++ {
			if id >= nf.LayerOffsets[l] && id < nf.LayerOffsets[l+1] {
				return l
			}
		}
		t.Fatalf("node id %d outside every layer", id)
		return -1
	}
	for row := int64(0); row < n; row++ {
		start := nf.Graph.Indptr.MustAt(int(row))
		end := nf.Graph.Indptr.MustAt(int(row) + 1)
		for k := start; k < end; k++ {
			col := nf.Graph.Indices.MustAt(int(k))
			assert.Equal(t, layerOf(row)-1, layerOf(col),
				"edge %d->%d must cross into the adjacent frontier-side layer", row, col)
		}
	}
}

func TestBuildNeighborNodeFlow_LineGraphTwoHops(t *testing.T) {
	nf, err := nodeflow.BuildNeighborNodeFlow(lineRelation(t, 5), []int64{0},
		nodeflow.NeighborSamplingConfig{
			NumHops:      2,
			ExpandFactor: 2,
			NeighType:    nodeflow.NeighOut,
		}, rng.FromSeed(1))
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 1, 0}, nf.NodeMapping)
	assert.Equal(t, []int64{0, 1, 2, 3}, nf.LayerOffsets)
	assert.Equal(t, []int64{0, 1, 2}, nf.FlowOffsets)
	require.Len(t, nf.EdgeMapping, 2)
	assert.ElementsMatch(t, []int64{0, 1}, nf.EdgeMapping)
	checkShape(t, nf)
}

func TestBuildNeighborNodeFlow_DedupesSeeds(t *testing.T) {
	nf, err := nodeflow.BuildNeighborNodeFlow(lineRelation(t, 5), []int64{3, 3, 1, 3, 1},
		nodeflow.NeighborSamplingConfig{
			NumHops:      1,
			ExpandFactor: 1,
			NeighType:    nodeflow.NeighOut,
		}, rng.FromSeed(1))
	require.NoError(t, err)

	// Seed layer keeps first-occurrence input order.
	l := nf.NumLayers() - 1
	start, end := nf.LayerNodes(l)
	assert.Equal(t, []int64{3, 1}, nf.NodeMapping[start:end])
	checkShape(t, nf)
}

func TestBuildNeighborNodeFlow_SelfLoopSentinel(t *testing.T) {
	// Vertex 0 has no self-loop in the graph, so its synthesized self-edge
	// carries the sentinel mapping. With one hop only seed 0 is expanded,
	// so vertex 1's existing loop never enters the sample.
	g := relationFromEdges(t, 3, [][2]int64{{0, 1}, {1, 1}, {1, 2}})

	nf, err := nodeflow.BuildNeighborNodeFlow(g, []int64{0},
		nodeflow.NeighborSamplingConfig{
			NumHops:      1,
			ExpandFactor: 5,
			NeighType:    nodeflow.NeighOut,
			AddSelfLoop:  true,
		}, rng.FromSeed(1))
	require.NoError(t, err)

	sentinels := 0
	for _, eid := range nf.EdgeMapping {
		if eid == nodeflow.SelfLoopEdgeID {
			sentinels++
		}
	}
	assert.Equal(t, 1, sentinels, "exactly one synthesized self-edge for seed 0")

	// The self-edge makes vertex 0 reappear in the frontier layer: one
	// copy per layer.
	copies := 0
	for _, orig := range nf.NodeMapping {
		if orig == 0 {
			copies++
		}
	}
	assert.Equal(t, 2, copies)
	checkShape(t, nf)
}

func TestBuildNeighborNodeFlow_ExistingSelfLoopKeepsEdgeID(t *testing.T) {
	g := relationFromEdges(t, 2, [][2]int64{{0, 0}, {0, 1}})

	nf, err := nodeflow.BuildNeighborNodeFlow(g, []int64{0},
		nodeflow.NeighborSamplingConfig{
			NumHops:      1,
			ExpandFactor: 5,
			NeighType:    nodeflow.NeighOut,
			AddSelfLoop:  true,
		}, rng.FromSeed(1))
	require.NoError(t, err)

	for _, eid := range nf.EdgeMapping {
		assert.NotEqual(t, nodeflow.SelfLoopEdgeID, eid,
			"existing self-loop must keep its original id")
	}
}

func TestBuildNeighborNodeFlow_FanOutCap(t *testing.T) {
	// Star 0 -> {1..9}: one hop with fan-out 3 keeps exactly 3 distinct
	// neighbors.
	edges := make([][2]int64, 9)
	for i := int64(1); i <= 9; i++ {
		edges[i-1] = [2]int64{0, i}
	}
	g := relationFromEdges(t, 10, edges)

	nf, err := nodeflow.BuildNeighborNodeFlow(g, []int64{0},
		nodeflow.NeighborSamplingConfig{
			NumHops:      1,
			ExpandFactor: 3,
			NeighType:    nodeflow.NeighOut,
		}, rng.FromSeed(9))
	require.NoError(t, err)

	start, end := nf.LayerNodes(0)
	assert.Equal(t, int64(3), end-start)
	assert.Len(t, nf.EdgeMapping, 3)
	checkShape(t, nf)
}

func TestBuildNeighborNodeFlow_InDirection(t *testing.T) {
	nf, err := nodeflow.BuildNeighborNodeFlow(lineRelation(t, 5), []int64{4},
		nodeflow.NeighborSamplingConfig{
			NumHops:      2,
			ExpandFactor: 1,
			NeighType:    nodeflow.NeighIn,
		}, rng.FromSeed(1))
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 4}, nf.NodeMapping)
	checkShape(t, nf)
}

func TestBuildNeighborNodeFlow_Determinism(t *testing.T) {
	edges := make([][2]int64, 0, 40)
	for u := int64(0); u < 8; u++ {
		for v := int64(0); v < 8; v++ {
			if u != v {
				edges = append(edges, [2]int64{u, v})
			}
		}
	}
	g := relationFromEdges(t, 8, edges)
	cfg := nodeflow.NeighborSamplingConfig{
		NumHops:      2,
		ExpandFactor: 3,
		NeighType:    nodeflow.NeighOut,
	}

	a, err := nodeflow.BuildNeighborNodeFlow(g, []int64{0, 3}, cfg, rng.FromSeed(123))
	require.NoError(t, err)
	b, err := nodeflow.BuildNeighborNodeFlow(g, []int64{0, 3}, cfg, rng.FromSeed(123))
	require.NoError(t, err)

	assert.Equal(t, a.NodeMapping, b.NodeMapping)
	assert.Equal(t, a.EdgeMapping, b.EdgeMapping)
	assert.Equal(t, a.Graph.Indptr.Data(), b.Graph.Indptr.Data())
	assert.Equal(t, a.Graph.Indices.Data(), b.Graph.Indices.Data())
	checkShape(t, a)
}

func TestBuildNeighborNodeFlow_Validation(t *testing.T) {
	g := lineRelation(t, 3)

	_, err := nodeflow.BuildNeighborNodeFlow(g, nil, nodeflow.NeighborSamplingConfig{
		NumHops: 1, ExpandFactor: 1, NeighType: nodeflow.NeighOut,
	}, rng.FromSeed(1))
	assert.ErrorIs(t, err, nodeflow.ErrNoSeeds)

	_, err = nodeflow.BuildNeighborNodeFlow(g, []int64{0}, nodeflow.NeighborSamplingConfig{
		NumHops: 1, ExpandFactor: 1, NeighType: nodeflow.NeighType("up"),
	}, rng.FromSeed(1))
	assert.ErrorIs(t, err, nodeflow.ErrUnknownNeighType)

	_, err = nodeflow.BuildNeighborNodeFlow(g, []int64{0}, nodeflow.NeighborSamplingConfig{
		NumHops: 1, ExpandFactor: 1, NeighType: nodeflow.NeighOut,
		Probability: []float64{1},
	}, rng.FromSeed(1))
	assert.ErrorIs(t, err, nodeflow.ErrBadProbabilityLength)
}

func TestBuildLayerNodeFlow_LineGraphInward(t *testing.T) {
	nf, err := nodeflow.BuildLayerNodeFlow(lineRelation(t, 5), []int64{4},
		nodeflow.LayerSamplingConfig{
			LayerSizes: []int64{2, 2},
			NeighType:  nodeflow.NeighIn,
		}, rng.FromSeed(1))
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 4}, nf.NodeMapping)
	assert.Equal(t, []int64{0, 1, 2, 3}, nf.LayerOffsets)
	assert.Equal(t, []int64{0, 1, 2}, nf.FlowOffsets)
	require.Len(t, nf.Probabilities, 3)
	assert.Equal(t, 1.0, nf.Probabilities[2], "seed layer carries weight 1")
	checkShape(t, nf)
}

func TestBuildLayerNodeFlow_ImportanceWeights(t *testing.T) {
	// Diamond 0->2, 1->2, 2->3: expanding inward from seed 3 the candidate
	// set is {2} (multiplicity absorbs every draw), then {0, 1}.
	g := relationFromEdges(t, 4, [][2]int64{{0, 2}, {1, 2}, {2, 3}})

	nf, err := nodeflow.BuildLayerNodeFlow(g, []int64{3},
		nodeflow.LayerSamplingConfig{
			LayerSizes: []int64{4, 4},
			NeighType:  nodeflow.NeighIn,
		}, rng.FromSeed(6))
	require.NoError(t, err)
	checkShape(t, nf)

	// The single-candidate layer collapses to one node with weight
	// m * |candidates| / layer_size = 4 * 1 / 4 = 1.
	start, end := nf.LayerNodes(1)
	require.Equal(t, int64(1), end-start)
	assert.Equal(t, int64(2), nf.NodeMapping[start])
	assert.Equal(t, 1.0, nf.Probabilities[start])

	// Outermost layer: candidates {0, 1}; each kept pick's weight is
	// m * 2 / 4 and the kept multiplicities sum to 4.
	oStart, oEnd := nf.LayerNodes(0)
	var mass float64
	for i := oStart; i < oEnd; i++ {
		mass += nf.Probabilities[i]
	}
	assert.InDelta(t, 2.0, mass, 1e-12)
}

func TestBuildLayerNodeFlow_Validation(t *testing.T) {
	g := lineRelation(t, 3)

	_, err := nodeflow.BuildLayerNodeFlow(g, nil, nodeflow.LayerSamplingConfig{
		LayerSizes: []int64{1}, NeighType: nodeflow.NeighOut,
	}, rng.FromSeed(1))
	assert.ErrorIs(t, err, nodeflow.ErrNoSeeds)

	_, err = nodeflow.BuildLayerNodeFlow(g, []int64{0}, nodeflow.LayerSamplingConfig{
		LayerSizes: nil, NeighType: nodeflow.NeighOut,
	}, rng.FromSeed(1))
	assert.ErrorIs(t, err, nodeflow.ErrBadLayerSizes)

	_, err = nodeflow.BuildLayerNodeFlow(g, []int64{0}, nodeflow.LayerSamplingConfig{
		LayerSizes: []int64{0}, NeighType: nodeflow.NeighOut,
	}, rng.FromSeed(1))
	assert.ErrorIs(t, err, nodeflow.ErrBadLayerSizes)

	_, err = nodeflow.BuildLayerNodeFlow(g, []int64{0}, nodeflow.LayerSamplingConfig{
		LayerSizes: []int64{1}, NeighType: nodeflow.NeighType("up"),
	}, rng.FromSeed(1))
	assert.ErrorIs(t, err, nodeflow.ErrUnknownNeighType)
}

func TestBuildLayerNodeFlow_Determinism(t *testing.T) {
	g := lineRelation(t, 8)
	cfg := nodeflow.LayerSamplingConfig{
		LayerSizes: []int64{3, 3},
		NeighType:  nodeflow.NeighIn,
	}

	a, err := nodeflow.BuildLayerNodeFlow(g, []int64{7, 5}, cfg, rng.FromSeed(31))
	require.NoError(t, err)
	b, err := nodeflow.BuildLayerNodeFlow(g, []int64{7, 5}, cfg, rng.FromSeed(31))
	require.NoError(t, err)

	assert.Equal(t, a.NodeMapping, b.NodeMapping)
	assert.Equal(t, a.Probabilities, b.Probabilities)
	assert.Equal(t, a.EdgeMapping, b.EdgeMapping)
}
