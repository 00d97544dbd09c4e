package nodeflow

import "github.com/katalvlaran/graphflow/sparse"

// NeighType selects which side of a bipartite.Relation a sampler expands
// along.
type NeighType string

const (
	// NeighOut expands along out-edges (successors); the resulting
	// NodeFlow CSR is a forward CSR (rows=source).
	NeighOut NeighType = "out"

	// NeighIn expands along in-edges (predecessors); the resulting
	// NodeFlow CSR is a reverse CSR (rows=destination).
	NeighIn NeighType = "in"
)

// SelfLoopEdgeID is the sentinel edge id recorded in EdgeMapping for a
// self-loop synthesized by AddSelfLoop that did not exist in the original
// graph.
const SelfLoopEdgeID int64 = -1

// NodeFlow is the layered, re-indexed subgraph a sampler produces: a
// single CSR spanning every sampled node across every layer, plus the
// tables that map it back to the original graph.
type NodeFlow struct {
	// Graph is the NodeFlow's own CSR, over dense subgraph-local node ids
	// 0..N-1 and dense subgraph-local edge ids 0..M-1. Its row convention
	// (forward vs reverse) matches the NeighType the sampler was called
	// with.
	Graph sparse.CSR

	// NodeMapping maps subgraph node id i to the original graph's vertex
	// id. Node ids are arranged by layer, outermost layer first (layer 0)
	// and the seed layer last (layer L-1).
	NodeMapping []int64

	// EdgeMapping maps subgraph edge id to the original graph's edge id;
	// SelfLoopEdgeID (-1) marks a self-loop synthesized by AddSelfLoop
	// that is absent from the original graph.
	EdgeMapping []int64

	// LayerOffsets has length L+1: LayerOffsets[l]..LayerOffsets[l+1] is
	// the slice of NodeMapping belonging to layer l.
	LayerOffsets []int64

	// FlowOffsets has length L: FlowOffsets[f] is the cumulative edge
	// count (in EdgeMapping/the CSR's stored order) after flow f-1 (i.e.
	// FlowOffsets[0]==0 and FlowOffsets[L-1]==len(EdgeMapping)).
	FlowOffsets []int64

	// Multigraph is propagated from the source graph's IsMultigraph flag:
	// downstream consumers of Graph's per-pair edge lookups need to know
	// whether a (row, col) pair can carry more than one edge id.
	Multigraph bool

	// Probabilities holds an importance-sampling weight per NodeMapping
	// entry, populated only by the layer sampler; the seed layer carries
	// weight 1. nil for neighbor sampling.
	Probabilities []float64
}

// NumLayers returns the number of layers L.
func (nf *NodeFlow) NumLayers() int { return len(nf.LayerOffsets) - 1 }

// LayerNodes returns the subgraph-local node ids [start,end) of layer l.
func (nf *NodeFlow) LayerNodes(l int) (start, end int64) {
	return nf.LayerOffsets[l], nf.LayerOffsets[l+1]
}
