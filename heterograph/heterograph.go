package heterograph

import (
	"sync"

	"github.com/katalvlaran/graphflow/bipartite"
)

// HeteroGraph is a schema (MetaGraph) paired with one bipartite.Relation
// per edge type.
type HeteroGraph struct {
	Meta      MetaGraph
	Relations []*bipartite.Relation // indexed by edge type

	numVertsPerType []int64

	multiMu    sync.Mutex
	multiKnown bool
	multiValue bool
}

// New validates and builds a HeteroGraph. Every relation incident on a
// vertex type must agree on that type's vertex count.
func New(meta MetaGraph, rels []*bipartite.Relation) (*HeteroGraph, error) {
	if len(rels) == 0 {
		return nil, ErrNoRelations
	}
	if len(rels) != meta.NumEdgeTypes() {
		return nil, ErrRelationCountMismatch
	}

	numVertsPerType := make([]int64, meta.NumVTypes)
	for i := range numVertsPerType {
		numVertsPerType[i] = -1
	}
	for etype, e := range meta.Edges {
		rel := rels[etype]
		if err := reconcile(numVertsPerType, e.SrcType, rel.NumSrc); err != nil {
			return nil, err
		}
		if err := reconcile(numVertsPerType, e.DstType, rel.NumDst); err != nil {
			return nil, err
		}
	}

	return &HeteroGraph{Meta: meta, Relations: rels, numVertsPerType: numVertsPerType}, nil
}

func reconcile(numVertsPerType []int64, vtype int, n int64) error {
	if numVertsPerType[vtype] < 0 {
		numVertsPerType[vtype] = n
		return nil
	}
	if numVertsPerType[vtype] != n {
		return ErrVertexCountMismatch
	}
	return nil
}

// NumVertexTypes returns the schema's vertex type count.
func (h *HeteroGraph) NumVertexTypes() int { return h.Meta.NumVTypes }

// NumEdgeTypes returns the schema's edge type count.
func (h *HeteroGraph) NumEdgeTypes() int { return h.Meta.NumEdgeTypes() }

// NumVertices returns the vertex count for vtype.
func (h *HeteroGraph) NumVertices(vtype int) int64 { return h.numVertsPerType[vtype] }

// NumEdges returns the edge count for etype.
func (h *HeteroGraph) NumEdges(etype int) int64 { return h.Relations[etype].NumEdges() }

// HasVertex reports whether vid is valid for vtype.
func (h *HeteroGraph) HasVertex(vtype int, vid int64) bool {
	return vid >= 0 && vid < h.numVertsPerType[vtype]
}

// HasVertices is the batched form of HasVertex.
func (h *HeteroGraph) HasVertices(vtype int, vids []int64) []bool {
	out := make([]bool, len(vids))
	for i, v := range vids {
		out[i] = h.HasVertex(vtype, v)
	}
	return out
}

// IsMultigraph reports whether any relation graph is a multigraph, caching
// the answer.
func (h *HeteroGraph) IsMultigraph() (bool, error) {
	h.multiMu.Lock()
	defer h.multiMu.Unlock()
	if h.multiKnown {
		return h.multiValue, nil
	}
	for _, rel := range h.Relations {
		multi, err := rel.IsMultigraph()
		if err != nil {
			return false, err
		}
		if multi {
			h.multiValue = true
			h.multiKnown = true
			return true, nil
		}
	}
	h.multiValue = false
	h.multiKnown = true
	return false, nil
}
