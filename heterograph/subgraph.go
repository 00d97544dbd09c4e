package heterograph

import (
	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/idarray"
)

// HeteroSubgraph is the result of VertexSubgraph or EdgeSubgraph: the
// induced HeteroGraph plus, for every vertex/edge type, which original ids
// survived.
type HeteroSubgraph struct {
	Graph           *HeteroGraph
	InducedVertices [][]int64 // per vertex type; nil entry means "unchanged"
	InducedEdges    [][]int64 // per edge type
}

// VertexSubgraph restricts every relation to the given per-vertex-type
// vertex sets, dropping edges with an endpoint outside them.
func (h *HeteroGraph) VertexSubgraph(vids [][]int64) (*HeteroSubgraph, error) {
	if len(vids) != h.NumVertexTypes() {
		return nil, ErrArgCountMismatch
	}
	subrels := make([]*bipartite.Relation, h.NumEdgeTypes())
	inducedEdges := make([][]int64, h.NumEdgeTypes())
	for etype, e := range h.Meta.Edges {
		rel := h.Relations[etype]
		subrel, err := rel.VertexSubgraph(vids[e.SrcType], vids[e.DstType])
		if err != nil {
			return nil, err
		}
		subrels[etype] = subrel
		adj, err := subrel.GetAdj()
		if err != nil {
			return nil, err
		}
		inducedEdges[etype] = append([]int64(nil), adj.EdgeIDs.Data()...)
	}
	sub, err := New(h.Meta, subrels)
	if err != nil {
		return nil, err
	}
	return &HeteroSubgraph{Graph: sub, InducedVertices: vids, InducedEdges: inducedEdges}, nil
}

// EdgeSubgraph restricts every relation to the given per-edge-type edge
// ids. When preserveNodes is true, each relation is sliced independently
// and every vertex type's id space is untouched. When false, vertex types
// shared by more than one relation must be relabeled consistently across
// all of them, so that a vertex kept by one relation isn't silently given
// a different id than the same vertex kept by another.
func (h *HeteroGraph) EdgeSubgraph(eids [][]int64, preserveNodes bool) (*HeteroSubgraph, error) {
	if len(eids) != h.NumEdgeTypes() {
		return nil, ErrArgCountMismatch
	}
	if preserveNodes {
		return h.edgeSubgraphPreserveNodes(eids)
	}
	return h.edgeSubgraphNoPreserveNodes(eids)
}

func (h *HeteroGraph) edgeSubgraphPreserveNodes(eids [][]int64) (*HeteroSubgraph, error) {
	subrels := make([]*bipartite.Relation, h.NumEdgeTypes())
	for etype := range h.Meta.Edges {
		res, err := h.Relations[etype].EdgeSubgraph(eids[etype], true)
		if err != nil {
			return nil, err
		}
		subrels[etype] = res.Relation
	}
	sub, err := New(h.Meta, subrels)
	if err != nil {
		return nil, err
	}
	return &HeteroSubgraph{Graph: sub, InducedVertices: make([][]int64, h.NumVertexTypes()), InducedEdges: eids}, nil
}

func (h *HeteroGraph) edgeSubgraphNoPreserveNodes(eids [][]int64) (*HeteroSubgraph, error) {
	type subedge struct{ src, dst []int64 }
	subedges := make([]subedge, h.NumEdgeTypes())
	vtype2incSrc := make([][][]int64, h.NumVertexTypes())

	for etype, e := range h.Meta.Edges {
		src, dst, err := h.Relations[etype].FindEdges(eids[etype])
		if err != nil {
			return nil, err
		}
		subedges[etype] = subedge{src: src, dst: dst}
		vtype2incSrc[e.SrcType] = append(vtype2incSrc[e.SrcType], src)
		vtype2incSrc[e.DstType] = append(vtype2incSrc[e.DstType], dst)
	}

	inducedVertices := make([][]int64, h.NumVertexTypes())
	newID := make([]map[int64]int64, h.NumVertexTypes())
	for vtype := 0; vtype < h.NumVertexTypes(); vtype++ {
		induced, mapping := relabelUnion(vtype2incSrc[vtype]...)
		inducedVertices[vtype] = induced
		newID[vtype] = mapping
	}

	subrels := make([]*bipartite.Relation, h.NumEdgeTypes())
	for etype, e := range h.Meta.Edges {
		se := subedges[etype]
		relSrc := make([]int64, len(se.src))
		relDst := make([]int64, len(se.dst))
		for i := range se.src {
			relSrc[i] = newID[e.SrcType][se.src[i]]
			relDst[i] = newID[e.DstType][se.dst[i]]
		}
		rel, err := bipartite.NewFromCOO(
			int64(len(inducedVertices[e.SrcType])), int64(len(inducedVertices[e.DstType])),
			idarray.FromSlice(relSrc), idarray.FromSlice(relDst))
		if err != nil {
			return nil, err
		}
		subrels[etype] = rel
	}

	sub, err := New(h.Meta, subrels)
	if err != nil {
		return nil, err
	}
	return &HeteroSubgraph{Graph: sub, InducedVertices: inducedVertices, InducedEdges: eids}, nil
}

// relabelUnion computes the union of every array's values, assigning new
// ids in first-occurrence order across the arrays.
func relabelUnion(arrays ...[]int64) (induced []int64, newID map[int64]int64) {
	newID = make(map[int64]int64)
	for _, arr := range arrays {
		for _, v := range arr {
			if _, ok := newID[v]; !ok {
				newID[v] = int64(len(induced))
				induced = append(induced, v)
			}
		}
	}
	return induced, newID
}
