package heterograph

import (
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/sparse"
)

// HasEdgeBetween forwards to the etype relation; every per-edge-type query
// dispatches this way.
func (h *HeteroGraph) HasEdgeBetween(etype int, s, d int64) (bool, error) {
	return h.Relations[etype].HasEdgeBetween(s, d)
}

// HasEdgesBetween is the batched form of HasEdgeBetween.
func (h *HeteroGraph) HasEdgesBetween(etype int, ss, ds []int64) ([]bool, error) {
	return h.Relations[etype].HasEdgesBetween(ss, ds)
}

// Predecessors forwards to the etype relation.
func (h *HeteroGraph) Predecessors(etype int, d int64) (idarray.IdArray, error) {
	return h.Relations[etype].Predecessors(d)
}

// Successors forwards to the etype relation.
func (h *HeteroGraph) Successors(etype int, s int64) (idarray.IdArray, error) {
	return h.Relations[etype].Successors(s)
}

// EdgeID forwards to the etype relation.
func (h *HeteroGraph) EdgeID(etype int, s, d int64) (idarray.IdArray, error) {
	return h.Relations[etype].EdgeID(s, d)
}

// EdgeIDs forwards the batched pair-to-edge-ids query to the etype
// relation.
func (h *HeteroGraph) EdgeIDs(etype int, ss, ds []int64) (src, dst, eid []int64, err error) {
	return h.Relations[etype].EdgeIDs(ss, ds)
}

// FindEdges forwards to the etype relation.
func (h *HeteroGraph) FindEdges(etype int, eids []int64) (src, dst []int64, err error) {
	return h.Relations[etype].FindEdges(eids)
}

// InEdges forwards to the etype relation.
func (h *HeteroGraph) InEdges(etype int, v int64) (src, eid []int64, err error) {
	return h.Relations[etype].InEdges(v)
}

// OutEdges forwards to the etype relation.
func (h *HeteroGraph) OutEdges(etype int, v int64) (dst, eid []int64, err error) {
	return h.Relations[etype].OutEdges(v)
}

// InEdgesBatch forwards to the etype relation.
func (h *HeteroGraph) InEdgesBatch(etype int, vs []int64) (src, dst, eid []int64, err error) {
	return h.Relations[etype].InEdgesBatch(vs)
}

// OutEdgesBatch forwards to the etype relation.
func (h *HeteroGraph) OutEdgesBatch(etype int, vs []int64) (src, dst, eid []int64, err error) {
	return h.Relations[etype].OutEdgesBatch(vs)
}

// Edges forwards to the etype relation.
func (h *HeteroGraph) Edges(etype int, order string) (src, dst, eid []int64, err error) {
	return h.Relations[etype].Edges(order)
}

// InDegree forwards to the etype relation.
func (h *HeteroGraph) InDegree(etype int, v int64) (int64, error) {
	return h.Relations[etype].InDegree(v)
}

// InDegrees forwards to the etype relation.
func (h *HeteroGraph) InDegrees(etype int, vs []int64) ([]int64, error) {
	return h.Relations[etype].InDegrees(vs)
}

// OutDegree forwards to the etype relation.
func (h *HeteroGraph) OutDegree(etype int, v int64) (int64, error) {
	return h.Relations[etype].OutDegree(v)
}

// OutDegrees forwards to the etype relation.
func (h *HeteroGraph) OutDegrees(etype int, vs []int64) ([]int64, error) {
	return h.Relations[etype].OutDegrees(vs)
}

// GetAdj forwards to the etype relation's adjacency accessor. Note the
// flipped convention: transpose=false returns the reverse (rows=dst) CSR.
// See bipartite.Relation.GetAdjMatrix.
func (h *HeteroGraph) GetAdj(etype int, transpose bool) (sparse.CSR, error) {
	return h.Relations[etype].GetAdjMatrix(transpose)
}

// GetAdjCOO forwards to the etype relation's COO adjacency, where
// transpose is literal.
func (h *HeteroGraph) GetAdjCOO(etype int, transpose bool) (sparse.COO, error) {
	return h.Relations[etype].GetAdjCOO(transpose)
}
