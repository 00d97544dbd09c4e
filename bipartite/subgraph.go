package bipartite

import (
	"sort"

	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/sparse"
)

// VertexSubgraph restricts r to srcIDs x dstIDs, renumbering both sides to
// 0..len(srcIDs)-1 / 0..len(dstIDs)-1 and dropping any edge whose endpoint
// isn't in the requested set.
func (r *Relation) VertexSubgraph(srcIDs, dstIDs []int64) (*Relation, error) {
	csr, err := r.outView()
	if err != nil {
		return nil, err
	}
	sub, err := sparse.CSRSliceMatrix(csr, srcIDs, dstIDs)
	if err != nil {
		return nil, err
	}
	return &Relation{NumSrc: int64(len(srcIDs)), NumDst: int64(len(dstIDs)), numEdges: sub.NumEdges(), outCSR: &sub}, nil
}

// EdgeSubgraphResult is the result of EdgeSubgraph: the induced Relation
// and, when preserveNodes is false, the original-graph vertex id that each
// compacted src/dst row corresponds to (both nil when preserveNodes is
// true).
type EdgeSubgraphResult struct {
	Relation   *Relation
	InducedSrc []int64 // InducedSrc[i] = original src vertex id of new row i
	InducedDst []int64 // InducedDst[i] = original dst vertex id of new row i
}

// EdgeSubgraph returns the relation induced by eids. When preserveNodes is
// true the result keeps r's original vertex id space (NumSrc/NumDst
// unchanged); when false, each side's vertex space is compacted to just
// the vertices touched by eids, and the mapping back to original ids is
// returned.
func (r *Relation) EdgeSubgraph(eids []int64, preserveNodes bool) (*EdgeSubgraphResult, error) {
	srcs, dsts, err := r.FindEdges(eids)
	if err != nil {
		return nil, err
	}

	if preserveNodes {
		rel, err := NewFromCOO(r.NumSrc, r.NumDst, idarray.FromSlice(srcs), idarray.FromSlice(dsts))
		if err != nil {
			return nil, err
		}
		return &EdgeSubgraphResult{Relation: rel, InducedSrc: nil, InducedDst: nil}, nil
	}

	inducedSrc, newSrcID := compactIDs(srcs)
	inducedDst, newDstID := compactIDs(dsts)
	newSrcs := make([]int64, len(srcs))
	newDsts := make([]int64, len(dsts))
	for i := range srcs {
		newSrcs[i] = newSrcID[srcs[i]]
		newDsts[i] = newDstID[dsts[i]]
	}
	rel, err := NewFromCOO(int64(len(inducedSrc)), int64(len(inducedDst)), idarray.FromSlice(newSrcs), idarray.FromSlice(newDsts))
	if err != nil {
		return nil, err
	}
	return &EdgeSubgraphResult{Relation: rel, InducedSrc: inducedSrc, InducedDst: inducedDst}, nil
}

// compactIDs returns the sorted distinct values in ids, plus a map from
// original id to its position in that sorted list.
func compactIDs(ids []int64) (sorted []int64, newID map[int64]int64) {
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	sorted = make([]int64, 0, len(seen))
	for id := range seen {
		sorted = append(sorted, id)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	newID = make(map[int64]int64, len(sorted))
	for i, id := range sorted {
		newID[id] = int64(i)
	}
	return sorted, newID
}
