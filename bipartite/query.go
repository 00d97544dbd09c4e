package bipartite

import (
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/sparse"
)

// HasVertex reports whether id is a valid vertex index on side.
func (r *Relation) HasVertex(side int, id int64) bool {
	return id >= 0 && id < r.NumVertices(side)
}

// HasVertices reports, for each id, whether it is valid on side.
func (r *Relation) HasVertices(side int, ids []int64) []bool {
	out := make([]bool, len(ids))
	for i, id := range ids {
		out[i] = r.HasVertex(side, id)
	}
	return out
}

// HasEdgeBetween reports whether any stored edge runs src -> dst,
// preferring out_csr (source-side queries dispatch to the forward view).
func (r *Relation) HasEdgeBetween(src, dst int64) (bool, error) {
	csr, err := r.outView()
	if err != nil {
		return false, err
	}
	return sparse.CSRIsNonZero(csr, src, dst)
}

// HasEdgesBetween is the batched form of HasEdgeBetween.
func (r *Relation) HasEdgesBetween(srcs, dsts []int64) ([]bool, error) {
	if len(srcs) != len(dsts) {
		return nil, ErrLengthMismatch
	}
	csr, err := r.outView()
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(srcs))
	for i := range srcs {
		ok, err := sparse.CSRIsNonZero(csr, srcs[i], dsts[i])
		if err != nil {
			return nil, err
		}
		out[i] = ok
	}
	return out, nil
}

// Predecessors returns the source vertex of every edge into dst, in stored
// order, preferring in_csr (destination-side queries prefer in_csr). A
// vertex joined to dst by parallel edges appears once per edge.
func (r *Relation) Predecessors(dst int64) (idarray.IdArray, error) {
	csr, err := r.inView()
	if err != nil {
		return idarray.IdArray{}, err
	}
	return sparse.CSRGetRowColumnIndices(csr, dst)
}

// Successors returns the distinct destination vertices with an edge from
// src, preferring out_csr.
func (r *Relation) Successors(src int64) (idarray.IdArray, error) {
	csr, err := r.outView()
	if err != nil {
		return idarray.IdArray{}, err
	}
	return sparse.CSRGetRowColumnIndices(csr, src)
}

// EdgeID returns every edge id for edges src -> dst (a multigraph may have
// more than one).
func (r *Relation) EdgeID(src, dst int64) (idarray.IdArray, error) {
	csr, err := r.outView()
	if err != nil {
		return idarray.IdArray{}, err
	}
	return sparse.CSRGetData(csr, src, dst)
}

// EdgeIDs enumerates, for each (srcs[i], dsts[i]) pair, every stored edge
// matching it, returning parallel (src, dst, eid) triples. A multigraph
// pair contributes one triple per parallel edge.
func (r *Relation) EdgeIDs(srcs, dsts []int64) (src, dst, eid []int64, err error) {
	if len(srcs) != len(dsts) {
		return nil, nil, nil, ErrLengthMismatch
	}
	csr, err := r.outView()
	if err != nil {
		return nil, nil, nil, err
	}
	return sparse.CSRGetDataAndIndices(csr, srcs, dsts)
}

// FindEdges returns the (src, dst) endpoints of the given edge ids,
// preferring coo (edge-id-indexed queries prefer coo).
func (r *Relation) FindEdges(eids []int64) (src, dst []int64, err error) {
	coo, err := r.cooView()
	if err != nil {
		return nil, nil, err
	}
	src = make([]int64, len(eids))
	dst = make([]int64, len(eids))
	for i, e := range eids {
		if e < 0 || e >= r.numEdges {
			return nil, nil, ErrEdgeOutOfRange
		}
		src[i] = coo.Row.MustAt(int(e))
		dst[i] = coo.Col.MustAt(int(e))
	}
	return src, dst, nil
}

// InEdges returns the (src, eid) pairs of every edge into dst.
func (r *Relation) InEdges(dst int64) (src, eid []int64, err error) {
	csr, err := r.inView()
	if err != nil {
		return nil, nil, err
	}
	cols, err := sparse.CSRGetRowColumnIndices(csr, dst)
	if err != nil {
		return nil, nil, err
	}
	ids, err := sparse.CSRGetRowData(csr, dst)
	if err != nil {
		return nil, nil, err
	}
	return cols.Data(), ids.Data(), nil
}

// OutEdges returns the (dst, eid) pairs of every edge out of src.
func (r *Relation) OutEdges(src int64) (dst, eid []int64, err error) {
	csr, err := r.outView()
	if err != nil {
		return nil, nil, err
	}
	cols, err := sparse.CSRGetRowColumnIndices(csr, src)
	if err != nil {
		return nil, nil, err
	}
	ids, err := sparse.CSRGetRowData(csr, src)
	if err != nil {
		return nil, nil, err
	}
	return cols.Data(), ids.Data(), nil
}

// InEdgesBatch returns the (src, dst, eid) triples of every edge into any
// of dsts, grouped per queried vertex in input order.
func (r *Relation) InEdgesBatch(dsts []int64) (src, dst, eid []int64, err error) {
	for _, d := range dsts {
		srcs, eids, err := r.InEdges(d)
		if err != nil {
			return nil, nil, nil, err
		}
		for i := range srcs {
			src = append(src, srcs[i])
			dst = append(dst, d)
			eid = append(eid, eids[i])
		}
	}
	return src, dst, eid, nil
}

// OutEdgesBatch returns the (src, dst, eid) triples of every edge out of
// any of srcs, grouped per queried vertex in input order.
func (r *Relation) OutEdgesBatch(srcs []int64) (src, dst, eid []int64, err error) {
	for _, s := range srcs {
		dsts, eids, err := r.OutEdges(s)
		if err != nil {
			return nil, nil, nil, err
		}
		for i := range dsts {
			src = append(src, s)
			dst = append(dst, dsts[i])
			eid = append(eid, eids[i])
		}
	}
	return src, dst, eid, nil
}

// Edges returns every (src, dst, eid) triple ordered by order: "eid"
// (canonical edge-id order, from coo), "srcdst" (grouped by source, from
// out_csr) or "dstsrc" (grouped by destination, from in_csr). "srcdst"
// guarantees only that sources are grouped; column order within a row is
// whatever the CSR stores.
func (r *Relation) Edges(order string) (src, dst, eid []int64, err error) {
	switch order {
	case "eid":
		coo, err := r.cooView()
		if err != nil {
			return nil, nil, nil, err
		}
		n := coo.NumEdges()
		src = make([]int64, n)
		dst = make([]int64, n)
		eid = make([]int64, n)
		for i := int64(0); i < n; i++ {
			src[i] = coo.Row.MustAt(int(i))
			dst[i] = coo.Col.MustAt(int(i))
			eid[i] = i
		}
		return src, dst, eid, nil
	case "srcdst":
		csr, err := r.outView()
		if err != nil {
			return nil, nil, nil, err
		}
		return expandCSR(csr, false)
	case "dstsrc":
		csr, err := r.inView()
		if err != nil {
			return nil, nil, nil, err
		}
		return expandCSR(csr, true)
	default:
		return nil, nil, nil, ErrUnknownOrder
	}
}

func expandCSR(csr sparse.CSR, swap bool) (src, dst, eid []int64, err error) {
	n := csr.NumEdges()
	src = make([]int64, 0, n)
	dst = make([]int64, 0, n)
	eid = make([]int64, 0, n)
	for r := int64(0); r < csr.NumRows; r++ {
		start := csr.Indptr.MustAt(int(r))
		end := csr.Indptr.MustAt(int(r) + 1)
		for k := start; k < end; k++ {
			c := csr.Indices.MustAt(int(k))
			e := csr.EdgeIDs.MustAt(int(k))
			if swap {
				src = append(src, c)
				dst = append(dst, r)
			} else {
				src = append(src, r)
				dst = append(dst, c)
			}
			eid = append(eid, e)
		}
	}
	return src, dst, eid, nil
}

// InDegree returns the number of edges into dst.
func (r *Relation) InDegree(dst int64) (int64, error) {
	csr, err := r.inView()
	if err != nil {
		return 0, err
	}
	return sparse.CSRGetRowNNZ(csr, dst)
}

// InDegrees is the batched form of InDegree.
func (r *Relation) InDegrees(dsts []int64) ([]int64, error) {
	csr, err := r.inView()
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(dsts))
	for i, d := range dsts {
		n, err := sparse.CSRGetRowNNZ(csr, d)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// OutDegree returns the number of edges out of src.
func (r *Relation) OutDegree(src int64) (int64, error) {
	csr, err := r.outView()
	if err != nil {
		return 0, err
	}
	return sparse.CSRGetRowNNZ(csr, src)
}

// OutDegrees is the batched form of OutDegree.
func (r *Relation) OutDegrees(srcs []int64) ([]int64, error) {
	csr, err := r.outView()
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(srcs))
	for i, s := range srcs {
		n, err := sparse.CSRGetRowNNZ(csr, s)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// GetAdj returns the forward (rows=source) CSR for callers that want the
// raw adjacency matrix.
func (r *Relation) GetAdj() (sparse.CSR, error) {
	return r.outView()
}

// InAdj returns the reverse (rows=destination) CSR, materializing and
// caching it if necessary.
func (r *Relation) InAdj() (sparse.CSR, error) {
	return r.inView()
}

// GetAdjMatrix returns the *reverse* (rows=destination) CSR when transpose
// is false, and the forward (rows=source) CSR when transpose is true. The
// flip is deliberate: downstream sparse-matmul code expects row=dst,
// col=src, so the untransposed adjacency is the reverse view. It
// contradicts COO's convention, where transpose means what it says.
func (r *Relation) GetAdjMatrix(transpose bool) (sparse.CSR, error) {
	if transpose {
		return r.outView()
	}
	return r.inView()
}

// GetAdjCOO returns the adjacency in COO format. Unlike GetAdjMatrix,
// transpose here means what it says: false yields the canonical
// source->destination COO, true the swapped destination->source one.
func (r *Relation) GetAdjCOO(transpose bool) (sparse.COO, error) {
	coo, err := r.cooView()
	if err != nil {
		return sparse.COO{}, err
	}
	if !transpose {
		return coo, nil
	}
	return sparse.NewCOO(coo.NumCols, coo.NumRows, coo.Col, coo.Row)
}
