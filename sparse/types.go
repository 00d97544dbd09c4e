package sparse

import "github.com/katalvlaran/graphflow/idarray"

// COO is the coordinate-list view: parallel Row/Col arrays,
// len(Row)==len(Col)==NumEdges. Position e in Row/Col is edge id e; no
// uniqueness invariant is placed on (Row[e], Col[e]).
type COO struct {
	NumRows int64
	NumCols int64
	Row     idarray.IdArray
	Col     idarray.IdArray
}

// NewCOO validates and constructs a COO view.
func NewCOO(numRows, numCols int64, row, col idarray.IdArray) (COO, error) {
	if row.Len() != col.Len() {
		return COO{}, ErrLengthMismatch
	}
	return COO{NumRows: numRows, NumCols: numCols, Row: row, Col: col}, nil
}

// NumEdges returns the number of edges represented by the COO.
func (c COO) NumEdges() int64 { return int64(c.Row.Len()) }

// CSR is the compressed-sparse-row view:
// {NumRows, NumCols, Indptr (len NumRows+1), Indices (len NumEdges),
// EdgeIDs (len NumEdges)}. Indices[Indptr[r]:Indptr[r+1]] are the column
// ids of row r, not required to be sorted; EdgeIDs[k] is the original edge
// id of the edge stored at slot k. A "forward" CSR uses rows=source; a
// "reverse" CSR uses rows=destination.
type CSR struct {
	NumRows int64
	NumCols int64
	Indptr  idarray.IdArray
	Indices idarray.IdArray
	EdgeIDs idarray.IdArray
}

// NewCSR validates the CSR invariants (indptr length, zero start, monotone,
// matching edge-array lengths) and constructs a CSR view.
func NewCSR(numRows, numCols int64, indptr, indices, edgeIDs idarray.IdArray) (CSR, error) {
	if int64(indptr.Len()) != numRows+1 {
		return CSR{}, ErrBadIndptr
	}
	if indices.Len() != edgeIDs.Len() {
		return CSR{}, ErrLengthMismatch
	}
	first, _ := indptr.At(0)
	if first != 0 {
		return CSR{}, ErrBadIndptr
	}
	last, _ := indptr.At(indptr.Len() - 1)
	if int(last) != indices.Len() {
		return CSR{}, ErrBadIndptr
	}
	prev := int64(0)
	for i := 0; i < indptr.Len(); i++ {
		v := indptr.MustAt(i)
		if v < prev {
			return CSR{}, ErrBadIndptr
		}
		prev = v
	}
	return CSR{NumRows: numRows, NumCols: numCols, Indptr: indptr, Indices: indices, EdgeIDs: edgeIDs}, nil
}

// NumEdges returns the number of edges represented by the CSR.
func (c CSR) NumEdges() int64 { return int64(c.Indices.Len()) }
