package bipartite

import (
	"sync"

	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/sparse"
)

// Relation is a bipartite relation graph: edges run from a
// source vertex set of size NumSrc to a destination vertex set of size
// NumDst, with NumEdges canonical edge ids 0..NumEdges-1 fixed at
// construction. At least one of outCSR, inCSR, coo is guaranteed non-nil;
// the others are filled in lazily by materialize.go and cached.
type Relation struct {
	NumSrc   int64
	NumDst   int64
	numEdges int64

	cacheMu sync.Mutex
	outCSR  *sparse.CSR // rows = source
	inCSR   *sparse.CSR // rows = destination
	coo     *sparse.COO

	multiMu    sync.Mutex
	multiKnown bool
	multiValue bool
}

// NewFromCOO builds a Relation whose canonical edge ids are row's (and
// col's) positions.
func NewFromCOO(numSrc, numDst int64, row, col idarray.IdArray) (*Relation, error) {
	coo, err := sparse.NewCOO(numSrc, numDst, row, col)
	if err != nil {
		return nil, err
	}
	return &Relation{NumSrc: numSrc, NumDst: numDst, numEdges: coo.NumEdges(), coo: &coo}, nil
}

// NewFromOutCSR builds a Relation from a forward (rows=source) CSR; the
// supplied edgeIDs assign the canonical edge ids.
func NewFromOutCSR(numSrc, numDst int64, indptr, indices, edgeIDs idarray.IdArray) (*Relation, error) {
	csr, err := sparse.NewCSR(numSrc, numDst, indptr, indices, edgeIDs)
	if err != nil {
		return nil, err
	}
	return &Relation{NumSrc: numSrc, NumDst: numDst, numEdges: csr.NumEdges(), outCSR: &csr}, nil
}

// NewFromInCSR builds a Relation from a reverse (rows=destination) CSR,
// the in-side counterpart of NewFromOutCSR.
func NewFromInCSR(numSrc, numDst int64, indptr, indices, edgeIDs idarray.IdArray) (*Relation, error) {
	csr, err := sparse.NewCSR(numDst, numSrc, indptr, indices, edgeIDs)
	if err != nil {
		return nil, err
	}
	return &Relation{NumSrc: numSrc, NumDst: numDst, numEdges: csr.NumEdges(), inCSR: &csr}, nil
}

// NumEdges returns the relation's fixed edge count.
func (r *Relation) NumEdges() int64 { return r.numEdges }

// NumVertices returns the vertex count on side, kSrc (0) or kDst (1).
func (r *Relation) NumVertices(side int) int64 {
	if side == kSrc {
		return r.NumSrc
	}
	return r.NumDst
}

const (
	kSrc = 0
	kDst = 1
)
