package bipartite

import (
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/sparse"
)

// outView returns the forward (rows=source) CSR, materializing and caching
// it if necessary. Preference order: transpose inCSR if present, else
// convert coo, else (unreachable, since a Relation always has at least one
// view) error.
func (r *Relation) outView() (sparse.CSR, error) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	if r.outCSR != nil {
		return *r.outCSR, nil
	}
	if r.inCSR != nil {
		csr, err := sparse.CSRTranspose(*r.inCSR)
		if err != nil {
			return sparse.CSR{}, err
		}
		r.outCSR = &csr
		return csr, nil
	}
	if r.coo != nil {
		csr, err := sparse.COOToCSR(*r.coo, true)
		if err != nil {
			return sparse.CSR{}, err
		}
		r.outCSR = &csr
		return csr, nil
	}
	return sparse.CSR{}, ErrNoView
}

// inView returns the reverse (rows=destination) CSR, materializing and
// caching it if necessary. Mirrors outView.
func (r *Relation) inView() (sparse.CSR, error) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	if r.inCSR != nil {
		return *r.inCSR, nil
	}
	if r.outCSR != nil {
		csr, err := sparse.CSRTranspose(*r.outCSR)
		if err != nil {
			return sparse.CSR{}, err
		}
		r.inCSR = &csr
		return csr, nil
	}
	if r.coo != nil {
		swapped, err := sparse.NewCOO(r.NumDst, r.NumSrc, r.coo.Col, r.coo.Row)
		if err != nil {
			return sparse.CSR{}, err
		}
		csr, err := sparse.COOToCSR(swapped, true)
		if err != nil {
			return sparse.CSR{}, err
		}
		r.inCSR = &csr
		return csr, nil
	}
	return sparse.CSR{}, ErrNoView
}

// cooView returns the coo view, materializing and caching it if necessary.
//
// Neither outCSR nor inCSR generally stores its edges in canonical edge-id
// order (csr_transpose reorders entries by destination row, and
// csr_slice_matrix drops and renumbers them), so building coo from a CSR
// cannot reuse csr_to_coo's row-traversal order directly — that would
// silently redefine "position == edge id" for an edge id space that
// already exists. Instead this scatters each stored entry to the coo
// position matching its own EdgeIDs value, which is the canonical,
// provenance-independent reconstruction.
func (r *Relation) cooView() (sparse.COO, error) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()
	if r.coo != nil {
		return *r.coo, nil
	}
	if r.outCSR != nil {
		coo, err := scatterCOOByEdgeID(*r.outCSR, r.NumSrc, r.NumDst, false)
		if err != nil {
			return sparse.COO{}, err
		}
		r.coo = &coo
		return coo, nil
	}
	if r.inCSR != nil {
		coo, err := scatterCOOByEdgeID(*r.inCSR, r.NumSrc, r.NumDst, true)
		if err != nil {
			return sparse.COO{}, err
		}
		r.coo = &coo
		return coo, nil
	}
	return sparse.COO{}, ErrNoView
}

// scatterCOOByEdgeID rebuilds a canonical (position == edge id) COO from a
// CSR whose EdgeIDs need not be the identity permutation. swap indicates
// csr is a reverse (rows=destination) CSR, in which case its (row, col)
// pairs are (dst, src) and must be flipped to (src, dst).
func scatterCOOByEdgeID(csr sparse.CSR, numSrc, numDst int64, swap bool) (sparse.COO, error) {
	n := csr.NumEdges()
	row := make([]int64, n)
	col := make([]int64, n)
	for r := int64(0); r < csr.NumRows; r++ {
		start := csr.Indptr.MustAt(int(r))
		end := csr.Indptr.MustAt(int(r) + 1)
		for k := start; k < end; k++ {
			c := csr.Indices.MustAt(int(k))
			eid := csr.EdgeIDs.MustAt(int(k))
			if swap {
				row[eid], col[eid] = c, r
			} else {
				row[eid], col[eid] = r, c
			}
		}
	}
	return sparse.NewCOO(numSrc, numDst, idarray.FromSlice(row), idarray.FromSlice(col))
}

// IsMultigraph reports whether any (src, dst) pair has more than one edge,
// caching the answer on first computation.
func (r *Relation) IsMultigraph() (bool, error) {
	r.multiMu.Lock()
	defer r.multiMu.Unlock()
	if r.multiKnown {
		return r.multiValue, nil
	}
	csr, err := r.outView()
	if err != nil {
		return false, err
	}
	r.multiValue = sparse.CSRHasDuplicate(csr)
	r.multiKnown = true
	return r.multiValue, nil
}
