package sparse

import (
	"sort"

	"github.com/katalvlaran/graphflow/idarray"
)

// COOToCSR groups coo's edges by row into a CSR.
//
// Both the keepOrder=true and keepOrder=false paths bucket edges by row
// with a stable partition (ties within a row broken by original COO
// position) and always carry the original COO position as the resulting
// edge id. The two branches coincide because stable insertion order
// already satisfies both contracts; the parameter is kept so call sites
// state which ordering they rely on.
func COOToCSR(coo COO, keepOrder bool) (CSR, error) {
	_ = keepOrder
	n := coo.Row.Len()
	numRows := coo.NumRows

	type entry struct {
		row, col int64
		eid      int64
	}
	entries := make([]entry, n)
	for i := 0; i < n; i++ {
		entries[i] = entry{row: coo.Row.MustAt(i), col: coo.Col.MustAt(i), eid: int64(i)}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].row < entries[j].row })

	indptr := make([]int64, numRows+1)
	indices := make([]int64, n)
	edgeIDs := make([]int64, n)
	for i, e := range entries {
		indices[i] = e.col
		edgeIDs[i] = e.eid
		indptr[e.row+1]++
	}
	for r := int64(0); r < numRows; r++ {
		indptr[r+1] += indptr[r]
	}

	return NewCSR(numRows, coo.NumCols, idarray.FromSlice(indptr), idarray.FromSlice(indices), idarray.FromSlice(edgeIDs))
}

// CSRToCOO expands csr's rows into a COO: COO rows enumerate each CSR row
// in stored order. When preserveEIDs is true, the returned eidAtPos
// IdArray records, for each resulting COO position, the original edge id
// that was stored at that slot in csr; when false, it is the identity
// 0..n-1. This permutation matters because a COO position *is* its
// edge id by convention, while csr.EdgeIDs may not be the identity
// permutation (e.g. after CSRSliceMatrix).
func CSRToCOO(csr CSR, preserveEIDs bool) (COO, idarray.IdArray, error) {
	n := csr.Indices.Len()
	row := make([]int64, n)
	k := 0
	for r := int64(0); r < csr.NumRows; r++ {
		start := csr.Indptr.MustAt(int(r))
		end := csr.Indptr.MustAt(int(r) + 1)
		for ; start < end; start++ {
			row[k] = r
			k++
		}
	}
	col := make([]int64, n)
	copy(col, csr.Indices.Data())

	coo, err := NewCOO(csr.NumRows, csr.NumCols, idarray.FromSlice(row), idarray.FromSlice(col))
	if err != nil {
		return COO{}, idarray.IdArray{}, err
	}
	var eidAtPos idarray.IdArray
	if preserveEIDs {
		eidAtPos = csr.EdgeIDs.Clone()
	} else {
		eidAtPos = idarray.Range(0, int64(n))
	}
	return coo, eidAtPos, nil
}

// CSRTranspose swaps rows and columns, so a forward (rows=source) CSR
// becomes a reverse (rows=destination) CSR and vice versa. Edge ids are
// preserved verbatim on the transposed entries. Entries within a
// transposed row are ordered by the traversal order of the original CSR's
// rows (a stable counting sort), which is what keeps a double transpose a
// multiset-equal round trip without needing to re-sort anything.
func CSRTranspose(csr CSR) (CSR, error) {
	n := csr.Indices.Len()
	newNumRows := csr.NumCols
	degree := make([]int64, newNumRows+1)
	for i := 0; i < n; i++ {
		c := csr.Indices.MustAt(i)
		degree[c+1]++
	}
	for r := int64(0); r < newNumRows; r++ {
		degree[r+1] += degree[r]
	}

	indices := make([]int64, n)
	edgeIDs := make([]int64, n)
	cursor := make([]int64, newNumRows)
	copy(cursor, degree[:newNumRows])

	for r := int64(0); r < csr.NumRows; r++ {
		start := csr.Indptr.MustAt(int(r))
		end := csr.Indptr.MustAt(int(r) + 1)
		for k := start; k < end; k++ {
			col := csr.Indices.MustAt(int(k))
			eid := csr.EdgeIDs.MustAt(int(k))
			pos := cursor[col]
			indices[pos] = r
			edgeIDs[pos] = eid
			cursor[col]++
		}
	}

	return NewCSR(newNumRows, csr.NumRows, idarray.FromSlice(degree), idarray.FromSlice(indices), idarray.FromSlice(edgeIDs))
}

// CSRSliceRows returns the CSR restricted to rids, renumbering rows
// 0..len(rids)-1; the column space is unchanged.
func CSRSliceRows(csr CSR, rids []int64) (CSR, error) {
	indptr := make([]int64, len(rids)+1)
	var indices, edgeIDs []int64
	for i, r := range rids {
		if r < 0 || r >= csr.NumRows {
			return CSR{}, ErrRowOutOfRange
		}
		start := csr.Indptr.MustAt(int(r))
		end := csr.Indptr.MustAt(int(r) + 1)
		for k := start; k < end; k++ {
			indices = append(indices, csr.Indices.MustAt(int(k)))
			edgeIDs = append(edgeIDs, csr.EdgeIDs.MustAt(int(k)))
		}
		indptr[i+1] = int64(len(indices))
	}
	return NewCSR(int64(len(rids)), csr.NumCols, idarray.FromSlice(indptr), idarray.FromSlice(indices), idarray.FromSlice(edgeIDs))
}

// CSRSliceMatrix returns the CSR restricted to rids x cids, with both axes
// renumbered to 0..len(rids)-1 / 0..len(cids)-1. The returned EdgeIDs is
// the subset (in submatrix stored order) of original edge ids.
func CSRSliceMatrix(csr CSR, rids, cids []int64) (CSR, error) {
	colNewID := make(map[int64]int64, len(cids))
	for i, c := range cids {
		colNewID[c] = int64(i)
	}

	indptr := make([]int64, len(rids)+1)
	var indices, edgeIDs []int64
	for i, r := range rids {
		if r < 0 || r >= csr.NumRows {
			return CSR{}, ErrRowOutOfRange
		}
		start := csr.Indptr.MustAt(int(r))
		end := csr.Indptr.MustAt(int(r) + 1)
		for k := start; k < end; k++ {
			oldCol := csr.Indices.MustAt(int(k))
			if newCol, ok := colNewID[oldCol]; ok {
				indices = append(indices, newCol)
				edgeIDs = append(edgeIDs, csr.EdgeIDs.MustAt(int(k)))
			}
		}
		indptr[i+1] = int64(len(indices))
	}
	return NewCSR(int64(len(rids)), int64(len(cids)), idarray.FromSlice(indptr), idarray.FromSlice(indices), idarray.FromSlice(edgeIDs))
}
