package sparse

import "github.com/katalvlaran/graphflow/idarray"

// CSRGetRowNNZ returns the number of stored entries in row r.
func CSRGetRowNNZ(csr CSR, r int64) (int64, error) {
	if r < 0 || r >= csr.NumRows {
		return 0, ErrRowOutOfRange
	}
	start := csr.Indptr.MustAt(int(r))
	end := csr.Indptr.MustAt(int(r) + 1)
	return end - start, nil
}

// CSRGetRowColumnIndices returns the column ids of row r, in stored order.
func CSRGetRowColumnIndices(csr CSR, r int64) (idarray.IdArray, error) {
	if r < 0 || r >= csr.NumRows {
		return idarray.IdArray{}, ErrRowOutOfRange
	}
	start := csr.Indptr.MustAt(int(r))
	end := csr.Indptr.MustAt(int(r) + 1)
	out := make([]int64, end-start)
	copy(out, csr.Indices.Data()[start:end])
	return idarray.FromSlice(out), nil
}

// CSRGetRowData returns the edge ids of row r, in stored order.
func CSRGetRowData(csr CSR, r int64) (idarray.IdArray, error) {
	if r < 0 || r >= csr.NumRows {
		return idarray.IdArray{}, ErrRowOutOfRange
	}
	start := csr.Indptr.MustAt(int(r))
	end := csr.Indptr.MustAt(int(r) + 1)
	out := make([]int64, end-start)
	copy(out, csr.EdgeIDs.Data()[start:end])
	return idarray.FromSlice(out), nil
}

// CSRGetData returns the edge ids of every stored entry (s, d); a
// multigraph may have more than one.
func CSRGetData(csr CSR, s, d int64) (idarray.IdArray, error) {
	if s < 0 || s >= csr.NumRows {
		return idarray.IdArray{}, ErrRowOutOfRange
	}
	if d < 0 || d >= csr.NumCols {
		return idarray.IdArray{}, ErrColOutOfRange
	}
	start := csr.Indptr.MustAt(int(s))
	end := csr.Indptr.MustAt(int(s) + 1)
	var out []int64
	for k := start; k < end; k++ {
		if csr.Indices.MustAt(int(k)) == d {
			out = append(out, csr.EdgeIDs.MustAt(int(k)))
		}
	}
	return idarray.FromSlice(out), nil
}

// CSRIsNonZero reports whether any edge (s, d) is stored.
func CSRIsNonZero(csr CSR, s, d int64) (bool, error) {
	ids, err := CSRGetData(csr, s, d)
	if err != nil {
		return false, err
	}
	return ids.Len() > 0, nil
}

// CSRGetDataAndIndices enumerates, for each (ss[i], ds[i]) pair, every
// stored edge matching it, returning parallel (src, dst, eid) slices.
func CSRGetDataAndIndices(csr CSR, ss, ds []int64) (src, dst, eid []int64, err error) {
	if len(ss) != len(ds) {
		return nil, nil, nil, ErrLengthMismatch
	}
	for i := range ss {
		ids, e := CSRGetData(csr, ss[i], ds[i])
		if e != nil {
			return nil, nil, nil, e
		}
		for k := 0; k < ids.Len(); k++ {
			src = append(src, ss[i])
			dst = append(dst, ds[i])
			eid = append(eid, ids.MustAt(k))
		}
	}
	return src, dst, eid, nil
}

// COOHasDuplicate scans coo for a repeated (row, col) pair.
func COOHasDuplicate(coo COO) bool {
	seen := make(map[[2]int64]struct{}, coo.Row.Len())
	for i := 0; i < coo.Row.Len(); i++ {
		key := [2]int64{coo.Row.MustAt(i), coo.Col.MustAt(i)}
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}

// CSRHasDuplicate scans csr for a row with a repeated column value.
func CSRHasDuplicate(csr CSR) bool {
	for r := int64(0); r < csr.NumRows; r++ {
		start := csr.Indptr.MustAt(int(r))
		end := csr.Indptr.MustAt(int(r) + 1)
		seen := make(map[int64]struct{}, end-start)
		for k := start; k < end; k++ {
			c := csr.Indices.MustAt(int(k))
			if _, ok := seen[c]; ok {
				return true
			}
			seen[c] = struct{}{}
		}
	}
	return false
}
