package sparse

import "errors"

// Sentinel errors for sparse adjacency construction and queries.
var (
	// ErrLengthMismatch indicates row/col (or indices/edge_ids) lengths disagree.
	ErrLengthMismatch = errors.New("sparse: length mismatch")

	// ErrBadIndptr indicates indptr violates the CSR invariants:
	// indptr[0]=0, indptr[num_rows]=num_edges, indptr non-decreasing.
	ErrBadIndptr = errors.New("sparse: invalid indptr")

	// ErrRowOutOfRange indicates a row index outside [0, num_rows).
	ErrRowOutOfRange = errors.New("sparse: row index out of range")

	// ErrColOutOfRange indicates a column index outside [0, num_cols).
	ErrColOutOfRange = errors.New("sparse: column index out of range")
)
