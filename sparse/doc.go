// Package sparse implements graphflow's sparse adjacency primitives: COO
// and CSR value types over the idarray.IdArray abstraction, plus the pure
// transformations between them (COOToCSR, CSRToCOO, CSRTranspose,
// CSRSliceRows, CSRSliceMatrix, and the row/data accessors).
//
// Every transformation here is a pure function returning a new value; none
// mutates its input. The canonical edge-id assignment fixed at a
// relation's construction is carried through every conversion in this
// package; see convert.go's doc comments for the exact rule each function
// follows.
package sparse
