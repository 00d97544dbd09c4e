// Package idarray implements the IdArray handle the rest of graphflow
// builds on: a dense 1-D integer tensor with a bit-width and a length,
// supporting index-select, range-fill, element-wise less-than, horizontal
// stack, and in-place relabel.
//
// graphflow's storage and sampling layers never reach into an IdArray's
// backing slice directly outside this package; every cross-package
// consumer goes through the exported methods here. There is no locking in
// this package: IdArrays are treated as immutable once returned to a
// caller (copy-on-write is implemented explicitly where needed, never
// implicitly), and views returned to callers share the same underlying
// storage.
package idarray
