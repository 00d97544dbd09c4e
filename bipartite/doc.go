// Package bipartite implements graphflow's bipartite relation graph: an
// immutable, two-typed (kSrc=0, kDst=1), single-edge-type directed sparse
// graph holding up to three interchangeable views, an out_csr
// (rows=source), an in_csr (rows=destination), and a coo, materializing
// whichever is missing on first use and caching the result.
//
// Query dispatch picks the cheapest view: source-side queries prefer
// out_csr, destination-side queries prefer in_csr, edge-id-indexed queries
// prefer coo. Materialization prefers transposing an existing CSR over
// converting from COO; every Relation is guaranteed at least one view at
// construction.
//
// Concurrency: the sampling drivers pre-materialize the CSR view they need
// before any worker goroutine starts, so workers only read immutable data.
// Relation's cache is still safe under concurrent lazy materialization
// outside that discipline: materialize.go holds cacheMu for the whole
// check-build-store step, so a second concurrent caller waits and then
// observes the view the first one cached.
package bipartite
