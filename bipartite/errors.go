package bipartite

import "errors"

var (
	// ErrNoView is returned when a Relation is constructed with neither a
	// coo nor any CSR view; at least one is required at construction.
	ErrNoView = errors.New("bipartite: relation needs at least one view")
	// ErrVertexOutOfRange names a vertex index outside [0, num_vertices)
	// for its side. Relation's queries do not return it: an out-of-range
	// vertex surfaces as sparse.ErrRowOutOfRange or sparse.ErrColOutOfRange
	// from the underlying CSR lookup.
	ErrVertexOutOfRange = errors.New("bipartite: vertex index out of range")
	// ErrEdgeOutOfRange is returned by an edge-id-indexed query whose id is
	// not in [0, num_edges).
	ErrEdgeOutOfRange = errors.New("bipartite: edge id out of range")
	// ErrLengthMismatch is returned when parallel query-argument slices
	// disagree in length.
	ErrLengthMismatch = errors.New("bipartite: argument length mismatch")
	// ErrUnknownOrder is returned by Edges when order is not one of
	// "eid", "srcdst", "dstsrc".
	ErrUnknownOrder = errors.New("bipartite: unknown edge order")
)
