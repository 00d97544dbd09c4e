package heterograph

import "errors"

var (
	// ErrNoRelations is returned by New when rels is empty.
	ErrNoRelations = errors.New("heterograph: at least one relation graph is required")
	// ErrRelationCountMismatch is returned when the meta-graph's edge count
	// does not match len(rels).
	ErrRelationCountMismatch = errors.New("heterograph: relation count does not match meta-graph edge count")
	// ErrVertexCountMismatch is returned when two relations sharing a
	// vertex type disagree on that type's vertex count.
	ErrVertexCountMismatch = errors.New("heterograph: mismatched vertex count for shared vertex type")
	// ErrArgCountMismatch is returned when a per-type or per-edge-type
	// argument slice's length doesn't match the expected count.
	ErrArgCountMismatch = errors.New("heterograph: argument slice length does not match type count")
)
