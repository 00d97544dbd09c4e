// Package core is graphflow's mutable authoring layer: a thread-safe,
// string-keyed in-memory graph that callers populate with ordinary vertex
// IDs and metadata before compressing it, via Freeze, into the dense
// integer representation the immutable storage and sampling engine
// consumes.
//
// The Graph supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge lookups via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// Iteration is deterministic: Vertices() and NeighborIDs() sort
// ascending, Edges() follows creation order. Freeze depends on these
// orderings for its dense vertex and edge id assignment, so two
// identically-populated graphs always freeze to the same
// bipartite.Relation.
package core
