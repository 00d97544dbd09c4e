// File: freeze.go
// Role: Construction front-end adapter: compresses a mutable, string-keyed
//       core.Graph into the dense integer (row, col) pair that seeds an
//       immutable bipartite.Relation. The storage/sampling engine consumes
//       dense integer IdArrays rather than a named-vertex authoring API;
//       core.Graph is that authoring layer, and Freeze is the one-way door
//       from it into the sampling engine.
// AI-HINT (file):
//   - Freeze assigns dense ids in Vertices()'s sorted order, so FrozenGraph
//     is deterministic for a fixed vertex ID set regardless of insertion
//     order.
//   - A self-loop (From==To) becomes one (row,col) pair with row==col; the
//     bipartite.Relation layer (not this file) is responsible for any
//     further self-loop semantics (e.g. nodeflow's add_self_loop).

package core

import (
	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/idarray"
)

// FrozenGraph is the dense integer view produced by Freeze: a vertex id
// assignment (IDs[i] is the original string id of dense vertex i) alongside
// the parallel edge endpoint arrays used to build a bipartite.Relation.
type FrozenGraph struct {
	// IDs maps dense vertex id -> original core.Vertex.ID, in assignment
	// order (ascending lexicographic, matching Vertices()).
	IDs []string

	// EdgeIDs maps dense edge id (position in Row/Col) -> original
	// core.Edge.ID, preserving Edges()'s creation order.
	EdgeIDs []string

	// Row and Col are the COO endpoint arrays: Row[e] -> Col[e] is edge e,
	// both indexed by the dense vertex ids assigned in IDs.
	Row idarray.IdArray
	Col idarray.IdArray
}

// Freeze compresses g into a FrozenGraph: every vertex gets a dense id
// 0..VertexCount()-1 in Vertices()'s sorted order, and every edge becomes
// a (row, col) pair over those dense ids, in Edges()'s creation order.
//
// Directed edges contribute one (from,to) pair. Undirected edges (the
// common case, since core.Graph mirrors adjacency for them) also
// contribute exactly one (from,to) pair in the edge's stored orientation —
// Freeze does not synthesize the mirror, since the edge catalog already
// has one canonical Edge per logical connection and doubling it here would
// silently turn every undirected graph into a multigraph downstream.
func (g *Graph) Freeze() *FrozenGraph {
	ids := g.Vertices() // already sorted ascending
	dense := make(map[string]int64, len(ids))
	for i, id := range ids {
		dense[id] = int64(i)
	}

	edges := g.Edges() // creation order
	row := make([]int64, len(edges))
	col := make([]int64, len(edges))
	edgeIDs := make([]string, len(edges))
	for i, e := range edges {
		row[i] = dense[e.From]
		col[i] = dense[e.To]
		edgeIDs[i] = e.ID
	}

	return &FrozenGraph{
		IDs:     ids,
		EdgeIDs: edgeIDs,
		Row:     idarray.FromSlice(row),
		Col:     idarray.FromSlice(col),
	}
}

// ToCOOBipartite builds a homogeneous bipartite.Relation (NumSrc==NumDst==
// len(IDs)) from the frozen edge set, ready to be handed to a sampling
// driver.
func (f *FrozenGraph) ToCOOBipartite() (*bipartite.Relation, error) {
	n := int64(len(f.IDs))
	return bipartite.NewFromCOO(n, n, f.Row, f.Col)
}

// OriginalVertexID resolves a dense vertex id produced by Freeze back to
// the original core.Vertex.ID it came from.
func (f *FrozenGraph) OriginalVertexID(denseID int64) (string, error) {
	if denseID < 0 || int(denseID) >= len(f.IDs) {
		return "", ErrVertexNotFound
	}
	return f.IDs[denseID], nil
}
