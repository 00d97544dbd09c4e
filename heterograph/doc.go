// Package heterograph implements graphflow's heterogeneous graph: a small
// meta-graph whose nodes are vertex types and whose edges are edge types,
// paired with one bipartite.Relation per meta-edge. Two bipartite
// relations that share a vertex type must agree on that type's vertex
// count; this is validated once at construction.
//
// Subgraph extraction comes in three flavors. VertexSubgraph slices every
// relation to the requested per-type vertex sets. EdgeSubgraph with
// preserveNodes=true slices each relation independently, leaving vertex id
// spaces untouched. EdgeSubgraph with preserveNodes=false must
// additionally unify the vertex id space per vertex type across every
// relation incident on it, since two relations sharing a vertex type
// cannot independently renumber that type's surviving vertices.
package heterograph
