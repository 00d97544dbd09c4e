// Package gonumadapter exposes graphflow's CSR-backed graphs to the gonum
// graph ecosystem: any square CSR — a homogeneous bipartite.Relation's
// adjacency or a sampled nodeflow.NodeFlow's graph — can be wrapped as a
// gonum.org/v1/gonum/graph.Directed without copying edge data, so gonum's
// algorithm library (topological sort, shortest path, connectivity, ...)
// runs directly over stored or sampled graphs.
package gonumadapter
