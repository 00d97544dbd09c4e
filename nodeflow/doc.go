// Package nodeflow assembles the layered, re-indexed subgraphs
// ("NodeFlows") that graphflow's sampling drivers (package sampling)
// produce: per-seed neighbor sampling with a capped fan-out, and
// layer-wise uniform sampling with importance weights.
//
// Both builders read from a bipartite.Relation treated as a homogeneous
// graph (source vertex type == destination vertex type, a single edge
// type), the natural case when an input graph has only one node/edge
// type. A caller sampling over a multi-relation heterograph first
// flattens the relation of interest before calling into this package;
// neither this package nor package sampling, whose drivers also take a
// single bipartite.Relation, performs that flattening.
package nodeflow
