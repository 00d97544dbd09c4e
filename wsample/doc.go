// Package wsample implements graphflow's sampling primitives: uniform
// sample-without-replacement over a neighbor list with a bimodal strategy
// picked by list size, and weighted sample-without-replacement via an
// array heap (an implicit complete-binary-tree segment tree over subtree
// weight sums, O(log n) per draw with dynamic deletion).
package wsample
