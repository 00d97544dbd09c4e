package wsample

import (
	"math"
	"math/bits"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/graphflow/rng"
)

// ArrayHeap is a segment tree over subtree weight sums, stored as a flat
// slice implicit complete binary tree. Leaves occupy heap[limit:limit+vecSize];
// internal node j sums heap[2j] and heap[2j+1]. Sample draws are O(log n);
// Delete zeroes a leaf's contribution in O(log n) by subtracting its
// weight from every ancestor.
type ArrayHeap struct {
	vecSize int
	bitLen  int
	limit   int
	heap    []float64
}

// NewArrayHeap builds a heap over weights, one leaf per entry.
func NewArrayHeap(weights []float64) *ArrayHeap {
	vecSize := len(weights)
	bitLen := 0
	if vecSize > 1 {
		bitLen = bits.Len(uint(vecSize - 1))
	}
	limit := 1 << bitLen

	heap := make([]float64, limit<<1)
	for i := 0; i < vecSize; i++ {
		heap[limit+i] = weights[i]
	}
	for i := bitLen - 1; i >= 0; i-- {
		for j := 1 << i; j < 1<<(i+1); j++ {
			heap[j] = heap[j<<1] + heap[(j<<1)+1]
		}
	}
	return &ArrayHeap{vecSize: vecSize, bitLen: bitLen, limit: limit, heap: heap}
}

// Delete removes index's contribution from the heap by subtracting its
// leaf weight from the leaf and every ancestor, leaving the remaining mass
// intact.
func (h *ArrayHeap) Delete(index int) {
	i := index + h.limit
	w := h.heap[i]
	for j := h.bitLen; j >= 0; j-- {
		h.heap[i] -= w
		i >>= 1
	}
}

// Add adds weight w back to index.
func (h *ArrayHeap) Add(index int, w float64) {
	i := index + h.limit
	for j := h.bitLen; j >= 0; j-- {
		h.heap[i] += w
		i >>= 1
	}
}

// Sample draws one index with probability proportional to its current
// weight: draw x uniform in [0, total), descend from the root going left
// when x falls inside the left subtree's mass and right (subtracting it)
// otherwise.
func (h *ArrayHeap) Sample(src *rng.Source) int {
	xi := h.heap[1] * src.UniformFloat()
	i := 1
	for i < h.limit {
		i <<= 1
		if xi >= h.heap[i] {
			xi -= h.heap[i]
			i++
		}
	}
	return i - h.limit
}

// SampleWithoutReplacement draws n distinct indices, each proportional to
// its weight at the time of the draw, deleting each as it's drawn.
func (h *ArrayHeap) SampleWithoutReplacement(n int, src *rng.Source) []int {
	samples := make([]int, n)
	for i := 0; i < n; i++ {
		samples[i] = h.Sample(src)
		h.Delete(samples[i])
	}
	return samples
}

// WeightedNeighborSample picks maxNumNeighbor entries out of the parallel
// (vids, edgeIDs) neighbor list without replacement, each draw weighted by
// probability[edgeIDs[i]] via an ArrayHeap. The kept entries are returned
// in their stored relative order, matching UniformNeighborSample, so each
// vertex stays paired with its own edge id. Negative and NaN weights are
// treated as zero; a neighbor list whose total weight is zero cannot be
// drawn from and returns ErrZeroWeight.
func WeightedNeighborSample(vids, edgeIDs []int64, probability []float64, maxNumNeighbor int, src *rng.Source) (outVer, outEdge []int64, err error) {
	if len(vids) != len(edgeIDs) {
		return nil, nil, ErrLengthMismatch
	}
	verLen := len(vids)
	if verLen <= maxNumNeighbor {
		return append([]int64(nil), vids...), append([]int64(nil), edgeIDs...), nil
	}

	weights := make([]float64, verLen)
	for i, eid := range edgeIDs {
		if eid < 0 || int(eid) >= len(probability) {
			return nil, nil, ErrLengthMismatch
		}
		w := probability[eid]
		if math.IsNaN(w) || w < 0 {
			w = 0
		}
		weights[i] = w
	}

	if floats.Sum(weights) <= 0 {
		return nil, nil, ErrZeroWeight
	}

	heap := NewArrayHeap(weights)
	idxs := heap.SampleWithoutReplacement(maxNumNeighbor, src)
	sort.Ints(idxs)

	outVer = make([]int64, maxNumNeighbor)
	outEdge = make([]int64, maxNumNeighbor)
	for i, idx := range idxs {
		outVer[i] = vids[idx]
		outEdge[i] = edgeIDs[idx]
	}
	return outVer, outEdge, nil
}
