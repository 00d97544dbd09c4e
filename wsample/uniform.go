package wsample

import (
	"sort"

	"github.com/katalvlaran/graphflow/rng"
)

// RandomSample draws num distinct integers from [0, setSize) without
// replacement, in arbitrary order, by rejection sampling into a dedup set.
func RandomSample(setSize, num int, src *rng.Source) ([]int, error) {
	if num > setSize {
		return nil, ErrSampleSizeExceedsPopulation
	}
	if num == 0 {
		return nil, nil
	}
	sampled := make(map[int]struct{}, num)
	for len(sampled) < num {
		sampled[src.UniformInt(setSize)] = struct{}{}
	}
	out := make([]int, 0, num)
	for idx := range sampled {
		out = append(out, idx)
	}
	return out, nil
}

// NegateSorted takes nzIdxs (sorted, distinct, all < arrSize) and returns
// the complement: every index in [0, arrSize) not present in nzIdxs, in
// increasing order.
func NegateSorted(nzIdxs []int, arrSize int) []int {
	out := make([]int, 0, arrSize-len(nzIdxs))
	j := 0
	for i := 0; i < arrSize; i++ {
		if j < len(nzIdxs) && nzIdxs[j] == i {
			j++
			continue
		}
		out = append(out, i)
	}
	return out
}

// UniformNeighborSample picks maxNumNeighbor entries out of the parallel
// (vids, edgeIDs) neighbor list without replacement, preserving their
// relative order. The strategy is bimodal in the list length:
//   - verLen <= maxNumNeighbor: keep everything.
//   - verLen > 2*maxNumNeighbor: sample maxNumNeighbor indices directly
//     (the miss rate of rejection sampling is low in this regime).
//   - otherwise: sample the complement (verLen - maxNumNeighbor indices to
//     drop) and negate it, which converges faster when the kept set is
//     close to the full list.
func UniformNeighborSample(vids, edgeIDs []int64, maxNumNeighbor int, src *rng.Source) (outVer, outEdge []int64, err error) {
	if len(vids) != len(edgeIDs) {
		return nil, nil, ErrLengthMismatch
	}
	verLen := len(vids)
	if verLen <= maxNumNeighbor {
		return append([]int64(nil), vids...), append([]int64(nil), edgeIDs...), nil
	}

	var sortedIdxs []int
	if verLen > maxNumNeighbor*2 {
		idxs, err := RandomSample(verLen, maxNumNeighbor, src)
		if err != nil {
			return nil, nil, err
		}
		sort.Ints(idxs)
		sortedIdxs = idxs
	} else {
		negate, err := RandomSample(verLen, verLen-maxNumNeighbor, src)
		if err != nil {
			return nil, nil, err
		}
		sort.Ints(negate)
		sortedIdxs = NegateSorted(negate, verLen)
	}

	outVer = make([]int64, len(sortedIdxs))
	outEdge = make([]int64, len(sortedIdxs))
	for i, idx := range sortedIdxs {
		outVer[i] = vids[idx]
		outEdge[i] = edgeIDs[idx]
	}
	return outVer, outEdge, nil
}
