package nodeflow

import (
	"sort"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/rng"
	"github.com/katalvlaran/graphflow/sparse"
)

// LayerSamplingConfig bundles a layer-sampling call's parameters, minus
// the seed batching that package sampling owns.
type LayerSamplingConfig struct {
	LayerSizes []int64 // one target size per expansion step, outermost first
	NeighType  NeighType
}

// BuildLayerNodeFlow runs layer-wise importance sampling over a single
// seed batch, producing one NodeFlow with a populated Probabilities
// vector.
//
// Layers are grown inward-out: the seed layer is recorded first, then each
// round draws LayerSizes[i] samples with replacement from the candidate
// set (the neighbors, via cfg.NeighType, of the most recently added
// layer), appending the distinct picks with their importance weights. A
// final reversal places the outermost layer first, matching the neighbor
// sampler's output convention.
func BuildLayerNodeFlow(r *bipartite.Relation, seeds []int64, cfg LayerSamplingConfig, src *rng.Source) (*NodeFlow, error) {
	if cfg.NeighType != NeighIn && cfg.NeighType != NeighOut {
		return nil, ErrUnknownNeighType
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if len(cfg.LayerSizes) == 0 {
		return nil, ErrBadLayerSizes
	}
	for _, sz := range cfg.LayerSizes {
		if sz <= 0 {
			return nil, ErrBadLayerSizes
		}
	}

	multigraph, err := r.IsMultigraph()
	if err != nil {
		return nil, err
	}

	numLayers := len(cfg.LayerSizes)
	rawNodes := make([][]int64, numLayers+1)
	rawProbs := make([][]float64, numLayers+1)
	rawNodes[0] = append([]int64(nil), seeds...)
	rawProbs[0] = make([]float64, len(seeds))
	for i := range rawProbs[0] {
		rawProbs[0][i] = 1
	}

	currentLayer := rawNodes[0]
	for i := numLayers - 1; i >= 0; i-- {
		candidates, err := candidateSet(r, currentLayer, cfg.NeighType)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return nil, ErrNoCandidates
		}

		counts := make([]int64, len(candidates))
		n := len(candidates)
		for j := int64(0); j < cfg.LayerSizes[i]; j++ {
			idx := src.UniformInt(n)
			counts[idx]++
		}

		roundIdx := numLayers - i
		var picked []int64
		var probs []float64
		for idx, m := range counts {
			if m == 0 {
				continue
			}
			picked = append(picked, candidates[idx])
			probs = append(probs, float64(m)*float64(len(candidates))/float64(cfg.LayerSizes[i]))
		}
		rawNodes[roundIdx] = picked
		rawProbs[roundIdx] = probs
		currentLayer = picked
	}

	return assembleLayerNodeFlow(r, rawNodes, rawProbs, cfg.NeighType, multigraph)
}

// candidateSet returns the deduplicated, first-occurrence-ordered union of
// layer's neighbors (via neighType).
func candidateSet(r *bipartite.Relation, layer []int64, neighType NeighType) ([]int64, error) {
	seen := make(map[int64]struct{})
	var out []int64
	for _, u := range layer {
		vids, _, err := neighborsOf(r, u, neighType)
		if err != nil {
			return nil, err
		}
		for _, v := range vids {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out, nil
}

// assembleLayerNodeFlow reverses the construction-order layers so the
// outermost comes first, then builds the dense combined CSR flow-by-flow:
// for each adjacent layer pair, every destination node's neighbors that
// appear in the source layer are appended in ascending compact-position
// order.
func assembleLayerNodeFlow(r *bipartite.Relation, rawNodes [][]int64, rawProbs [][]float64, neighType NeighType, multigraph bool) (*NodeFlow, error) {
	numConstructionLayers := len(rawNodes)
	numOutputLayers := numConstructionLayers

	finalNodes := make([][]int64, numOutputLayers)
	finalProbs := make([][]float64, numOutputLayers)
	for i := 0; i < numOutputLayers; i++ {
		finalNodes[i] = rawNodes[numConstructionLayers-1-i]
		finalProbs[i] = rawProbs[numConstructionLayers-1-i]
	}

	var nodeMapping []int64
	var probabilities []float64
	layerOffsets := make([]int64, numOutputLayers+1)
	denseID := make([]map[int64]int64, numOutputLayers)
	for l := 0; l < numOutputLayers; l++ {
		m := make(map[int64]int64, len(finalNodes[l]))
		for _, v := range finalNodes[l] {
			m[v] = int64(len(nodeMapping))
			nodeMapping = append(nodeMapping, v)
		}
		denseID[l] = m
		probabilities = append(probabilities, finalProbs[l]...)
		layerOffsets[l+1] = int64(len(nodeMapping))
	}
	n := int64(len(nodeMapping))

	indptr := make([]int64, n+1)
	var indices, edgeIDs, edgeMapping []int64
	numFlows := numOutputLayers - 1
	flowEdgeCount := make([]int64, numFlows)

	type colEdge struct {
		col, eid int64
	}

	for f := 0; f < numFlows; f++ {
		srcLayer := denseID[f]
		for _, d := range finalNodes[f+1] {
			row := denseID[f+1][d]
			vids, eids, err := neighborsOf(r, d, neighType)
			if err != nil {
				return nil, err
			}

			var matches []colEdge
			for i, v := range vids {
				if col, ok := srcLayer[v]; ok {
					matches = append(matches, colEdge{col: col, eid: eids[i]})
				}
			}
			sort.Slice(matches, func(a, b int) bool { return matches[a].col < matches[b].col })

			for _, me := range matches {
				indices = append(indices, me.col)
				localEID := int64(len(edgeMapping))
				edgeIDs = append(edgeIDs, localEID)
				edgeMapping = append(edgeMapping, me.eid)
			}
			flowEdgeCount[f] += int64(len(matches))
			indptr[row+1] = int64(len(indices))
		}
	}
	for i := int64(1); i <= n; i++ {
		if indptr[i] < indptr[i-1] {
			indptr[i] = indptr[i-1]
		}
	}

	flowOffsets := make([]int64, numOutputLayers)
	for f := 1; f < numOutputLayers; f++ {
		flowOffsets[f] = flowOffsets[f-1] + flowEdgeCount[f-1]
	}

	csr, err := sparse.NewCSR(n, n,
		idarray.FromSlice(indptr), idarray.FromSlice(indices), idarray.FromSlice(edgeIDs))
	if err != nil {
		return nil, err
	}

	return &NodeFlow{
		Graph:         csr,
		NodeMapping:   nodeMapping,
		EdgeMapping:   edgeMapping,
		LayerOffsets:  layerOffsets,
		FlowOffsets:   flowOffsets,
		Multigraph:    multigraph,
		Probabilities: probabilities,
	}, nil
}
