package nodeflow

import (
	"sort"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/rng"
	"github.com/katalvlaran/graphflow/sparse"
	"github.com/katalvlaran/graphflow/wsample"
)

// NeighborSamplingConfig bundles a neighbor-sampling call's parameters,
// minus the seed batching that package sampling owns.
type NeighborSamplingConfig struct {
	NumHops      int       // number of expansion steps; NumHops+1 total layers
	ExpandFactor int       // per-node fan-out cap
	NeighType    NeighType // "in" or "out"
	AddSelfLoop  bool
	Probability  []float64 // nil => uniform sampling; else weighted, indexed by edge id
}

// neighborsOf returns the (vids, edgeIDs) u expands along, per cfg.NeighType:
// "out" walks successors (u's out-edges), "in" walks predecessors (u's
// in-edges).
func neighborsOf(r *bipartite.Relation, u int64, neighType NeighType) (vids, eids []int64, err error) {
	switch neighType {
	case NeighOut:
		return r.OutEdges(u)
	case NeighIn:
		return r.InEdges(u)
	default:
		return nil, nil, ErrUnknownNeighType
	}
}

// selfLoopEdgeID looks up an existing u->u edge id, returning SelfLoopEdgeID
// if none exists.
func selfLoopEdgeID(r *bipartite.Relation, u int64) (int64, error) {
	ids, err := r.EdgeID(u, u)
	if err != nil {
		return 0, err
	}
	if ids.Len() == 0 {
		return SelfLoopEdgeID, nil
	}
	return ids.MustAt(0), nil
}

// dedupPreserveOrder returns the distinct values of vids in
// first-occurrence order.
func dedupPreserveOrder(vids []int64) []int64 {
	seen := make(map[int64]struct{}, len(vids))
	out := make([]int64, 0, len(vids))
	for _, v := range vids {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

type posRange struct {
	start, count int
}

// BuildNeighborNodeFlow runs the per-seed fan-out sampler over a single
// seed batch, producing one NodeFlow.
//
// cfg.NumHops expansion passes are performed, producing NumHops+1 total
// layers: in construction order, layer 0 holds the distinct seeds and
// each pass expands the previous layer's nodes through up to ExpandFactor
// sampled neighbors, deduplicating within the layer (a vertex may still
// reappear in a later layer).
func BuildNeighborNodeFlow(r *bipartite.Relation, seeds []int64, cfg NeighborSamplingConfig, src *rng.Source) (*NodeFlow, error) {
	if cfg.NeighType != NeighIn && cfg.NeighType != NeighOut {
		return nil, ErrUnknownNeighType
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if len(cfg.Probability) != 0 && int64(len(cfg.Probability)) != r.NumEdges() {
		return nil, ErrBadProbabilityLength
	}

	multigraph, err := r.IsMultigraph()
	if err != nil {
		return nil, err
	}

	numHops := cfg.NumHops
	layers := make([][]int64, numHops+1)
	layers[0] = dedupPreserveOrder(seeds)

	neighPosAt := make([]map[int64]posRange, numHops)
	var neighborFlat, edgeFlat []int64

	for layerID := 1; layerID <= numHops; layerID++ {
		prev := layers[layerID-1]
		seen := make(map[int64]struct{}, len(prev))
		var next []int64
		posMap := make(map[int64]posRange, len(prev))

		for _, u := range prev {
			vids, eids, err := neighborsOf(r, u, cfg.NeighType)
			if err != nil {
				return nil, err
			}

			var sampledVids, sampledEids []int64
			if len(cfg.Probability) == 0 {
				sampledVids, sampledEids, err = wsample.UniformNeighborSample(vids, eids, cfg.ExpandFactor, src)
			} else {
				sampledVids, sampledEids, err = wsample.WeightedNeighborSample(vids, eids, cfg.Probability, cfg.ExpandFactor, src)
			}
			if err != nil {
				return nil, err
			}

			if cfg.AddSelfLoop {
				already := false
				for _, v := range sampledVids {
					if v == u {
						already = true
						break
					}
				}
				if !already {
					eid, err := selfLoopEdgeID(r, u)
					if err != nil {
						return nil, err
					}
					sampledVids = append(sampledVids, u)
					sampledEids = append(sampledEids, eid)
				}
			}

			start := len(neighborFlat)
			neighborFlat = append(neighborFlat, sampledVids...)
			edgeFlat = append(edgeFlat, sampledEids...)
			posMap[u] = posRange{start: start, count: len(sampledVids)}

			for _, v := range sampledVids {
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				next = append(next, v)
			}
		}

		neighPosAt[layerID-1] = posMap
		layers[layerID] = next
	}

	return assembleNeighborNodeFlow(layers, neighPosAt, neighborFlat, edgeFlat, cfg.NeighType, multigraph)
}

// assembleNeighborNodeFlow packs the expansion trace into a NodeFlow:
// NodeMapping is built by iterating construction layers in reverse (so the
// outer frontier becomes output layer 0 and the seeds the last layer),
// with non-seed layers sorted by original vid, then a single CSR spanning
// all layers is assembled in that dense-id order.
func assembleNeighborNodeFlow(layers [][]int64, neighPosAt []map[int64]posRange, neighborFlat, edgeFlat []int64, neighType NeighType, multigraph bool) (*NodeFlow, error) {
	numHops := len(layers) - 1
	numOutputLayers := numHops + 1

	// Stable per-layer ordering: non-seed layers (construction index >= 1)
	// sorted by original vid; the seed layer (construction index 0) keeps
	// input order.
	ordered := make([][]int64, numOutputLayers)
	for i, layer := range layers {
		cp := append([]int64(nil), layer...)
		if i != 0 {
			sort.Slice(cp, func(a, b int) bool { return cp[a] < cp[b] })
		}
		ordered[i] = cp
	}

	var nodeMapping []int64
	layerOffsets := make([]int64, numOutputLayers+1)
	denseID := make([]map[int64]int64, numOutputLayers) // indexed by construction layer
	for o := 0; o < numOutputLayers; o++ {
		constructionLayer := numHops - o
		m := make(map[int64]int64, len(ordered[constructionLayer]))
		for _, v := range ordered[constructionLayer] {
			m[v] = int64(len(nodeMapping))
			nodeMapping = append(nodeMapping, v)
		}
		denseID[constructionLayer] = m
		layerOffsets[o+1] = int64(len(nodeMapping))
	}
	n := int64(len(nodeMapping))

	indptr := make([]int64, n+1)
	var indices, edgeIDs, edgeMapping []int64
	flowEdgeCount := make([]int64, numHops) // flow f = output layers f,f+1

	for o := 0; o < numOutputLayers; o++ {
		constructionLayer := numHops - o
		for _, u := range ordered[constructionLayer] {
			row := denseID[constructionLayer][u]
			if constructionLayer < numHops {
				pr := neighPosAt[constructionLayer][u]
				nextMap := denseID[constructionLayer+1]
				for k := pr.start; k < pr.start+pr.count; k++ {
					v := neighborFlat[k]
					col, ok := nextMap[v]
					if !ok {
						return nil, errInternalMissingNode
					}
					indices = append(indices, col)
					localEID := int64(len(edgeMapping))
					edgeIDs = append(edgeIDs, localEID)
					edgeMapping = append(edgeMapping, edgeFlat[k])
				}
				// Edges produced while processing output layer o (whose
				// construction layer is numHops-o, o ranges 1..numHops here)
				// connect output layer o-1 to output layer o: that is flow
				// o-1.
				flowEdgeCount[o-1] += int64(pr.count)
			}
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
		Graph:        csr,
		NodeMapping:  nodeMapping,
		EdgeMapping:  edgeMapping,
		LayerOffsets: layerOffsets,
		FlowOffsets:  flowOffsets,
		Multigraph:   multigraph,
	}, nil
}
