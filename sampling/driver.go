package sampling

import (
	"sync"

	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/nodeflow"
	"github.com/katalvlaran/graphflow/rng"
)

// UniformSampling runs neighbor sampling with uniform per-hop selection
// over req's seed mini-batches, returning one NodeFlow per processed batch
// in batch order.
func UniformSampling(g *bipartite.Relation, req Request, opts ...Option) ([]*nodeflow.NodeFlow, error) {
	return NeighborSampling(g, req, nil, opts...)
}

// NeighborSampling runs neighbor sampling over req's seed mini-batches.
// probability is an edge-id-indexed weight vector; empty means uniform
// selection, otherwise its length must equal the graph's edge count.
func NeighborSampling(g *bipartite.Relation, req Request, probability []float64, opts ...Option) ([]*nodeflow.NodeFlow, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validateCommon(g, req.Seeds, req.BatchSize, req.MaxWorkers); err != nil {
		return nil, err
	}
	if req.ExpandFactor <= 0 {
		return nil, ErrBadExpandFactor
	}
	if req.NumHops <= 0 {
		return nil, ErrBadNumHops
	}
	if len(probability) != 0 && int64(len(probability)) != g.NumEdges() {
		return nil, ErrBadProbabilityLength
	}
	if err := buildCSR(g, req.NeighType); err != nil {
		return nil, err
	}

	cfg := nodeflow.NeighborSamplingConfig{
		NumHops:      req.NumHops,
		ExpandFactor: req.ExpandFactor,
		NeighType:    req.NeighType,
		AddSelfLoop:  req.AddSelfLoop,
		Probability:  probability,
	}
	return runWorkers(req.Seeds.Data(), req.BatchStartID, req.BatchSize, req.MaxWorkers, o.Seed,
		func(batchSeeds []int64, src *rng.Source) (*nodeflow.NodeFlow, error) {
			return nodeflow.BuildNeighborNodeFlow(g, batchSeeds, cfg, src)
		})
}

// LayerSampling runs layer-wise importance sampling over req's seed
// mini-batches, returning one NodeFlow per processed batch in batch order.
func LayerSampling(g *bipartite.Relation, req LayerRequest, opts ...Option) ([]*nodeflow.NodeFlow, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validateCommon(g, req.Seeds, req.BatchSize, req.MaxWorkers); err != nil {
		return nil, err
	}
	if req.LayerSizes.Bits() == 32 {
		return nil, Err32BitSeeds
	}
	if err := buildCSR(g, req.NeighType); err != nil {
		return nil, err
	}

	cfg := nodeflow.LayerSamplingConfig{
		LayerSizes: req.LayerSizes.Data(),
		NeighType:  req.NeighType,
	}
	return runWorkers(req.Seeds.Data(), req.BatchStartID, req.BatchSize, req.MaxWorkers, o.Seed,
		func(batchSeeds []int64, src *rng.Source) (*nodeflow.NodeFlow, error) {
			return nodeflow.BuildLayerNodeFlow(g, batchSeeds, cfg, src)
		})
}

func validateCommon(g *bipartite.Relation, seeds idarray.IdArray, batchSize, maxWorkers int) error {
	if g == nil {
		return ErrGraphNil
	}
	if seeds.Bits() == 32 {
		return Err32BitSeeds
	}
	if batchSize <= 0 {
		return ErrBadBatchSize
	}
	if maxWorkers <= 0 {
		return ErrBadMaxWorkers
	}
	return nil
}

// buildCSR forces materialization of the CSR view the expansion direction
// reads, before any worker goroutine starts. Workers then only read
// already-cached immutable views, so the relation's lazy cache is never
// touched concurrently. An unrecognized direction fails here, before any
// goroutine is spawned.
func buildCSR(g *bipartite.Relation, neighType nodeflow.NeighType) error {
	var err error
	switch neighType {
	case nodeflow.NeighOut:
		_, err = g.GetAdj()
	case nodeflow.NeighIn:
		_, err = g.InAdj()
	default:
		return nodeflow.ErrUnknownNeighType
	}
	if err != nil {
		return err
	}
	// The builders also consult IsMultigraph per batch; warm its cache so
	// worker reads never compute it concurrently.
	_, err = g.IsMultigraph()
	return err
}

// runWorkers cuts seeds into batch-size slices and runs one goroutine per
// processed batch. Batch b covers seeds[b*batchSize : (b+1)*batchSize];
// processing starts at batchStartID and covers
// min(maxWorkers, numBatches-batchStartID) batches. Each worker draws from
// its own stream derived deterministically from the base seed and its
// batch id. Any worker error aborts the whole call: no partial result list
// is returned.
func runWorkers(seeds []int64, batchStartID, batchSize, maxWorkers int, baseSeed int64,
	build func(batchSeeds []int64, src *rng.Source) (*nodeflow.NodeFlow, error)) ([]*nodeflow.NodeFlow, error) {

	numSeeds := len(seeds)
	numBatches := (numSeeds + batchSize - 1) / batchSize
	numWorkers := numBatches - batchStartID
	if numWorkers > maxWorkers {
		numWorkers = maxWorkers
	}
	if numWorkers <= 0 {
		return nil, nil
	}

	flows := make([]*nodeflow.NodeFlow, numWorkers)
	errs := make([]error, numWorkers)
	var wg sync.WaitGroup
	base := rng.FromSeed(baseSeed)

	for i := 0; i < numWorkers; i++ {
		batchID := batchStartID + i
		lo := batchID * batchSize
		hi := lo + batchSize
		if hi > numSeeds {
			hi = numSeeds
		}
		// Derived sequentially so stream assignment is deterministic.
		src := base.DeriveStream(uint64(batchID))

		wg.Add(1)
		go func(slot int, batchSeeds []int64, src *rng.Source) {
			defer wg.Done()
			flows[slot], errs[slot] = build(batchSeeds, src)
		}(i, seeds[lo:hi], src)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return flows, nil
}
