package sampling

import (
	"errors"

	"github.com/katalvlaran/graphflow/idarray"
	"github.com/katalvlaran/graphflow/nodeflow"
)

// Sentinel errors for the sampling drivers.
var (
	// ErrGraphNil is returned if a nil relation pointer is passed.
	ErrGraphNil = errors.New("sampling: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sampling: invalid option supplied")

	// Err32BitSeeds is returned when the seed array (or layer-size array)
	// declares a 32-bit width; the sampler path is 64-bit only.
	Err32BitSeeds = errors.New("sampling: sampler path requires 64-bit id arrays")

	// ErrBadBatchSize is returned when batch_size is not positive.
	ErrBadBatchSize = errors.New("sampling: batch_size must be positive")

	// ErrBadMaxWorkers is returned when max_workers is not positive.
	ErrBadMaxWorkers = errors.New("sampling: max_workers must be positive")

	// ErrBadExpandFactor is returned when expand_factor is not positive.
	ErrBadExpandFactor = errors.New("sampling: expand_factor must be positive")

	// ErrBadNumHops is returned when num_hops is not positive.
	ErrBadNumHops = errors.New("sampling: num_hops must be positive")

	// ErrBadProbabilityLength is returned when a non-empty probability
	// vector's length differs from the graph's edge count.
	ErrBadProbabilityLength = errors.New("sampling: probability length does not match edge count")
)

// Request bundles the common batching parameters of a neighbor-sampling
// call: which seeds to expand, how the seed array is cut into mini-batches,
// and how each seed's frontier grows.
type Request struct {
	// Seeds is the full seed vertex array. Workers operate on contiguous
	// batch-size slices of it.
	Seeds idarray.IdArray

	// BatchStartID is the index of the first mini-batch this call
	// processes; batches before it are skipped entirely.
	BatchStartID int

	// BatchSize is the number of seeds per mini-batch.
	BatchSize int

	// MaxWorkers caps how many mini-batches (and goroutines) one call
	// processes.
	MaxWorkers int

	// ExpandFactor caps the per-node fan-out at every hop.
	ExpandFactor int

	// NumHops is the number of expansion passes; the resulting NodeFlow
	// has NumHops+1 layers.
	NumHops int

	// NeighType selects the expansion direction, "in" or "out".
	NeighType nodeflow.NeighType

	// AddSelfLoop forces every expanded node to appear among its own
	// sampled neighbors, synthesizing a sentinel-id self-edge when the
	// graph has none.
	AddSelfLoop bool
}

// LayerRequest bundles the parameters of a layer-wise sampling call.
type LayerRequest struct {
	// Seeds is the full seed vertex array, batched exactly like
	// Request.Seeds.
	Seeds idarray.IdArray

	BatchStartID int
	BatchSize    int
	MaxWorkers   int

	// LayerSizes holds one target sample count per expansion step.
	LayerSizes idarray.IdArray

	// NeighType selects the expansion direction, "in" or "out".
	NeighType nodeflow.NeighType
}

// Option configures driver behavior via functional arguments. If an Option
// is invalid, it is recorded internally and surfaced as ErrOptionViolation
// when the driver is invoked.
type Option func(*Options)

// Options holds the tunables shared by all three drivers.
type Options struct {
	// Seed is the base seed the per-worker random streams derive from.
	// Zero selects the package's fixed default, so results are
	// reproducible even when no seed is supplied.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the driver defaults: base seed 0 (the fixed
// reproducible default stream).
func DefaultOptions() Options {
	return Options{}
}

// WithSeed sets the base seed for the per-worker random streams.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			o.err = ErrOptionViolation
			continue
		}
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
