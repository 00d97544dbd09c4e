package nodeflow

import "errors"

var (
	// ErrUnknownNeighType is returned when neighType is neither "in" nor
	// "out".
	ErrUnknownNeighType = errors.New("nodeflow: neigh_type must be \"in\" or \"out\"")

	// ErrNoSeeds is returned when the seed list is empty.
	ErrNoSeeds = errors.New("nodeflow: seed list is empty")

	// ErrBadLayerSizes is returned when layer_sizes is empty or contains a
	// non-positive entry.
	ErrBadLayerSizes = errors.New("nodeflow: layer_sizes must be non-empty with positive entries")

	// ErrNoCandidates is returned by the layer sampler when a layer's
	// frontier has no neighbors at all in the expansion direction, leaving
	// nothing to draw the next layer from.
	ErrNoCandidates = errors.New("nodeflow: layer expansion found no candidate neighbors")

	// ErrBadProbabilityLength is returned when a probability vector's
	// length does not match the graph's edge count.
	ErrBadProbabilityLength = errors.New("nodeflow: probability length does not match edge count")

	// errInternalMissingNode signals a builder invariant violation: a
	// sampled neighbor was not recorded in the next construction layer it
	// was sampled into. Should be unreachable.
	errInternalMissingNode = errors.New("nodeflow: internal invariant violated: sampled neighbor missing from next layer")
)
