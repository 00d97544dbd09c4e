// Package rng is graphflow's deterministic pseudo-random engine: same
// seed, same results, and per-worker streams derived from a base seed via
// a SplitMix64 avalanche mix rather than sharing one *rand.Rand across
// goroutines (math/rand.Rand is not goroutine-safe).
package rng
