// Package sampling exposes graphflow's three sampling entry points —
// UniformSampling, NeighborSampling and LayerSampling — and the worker
// pool that parallelizes them over seed mini-batches.
//
// Each driver splits the seed array into contiguous batches, forces
// materialization of the CSR view the expansion direction needs before
// any goroutine starts (so workers only ever read immutable data), then
// runs one worker per batch. Workers draw from independent deterministic
// random streams and produce independent NodeFlows; the result list holds
// one NodeFlow per processed batch, in batch order.
package sampling
