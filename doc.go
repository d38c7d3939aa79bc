// Package bqm is an in-memory toolkit for binary quadratic models: a
// weighted-graph objective with one linear bias per variable and one
// quadratic bias per interaction, the representation annealing and
// optimization solvers iterate over millions of times.
//
// What the module brings together:
//
//   - Sparse core: per-variable sorted neighbor vectors with binary
//     search lookup, symmetric interaction storage, compact memory
//   - Incremental mutation: add/pop variables, set/accumulate/remove
//     interactions without invalidating other indices
//   - Ingestion: copy from any BQM-like source, or fold a dense row-major
//     n×n buffer (upper+lower triangle summed) into sparse form
//   - Generators: deterministic fixtures (Variables, Path, Complete) and
//     seeded random-density models (RandomSparse)
//
// Everything is organized under two subpackages:
//
//	adjvec/  — the adjacency-vector container: construction, queries, mutation
//	builder/ — deterministic model constructors with functional options
//
// Quick ASCII example:
//
//	    0 ──0.5── 1 ──-0.5── 2
//
//	a three-variable chain: linear biases on the variables, quadratic
//	biases on the two interactions.
//
// The container is single-threaded by contract: no internal locking, no
// I/O, no hidden shared state. Surrounding systems that need concurrent
// access must exclude mutation externally.
//
//	go get github.com/annealkit/bqm
package bqm
