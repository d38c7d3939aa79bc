// Package adjvec implements the adjacency-vector binary quadratic model:
// a sparse, symmetric, weighted-graph container with one linear bias per
// variable and one quadratic bias per interaction.
//
// Storage model:
//
//   - Variables are dense integer indices 0..NumVariables()-1.
//   - Each variable owns a neighbor vector of (variable, bias) terms kept
//     sorted ascending by neighbor index, plus its linear bias.
//   - Every interaction (u,v) appears in both endpoint vectors with the
//     same bias; the container never holds a one-sided interaction.
//   - Zero-bias interactions are never materialized by dense construction,
//     so "bias is zero" and "interaction absent" stay distinguishable.
//
// The sorted-vector layout trades O(degree) insertion for O(log degree)
// lookup, ascending iteration, and flat cache-friendly memory — the right
// trade for solver workloads that read far more than they mutate after
// construction.
//
// Concurrency: none. The container performs no locking; concurrent
// mutation, or reads concurrent with any mutation, must be excluded by
// the caller.
//
// Contract violations (out-of-range index, equal endpoints where distinct
// ones are required, popping an empty model) panic; they are programmer
// errors, not recoverable conditions. Construction from external input
// validates and returns sentinel errors instead.
package adjvec
