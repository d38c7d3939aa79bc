// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for assembling
// adjacency-vector binary quadratic models: fixed topologies (Variables,
// Path, Complete) and a seeded random-density generator (RandomSparse).
//
// All constructors run through one orchestrator, Build, which resolves
// functional options into an immutable configuration and applies the
// constructors in order against a single model. The same options, seed,
// and constructor order always produce an identical model.
//
// Bias policy is configurable: WithLinearFn and WithQuadraticFn supply
// the per-variable and per-interaction bias generators; defaults are
// linear 0 and quadratic 1. Stochastic constructors require an explicit
// RNG via WithSeed or WithRand — there is no global randomness.
//
// Constructors compose: each appends its variables after the current
// variable count, so Build(nil, Path(3), Variables(2)) yields a 3-chain
// plus two disconnected variables.
package builder
