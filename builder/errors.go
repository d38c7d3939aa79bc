// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Sentinels carry no parameters; constructors attach context with %w
//     wrapping at the return site.
//   - Constructors never panic at runtime; validation failures surface
//     as these sentinels.

package builder

import "errors"

// ErrTooFewVariables indicates a size parameter below the minimum the
// requested constructor admits.
var ErrTooFewVariables = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was invoked
// without an RNG (set one with WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates Build was given a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
