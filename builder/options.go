// SPDX-License-Identifier: MIT
//
// options.go — functional options resolving into builderConfig.
//
// Contract:
//   - Options are pure configuration writers; they perform no I/O and
//     hold no global state.
//   - A nil function argument leaves the corresponding default in place.

package builder

import "math/rand"

// Option configures the builder before constructors run.
type Option func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with the given value.
// Required (or WithRand) before any stochastic constructor.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. A nil value is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithLinearFn sets the generator for new variables' linear biases.
// The function receives the configured RNG, which is nil unless
// WithSeed/WithRand was applied.
func WithLinearFn(fn func(*rand.Rand) float64) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.linearFn = fn
		}
	}
}

// WithQuadraticFn sets the generator for new interactions' quadratic
// biases. The function receives the configured RNG, which is nil unless
// WithSeed/WithRand was applied.
func WithQuadraticFn(fn func(*rand.Rand) float64) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.quadraticFn = fn
		}
	}
}
