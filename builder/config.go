// SPDX-License-Identifier: MIT
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness available.
	rng *rand.Rand

	// linearFn generates the linear bias for each new variable.
	linearFn func(*rand.Rand) float64

	// quadraticFn generates the quadratic bias for each new interaction.
	quadraticFn func(*rand.Rand) float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultLinearBias    = 0.0
	defaultQuadraticBias = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order, last-wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		linearFn:    func(*rand.Rand) float64 { return defaultLinearBias },
		quadraticFn: func(*rand.Rand) float64 { return defaultQuadraticBias },
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
