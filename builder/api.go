// SPDX-License-Identifier: MIT
//
// api.go — thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the model, resolves
//     the config, runs constructors in order.
//   - Factories are implemented in impl_*.go; each returns a Constructor
//     closure that validates early and mutates only through the public
//     adjvec API.
//   - Determinism: same options/seed and constructor order produce an
//     identical model.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/annealkit/bqm/adjvec"
)

// Constructor applies a deterministic model mutation using the resolved
// builderConfig. Constructors must validate parameters early, return
// only sentinel errors, emit variables and interactions in a stable
// documented order, and base their indices on the model's current
// variable count so they compose.
type Constructor func(b *adjvec.AdjVectorBQM, cfg builderConfig) error

// Build creates an empty adjacency-vector model, resolves the builder
// configuration from opts, and applies all constructors in order. The
// first constructor error is wrapped with "Build: %w" and returned; no
// partial cleanup is attempted.
//
// Complexity: O(len(opts)) resolution plus the sum of constructor costs.
func Build(opts []Option, cons ...Constructor) (*adjvec.AdjVectorBQM, error) {
	b := adjvec.New()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return b, nil
}
