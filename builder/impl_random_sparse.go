// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go — implementation of RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {u,v},
//     u<v, independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVariables).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource); even for
//     p∈{0,1} the contract requires an RNG.
//
// Determinism:
//   - Stable trial order: for each u asc, v asc with v>u, so a fixed
//     seed yields a fixed model.
//
// Complexity: O(n) variables + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/annealkit/bqm/adjvec"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that appends an n-variable block
// whose unordered pairs interact independently with probability p, each
// realized interaction carrying a bias from cfg.quadraticFn.
func RandomSparse(n int, p float64) Constructor {
	return func(b *adjvec.AdjVectorBQM, cfg builderConfig) error {
		if n < minTopologyVars {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minTopologyVars, ErrTooFewVariables)
		}
		if p < probabilityFloor || p > probabilityCeiling {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probabilityFloor, probabilityCeiling, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := b.NumVariables()
		for i := 0; i < n; i++ {
			b.AppendVariable(cfg.linearFn(cfg.rng))
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if cfg.rng.Float64() < p {
					b.SetQuadratic(base+u, base+v, cfg.quadraticFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
