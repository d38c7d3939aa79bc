// SPDX-License-Identifier: MIT
//
// impl_complete.go — implementation of the Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVariables).
//   - Appends n variables and connects every unordered pair {u,v}, u<v.
//   - Stable order: for each u asc, v asc with v>u.
//
// Complexity: O(n) variables + O(n²) interactions.

package builder

import (
	"fmt"

	"github.com/annealkit/bqm/adjvec"
)

const methodComplete = "Complete"

// Complete returns a Constructor that appends a fully connected
// n-variable block: every pair interacts with a bias from
// cfg.quadraticFn.
func Complete(n int) Constructor {
	return func(b *adjvec.AdjVectorBQM, cfg builderConfig) error {
		if n < minTopologyVars {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodComplete, n, minTopologyVars, ErrTooFewVariables)
		}

		base := b.NumVariables()
		for i := 0; i < n; i++ {
			b.AppendVariable(cfg.linearFn(cfg.rng))
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				b.SetQuadratic(base+u, base+v, cfg.quadraticFn(cfg.rng))
			}
		}

		return nil
	}
}
