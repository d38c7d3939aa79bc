// SPDX-License-Identifier: MIT
//
// impl_path.go — implementation of the Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVariables).
//   - Appends n variables and chains consecutive indices i—i+1.
//   - Stable order: variables ascend, interactions follow i asc.
//
// Complexity: O(n) variables + O(n-1) interactions; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/annealkit/bqm/adjvec"
)

const methodPath = "Path"

// Path returns a Constructor that appends an n-variable chain: each
// consecutive pair interacts with a bias from cfg.quadraticFn.
func Path(n int) Constructor {
	return func(b *adjvec.AdjVectorBQM, cfg builderConfig) error {
		if n < minPathVars {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodPath, n, minPathVars, ErrTooFewVariables)
		}

		base := b.NumVariables()
		for i := 0; i < n; i++ {
			b.AppendVariable(cfg.linearFn(cfg.rng))
		}
		for i := 0; i < n-1; i++ {
			b.SetQuadratic(base+i, base+i+1, cfg.quadraticFn(cfg.rng))
		}

		return nil
	}
}
