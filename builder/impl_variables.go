// SPDX-License-Identifier: MIT
//
// impl_variables.go — implementation of the Variables(n) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVariables).
//   - Appends n disconnected variables with biases from cfg.linearFn.
//   - Stable order: indices ascend from the model's current count.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/annealkit/bqm/adjvec"
)

const methodVariables = "Variables"

// Variables returns a Constructor that appends n disconnected variables,
// each with a linear bias drawn from cfg.linearFn.
func Variables(n int) Constructor {
	return func(b *adjvec.AdjVectorBQM, cfg builderConfig) error {
		if n < minVariablesCount {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodVariables, n, minVariablesCount, ErrTooFewVariables)
		}

		for i := 0; i < n; i++ {
			b.AppendVariable(cfg.linearFn(cfg.rng))
		}

		return nil
	}
}
