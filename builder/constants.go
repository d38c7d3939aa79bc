// SPDX-License-Identifier: MIT
//
// constants.go — shared validation domains for the constructors.
// No magic literals inside impl files; method tags stay file-local.

package builder

const (
	// minVariablesCount is the floor for Variables(n): an empty block is valid.
	minVariablesCount = 0

	// minTopologyVars is the floor for single-block topologies (Complete, RandomSparse).
	minTopologyVars = 1

	// minPathVars is the floor for Path: a chain needs two endpoints.
	minPathVars = 2

	// Probability domain for stochastic constructors, closed interval.
	probabilityFloor   = 0.0
	probabilityCeiling = 1.0
)
