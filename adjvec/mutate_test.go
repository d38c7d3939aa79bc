package adjvec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/annealkit/bqm/adjvec"
)

// MutateSuite exercises the mutation surface on a fresh empty model.
type MutateSuite struct {
	suite.Suite
	b *adjvec.AdjVectorBQM
}

func (s *MutateSuite) SetupTest() {
	s.b = adjvec.New()
}

func (s *MutateSuite) TestAddAndAppendVariable() {
	require := require.New(s.T())

	require.Equal(0, s.b.AddVariable())
	require.Equal(1, s.b.AddVariable())
	require.Equal(2, s.b.AppendVariable(0.5))

	require.Equal(3, s.b.NumVariables())
	require.Zero(s.b.Linear(0))
	require.Equal(0.5, s.b.Linear(2))
}

func (s *MutateSuite) TestSetGetRemoveQuadratic() {
	require := require.New(s.T())

	s.b.AddVariable()
	s.b.AddVariable()
	s.b.SetQuadratic(0, 1, 0.5)

	// Symmetric in both bias and found-status.
	q, ok := s.b.Quadratic(0, 1)
	require.True(ok)
	require.Equal(0.5, q)
	q, ok = s.b.Quadratic(1, 0)
	require.True(ok)
	require.Equal(0.5, q)
	require.Equal(1, s.b.NumInteractions())

	// Overwrite in place.
	s.b.SetQuadratic(1, 0, -0.25)
	q, _ = s.b.Quadratic(0, 1)
	require.Equal(-0.25, q)
	require.Equal(1, s.b.NumInteractions())

	// Remove drops both sides and decrements the count by one.
	require.True(s.b.RemoveInteraction(0, 1))
	q, ok = s.b.Quadratic(0, 1)
	require.False(ok)
	require.Zero(q)
	_, ok = s.b.Quadratic(1, 0)
	require.False(ok)
	require.Equal(0, s.b.NumInteractions())

	// Removing again is a no-op, repeatedly.
	require.False(s.b.RemoveInteraction(0, 1))
	require.False(s.b.RemoveInteraction(0, 1))
}

func (s *MutateSuite) TestRemoveKeepsOtherInteractions() {
	require := require.New(s.T())

	for i := 0; i < 3; i++ {
		s.b.AddVariable()
	}
	s.b.SetQuadratic(0, 1, 0.5)
	s.b.SetQuadratic(0, 2, 1.0)

	require.True(s.b.RemoveInteraction(0, 2))
	require.False(s.b.RemoveInteraction(0, 2))

	numVars, numInteractions := s.b.Shape()
	require.Equal(3, numVars)
	require.Equal(1, numInteractions)
	q, ok := s.b.Quadratic(1, 0)
	require.True(ok)
	require.Equal(0.5, q)
}

func (s *MutateSuite) TestAddQuadraticAccumulates() {
	require := require.New(s.T())

	s.b.AddVariable()
	s.b.AddVariable()

	// Creates with the delta when absent.
	s.b.AddQuadratic(0, 1, 1.5)
	q, ok := s.b.Quadratic(0, 1)
	require.True(ok)
	require.Equal(1.5, q)

	// Accumulates into the existing interaction, symmetrically.
	s.b.AddQuadratic(1, 0, -0.5)
	q, _ = s.b.Quadratic(0, 1)
	require.Equal(1.0, q)

	// A zero sum keeps the interaction; only absence reads as not-found.
	s.b.AddQuadratic(0, 1, -1.0)
	q, ok = s.b.Quadratic(0, 1)
	require.True(ok)
	require.Zero(q)
	require.Equal(1, s.b.NumInteractions())
}

func (s *MutateSuite) TestPopVariable() {
	require := require.New(s.T())

	for i := 0; i < 3; i++ {
		s.b.AddVariable()
	}
	s.b.SetLinear(0, 1.0)
	s.b.SetLinear(1, 2.0)
	s.b.SetQuadratic(0, 1, 0.5)
	s.b.SetQuadratic(0, 2, 1.5)
	s.b.SetQuadratic(1, 2, 2.5)

	// Popping 2 excises it from 0's and 1's vectors.
	require.Equal(2, s.b.PopVariable())
	require.Equal(2, s.b.NumVariables())
	require.Equal(1, s.b.NumInteractions())
	require.Equal(1, s.b.Degree(0))
	require.Equal(1, s.b.Degree(1))

	// Untouched state survives.
	require.Equal(1.0, s.b.Linear(0))
	require.Equal(2.0, s.b.Linear(1))
	q, ok := s.b.Quadratic(0, 1)
	require.True(ok)
	require.Equal(0.5, q)
}

func (s *MutateSuite) TestAddPopInverse() {
	require := require.New(s.T())

	s.b.AddVariable()
	s.b.AddVariable()
	s.b.SetLinear(0, -1.0)
	s.b.SetQuadratic(0, 1, 3.0)

	v := s.b.AddVariable()
	require.Equal(2, v)
	require.Equal(2, s.b.PopVariable())

	require.Equal(2, s.b.NumVariables())
	require.Equal(-1.0, s.b.Linear(0))
	q, ok := s.b.Quadratic(0, 1)
	require.True(ok)
	require.Equal(3.0, q)
	require.Equal(1, s.b.NumInteractions())
}

func (s *MutateSuite) TestSymmetryAfterMutationMix() {
	require := require.New(s.T())

	const n = 6
	for i := 0; i < n; i++ {
		s.b.AddVariable()
	}
	s.b.SetQuadratic(0, 5, 1.0)
	s.b.SetQuadratic(3, 1, -2.0)
	s.b.SetQuadratic(2, 4, 0.5)
	s.b.AddQuadratic(5, 0, 0.5)
	s.b.RemoveInteraction(2, 4)
	s.b.SetQuadratic(4, 0, 7.0)

	for u := 0; u < n; u++ {
		// Sorted, strictly increasing, no self-loops.
		prev := -1
		for _, term := range s.b.Neighborhood(u) {
			require.Greater(term.Var, prev)
			require.NotEqual(u, term.Var)
			prev = term.Var
		}
		// Symmetric bias and found-status against every other variable.
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			quv, okuv := s.b.Quadratic(u, v)
			qvu, okvu := s.b.Quadratic(v, u)
			require.Equal(okuv, okvu)
			require.Equal(quv, qvu)
		}
	}
}

func (s *MutateSuite) TestContractPanics() {
	require := require.New(s.T())

	require.Panics(func() { s.b.PopVariable() }, "pop on empty model")

	s.b.AddVariable()
	s.b.AddVariable()
	require.Panics(func() { s.b.SetQuadratic(0, 0, 1.0) }, "self-interaction")
	require.Panics(func() { s.b.SetQuadratic(0, 2, 1.0) }, "out of range")
	require.Panics(func() { s.b.SetLinear(-1, 1.0) }, "negative index")
	require.Panics(func() { s.b.RemoveInteraction(1, 1) }, "self-interaction")
}

func TestMutateSuite(t *testing.T) {
	suite.Run(t, new(MutateSuite))
}

// TestThreeVariableScenario walks the canonical small-model sequence end
// to end: three variables, two interactions, then a pop.
func TestThreeVariableScenario(t *testing.T) {
	b := adjvec.New()
	for i := 0; i < 3; i++ {
		b.AddVariable()
	}
	b.SetLinear(0, 1.0)
	b.SetLinear(1, 2.0)
	b.SetLinear(2, 3.0)
	b.SetQuadratic(0, 1, 0.5)
	b.SetQuadratic(1, 2, -0.5)

	require.Equal(t, 2, b.NumInteractions())
	require.Equal(t, 2, b.Degree(1))
	q, ok := b.Quadratic(0, 2)
	require.False(t, ok)
	require.Zero(t, q)

	require.Equal(t, 2, b.PopVariable())
	require.Equal(t, 1, b.Degree(1))
	require.Equal(t, 1, b.NumInteractions())
}
