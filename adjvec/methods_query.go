package adjvec

// NumVariables returns the number of variables.
//
// Complexity: O(1).
func (b *AdjVectorBQM) NumVariables() int {
	return len(b.adj)
}

// NumInteractions returns the number of interactions. Each interaction
// is stored once per endpoint, so the degree total is halved.
//
// Complexity: O(V).
func (b *AdjVectorBQM) NumInteractions() int {
	count := 0
	for i := range b.adj {
		count += len(b.adj[i].terms)
	}

	return count / 2
}

// Shape returns (NumVariables, NumInteractions).
//
// Complexity: O(V).
func (b *AdjVectorBQM) Shape() (int, int) {
	return b.NumVariables(), b.NumInteractions()
}

// Degree returns the number of interactions incident to v.
// v must be a valid index.
//
// Complexity: O(1).
func (b *AdjVectorBQM) Degree(v int) int {
	b.assertVar(v)

	return len(b.adj[v].terms)
}

// Linear returns the linear bias of v. v must be a valid index.
//
// Complexity: O(1).
func (b *AdjVectorBQM) Linear(v int) float64 {
	b.assertVar(v)

	return b.adj[v].linear
}

// Quadratic returns the quadratic bias of the interaction (u,v) and
// whether the interaction exists. An absent interaction yields (0,false);
// a zero bias with ok=true cannot be produced by dense construction but
// can by SetQuadratic, and the two remain distinguishable.
// u and v must be distinct valid indices.
//
// Complexity: O(log degree(u)).
func (b *AdjVectorBQM) Quadratic(u, v int) (bias float64, ok bool) {
	b.assertPair(u, v)

	terms := b.adj[u].terms
	i := lowerBound(terms, v)
	if i == len(terms) || terms[i].Var != v {
		return 0, false
	}

	return terms[i].Bias, true
}

// Neighborhood returns u's (neighbor, bias) terms in ascending neighbor
// order. The slice is a live view over the model's storage: it is valid
// until the next mutation, and writing a Term's Bias through it edits
// only u's side of the interaction — callers that do so must mirror the
// edit on the neighbor's side or the symmetry invariant is broken.
// u must be a valid index.
//
// Complexity: O(1).
func (b *AdjVectorBQM) Neighborhood(u int) []Term {
	b.assertVar(u)

	return b.adj[u].terms
}

// EachNeighbor visits u's neighborhood in ascending neighbor order,
// calling fn with each neighbor index and quadratic bias. Traversal
// stops early when fn returns false. The walk is read-only and may be
// re-invoked at any time. u must be a valid index.
//
// Complexity: O(degree(u)).
func (b *AdjVectorBQM) EachNeighbor(u int, fn func(v int, bias float64) bool) {
	b.assertVar(u)

	for _, t := range b.adj[u].terms {
		if !fn(t.Var, t.Bias) {
			return
		}
	}
}
