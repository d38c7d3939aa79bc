package adjvec

// AddVariable appends a new disconnected variable with linear bias zero
// and returns its index.
//
// Complexity: O(1) amortized.
func (b *AdjVectorBQM) AddVariable() int {
	b.adj = append(b.adj, record{})

	return len(b.adj) - 1
}

// AppendVariable appends a new disconnected variable carrying the given
// linear bias and returns its index.
//
// Complexity: O(1) amortized.
func (b *AdjVectorBQM) AppendVariable(bias float64) int {
	b.adj = append(b.adj, record{linear: bias})

	return len(b.adj) - 1
}

// PopVariable removes the highest-indexed variable together with all of
// its interactions, and returns the new variable count. Only the last
// index may be removed so that every other index stays stable.
// The model must be non-empty.
//
// Complexity: O(Σ degree(neighbor)) over the removed variable's
// neighbors, for the vector compactions.
func (b *AdjVectorBQM) PopVariable() int {
	if len(b.adj) == 0 {
		panic("adjvec: PopVariable on empty model")
	}

	v := len(b.adj) - 1

	// Excise v from each neighbor's vector. v is the largest index, so
	// it always sits at the tail of those vectors; the search keeps the
	// erase correct regardless.
	for _, t := range b.adj[v].terms {
		terms := b.adj[t.Var].terms
		i := lowerBound(terms, v)
		b.adj[t.Var].terms = append(terms[:i], terms[i+1:]...)
	}

	b.adj[v] = record{} // release the popped vector before truncating
	b.adj = b.adj[:v]

	return len(b.adj)
}

// SetLinear overwrites the linear bias of v. v must be a valid index.
//
// Complexity: O(1).
func (b *AdjVectorBQM) SetLinear(v int, bias float64) {
	b.assertVar(v)

	b.adj[v].linear = bias
}

// SetQuadratic sets the quadratic bias of the interaction (u,v),
// creating the interaction if absent and overwriting it if present. Both
// endpoint vectors are updated together; a one-sided interaction never
// exists from the caller's perspective. Create and update are not
// distinguished: the bias is set either way.
// u and v must be distinct valid indices.
//
// Complexity: O(degree(u) + degree(v)) worst case for insertion,
// O(log degree) when overwriting.
func (b *AdjVectorBQM) SetQuadratic(u, v int, bias float64) {
	b.assertPair(u, v)

	b.setHalf(u, v, bias)
	b.setHalf(v, u, bias)
}

// AddQuadratic adds delta to the quadratic bias of the interaction
// (u,v), creating it with bias delta if absent. An interaction whose
// accumulated bias reaches zero is kept, not removed; only dense
// construction filters zeros. u and v must be distinct valid indices.
//
// Complexity: as SetQuadratic.
func (b *AdjVectorBQM) AddQuadratic(u, v int, delta float64) {
	b.assertPair(u, v)

	bias := delta
	if cur, ok := b.Quadratic(u, v); ok {
		bias += cur
	}
	b.setHalf(u, v, bias)
	b.setHalf(v, u, bias)
}

// setHalf writes bias for neighbor v inside u's vector, inserting a new
// sorted term when absent. Callers must apply it to both endpoints to
// keep the symmetry invariant.
func (b *AdjVectorBQM) setHalf(u, v int, bias float64) {
	terms := b.adj[u].terms
	i := lowerBound(terms, v)
	if i < len(terms) && terms[i].Var == v {
		terms[i].Bias = bias
		return
	}

	terms = append(terms, Term{})
	copy(terms[i+1:], terms[i:])
	terms[i] = Term{Var: v, Bias: bias}
	b.adj[u].terms = terms
}

// RemoveInteraction deletes the interaction (u,v) from both endpoint
// vectors and reports whether it existed. Removing an absent interaction
// is a no-op returning false. u and v must be distinct valid indices.
//
// Complexity: O(degree(u) + degree(v)) for the vector compactions.
func (b *AdjVectorBQM) RemoveInteraction(u, v int) bool {
	b.assertPair(u, v)

	uterms := b.adj[u].terms
	i := lowerBound(uterms, v)
	if i == len(uterms) || uterms[i].Var != v {
		return false
	}
	b.adj[u].terms = append(uterms[:i], uterms[i+1:]...)

	vterms := b.adj[v].terms
	j := lowerBound(vterms, u)
	if j == len(vterms) || vterms[j].Var != u {
		// One-sided interactions cannot arise from the public API.
		panic("adjvec: asymmetric interaction storage")
	}
	b.adj[v].terms = append(vterms[:j], vterms[j+1:]...)

	return true
}
