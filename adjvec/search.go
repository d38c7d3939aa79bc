package adjvec

import (
	"fmt"
	"sort"
)

// lowerBound returns the position of the first term in terms whose Var is
// not less than v. The slice must be sorted ascending by Var.
//
// Complexity: O(log len(terms)).
func lowerBound(terms []Term, v int) int {
	return sort.Search(len(terms), func(i int) bool { return terms[i].Var >= v })
}

// assertVar panics unless v is a valid variable index. Index validity is
// caller contract on every accessor; the panic is the debug surface for
// its violation.
func (b *AdjVectorBQM) assertVar(v int) {
	if v < 0 || v >= len(b.adj) {
		panic(fmt.Sprintf("adjvec: variable %d out of range [0,%d)", v, len(b.adj)))
	}
}

// assertPair panics unless u and v are distinct valid variable indices.
func (b *AdjVectorBQM) assertPair(u, v int) {
	b.assertVar(u)
	b.assertVar(v)
	if u == v {
		panic(fmt.Sprintf("adjvec: self-interaction on variable %d", u))
	}
}
