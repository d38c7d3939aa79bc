package adjvec

// Clone returns a deep copy of the model. The copy shares no storage
// with the original: neighborhood views obtained from one are unaffected
// by mutations of the other.
//
// Complexity: O(V + E).
func (b *AdjVectorBQM) Clone() *AdjVectorBQM {
	out := &AdjVectorBQM{adj: make([]record, len(b.adj))}
	for v := range b.adj {
		out.adj[v].linear = b.adj[v].linear
		if len(b.adj[v].terms) == 0 {
			continue
		}
		out.adj[v].terms = append(make([]Term, 0, len(b.adj[v].terms)), b.adj[v].terms...)
	}

	return out
}
