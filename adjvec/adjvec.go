package adjvec

import "fmt"

// NewWithVariables returns a model holding n disconnected variables with
// linear bias zero. n must be non-negative.
//
// Complexity: O(n).
func NewWithVariables(n int) (*AdjVectorBQM, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewWithVariables: n=%d: %w", n, ErrNegativeVariables)
	}

	return &AdjVectorBQM{adj: make([]record, n)}, nil
}

// FromModel copies src into a fresh adjacency-vector model: for each
// source variable in index order, the linear bias and the full
// neighborhood are copied verbatim.
//
// src must yield each neighborhood in ascending neighbor order; no
// re-sort is performed, and an unsorted source silently breaks the
// sorted-neighborhood invariant.
//
// Complexity: O(V + E) over the source's variables and interactions.
func FromModel(src Model) (*AdjVectorBQM, error) {
	if src == nil {
		return nil, fmt.Errorf("FromModel: %w", ErrNilModel)
	}

	n := src.NumVariables()
	b := &AdjVectorBQM{adj: make([]record, n)}
	for v := 0; v < n; v++ {
		b.adj[v].linear = src.Linear(v)

		nbrs := src.Neighborhood(v)
		if len(nbrs) == 0 {
			continue
		}
		b.adj[v].terms = append(make([]Term, 0, len(nbrs)), nbrs...)
	}

	return b, nil
}

// FromDense builds a model from a flat row-major n×n bias buffer.
//
// Unless ignoreDiagonal is set, the linear bias of variable v is read
// from the diagonal entry (v,v). For every unordered pair u<v the
// quadratic bias is the sum of the two off-diagonal entries (u,v) and
// (v,u), which folds asymmetric encodings such as upper+lower triangular
// splits into one symmetric interaction. Pairs whose sum is zero are
// never stored, so the result is sparse by construction.
//
// dense must hold exactly n*n values; n must be non-negative.
//
// Complexity: O(n²) time; memory proportional to the non-zero pairs.
func FromDense(dense []float64, n int, ignoreDiagonal bool) (*AdjVectorBQM, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromDense: n=%d: %w", n, ErrNegativeVariables)
	}
	if len(dense) != n*n {
		return nil, fmt.Errorf("FromDense: len=%d, want %d: %w", len(dense), n*n, ErrDenseSize)
	}

	b := &AdjVectorBQM{adj: make([]record, n)}

	if !ignoreDiagonal {
		for v := 0; v < n; v++ {
			b.adj[v].linear = dense[v*(n+1)]
		}
	}

	// Pairs are visited with u ascending then v ascending, so each
	// neighbor vector is appended in sorted order and needs no re-sort.
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			qbias := dense[u*n+v] + dense[v*n+u]
			if qbias == 0 {
				continue
			}
			b.adj[u].terms = append(b.adj[u].terms, Term{Var: v, Bias: qbias})
			b.adj[v].terms = append(b.adj[v].terms, Term{Var: u, Bias: qbias})
		}
	}

	return b, nil
}
