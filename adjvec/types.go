package adjvec

// Term is one entry of a variable's neighborhood: the neighbor index and
// the quadratic bias shared by both endpoints of the interaction.
type Term struct {
	// Var is the neighbor's variable index.
	Var int

	// Bias is the quadratic bias of the interaction.
	Bias float64
}

// Model is the read surface adjvec needs from any BQM-like source.
// Implementations must yield Neighborhood terms in strictly ascending
// neighbor-index order; FromModel copies them verbatim without
// re-sorting. *AdjVectorBQM itself satisfies Model.
type Model interface {
	// NumVariables returns the number of variables in the model.
	NumVariables() int

	// Linear returns the linear bias of variable v.
	Linear(v int) float64

	// Neighborhood returns variable v's (neighbor, bias) terms in
	// ascending neighbor order.
	Neighborhood(v int) []Term
}

// record is the per-variable adjacency entry: the sorted neighbor vector
// and the linear bias. terms is kept strictly ascending by Var with no
// duplicates and never contains the owning variable itself.
type record struct {
	terms  []Term
	linear float64
}

// AdjVectorBQM is the adjacency-vector binary quadratic model.
//
// The zero value is a usable empty model; New is provided for symmetry
// with the other constructors. Storage is private: callers observe the
// structure only through the documented accessors, and may rely on
// nothing about layout beyond the sorted-neighborhood contract.
type AdjVectorBQM struct {
	adj []record
}

// New returns an empty model with zero variables and zero interactions.
//
// Complexity: O(1).
func New() *AdjVectorBQM {
	return &AdjVectorBQM{}
}

var _ Model = (*AdjVectorBQM)(nil)
