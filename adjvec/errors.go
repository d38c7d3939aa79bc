package adjvec

import "errors"

// Sentinel errors for construction-input validation.
// Callers should branch with errors.Is; context is attached at return
// sites via %w wrapping.
var (
	// ErrNegativeVariables indicates a negative variable count was given
	// to a constructor.
	ErrNegativeVariables = errors.New("adjvec: negative variable count")

	// ErrDenseSize indicates a dense buffer whose length does not equal
	// the square of the declared variable count.
	ErrDenseSize = errors.New("adjvec: dense buffer length mismatch")

	// ErrNilModel indicates a nil source model was given to FromModel.
	ErrNilModel = errors.New("adjvec: nil source model")
)
