package bls381

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned when bytes do not represent a valid group
// element or scalar: wrong length, a point that is not on the curve, or a
// point outside the prime-order subgroup on the checked decode path.
var ErrInvalidEncoding = errors.New("bls381: invalid encoding")

// ErrZeroInverse is returned by [Scalar.Inverse] when the operand is zero.
// This is an expected, checkable outcome rather than a fault.
var ErrZeroInverse = errors.New("bls381: zero scalar has no inverse")

// EngineError wraps a failure reported by the underlying curve engine for a
// requested operation. It is surfaced to the caller as is and never retried
// internally.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("bls381: engine %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

func engineErr(op string, err error) error {
	return &EngineError{Op: op, Err: err}
}
