package core

import (
	"errors"
)

var (
	// ErrIndexOutOfRange is carried by the panic raised on a bad component,
	// row or column index.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero.
	ErrSingularMatrix = errors.New("matrix determinant is zero and cannot be inverted")
	// ErrNotNormalized is carried by debug precondition failures.
	ErrNotNormalized = errors.New("argument must be normalized")
	// ErrInvalidRig is returned for rig files that parse but make no sense.
	ErrInvalidRig = errors.New("invalid rig")
)
