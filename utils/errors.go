package utils

import "errors"

var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrNotSquare         = errors.New("matrix must be square")
	ErrSingularMatrix    = errors.New("matrix is singular")
	ErrInvalidKnotVector = errors.New("invalid knot vector")
	ErrInvalidInsertion  = errors.New("invalid knot insertion")
	ErrInvalidGeometry   = errors.New("invalid geometry")
	ErrInvalidArgument   = errors.New("invalid argument")
)
