package utils

import (
	"fmt"
)

func NewMatrixFromRows(rows [][]float64) (R Matrix) {
	var (
		nr = len(rows)
		nc int
	)
	if nr != 0 {
		nc = len(rows[0])
	}
	data := make([]float64, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			err := fmt.Errorf("row %d has length %d, expected %d: %w", i, len(row), nc, ErrDimensionMismatch)
			panic(err)
		}
		data = append(data, row...)
	}
	return NewMatrix(nr, nc, data)
}

func NewIdentity(n int) (R Matrix) {
	R = NewMatrix(n, n)
	for i := 0; i < n; i++ {
		R.M.Set(i, i, 1)
	}
	return
}

func NewZeroMatrix(nr, nc int) Matrix { return NewMatrix(nr, nc) }
func NewZeroSquare(n int) Matrix      { return NewMatrix(n, n) }
func NewOnes(nr, nc int) Matrix       { return NewUniform(nr, nc, 1) }

func NewUniform(nr, nc int, val float64) Matrix {
	return NewMatrix(nr, nc, ConstArray(nr*nc, val))
}

// MatAdd, MatSub and MatScale return new matrices and leave their inputs untouched.
func MatAdd(A, B Matrix) Matrix {
	return A.Copy().Add(B)
}

func MatSub(A, B Matrix) Matrix {
	return A.Copy().Subtract(B)
}

func MatScale(A Matrix, a float64) Matrix {
	return A.Copy().Scale(a)
}
