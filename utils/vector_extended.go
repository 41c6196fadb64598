package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RowVector is a 1xN Matrix.
type RowVector struct {
	Matrix
}

// ColVector is an Nx1 Matrix.
type ColVector struct {
	Matrix
}

// NewRowVector copies data.
func NewRowVector(data []float64) RowVector {
	var (
		d = make([]float64, len(data))
	)
	copy(d, data)
	return RowVector{NewMatrix(1, len(d), d)}
}

// NewColVector copies data.
func NewColVector(data []float64) ColVector {
	var (
		d = make([]float64, len(data))
	)
	copy(d, data)
	return ColVector{NewMatrix(len(d), 1, d)}
}

func (v RowVector) Len() int             { return v.Cols() }
func (v RowVector) Value(i int) float64  { return v.M.At(0, i) }
func (v RowVector) ToSlice() []float64   { return mat.Row(nil, 0, v.M) }
func (v RowVector) Norm() float64        { return floats.Norm(v.M.RawRowView(0), 2) }
func (v RowVector) Transpose() ColVector { return NewColVector(v.M.RawRowView(0)) }
func (v RowVector) Copy() RowVector      { return NewRowVector(v.M.RawRowView(0)) }

func (v RowVector) Dot(o RowVector) float64 {
	return floats.Dot(v.M.RawRowView(0), o.M.RawRowView(0))
}

func (v RowVector) SetValue(i int, val float64) RowVector { // Changes receiver
	v.Matrix.SetValue(0, i, val)
	return v
}

// Range returns the elements in r, bounds included.
func (v RowVector) Range(r Range) RowVector { // Does not change receiver
	if r.A < 0 || r.B >= v.Len() || r.A > r.B {
		err := fmt.Errorf("range %v outside vector of length %d: %w", r, v.Len(), ErrDimensionMismatch)
		panic(err)
	}
	return NewRowVector(v.M.RawRowView(0)[r.A : r.B+1])
}

// Left returns the first i+1 elements.
func (v RowVector) Left(i int) RowVector { return v.Range(Range{0, i}) }

// Right returns the last i+1 elements.
func (v RowVector) Right(i int) RowVector { return v.Range(Range{v.Len() - 1 - i, v.Len() - 1}) }

func (v ColVector) Len() int             { return v.Rows() }
func (v ColVector) Value(i int) float64  { return v.M.At(i, 0) }
func (v ColVector) ToSlice() []float64   { return mat.Col(nil, 0, v.M) }
func (v ColVector) Norm() float64        { return floats.Norm(v.ToSlice(), 2) }
func (v ColVector) Transpose() RowVector { return NewRowVector(v.ToSlice()) }
func (v ColVector) Copy() ColVector      { return NewColVector(v.ToSlice()) }

func (v ColVector) SetValue(i int, val float64) ColVector { // Changes receiver
	v.Matrix.SetValue(i, 0, val)
	return v
}

// IndexMax is the index of the largest element, first one on ties.
func (v ColVector) IndexMax() int {
	return floats.MaxIdx(v.ToSlice())
}

func (v ColVector) Abs() ColVector { // Does not change receiver
	R := v.Copy()
	R.Apply(math.Abs)
	return R
}
