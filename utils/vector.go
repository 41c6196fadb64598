package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from a to b included.
func Linspace(a, b float64, n int) (v RowVector) {
	switch {
	case n <= 0:
		panic("linspace needs at least one value")
	case n == 1:
		return NewRowVector([]float64{a})
	}
	return NewRowVector(floats.Span(make([]float64, n), a, b))
}

// MaxAbsDiff is the infinity norm of a-b.
func MaxAbsDiff(a, b []float64) (d float64) {
	var (
		diff = make([]float64, len(a))
	)
	floats.SubTo(diff, a, b)
	return floats.Norm(diff, math.Inf(1))
}
