package nurbs

import (
	"math"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// Corners of the square circumscribing the unit circle, counterclockwise
// starting and ending on the positive x axis.
var squareCircle = [9][2]float64{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0},
}

// circleWeights alternates 1 on the axes with 1/sqrt(2) at the corners.
func circleWeights() (w []float64) {
	w = make([]float64, len(squareCircle))
	for i := range w {
		if w[i] = 1; i%2 == 1 {
			w[i] = 1 / math.Sqrt2
		}
	}
	return
}

// NewCircle is the exact unit circle as a quadratic NURBS over nine points.
func NewCircle() *Curve {
	var (
		P = make([]types.Point, len(squareCircle))
	)
	for i, c := range squareCircle {
		P[i] = types.NewPoint2D(c[0], c[1])
	}
	return &Curve{
		ControlPoints: P,
		KnotVector:    basis.KnotVector{0, 0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75, 1, 1, 1},
		Weights:       circleWeights(),
		P:             2,
	}
}

// NewSampleCurve is the quadratic sample curve with unit weights.
func NewSampleCurve() *Curve {
	return &Curve{
		ControlPoints: []types.Point{
			types.NewPoint2D(0, 0),
			types.NewPoint2D(1, 1),
			types.NewPoint2D(2, 0.5),
			types.NewPoint2D(3, 0.5),
			types.NewPoint2D(0.5, 1.5),
			types.NewPoint2D(1.5, 0),
		},
		KnotVector: basis.KnotVector{0, 0, 0, 0.25, 0.5, 0.75, 1, 1, 1},
		Weights:    utils.ConstArray(6, 1),
		P:          2,
	}
}

// NewPlateWithHole is a quarter of a square plate of side 8 with a unit
// circular hole in its center.
func NewPlateWithHole() *Surface {
	return &Surface{
		ControlPoints: [][]types.Point{
			{{X: -1, Y: 0, Z: 0}, {X: -2.5, Y: 0, Z: 0}, {X: -4, Y: 0, Z: 0}},
			{{X: -1, Y: math.Sqrt2 - 1, Z: 0}, {X: -2.5, Y: 0.75, Z: 0}, {X: -4, Y: 4, Z: 0}},
			{{X: 1 - math.Sqrt2, Y: 1, Z: 0}, {X: -0.75, Y: 2.5, Z: 0}, {X: -4, Y: 4, Z: 0}},
			{{X: 0, Y: 1, Z: 0}, {X: 0, Y: 2.5, Z: 0}, {X: 0, Y: 4, Z: 0}},
		},
		Xi:      basis.KnotVector{0, 0, 0, 0.5, 1, 1, 1},
		Eta:     basis.KnotVector{0, 0, 0, 1, 1, 1},
		Weights: utils.NewOnes(4, 3),
		P:       2,
		Q:       2,
	}
}

// NewToroid sweeps a unit circle centered at distance 5 from the z axis
// around it. Xi runs around the z axis and Eta around the tube, both over
// [0, 4].
func NewToroid() *Surface {
	const (
		center = 5.
	)
	var (
		n     = len(squareCircle)
		P     = make([][]types.Point, n)
		wRing = circleWeights()
		W     = utils.NewMatrix(n, n)
		knots = basis.KnotVector{0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 4}
	)
	for i, a := range squareCircle {
		P[i] = make([]types.Point, n)
		for j, t := range squareCircle {
			// The tube circle starts at its lowest point
			R := center + t[1]
			P[i][j] = types.NewPoint3D(R*a[0], R*a[1], -t[0])
		}
	}
	for j, wt := range circleWeights() {
		col := make([]float64, n)
		for i := range col {
			col[i] = wRing[i] * wt
		}
		W.AssignCol(j, utils.NewColVector(col))
	}
	return &Surface{
		ControlPoints: P,
		Xi:            knots,
		Eta:           append(basis.KnotVector{}, knots...),
		Weights:       W,
		P:             2,
		Q:             2,
	}
}
