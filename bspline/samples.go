package bspline

import (
	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/types"
)

// SampleCurve is a quadratic planar curve over six control points.
func SampleCurve() *Curve {
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
		P:          2,
	}
}

// SampleCurve3D lifts some of the sample curve control points off the plane.
func SampleCurve3D() *Curve {
	return &Curve{
		ControlPoints: []types.Point{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 0.5, Z: 0}, {X: 3, Y: 0.5, Z: 0}, {X: 0.5, Y: 1.5, Z: 0}, {X: 1.5, Y: 0, Z: 1},
		},
		KnotVector: basis.KnotVector{0, 0, 0, 0.25, 0.5, 0.75, 1, 1, 1},
		P:          2,
	}
}

// SampleSurface is linear along xi and quadratic along eta.
func SampleSurface() *Surface {
	return &Surface{
		ControlPoints: [][]types.Point{
			{{X: -3, Y: 0, Z: 2}, {X: -2, Y: 0, Z: 6}, {X: -1, Y: 0, Z: 7}, {X: 0, Y: 0, Z: 2}},
			{{X: -3, Y: 1, Z: 2}, {X: -2, Y: 1, Z: 4}, {X: -1, Y: 1, Z: 5}, {X: 0, Y: 1, Z: 2.5}},
			{{X: -3, Y: 3, Z: 0}, {X: -2, Y: 3, Z: 2.5}, {X: -1, Y: 3, Z: 4.5}, {X: 0, Y: 3, Z: 6.5}},
		},
		Xi:  basis.KnotVector{0, 0, 0.5, 1, 1},
		Eta: basis.KnotVector{0, 0, 0, 0.5, 1, 1, 1},
		P:   1,
		Q:   2,
	}
}
