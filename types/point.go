package types

import (
	"fmt"
	"math"

	"github.com/carlonluca/isogeometric-analysis/utils"
)

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

func (a Axis) String() string {
	return [...]string{"x", "y", "z", "w"}[a]
}

// Point is an affine point. 2D geometry leaves Z at zero.
type Point struct {
	X, Y, Z float64
}

func NewPoint2D(x, y float64) Point    { return Point{x, y, 0} }
func NewPoint3D(x, y, z float64) Point { return Point{x, y, z} }

func PointFromRowVector(v utils.RowVector) (p Point) {
	switch v.Len() {
	case 3:
		p.Z = v.Value(2)
		fallthrough
	case 2:
		p.X, p.Y = v.Value(0), v.Value(1)
	default:
		panic(fmt.Errorf("a point needs 2 or 3 coordinates, got %d: %w", v.Len(), utils.ErrDimensionMismatch))
	}
	return
}

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point) Scale(a float64) Point { return Point{a * p.X, a * p.Y, a * p.Z} }
func (p Point) Norm() float64         { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }
func (p Point) Dist(q Point) float64  { return p.Sub(q).Norm() }

func (p Point) ToRowVector() utils.RowVector {
	return utils.NewRowVector([]float64{p.X, p.Y, p.Z})
}

// ApproxEquals compares every coordinate within tol.
func (p Point) ApproxEquals(q Point, tol float64) bool {
	return utils.ApproxEqual(p.X, q.X, tol) && utils.ApproxEqual(p.Y, q.Y, tol) &&
		utils.ApproxEqual(p.Z, q.Z, tol)
}

func (p Point) Coord(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	}
	return 1
}

func (p Point) ToHomogeneous(w float64) HomPoint {
	return HomPoint{p.X * w, p.Y * w, p.Z * w, w}
}

func (p Point) String() string { return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z) }

// HomPoint stores a weighted point as (x*w, y*w, z*w, w).
type HomPoint struct {
	X, Y, Z, W float64
}

func (h HomPoint) Add(o HomPoint) HomPoint {
	return HomPoint{h.X + o.X, h.Y + o.Y, h.Z + o.Z, h.W + o.W}
}

func (h HomPoint) Scale(a float64) HomPoint {
	return HomPoint{a * h.X, a * h.Y, a * h.Z, a * h.W}
}

// Lerp returns alpha*h + (1-alpha)*o.
func (h HomPoint) Lerp(o HomPoint, alpha float64) HomPoint {
	return h.Scale(alpha).Add(o.Scale(1 - alpha))
}

func (h HomPoint) Coord(a Axis) float64 {
	switch a {
	case AxisX:
		return h.X
	case AxisY:
		return h.Y
	case AxisZ:
		return h.Z
	}
	return h.W
}

// ToCartesian divides by the weight.
func (h HomPoint) ToCartesian() Point {
	return Point{h.X / h.W, h.Y / h.W, h.Z / h.W}
}
