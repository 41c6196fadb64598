package bezier

import (
	"fmt"
	"math"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

type RationalCurve struct {
	ControlPoints []types.Point
	Weights       []float64
	bernstein     *basis.Bernstein
}

func NewRationalCurve(points []types.Point, weights []float64) (c *RationalCurve, err error) {
	switch {
	case len(points) == 0:
		err = fmt.Errorf("rational bezier curve without control points: %w", utils.ErrInvalidGeometry)
		return
	case len(points) != len(weights):
		err = fmt.Errorf("%d control points with %d weights: %w", len(points), len(weights), utils.ErrInvalidGeometry)
		return
	}
	for i, w := range weights {
		if !(w > 0) {
			err = fmt.Errorf("weight %d is %v, must be positive: %w", i, w, utils.ErrInvalidGeometry)
			return
		}
	}
	c = &RationalCurve{
		ControlPoints: points,
		Weights:       weights,
		bernstein:     basis.NewBernstein(),
	}
	return
}

func (c *RationalCurve) Degree() int { return len(c.ControlPoints) - 1 }

// Evaluate combines the weighted points in homogeneous space and projects back.
func (c *RationalCurve) Evaluate(xi float64) types.Point {
	var (
		n = c.Degree()
		h types.HomPoint
	)
	for i, cp := range c.ControlPoints {
		h = h.Add(cp.ToHomogeneous(c.Weights[i]).Scale(c.bernstein.Value(i, n, xi)))
	}
	return h.ToCartesian()
}

// Circle splits a circle of the given radius, centered at the origin, into
// rational quadratic segments starting from (0,-radius).
func Circle(radius float64, segments int) (C []*RationalCurve, err error) {
	if segments < 2 {
		err = fmt.Errorf("a circle needs at least 2 segments, got %d: %w", segments, utils.ErrInvalidArgument)
		return
	}
	var (
		alpha  = math.Pi / float64(segments)
		outerR = radius / math.Cos(alpha)
		onArc  = func(r, a float64) types.Point { return types.NewPoint2D(r*math.Sin(a), -r*math.Cos(a)) }
	)
	C = make([]*RationalCurve, segments)
	for i := range C {
		var (
			a0 = 2 * float64(i) * alpha
			a1 = (2*float64(i) + 1) * alpha
			a2 = (2*float64(i) + 2) * alpha
		)
		C[i], err = NewRationalCurve(
			[]types.Point{onArc(radius, a0), onArc(outerR, a1), onArc(radius, a2)},
			[]float64{1, math.Cos(alpha), 1})
		if err != nil {
			return
		}
	}
	return
}
