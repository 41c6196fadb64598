package bezier

import (
	"fmt"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// Curve is a polynomial Bezier curve of degree len(ControlPoints)-1.
type Curve struct {
	ControlPoints []types.Point
	bernstein     *basis.Bernstein
}

func NewCurve(points []types.Point) (c *Curve, err error) {
	if len(points) == 0 {
		err = fmt.Errorf("bezier curve without control points: %w", utils.ErrInvalidGeometry)
		return
	}
	c = &Curve{
		ControlPoints: points,
		bernstein:     basis.NewBernstein(),
	}
	return
}

func (c *Curve) Degree() int { return len(c.ControlPoints) - 1 }

// Evaluate sums B_{i,n}(xi) P_i.
func (c *Curve) Evaluate(xi float64) (p types.Point) {
	var (
		n = c.Degree()
	)
	for i, cp := range c.ControlPoints {
		p = p.Add(cp.Scale(c.bernstein.Value(i, n, xi)))
	}
	return
}

// EvaluateDeCasteljau evaluates by repeated linear interpolation.
func (c *Curve) EvaluateDeCasteljau(xi float64) types.Point {
	return deCasteljau(c.ControlPoints, xi)
}

func deCasteljau(points []types.Point, xi float64) types.Point {
	var (
		Q = make([]types.Point, len(points))
	)
	copy(Q, points)
	for k := 1; k < len(Q); k++ {
		for i := 0; i < len(Q)-k; i++ {
			Q[i] = Q[i].Scale(1 - xi).Add(Q[i+1].Scale(xi))
		}
	}
	return Q[0]
}
