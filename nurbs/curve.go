/*
Package nurbs evaluates and refines rational B-spline curves and surfaces.
Evaluation lifts the control points into homogeneous space, applies the
B-spline machinery there and projects back by the weight coordinate.
*/
package nurbs

import (
	"fmt"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/refine"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

type Curve struct {
	ControlPoints []types.Point
	KnotVector    basis.KnotVector
	Weights       []float64
	P             int
}

func NewCurve(points []types.Point, knots basis.KnotVector, weights []float64, p int) (c *Curve, err error) {
	if err = knots.Validate(p, len(points)); err != nil {
		err = fmt.Errorf("nurbs curve: %w", err)
		return
	}
	if err = checkWeights(weights, len(points)); err != nil {
		err = fmt.Errorf("nurbs curve: %w", err)
		return
	}
	c = &Curve{
		ControlPoints: points,
		KnotVector:    knots,
		Weights:       weights,
		P:             p,
	}
	return
}

func checkWeights(w []float64, n int) error {
	if len(w) != n {
		return fmt.Errorf("%d weights for %d control points: %w", len(w), n, utils.ErrInvalidGeometry)
	}
	for i, wi := range w {
		if !(wi > 0) {
			return fmt.Errorf("weight %d is %v, must be positive: %w", i, wi, utils.ErrInvalidGeometry)
		}
	}
	return nil
}

func (c *Curve) N() int { return len(c.ControlPoints) - 1 }

func (c *Curve) Homogeneous() []types.HomPoint {
	return types.Homogenize(c.ControlPoints, c.Weights)
}

// Evaluate runs the B-spline contraction on the weighted points and divides
// by the resulting weight.
func (c *Curve) Evaluate(xi float64) types.Point {
	xi = c.KnotVector.Clamp(c.P, xi)
	var (
		span = basis.FindSpan(c.KnotVector, xi, c.P, c.N())
		N    = basis.AllNonvanishing(c.KnotVector, span, c.P, xi)
		Pw   = types.HomPointsMatrix(c.Homogeneous()[span-c.P : span+1])
		Cw   = N.Mul(Pw)
	)
	return types.HomPoint{X: Cw.At(0, 0), Y: Cw.At(0, 1), Z: Cw.At(0, 2), W: Cw.At(0, 3)}.ToCartesian()
}

// EvaluateSum adds up every R_i(xi) P_i.
func (c *Curve) EvaluateSum(xi float64) (p types.Point) {
	xi = c.KnotVector.Clamp(c.P, xi)
	for i, cp := range c.ControlPoints {
		p = p.Add(cp.Scale(basis.RationalBasis(c.KnotVector, c.Weights, i, c.P, xi)))
	}
	return
}

// InsertKnot inserts v r times into span k, where v already appears s times.
// Knots, control points and weights are replaced in place.
func (c *Curve) InsertKnot(v float64, k, s, r int) (err error) {
	var (
		UQ basis.KnotVector
		Qw []types.HomPoint
	)
	if UQ, Qw, err = refine.CurveKnotIns(c.P, c.KnotVector, c.Homogeneous(), v, k, s, r); err != nil {
		return
	}
	c.KnotVector = UQ
	c.ControlPoints, c.Weights = types.Dehomogenize(Qw)
	return
}

func (c *Curve) Refine(v float64, r int) error {
	v, k, s := refine.Locate(c.P, c.KnotVector, c.N(), v)
	return c.InsertKnot(v, k, s, r)
}

func (c *Curve) Domain() (a, b float64) { return c.KnotVector.Domain(c.P) }
