package bspline

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
	P             int
}

func NewCurve(points []types.Point, knots basis.KnotVector, p int) (c *Curve, err error) {
	if err = knots.Validate(p, len(points)); err != nil {
		err = fmt.Errorf("bspline curve: %w", err)
		return
	}
	c = &Curve{
		ControlPoints: points,
		KnotVector:    knots,
		P:             p,
	}
	return
}

// N is the index of the last control point.
func (c *Curve) N() int { return len(c.ControlPoints) - 1 }

// Evaluate contracts the p+1 nonvanishing basis values with the control
// points of the span. Parameters outside the domain clamp to its ends.
func (c *Curve) Evaluate(xi float64) types.Point {
	xi = c.KnotVector.Clamp(c.P, xi)
	var (
		span = basis.FindSpan(c.KnotVector, xi, c.P, c.N())
		N    = basis.AllNonvanishing(c.KnotVector, span, c.P, xi)
		P    = types.PointsMatrix(c.ControlPoints[span-c.P : span+1])
	)
	return types.PointFromRowVector(utils.RowVector{Matrix: N.Mul(P)})
}

// EvaluateSum adds up every N_i(xi) P_i.
func (c *Curve) EvaluateSum(xi float64) (p types.Point) {
	xi = c.KnotVector.Clamp(c.P, xi)
	for i, cp := range c.ControlPoints {
		p = p.Add(cp.Scale(basis.Basis(c.KnotVector, i, c.P, xi)))
	}
	return
}

// InsertKnot inserts v r times into span k, where v already appears s times,
// and replaces the knots and control points in place.
func (c *Curve) InsertKnot(v float64, k, s, r int) (err error) {
	var (
		Pw = types.Homogenize(c.ControlPoints, utils.ConstArray(len(c.ControlPoints), 1))
		UQ basis.KnotVector
		Qw []types.HomPoint
	)
	if UQ, Qw, err = refine.CurveKnotIns(c.P, c.KnotVector, Pw, v, k, s, r); err != nil {
		return
	}
	c.KnotVector = UQ
	c.ControlPoints, _ = types.Dehomogenize(Qw)
	return
}

// Refine inserts v r times, locating its span and multiplicity.
func (c *Curve) Refine(v float64, r int) error {
	v, k, s := refine.Locate(c.P, c.KnotVector, c.N(), v)
	return c.InsertKnot(v, k, s, r)
}

func (c *Curve) Domain() (a, b float64) { return c.KnotVector.Domain(c.P) }
