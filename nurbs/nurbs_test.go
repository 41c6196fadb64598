package nurbs

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlonluca/isogeometric-analysis/bspline"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

type surfaceEval interface {
	Evaluate(xi, eta float64) types.Point
}

func sampleSurface(s surfaceEval, dXi, dEta [2]float64, n int) (S [][]types.Point) {
	for _, xi := range utils.Linspace(dXi[0], dXi[1], n).ToSlice() {
		var row []types.Point
		for _, eta := range utils.Linspace(dEta[0], dEta[1], n).ToSlice() {
			row = append(row, s.Evaluate(xi, eta))
		}
		S = append(S, row)
	}
	return
}

func assertSameSurface(t *testing.T, want, got [][]types.Point) {
	t.Helper()
	for i := range want {
		if d := cmp.Diff(want[i], got[i], cmpopts.EquateApprox(0, 1e-10)); d != "" {
			t.Errorf("row %d:\n%s", i, d)
		}
	}
}

func TestCurve(t *testing.T) {
	{ // Matrix and summation forms agree
		for _, c := range []*Curve{NewSampleCurve(), NewCircle()} {
			for xi := 0.; xi < 1; xi += 0.05 {
				if d := cmp.Diff(c.EvaluateSum(xi), c.Evaluate(xi), approx); d != "" {
					t.Errorf("xi = %v (-sum +matrix):\n%s", xi, d)
				}
			}
		}
	}
	{ // Unit weights reduce to the B-spline
		var (
			c = NewSampleCurve()
			b = bspline.SampleCurve()
		)
		for _, xi := range utils.Linspace(0, 1, 41).ToSlice() {
			if d := cmp.Diff(b.Evaluate(xi), c.Evaluate(xi), approx); d != "" {
				t.Errorf("xi = %v:\n%s", xi, d)
			}
		}
	}
	{ // The circle is exact
		c := NewCircle()
		for _, xi := range utils.Linspace(0, 1, 101).ToSlice() {
			assert.InDelta(t, 1, c.Evaluate(xi).Norm(), 1e-14)
		}
		assert.True(t, types.NewPoint2D(0, 1).ApproxEquals(c.Evaluate(0.25), 1e-15))
		assert.True(t, types.NewPoint2D(-1, 0).ApproxEquals(c.Evaluate(0.5), 1e-15))
		a, b := c.Domain()
		assert.Equal(t, [2]float64{0, 1}, [2]float64{a, b})
	}
	{
		c := NewCircle()
		_, err := NewCurve(c.ControlPoints, c.KnotVector, c.Weights[1:], 2)
		assert.True(t, errors.Is(err, utils.ErrInvalidGeometry))
		w := append([]float64{}, c.Weights...)
		w[3] = 0
		_, err = NewCurve(c.ControlPoints, c.KnotVector, w, 2)
		assert.True(t, errors.Is(err, utils.ErrInvalidGeometry))
		_, err = NewCurve(c.ControlPoints, c.KnotVector[1:], c.Weights, 2)
		assert.True(t, errors.Is(err, utils.ErrInvalidKnotVector))
		_, err = NewCurve(c.ControlPoints, c.KnotVector, c.Weights, 2)
		assert.NoError(t, err)
	}
}

func TestCurveInsertKnot(t *testing.T) {
	var (
		c      = NewCircle()
		xis    = utils.Linspace(0, 1, 201).ToSlice()
		before = make([]types.Point, len(xis))
	)
	for i, xi := range xis {
		before[i] = c.Evaluate(xi)
	}
	require.NoError(t, c.InsertKnot(0.6, 6, 0, 1))
	require.NoError(t, c.InsertKnot(0.3, 4, 0, 1))
	require.NoError(t, c.InsertKnot(0.2, 2, 0, 1))
	assert.Len(t, c.ControlPoints, 12)
	assert.Len(t, c.Weights, 12)
	require.NoError(t, c.KnotVector.Validate(c.P, len(c.ControlPoints)))
	for i, xi := range xis {
		if d := cmp.Diff(before[i], c.Evaluate(xi), approx); d != "" {
			t.Errorf("xi = %v:\n%s", xi, d)
		}
		assert.InDelta(t, 1, c.EvaluateSum(xi).Norm(), 1e-12)
	}
	{ // Raising an existing knot to full multiplicity
		require.NoError(t, c.Refine(0.3, 1))
		assert.Equal(t, 2, c.KnotVector.Multiplicity(0.3))
		assert.InDelta(t, 1, c.Evaluate(0.3).Norm(), 1e-14)
		err := c.Refine(0.3, 1)
		assert.True(t, errors.Is(err, utils.ErrInvalidInsertion))
	}
}

func TestSurface(t *testing.T) {
	{ // Unit weights reduce to the B-spline
		var (
			b = bspline.SampleSurface()
		)
		s, err := NewSurface(b.ControlPoints, b.Xi, b.Eta, utils.NewOnes(3, 4), b.P, b.Q)
		require.NoError(t, err)
		for _, xi := range utils.Linspace(0, 1, 11).ToSlice() {
			for _, eta := range utils.Linspace(0, 1, 11).ToSlice() {
				if d := cmp.Diff(b.Evaluate(xi, eta), s.Evaluate(xi, eta), approx); d != "" {
					t.Errorf("(%v, %v):\n%s", xi, eta, d)
				}
			}
		}
		_, err = NewSurface(b.ControlPoints, b.Xi, b.Eta, utils.NewOnes(4, 3), b.P, b.Q)
		assert.True(t, errors.Is(err, utils.ErrInvalidGeometry))
		_, err = NewSurface(b.ControlPoints, b.Xi, b.Eta, utils.NewZeroMatrix(3, 4), b.P, b.Q)
		assert.True(t, errors.Is(err, utils.ErrInvalidGeometry))
	}
	{ // Matrix and summation forms agree
		for _, s := range []*Surface{NewPlateWithHole(), NewToroid()} {
			dXi, dEta := s.Domain()
			for _, xi := range utils.Linspace(dXi[0], dXi[1], 17).ToSlice() {
				for _, eta := range utils.Linspace(dEta[0], dEta[1], 17).ToSlice() {
					if d := cmp.Diff(s.EvaluateSum(xi, eta), s.Evaluate(xi, eta), approx); d != "" {
						t.Errorf("(%v, %v) (-sum +matrix):\n%s", xi, eta, d)
					}
				}
			}
		}
	}
	{ // Corners of the plate
		s := NewPlateWithHole()
		assert.True(t, types.Point{X: -1, Y: 0, Z: 0}.ApproxEquals(s.Evaluate(0, 0), 1e-15))
		assert.True(t, types.Point{X: 0, Y: 1, Z: 0}.ApproxEquals(s.Evaluate(1, 0), 1e-15))
		assert.True(t, types.Point{X: 0, Y: 4, Z: 0}.ApproxEquals(s.Evaluate(1, 1), 1e-15))
		assert.True(t, types.Point{X: -4, Y: 4, Z: 0}.ApproxEquals(s.Evaluate(0.5, 1), 1e-14))
	}
	{ // Every toroid point lies on the tube
		s := NewToroid()
		for _, row := range sampleSurface(s, [2]float64{0, 4}, [2]float64{0, 4}, 23) {
			for _, p := range row {
				rho := math.Hypot(p.X, p.Y)
				assert.InDelta(t, 1, math.Hypot(rho-5, p.Z), 1e-12)
			}
		}
		assert.True(t, types.Point{X: 5, Y: 0, Z: -1}.ApproxEquals(s.Evaluate(0, 0), 1e-14))
		assert.True(t, types.Point{X: 0, Y: 6, Z: 0}.ApproxEquals(s.Evaluate(1, 1), 1e-14))
	}
}

func TestSurfaceInsertKnots(t *testing.T) {
	{
		var (
			s      = NewPlateWithHole()
			before = sampleSurface(s, [2]float64{0, 1}, [2]float64{0, 1}, 21)
		)
		require.NoError(t, s.RefineXi(0.1, 1))
		require.NoError(t, s.RefineEta(0.1, 1))
		require.NoError(t, s.RefineEta(0.7, 2))
		assert.Equal(t, 5, len(s.ControlPoints))
		assert.Equal(t, 6, len(s.ControlPoints[0]))
		assert.Equal(t, utils.Size{Rows: 5, Cols: 6}, s.Weights.Size())
		assertSameSurface(t, before, sampleSurface(s, [2]float64{0, 1}, [2]float64{0, 1}, 21))
	}
	{ // Uniform refinement of the toroid in half steps
		var (
			s      = NewToroid()
			before = sampleSurface(s, [2]float64{0, 4}, [2]float64{0, 4}, 25)
		)
		require.NoError(t, s.Uniform(0.5))
		assert.Equal(t, 13, len(s.ControlPoints))
		assert.Equal(t, 13, len(s.ControlPoints[0]))
		assertSameSurface(t, before, sampleSurface(s, [2]float64{0, 4}, [2]float64{0, 4}, 25))
		assert.True(t, errors.Is(s.Uniform(0), utils.ErrInvalidArgument))
	}
	{
		s := NewPlateWithHole()
		err := s.InsertKnotsXi(0.5, 2, 0, 1)
		assert.True(t, errors.Is(err, utils.ErrInvalidInsertion))
		err = s.InsertKnotsEta(0.5, 2, 1, 2)
		assert.True(t, errors.Is(err, utils.ErrInvalidInsertion))
	}
}
