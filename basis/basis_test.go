package basis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carlonluca/isogeometric-analysis/utils"
)

var (
	sampleKnots  = KnotVector{0, 0, 0, 0.25, 0.5, 0.75, 1, 1, 1}
	circleKnots  = KnotVector{0, 0, 0, .25, .25, .5, .5, .75, .75, 1, 1, 1}
	circleWeight = []float64{1, math.Sqrt2 / 2, 1, math.Sqrt2 / 2, 1, math.Sqrt2 / 2, 1, math.Sqrt2 / 2, 1}
)

func steps(h float64) (xi []float64) {
	for x := 0.; x <= 1+1e-12; x += h {
		xi = append(xi, math.Min(x, 1))
	}
	return
}

func TestKnotVector(t *testing.T) {
	{
		assert.NoError(t, sampleKnots.Validate(2, 6))
		assert.NoError(t, circleKnots.Validate(2, 9))
		a, b := sampleKnots.Domain(2)
		assert.Equal(t, 0., a)
		assert.Equal(t, 1., b)
		assert.Equal(t, 3, sampleKnots.Multiplicity(1))
		assert.Equal(t, 2, circleKnots.Multiplicity(0.5))
		assert.Equal(t, 0, circleKnots.Multiplicity(0.3))
		assert.Equal(t, []float64{0, .25, .5, .75, 1}, circleKnots.Distinct())
	}
	{
		for _, bad := range []struct {
			kv    KnotVector
			p, nc int
		}{
			{KnotVector{0, 0, 0, 0.5, 1, 1, 1}, 2, 5},       // wrong length
			{KnotVector{0, 0, 0, 0.7, 0.5, 1, 1, 1}, 2, 5},  // decreasing
			{KnotVector{0, 0, 0.1, 0.5, 0.7, 1, 1, 1}, 2, 5}, // not clamped
			{KnotVector{0, 0, 1, 1}, 2, 1},                  // too few points
			{KnotVector{1, 1, 1, 1, 1, 1}, 2, 3},            // empty domain
		} {
			err := bad.kv.Validate(bad.p, bad.nc)
			assert.True(t, errors.Is(err, utils.ErrInvalidKnotVector), "%v", bad.kv)
		}
	}
	{
		kv := circleKnots.Insert(0.6, 6, 2)
		assert.Equal(t, KnotVector{0, 0, 0, .25, .25, .5, .5, .6, .6, .75, .75, 1, 1, 1}, kv)
		assert.Len(t, circleKnots, 12)
	}
}

func TestFindSpan(t *testing.T) {
	var (
		p, n = 2, 5
	)
	for _, tc := range []struct {
		xi   float64
		span int
	}{
		{0, 2}, {0.1, 2}, {0.25, 3}, {0.3, 3}, {0.5, 4}, {0.6, 4}, {0.75, 5}, {0.99, 5}, {1, 5},
		{-1, 2}, {2, 5},
	} {
		assert.Equal(t, tc.span, FindSpan(sampleKnots, tc.xi, p, n), "xi = %v", tc.xi)
	}
	{
		// Repeated interior knots resolve to the last of them
		assert.Equal(t, 4, FindSpan(circleKnots, 0.25, 2, 8))
		assert.Equal(t, 6, FindSpan(circleKnots, 0.5, 2, 8))
		assert.Equal(t, 8, FindSpan(circleKnots, 1, 2, 8))
	}
}

func TestBsplineBasis(t *testing.T) {
	var (
		p, n = 2, 5
	)
	{
		N := AllNonvanishing(sampleKnots, 4, p, 0.5)
		assert.InDeltaSlice(t, []float64{0.5, 0.5, 0}, N.ToSlice(), 1e-15)
	}
	{ // Partition of unity, and both evaluators agree
		for _, xi := range steps(0.05) {
			span := FindSpan(sampleKnots, xi, p, n)
			N := AllNonvanishing(sampleKnots, span, p, xi)
			var sum float64
			for j := 0; j <= p; j++ {
				sum += N.Value(j)
				assert.InDelta(t, N.Value(j), Basis(sampleKnots, span-p+j, p, xi), 1e-12, "xi = %v", xi)
			}
			assert.InDelta(t, 1., sum, 1e-12)
			for i := 0; i <= n; i++ {
				if i < span-p || i > span {
					assert.Equal(t, 0., Basis(sampleKnots, i, p, xi))
				}
			}
		}
	}
	{ // Boundaries
		assert.Equal(t, 1., Basis(sampleKnots, 0, p, 0))
		assert.Equal(t, 1., Basis(sampleKnots, n, p, 1))
		assert.Equal(t, 0., Basis(sampleKnots, n-1, p, 1))
		assert.Equal(t, 0., Basis(sampleKnots, 1, p, 0))
		assert.InDeltaSlice(t, []float64{0, 0, 1}, AllNonvanishing(sampleKnots, n, p, 1).ToSlice(), 0)
		assert.InDeltaSlice(t, []float64{1, 0, 0}, AllNonvanishing(sampleKnots, p, p, 0).ToSlice(), 0)
	}
	{ // Degree zero is the span indicator
		kv := KnotVector{0, 0.5, 1}
		assert.Equal(t, 1., Basis(kv, 0, 0, 0.2))
		assert.Equal(t, 0., Basis(kv, 1, 0, 0.2))
		assert.Equal(t, 1., Basis(kv, 1, 0, 1))
	}
}

func TestBernstein(t *testing.T) {
	b := NewBernstein()
	{
		assert.Equal(t, 0.3125, b.Value(2, 5, 0.5))
		assert.Equal(t, 1., b.Value(0, 4, 0))
		assert.Equal(t, 1., b.Value(4, 4, 1))
		assert.Equal(t, 0., b.Value(5, 4, 0.3))
	}
	{
		for _, xi := range steps(0.1) {
			var sum float64
			for _, v := range b.All(6, xi) {
				sum += v
				assert.GreaterOrEqual(t, v, 0.)
			}
			assert.InDelta(t, 1., sum, 1e-12)
		}
	}
	{ // Symmetry B_{i,n}(x) = B_{n-i,n}(1-x)
		for i := 0; i <= 5; i++ {
			assert.InDelta(t, b.Value(i, 5, 0.3), b.Value(5-i, 5, 0.7), 1e-14)
		}
	}
}

func TestRationalBasis(t *testing.T) {
	var (
		p = 2
	)
	{ // Unit weights reduce to the polynomial basis
		w := utils.ConstArray(6, 1)
		for _, xi := range steps(0.05) {
			for i := 0; i <= 5; i++ {
				assert.InDelta(t, Basis(sampleKnots, i, p, xi), RationalBasis(sampleKnots, w, i, p, xi), 1e-12)
			}
		}
	}
	{ // Partition of unity with circle weights
		for _, xi := range steps(0.05) {
			var sum float64
			for i := 0; i < 9; i++ {
				sum += RationalBasis(circleKnots, circleWeight, i, p, xi)
			}
			assert.InDelta(t, 1., sum, 1e-12)
		}
		// Outside the active window
		assert.Equal(t, 0., RationalBasis(circleKnots, circleWeight, 0, p, 0.6))
		assert.Equal(t, 0., RationalBasis(circleKnots, circleWeight, 8, p, 0.1))
		assert.Equal(t, 1., RationalBasis(circleKnots, circleWeight, 8, p, 1))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0., sampleKnots.Clamp(2, -3))
	assert.Equal(t, 1., sampleKnots.Clamp(2, 1.2))
	assert.Equal(t, 0.4, sampleKnots.Clamp(2, 0.4))
}
