package utils

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"
)

func TestFactorial(t *testing.T) {
	{
		f := NewFactorial()
		assert.Equal(t, 1., f.Of(0))
		assert.Equal(t, 1., f.Of(1))
		assert.Equal(t, 1, f.Len()-1)
		assert.Equal(t, 120., f.Of(5))
		// Every smaller entry is filled
		assert.Equal(t, 6, f.Len())
		assert.Equal(t, 24., f.Of(4))
		assert.Equal(t, 3628800., f.Of(10))
		assert.Equal(t, 10., f.Binomial(5, 2))
		assert.Equal(t, 0., f.Binomial(5, 6))
		assert.Panics(t, func() { f.Of(-1) })
	}
	{ // Concurrent fill
		var (
			f  = NewFactorial()
			wg sync.WaitGroup
		)
		for n := 0; n < 16; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				f.Of(n + 4)
			}(n)
		}
		wg.Wait()
		assert.Equal(t, 20, f.Len())
		assert.Equal(t, 87178291200., f.Of(14))
	}
}

func TestPOW(t *testing.T) {
	for p := -10; p <= 10; p++ {
		assert.InDelta(t, math.Pow(1.3, float64(p)), POW(1.3, p), 1e-12)
	}
	assert.True(t, ApproxEqual(1, 1+1e-7))
	assert.False(t, ApproxEqual(1, 1+1e-5))
	assert.True(t, ApproxEqual(1, 1.1, 0.2))
	assert.Equal(t, 14.59, RoundTo(14.5857, 2))
}

func TestQuadSimpson(t *testing.T) {
	var (
		f1 = func(x float64) float64 { return 1 / math.Cbrt(POW(x, 5)+7) }
		f2 = func(x float64) float64 { return x*x + (POW(x, 4)+1)*math.Sin(x)/(x*x-1) }
	)
	quad := func(f func(float64) float64, a, b float64, n int) float64 {
		I, err := QuadSimpson(f, a, b, n)
		require.NoError(t, err)
		return I
	}
	{
		assert.InDelta(t, 0.518798359105237, quad(f1, 0, 1, 4), 1e-12)
		assert.InDelta(t, 0.5188095062580791, quad(f1, 0, 1, 200), 1e-12)
		assert.InDelta(t, 1.538444380729461, quad(f1, 0, 10, 200), 1e-12)
		assert.InDelta(t, 380.2652329293029, quad(f2, 5, 10, 200), 1e-9)
	}
	{
		assert.Equal(t, 0., quad(f1, 2, 2, 10))
		assert.InDelta(t, -quad(f1, 0, 1, 200), quad(f1, 1, 0, 200), 1e-15)
		_, err := QuadSimpson(f1, 0, 1, 3)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
	{ // Agrees with gonum on a uniform grid
		var (
			n  = 200
			x  = Linspace(0, 10, n+1).ToSlice()
			fx = make([]float64, len(x))
		)
		for i := range x {
			fx[i] = f1(x[i])
		}
		assert.InDelta(t, integrate.Simpsons(x, fx), quad(f1, 0, 10, n), 1e-8)
	}
}
