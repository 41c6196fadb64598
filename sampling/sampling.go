/*
Package sampling evaluates curves and surfaces over evenly spaced parameter
ranges, serially or split across goroutines.
*/
package sampling

import (
	"fmt"
	"math"
	"runtime"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

type CurveEvaluator interface {
	Evaluate(xi float64) types.Point
}

type SurfaceEvaluator interface {
	Evaluate(xi, eta float64) types.Point
}

// Samples pairs each parameter with the point it maps to.
type Samples struct {
	Params []float64
	Points []types.Point
}

// SurfaceSamples holds Points[i][j] = S(Xi[i], Eta[j]).
type SurfaceSamples struct {
	Xi, Eta []float64
	Points  [][]types.Point
}

// Flatten lists the points row by row.
func (s SurfaceSamples) Flatten() (P []types.Point) {
	P = make([]types.Point, 0, len(s.Xi)*len(s.Eta))
	for _, row := range s.Points {
		P = append(P, row...)
	}
	return
}

// CurveDomain is the parameter interval of c, [0, 1] unless c reports one.
func CurveDomain(c CurveEvaluator) (a, b float64) {
	if d, ok := c.(interface{ Domain() (float64, float64) }); ok {
		return d.Domain()
	}
	return 0, 1
}

func SurfaceDomain(s SurfaceEvaluator) (xi, eta [2]float64) {
	if d, ok := s.(interface{ Domain() ([2]float64, [2]float64) }); ok {
		return d.Domain()
	}
	return [2]float64{0, 1}, [2]float64{0, 1}
}

func checkCount(name string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s sample count %d: %w", name, n, utils.ErrInvalidArgument)
	}
	return nil
}

func parallelDegree(np, n int) int {
	if np <= 0 {
		np = runtime.NumCPU()
	}
	if np > n {
		np = n
	}
	return np
}

func SampleCurve(c CurveEvaluator, from, to float64, count int) (s Samples, err error) {
	if err = checkCount("curve", count); err != nil {
		return
	}
	s.Params = utils.Linspace(from, to, count).ToSlice()
	s.Points = make([]types.Point, count)
	for i, xi := range s.Params {
		s.Points[i] = c.Evaluate(xi)
	}
	return
}

// ParallelSampleCurve gives the same result as SampleCurve. A non positive
// np uses one goroutine per CPU.
func ParallelSampleCurve(c CurveEvaluator, from, to float64, count, np int) (s Samples, err error) {
	if err = checkCount("curve", count); err != nil {
		return
	}
	s.Params = utils.Linspace(from, to, count).ToSlice()
	s.Points = make([]types.Point, count)
	pm := utils.NewPartitionMap(parallelDegree(np, count), count)
	pm.Run(func(_, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			s.Points[k] = c.Evaluate(s.Params[k])
		}
	})
	return
}

func newSurfaceSamples(xiRange, etaRange [2]float64, nXi, nEta int) (s SurfaceSamples, err error) {
	if err = checkCount("xi", nXi); err != nil {
		return
	}
	if err = checkCount("eta", nEta); err != nil {
		return
	}
	s.Xi = utils.Linspace(xiRange[0], xiRange[1], nXi).ToSlice()
	s.Eta = utils.Linspace(etaRange[0], etaRange[1], nEta).ToSlice()
	s.Points = make([][]types.Point, nXi)
	for i := range s.Points {
		s.Points[i] = make([]types.Point, nEta)
	}
	return
}

func SampleSurface(S SurfaceEvaluator, xiRange, etaRange [2]float64, nXi, nEta int) (s SurfaceSamples, err error) {
	if s, err = newSurfaceSamples(xiRange, etaRange, nXi, nEta); err != nil {
		return
	}
	for i, xi := range s.Xi {
		for j, eta := range s.Eta {
			s.Points[i][j] = S.Evaluate(xi, eta)
		}
	}
	return
}

// ParallelSampleSurface partitions the flattened xi-major index range.
func ParallelSampleSurface(S SurfaceEvaluator, xiRange, etaRange [2]float64, nXi, nEta, np int) (s SurfaceSamples, err error) {
	if s, err = newSurfaceSamples(xiRange, etaRange, nXi, nEta); err != nil {
		return
	}
	var (
		total = nXi * nEta
		pm    = utils.NewPartitionMap(parallelDegree(np, total), total)
	)
	pm.Run(func(_, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			i, j := k/nEta, k%nEta
			s.Points[i][j] = S.Evaluate(s.Xi[i], s.Eta[j])
		}
	})
	return
}

// SampleBasis tabulates every degree p basis function of Xi over its
// domain: N[i][k] = N_i(params[k]).
func SampleBasis(Xi basis.KnotVector, p, count int) (params []float64, N [][]float64, err error) {
	if err = checkCount("basis", count); err != nil {
		return
	}
	if p < 0 || len(Xi) < p+2 {
		err = fmt.Errorf("degree %d over %d knots: %w", p, len(Xi), utils.ErrInvalidKnotVector)
		return
	}
	var (
		a, b = Xi.Domain(p)
		n    = len(Xi) - p - 1
	)
	params = utils.Linspace(a, b, count).ToSlice()
	N = make([][]float64, n)
	for i := range N {
		N[i] = make([]float64, count)
		for k, xi := range params {
			N[i][k] = basis.Basis(Xi, i, p, xi)
		}
	}
	return
}

// SplitCoords rearranges points into coordinate arrays.
func SplitCoords(points []types.Point) (x, y, z []float64) {
	x, y, z = make([]float64, len(points)), make([]float64, len(points)), make([]float64, len(points))
	for i, p := range points {
		x[i], y[i], z[i] = p.X, p.Y, p.Z
	}
	return
}

// MaxDeviation is the largest distance between matching points, +Inf when
// the sequences differ in length.
func MaxDeviation(a, b []types.Point) (d float64) {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	for i := range a {
		d = math.Max(d, a[i].Dist(b[i]))
	}
	return
}
