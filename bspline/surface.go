package bspline

import (
	"fmt"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/refine"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// Surface is a tensor product B-spline surface. ControlPoints[i][j] runs
// along Xi with i and along Eta with j.
type Surface struct {
	ControlPoints [][]types.Point
	Xi, Eta       basis.KnotVector
	P, Q          int
}

func NewSurface(points [][]types.Point, xi, eta basis.KnotVector, p, q int) (s *Surface, err error) {
	var (
		nr, nc int
	)
	if nr, nc, err = types.CheckGrid(points); err != nil {
		err = fmt.Errorf("bspline surface: %w", err)
		return
	}
	if err = xi.Validate(p, nr); err != nil {
		err = fmt.Errorf("bspline surface, xi direction: %w", err)
		return
	}
	if err = eta.Validate(q, nc); err != nil {
		err = fmt.Errorf("bspline surface, eta direction: %w", err)
		return
	}
	s = &Surface{
		ControlPoints: points,
		Xi:            xi,
		Eta:           eta,
		P:             p,
		Q:             q,
	}
	return
}

// N and M are the last control point indices along xi and eta.
func (s *Surface) N() int { return len(s.ControlPoints) - 1 }
func (s *Surface) M() int { return len(s.ControlPoints[0]) - 1 }

func (s *Surface) Domain() (xi, eta [2]float64) {
	xi[0], xi[1] = s.Xi.Domain(s.P)
	eta[0], eta[1] = s.Eta.Domain(s.Q)
	return
}

// Evaluate computes Nxi * P * Neta^T per coordinate over the active window.
func (s *Surface) Evaluate(xi, eta float64) types.Point {
	xi, eta = s.Xi.Clamp(s.P, xi), s.Eta.Clamp(s.Q, eta)
	var (
		xiSpan  = basis.FindSpan(s.Xi, xi, s.P, s.N())
		etaSpan = basis.FindSpan(s.Eta, eta, s.Q, s.M())
		Nxi     = basis.AllNonvanishing(s.Xi, xiSpan, s.P, xi)
		NetaT   = basis.AllNonvanishing(s.Eta, etaSpan, s.Q, eta).Transpose()
		window  = types.SubGrid(s.ControlPoints,
			utils.Range{A: xiSpan - s.P, B: xiSpan}, utils.Range{A: etaSpan - s.Q, B: etaSpan})
		contract = func(a types.Axis) float64 {
			return Nxi.Mul(types.GridCoordMatrix(window, a)).Mul(NetaT.Matrix).At(0, 0)
		}
	)
	return types.NewPoint3D(contract(types.AxisX), contract(types.AxisY), contract(types.AxisZ))
}

// EvaluateSum adds up every N_i(xi) N_j(eta) P_ij.
func (s *Surface) EvaluateSum(xi, eta float64) (p types.Point) {
	xi, eta = s.Xi.Clamp(s.P, xi), s.Eta.Clamp(s.Q, eta)
	var (
		Neta = make([]float64, s.M()+1)
	)
	for j := range Neta {
		Neta[j] = basis.Basis(s.Eta, j, s.Q, eta)
	}
	for i, row := range s.ControlPoints {
		Ni := basis.Basis(s.Xi, i, s.P, xi)
		if Ni == 0 {
			continue
		}
		for j, cp := range row {
			p = p.Add(cp.Scale(Ni * Neta[j]))
		}
	}
	return
}

func (s *Surface) homogeneous() [][]types.HomPoint {
	return types.HomogenizeGrid(s.ControlPoints, utils.NewOnes(s.N()+1, s.M()+1))
}

// InsertKnotsXi inserts v r times into the xi span k, in place.
func (s *Surface) InsertKnotsXi(v float64, k, sm, r int) (err error) {
	var (
		UQ basis.KnotVector
		Qw [][]types.HomPoint
	)
	if UQ, Qw, err = refine.SurfaceKnotInsXi(s.P, s.Xi, s.homogeneous(), v, k, sm, r); err != nil {
		return
	}
	s.Xi = UQ
	s.ControlPoints, _ = types.DehomogenizeGrid(Qw)
	return
}

// InsertKnotsEta inserts v r times into the eta span k, in place.
func (s *Surface) InsertKnotsEta(v float64, k, sm, r int) (err error) {
	var (
		VQ basis.KnotVector
		Qw [][]types.HomPoint
	)
	if VQ, Qw, err = refine.SurfaceKnotInsEta(s.Q, s.Eta, s.homogeneous(), v, k, sm, r); err != nil {
		return
	}
	s.Eta = VQ
	s.ControlPoints, _ = types.DehomogenizeGrid(Qw)
	return
}

// RefineXi and RefineEta insert v r times, locating span and multiplicity.
func (s *Surface) RefineXi(v float64, r int) error {
	v, k, sm := refine.Locate(s.P, s.Xi, s.N(), v)
	return s.InsertKnotsXi(v, k, sm, r)
}

func (s *Surface) RefineEta(v float64, r int) error {
	v, k, sm := refine.Locate(s.Q, s.Eta, s.M(), v)
	return s.InsertKnotsEta(v, k, sm, r)
}
