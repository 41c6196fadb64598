package nurbs

import (
	"fmt"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/refine"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// Surface is a tensor product NURBS surface. Weights(i,j) belongs to
// ControlPoints[i][j].
type Surface struct {
	ControlPoints [][]types.Point
	Xi, Eta       basis.KnotVector
	Weights       utils.Matrix
	P, Q          int
}

func NewSurface(points [][]types.Point, xi, eta basis.KnotVector, W utils.Matrix, p, q int) (s *Surface, err error) {
	var (
		nr, nc int
	)
	if nr, nc, err = types.CheckGrid(points); err != nil {
		err = fmt.Errorf("nurbs surface: %w", err)
		return
	}
	if err = xi.Validate(p, nr); err != nil {
		err = fmt.Errorf("nurbs surface, xi direction: %w", err)
		return
	}
	if err = eta.Validate(q, nc); err != nil {
		err = fmt.Errorf("nurbs surface, eta direction: %w", err)
		return
	}
	if !W.Size().Equals(utils.Size{Rows: nr, Cols: nc}) {
		err = fmt.Errorf("nurbs surface: %v weights for a %dx%d grid: %w", W.Size(), nr, nc, utils.ErrInvalidGeometry)
		return
	}
	for i := 0; i < nr; i++ {
		if err = checkWeights(W.Row(i).ToSlice(), nc); err != nil {
			err = fmt.Errorf("nurbs surface, row %d: %w", i, err)
			return
		}
	}
	s = &Surface{
		ControlPoints: points,
		Xi:            xi,
		Eta:           eta,
		Weights:       W,
		P:             p,
		Q:             q,
	}
	return
}

func (s *Surface) N() int { return len(s.ControlPoints) - 1 }
func (s *Surface) M() int { return len(s.ControlPoints[0]) - 1 }

func (s *Surface) Homogeneous() [][]types.HomPoint {
	return types.HomogenizeGrid(s.ControlPoints, s.Weights)
}

func (s *Surface) Domain() (xi, eta [2]float64) {
	xi[0], xi[1] = s.Xi.Domain(s.P)
	eta[0], eta[1] = s.Eta.Domain(s.Q)
	return
}

// Evaluate contracts Nxi * Pw * Neta^T for each homogeneous coordinate over
// the active window, then projects.
func (s *Surface) Evaluate(xi, eta float64) types.Point {
	xi, eta = s.Xi.Clamp(s.P, xi), s.Eta.Clamp(s.Q, eta)
	var (
		xiSpan   = basis.FindSpan(s.Xi, xi, s.P, s.N())
		etaSpan  = basis.FindSpan(s.Eta, eta, s.Q, s.M())
		Nxi      = basis.AllNonvanishing(s.Xi, xiSpan, s.P, xi)
		NetaT    = basis.AllNonvanishing(s.Eta, etaSpan, s.Q, eta).Transpose()
		rows     = utils.Range{A: xiSpan - s.P, B: xiSpan}
		cols     = utils.Range{A: etaSpan - s.Q, B: etaSpan}
		window   = types.HomogenizeGrid(types.SubGrid(s.ControlPoints, rows, cols), s.Weights.Mid(rows, cols))
		contract = func(a types.Axis) float64 {
			return Nxi.Mul(types.HomGridCoordMatrix(window, a)).Mul(NetaT.Matrix).At(0, 0)
		}
	)
	return types.HomPoint{
		X: contract(types.AxisX),
		Y: contract(types.AxisY),
		Z: contract(types.AxisZ),
		W: contract(types.AxisW),
	}.ToCartesian()
}

// EvaluateSum adds up every R_ij(xi, eta) P_ij.
func (s *Surface) EvaluateSum(xi, eta float64) types.Point {
	xi, eta = s.Xi.Clamp(s.P, xi), s.Eta.Clamp(s.Q, eta)
	var (
		Neta = make([]float64, s.M()+1)
		Sw   types.HomPoint
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
			Sw = Sw.Add(cp.ToHomogeneous(s.Weights.At(i, j)).Scale(Ni * Neta[j]))
		}
	}
	return Sw.ToCartesian()
}

func (s *Surface) InsertKnotsXi(v float64, k, sm, r int) (err error) {
	var (
		UQ basis.KnotVector
		Qw [][]types.HomPoint
	)
	if UQ, Qw, err = refine.SurfaceKnotInsXi(s.P, s.Xi, s.Homogeneous(), v, k, sm, r); err != nil {
		return
	}
	s.Xi = UQ
	s.ControlPoints, s.Weights = types.DehomogenizeGrid(Qw)
	return
}

func (s *Surface) InsertKnotsEta(v float64, k, sm, r int) (err error) {
	var (
		VQ basis.KnotVector
		Qw [][]types.HomPoint
	)
	if VQ, Qw, err = refine.SurfaceKnotInsEta(s.Q, s.Eta, s.Homogeneous(), v, k, sm, r); err != nil {
		return
	}
	s.Eta = VQ
	s.ControlPoints, s.Weights = types.DehomogenizeGrid(Qw)
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

// Uniform inserts every multiple of step inside the domain that is not a knot
// yet, once in each direction.
func (s *Surface) Uniform(step float64) (err error) {
	if !(step > 0) {
		return fmt.Errorf("refinement step %v: %w", step, utils.ErrInvalidArgument)
	}
	var (
		dXi, dEta = s.Domain()
	)
	for i := 1; dXi[0]+float64(i)*step < dXi[1]-utils.NODETOL; i++ {
		if v := dXi[0] + float64(i)*step; s.Xi.Multiplicity(v) == 0 {
			if err = s.RefineXi(v, 1); err != nil {
				return
			}
		}
	}
	for j := 1; dEta[0]+float64(j)*step < dEta[1]-utils.NODETOL; j++ {
		if v := dEta[0] + float64(j)*step; s.Eta.Multiplicity(v) == 0 {
			if err = s.RefineEta(v, 1); err != nil {
				return
			}
		}
	}
	return
}
