// Package refine inserts knots into B-spline and NURBS control nets without
// changing the geometry they describe. All blending happens on homogeneous
// points so rational and polynomial nets share one code path.
package refine

import (
	"fmt"
	"math"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// CheckInsertion validates inserting v r times into the span k of Xi, for
// degree p over n+1 control points, when v already appears s times.
func CheckInsertion(p int, Xi basis.KnotVector, n int, v float64, k, s, r int) (err error) {
	switch {
	case r < 1:
		err = fmt.Errorf("insertion count must be positive, got %d: %w", r, utils.ErrInvalidInsertion)
	case s < 0 || r+s > p:
		err = fmt.Errorf("multiplicity %d plus %d insertions exceeds degree %d: %w", s, r, p, utils.ErrInvalidInsertion)
	case len(Xi) != n+p+2:
		err = fmt.Errorf("%d knots do not match %d control points of degree %d: %w",
			len(Xi), n+1, p, utils.ErrInvalidInsertion)
	case k < p || k > n:
		err = fmt.Errorf("span %d outside [%d, %d]: %w", k, p, n, utils.ErrInvalidInsertion)
	case v < Xi[k] || v >= Xi[k+1]:
		err = fmt.Errorf("knot %v outside span %d [%v, %v): %w", v, k, Xi[k], Xi[k+1], utils.ErrInvalidInsertion)
	case Xi.Multiplicity(v) != s:
		err = fmt.Errorf("knot %v has multiplicity %d, not %d: %w", v, Xi.Multiplicity(v), s, utils.ErrInvalidInsertion)
	}
	return
}

// Locate returns the span k and current multiplicity s to feed CurveKnotIns
// with. A value within NODETOL of an existing knot snaps to it.
func Locate(p int, Xi basis.KnotVector, n int, v float64) (vs float64, k, s int) {
	vs = v
	for _, knot := range Xi {
		if math.Abs(knot-v) <= utils.NODETOL {
			vs = knot
			break
		}
	}
	k = basis.FindSpan(Xi, vs, p, n)
	s = Xi.Multiplicity(vs)
	return
}

// CurveKnotIns inserts v r times into the span k of the curve with knots Xi,
// degree p and homogeneous control points Pw. It returns the refined knot
// vector and control points; the inputs are left untouched.
func CurveKnotIns(p int, Xi basis.KnotVector, Pw []types.HomPoint, v float64, k, s, r int) (
	UQ basis.KnotVector, Qw []types.HomPoint, err error) {
	var (
		n = len(Pw) - 1
	)
	if err = CheckInsertion(p, Xi, n, v, k, s, r); err != nil {
		return
	}
	UQ = Xi.Insert(v, k, r)
	Qw = make([]types.HomPoint, n+r+1)
	for i := 0; i <= k-p; i++ {
		Qw[i] = Pw[i]
	}
	for i := k - s; i <= n; i++ {
		Qw[i+r] = Pw[i]
	}
	Rw := make([]types.HomPoint, p-s+1)
	copy(Rw, Pw[k-p:k-s+1])
	var L int
	for j := 1; j <= r; j++ {
		L = k - p + j
		for i := 0; i <= p-j-s; i++ {
			alpha := (v - Xi[L+i]) / (Xi[i+k+1] - Xi[L+i])
			Rw[i] = Rw[i+1].Lerp(Rw[i], alpha)
		}
		Qw[L] = Rw[0]
		Qw[k+r-j-s] = Rw[p-j-s]
	}
	for i := L + 1; i < k-s; i++ {
		Qw[i] = Rw[i-L]
	}
	return
}

// SurfaceKnotInsXi refines along xi. Pw[i][j] runs along xi with i, so every
// column j is refined as a curve.
func SurfaceKnotInsXi(p int, Xi basis.KnotVector, Pw [][]types.HomPoint, v float64, k, s, r int) (
	UQ basis.KnotVector, Qw [][]types.HomPoint, err error) {
	var (
		nr = len(Pw)
		nc int
	)
	if nr != 0 {
		nc = len(Pw[0])
	}
	if nc == 0 {
		err = fmt.Errorf("empty control grid: %w", utils.ErrInvalidInsertion)
		return
	}
	Qw = make([][]types.HomPoint, nr+r)
	for i := range Qw {
		Qw[i] = make([]types.HomPoint, nc)
	}
	col := make([]types.HomPoint, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			col[i] = Pw[i][j]
		}
		var Q []types.HomPoint
		if UQ, Q, err = CurveKnotIns(p, Xi, col, v, k, s, r); err != nil {
			return
		}
		for i := range Q {
			Qw[i][j] = Q[i]
		}
	}
	return
}

// SurfaceKnotInsEta refines along eta, one row of the grid at a time.
func SurfaceKnotInsEta(q int, Eta basis.KnotVector, Pw [][]types.HomPoint, v float64, k, s, r int) (
	VQ basis.KnotVector, Qw [][]types.HomPoint, err error) {
	if len(Pw) == 0 {
		err = fmt.Errorf("empty control grid: %w", utils.ErrInvalidInsertion)
		return
	}
	Qw = make([][]types.HomPoint, len(Pw))
	for i := range Pw {
		if VQ, Qw[i], err = CurveKnotIns(q, Eta, Pw[i], v, k, s, r); err != nil {
			return
		}
	}
	return
}
