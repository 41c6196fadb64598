package basis

import (
	"fmt"
	"math"

	"github.com/carlonluca/isogeometric-analysis/utils"
)

// KnotVector is a non-decreasing sequence of parameter values. A clamped
// vector of degree p over n+1 control points has n+p+2 entries.
type KnotVector []float64

func (kv KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}

// Validate checks kv against degree p and nCtrl control points.
func (kv KnotVector) Validate(p, nCtrl int) (err error) {
	var (
		m = len(kv)
	)
	switch {
	case p < 0:
		err = fmt.Errorf("negative degree %d: %w", p, utils.ErrInvalidKnotVector)
	case nCtrl < p+1:
		err = fmt.Errorf("degree %d needs at least %d control points, got %d: %w",
			p, p+1, nCtrl, utils.ErrInvalidKnotVector)
	case m != nCtrl+p+1:
		err = fmt.Errorf("expected %d knots for degree %d and %d control points, got %d: %w",
			nCtrl+p+1, p, nCtrl, m, utils.ErrInvalidKnotVector)
	case !kv.IsNonDecreasing():
		err = fmt.Errorf("knots must be non-decreasing: %v: %w", []float64(kv), utils.ErrInvalidKnotVector)
	case !kv.IsClamped(p):
		err = fmt.Errorf("first and last %d knots must coincide: %v: %w", p+1, []float64(kv), utils.ErrInvalidKnotVector)
	case kv[p] >= kv[m-p-1]:
		err = fmt.Errorf("empty parametric domain: %v: %w", []float64(kv), utils.ErrInvalidKnotVector)
	}
	return
}

func (kv KnotVector) IsClamped(p int) bool {
	var (
		m = len(kv)
	)
	if m < 2*(p+1) {
		return false
	}
	for i := 1; i <= p; i++ {
		if kv[i] != kv[0] || kv[m-1-i] != kv[m-1] {
			return false
		}
	}
	return true
}

// Domain is [Xi[p], Xi[n+1]].
func (kv KnotVector) Domain(p int) (a, b float64) {
	return kv[p], kv[len(kv)-p-1]
}

// Multiplicity counts the knots coinciding with v within NODETOL.
func (kv KnotVector) Multiplicity(v float64) (s int) {
	for _, k := range kv {
		if math.Abs(k-v) <= utils.NODETOL {
			s++
		}
	}
	return
}

// Distinct returns the knot values without repetition.
func (kv KnotVector) Distinct() (u []float64) {
	for i, k := range kv {
		if i == 0 || k != kv[i-1] {
			u = append(u, k)
		}
	}
	return
}

// Insert returns a new vector with v repeated r times after position k.
func (kv KnotVector) Insert(v float64, k, r int) (R KnotVector) {
	R = make(KnotVector, 0, len(kv)+r)
	R = append(R, kv[:k+1]...)
	for i := 0; i < r; i++ {
		R = append(R, v)
	}
	R = append(R, kv[k+1:]...)
	return
}

// Clamp maps xi into the domain of a degree p vector.
func (kv KnotVector) Clamp(p int, xi float64) float64 {
	a, b := kv.Domain(p)
	return math.Max(a, math.Min(b, xi))
}
