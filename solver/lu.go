/*
Package solver solves dense square systems through triangular substitution
and LU factorizations built by recursive Schur complement updates.
*/
package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/carlonluca/isogeometric-analysis/utils"
)

// LU holds A = Lower * Upper, with a unit diagonal on Lower.
type LU struct {
	Lower, Upper utils.Matrix
}

// LUP holds Permutation * A = Lower * Upper.
type LUP struct {
	Lower, Upper, Permutation utils.Matrix
	perm                      []int // row i of P*A is row perm[i] of A
	sign                      float64
}

func checkSquare(op string, A utils.Matrix) error {
	if !A.IsSquare() {
		return fmt.Errorf("%s of a %v matrix: %w", op, A.Size(), utils.ErrNotSquare)
	}
	return nil
}

// ForwardSub solves L x = b for a lower triangular L.
func ForwardSub(L utils.Matrix, b utils.ColVector) (x utils.ColVector, err error) {
	if err = checkSystem("forward substitution", L, b); err != nil {
		return
	}
	var (
		n  = L.Rows()
		xs = make([]float64, n)
	)
	for i := 0; i < n; i++ {
		bi := b.Value(i)
		for j := 0; j < i; j++ {
			bi -= L.At(i, j) * xs[j]
		}
		if L.At(i, i) == 0 {
			err = fmt.Errorf("forward substitution: zero diagonal at %d: %w", i, utils.ErrSingularMatrix)
			return
		}
		xs[i] = bi / L.At(i, i)
	}
	x = utils.NewColVector(xs)
	return
}

// BackwardSub solves U x = b for an upper triangular U.
func BackwardSub(U utils.Matrix, b utils.ColVector) (x utils.ColVector, err error) {
	if err = checkSystem("backward substitution", U, b); err != nil {
		return
	}
	var (
		n  = U.Rows()
		xs = make([]float64, n)
	)
	for i := n - 1; i >= 0; i-- {
		bi := b.Value(i)
		for j := i + 1; j < n; j++ {
			bi -= U.At(i, j) * xs[j]
		}
		if U.At(i, i) == 0 {
			err = fmt.Errorf("backward substitution: zero diagonal at %d: %w", i, utils.ErrSingularMatrix)
			return
		}
		xs[i] = bi / U.At(i, i)
	}
	x = utils.NewColVector(xs)
	return
}

func checkSystem(op string, A utils.Matrix, b utils.ColVector) error {
	if err := checkSquare(op, A); err != nil {
		return err
	}
	if b.Len() != A.Rows() {
		return fmt.Errorf("%s: %v matrix with a right hand side of length %d: %w",
			op, A.Size(), b.Len(), utils.ErrDimensionMismatch)
	}
	return nil
}

// setBlock copies src into dst with its top left corner at (i, j).
func setBlock(dst utils.Matrix, i, j int, src utils.Matrix) {
	r, c := src.Dims()
	dst.M.Slice(i, i+r, j, j+c).(*mat.Dense).Copy(src.M)
}

// LUDecomp factors A without pivoting. With a11 the leading entry, the
// first row of U is the first row of A, the first column of L is
// a21/a11 and the rest is the factorization of A22 - l21*u12. A zero
// pivot before the last one fails with ErrSingularMatrix.
func LUDecomp(A utils.Matrix) (lu LU, err error) {
	if err = checkSquare("LU decomposition", A); err != nil {
		return
	}
	if lu.Lower, lu.Upper, err = luRecurse(A, 0); err != nil {
		return
	}
	return
}

func luRecurse(A utils.Matrix, depth int) (L, U utils.Matrix, err error) {
	var (
		n   = A.Rows()
		a11 = A.At(0, 0)
	)
	L, U = utils.NewIdentity(n), utils.NewZeroSquare(n)
	U.M.Set(0, 0, a11)
	if n == 1 {
		return
	}
	if a11 == 0 {
		err = fmt.Errorf("LU decomposition: zero pivot at %d: %w", depth, utils.ErrSingularMatrix)
		return
	}
	var (
		u12    = A.Slice(0, 1, 1, n)
		l21    = A.Slice(1, n, 0, 1).Scale(1 / a11)
		S      = A.Slice(1, n, 1, n).Subtract(l21.Mul(u12))
		Ls, Us utils.Matrix
	)
	if Ls, Us, err = luRecurse(S, depth+1); err != nil {
		return
	}
	setBlock(U, 0, 1, u12)
	setBlock(L, 1, 0, l21)
	setBlock(L, 1, 1, Ls)
	setBlock(U, 1, 1, Us)
	return
}

// LUPDecomp factors A with partial pivoting: each step moves the row with the
// largest leading magnitude to the top before eliminating.
func LUPDecomp(A utils.Matrix) (lup LUP, err error) {
	if err = checkSquare("LUP decomposition", A); err != nil {
		return
	}
	var (
		n = A.Rows()
	)
	if lup.Lower, lup.Upper, lup.perm, lup.sign, err = lupRecurse(A, 0); err != nil {
		return
	}
	lup.Permutation = utils.NewZeroSquare(n)
	for i, pi := range lup.perm {
		lup.Permutation.M.Set(i, pi, 1)
	}
	return
}

func lupRecurse(A utils.Matrix, depth int) (L, U utils.Matrix, perm []int, sign float64, err error) {
	var (
		n     = A.Rows()
		pivot = A.Col(0).Abs().IndexMax()
		A1    = A.Copy().SwapRows(0, pivot)
		a11   = A1.At(0, 0)
	)
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	perm[0], perm[pivot] = pivot, 0
	if sign = 1; pivot != 0 {
		sign = -1
	}
	L, U = utils.NewIdentity(n), utils.NewZeroSquare(n)
	U.M.Set(0, 0, a11)
	if n == 1 {
		return
	}
	if a11 == 0 {
		err = fmt.Errorf("LUP decomposition: zero column at %d: %w", depth, utils.ErrSingularMatrix)
		return
	}
	var (
		u12    = A1.Slice(0, 1, 1, n)
		v      = A1.Slice(1, n, 0, 1)
		S      = A1.Slice(1, n, 1, n).Subtract(v.Mul(u12).Scale(1 / a11))
		perm1  = append([]int{}, perm...)
		Ls, Us utils.Matrix
		permS  []int
		signS  float64
	)
	if Ls, Us, permS, signS, err = lupRecurse(S, depth+1); err != nil {
		return
	}
	sign *= signS
	for i, pi := range permS {
		perm[i+1] = perm1[pi+1]
		L.M.Set(i+1, 0, v.At(pi, 0)/a11)
	}
	setBlock(U, 0, 1, u12)
	setBlock(L, 1, 1, Ls)
	setBlock(U, 1, 1, Us)
	return
}

// Det is the product of the pivots.
func (lu LU) Det() (d float64) {
	d = 1
	for i := 0; i < lu.Upper.Rows(); i++ {
		d *= lu.Upper.At(i, i)
	}
	return
}

func (lup LUP) Det() (d float64) {
	d = lup.sign
	for i := 0; i < lup.Upper.Rows(); i++ {
		d *= lup.Upper.At(i, i)
	}
	return
}

// Permute returns P*b.
func (lup LUP) Permute(b utils.ColVector) (Pb utils.ColVector, err error) {
	if b.Len() != len(lup.perm) {
		err = fmt.Errorf("permutation of length %d applied to %d values: %w",
			len(lup.perm), b.Len(), utils.ErrDimensionMismatch)
		return
	}
	var (
		data = make([]float64, b.Len())
	)
	for i, pi := range lup.perm {
		data[i] = b.Value(pi)
	}
	Pb = utils.NewColVector(data)
	return
}

// Solve solves A x = b reusing the factorization.
func (lup LUP) Solve(b utils.ColVector) (x utils.ColVector, err error) {
	var (
		Pb utils.ColVector
	)
	if Pb, err = lup.Permute(b); err != nil {
		return
	}
	return LUSolve(lup.Lower, lup.Upper, Pb)
}

// Residual is the largest entry of |A x - b|.
func Residual(A utils.Matrix, x, b utils.ColVector) float64 {
	var (
		Ax = A.Mul(x.Matrix)
	)
	if b.Len() != Ax.Rows() {
		return math.Inf(1)
	}
	return utils.MaxAbsDiff(mat.Col(nil, 0, Ax.M), b.ToSlice())
}
