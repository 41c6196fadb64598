package solver

import (
	"fmt"

	"github.com/carlonluca/isogeometric-analysis/utils"
)

// LUSolve solves L U x = b by forward then backward substitution.
func LUSolve(L, U utils.Matrix, b utils.ColVector) (x utils.ColVector, err error) {
	var (
		y utils.ColVector
	)
	if y, err = ForwardSub(L, b); err != nil {
		return
	}
	return BackwardSub(U, y)
}

// LinSolve solves A x = b through an LU decomposition without pivoting.
func LinSolve(A utils.Matrix, b utils.ColVector) (x utils.ColVector, err error) {
	var (
		lu LU
	)
	if lu, err = LUDecomp(A); err != nil {
		return
	}
	if x, err = LUSolve(lu.Lower, lu.Upper, b); err != nil {
		err = fmt.Errorf("linsolve: %w", err)
	}
	return
}

// LinSolvePivoted is LinSolve with partial pivoting.
func LinSolvePivoted(A utils.Matrix, b utils.ColVector) (x utils.ColVector, err error) {
	var (
		lup LUP
	)
	if lup, err = LUPDecomp(A); err != nil {
		return
	}
	if x, err = lup.Solve(b); err != nil {
		err = fmt.Errorf("linsolve pivoted: %w", err)
	}
	return
}
