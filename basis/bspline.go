package basis

import (
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// FindSpan returns the span index i with Xi[i] <= xi < Xi[i+1] for a clamped
// knot vector of degree p over n+1 control points. The right end of the
// domain maps to n. Parameters outside the domain clamp to the first or last
// span.
func FindSpan(Xi []float64, xi float64, p, n int) int {
	if xi >= Xi[n+1] {
		return n
	}
	if xi <= Xi[p] {
		return p
	}
	var (
		low, high = p, n + 1
		mid       = (low + high) / 2
	)
	for xi < Xi[mid] || xi >= Xi[mid+1] {
		if xi < Xi[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// AllNonvanishing computes [N_{span-p}, ..., N_span] at xi.
func AllNonvanishing(Xi []float64, span, p int, xi float64) utils.RowVector {
	var (
		N     = make([]float64, p+1)
		left  = make([]float64, p+1)
		right = make([]float64, p+1)
	)
	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = xi - Xi[span+1-j]
		right[j] = Xi[span+j] - xi
		saved := 0.
		for r := 0; r < j; r++ {
			temp := N[r] / (right[r+1] + left[j-r])
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return utils.NewRowVector(N)
}

// Basis computes the single basis function N_i^p at xi.
func Basis(Xi []float64, i, p int, xi float64) float64 {
	var (
		m = len(Xi) - 1
	)
	if (i == 0 && xi == Xi[0]) || (i == m-p-1 && xi == Xi[m]) {
		return 1
	}
	if xi < Xi[i] || xi >= Xi[i+p+1] {
		return 0
	}
	N := make([]float64, p+1)
	for j := 0; j <= p; j++ {
		if xi >= Xi[i+j] && xi < Xi[i+j+1] {
			N[j] = 1
		}
	}
	for k := 1; k <= p; k++ {
		var saved float64
		if N[0] != 0 {
			saved = ((xi - Xi[i]) * N[0]) / (Xi[i+k] - Xi[i])
		}
		for j := 0; j < p-k+1; j++ {
			var (
				uLeft  = Xi[i+j+1]
				uRight = Xi[i+j+k+1]
			)
			if N[j+1] == 0 {
				N[j] = saved
				saved = 0
				continue
			}
			temp := N[j+1] / (uRight - uLeft)
			N[j] = saved + (uRight-xi)*temp
			saved = (xi - uLeft) * temp
		}
	}
	return N[0]
}
