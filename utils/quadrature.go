package utils

import "fmt"

// QuadSimpson integrates f over [a,b] with the composite Simpson rule on n
// subintervals. n must be even. Swapped bounds negate the result.
func QuadSimpson(f func(x float64) float64, a, b float64, n int) (I float64, err error) {
	if n <= 0 || n%2 != 0 {
		err = fmt.Errorf("simpson rule needs an even positive number of intervals, got %d: %w",
			n, ErrInvalidArgument)
		return
	}
	if a == b {
		return
	}
	if a > b {
		if I, err = QuadSimpson(f, b, a, n); err != nil {
			return
		}
		I = -I
		return
	}
	var (
		h          = (b - a) / float64(n)
		sum1, sum2 float64
	)
	for j := 1; j <= n/2-1; j++ {
		sum1 += f(a + 2*float64(j)*h)
	}
	for j := 1; j <= n/2; j++ {
		sum2 += f(a + (2*float64(j)-1)*h)
	}
	I = h / 3 * (f(a) + 2*sum1 + 4*sum2 + f(b))
	return
}
