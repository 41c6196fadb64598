package basis

// RationalBasis computes R_i^p(xi) = N_i w_i / sum_j N_j w_j, the sum running
// over the active window [span-p, span]. It is zero outside that window.
func RationalBasis(Xi, w []float64, i, p int, xi float64) float64 {
	var (
		n    = len(w) - 1
		span = FindSpan(Xi, xi, p, n)
	)
	if i < span-p || i > span {
		return 0
	}
	var (
		N   = AllNonvanishing(Xi, span, p, xi)
		den float64
	)
	for j := 0; j <= p; j++ {
		den += N.Value(j) * w[span-p+j]
	}
	return N.Value(i-span+p) * w[i] / den
}
