package basis

import (
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// Bernstein evaluates Bernstein polynomials over [0,1]. It owns its factorial
// cache and can be shared between goroutines.
type Bernstein struct {
	fact *utils.Factorial
}

func NewBernstein() *Bernstein {
	return &Bernstein{fact: utils.NewFactorial()}
}

// Value is B_{i,n}(xi) = C(n,i) xi^i (1-xi)^(n-i).
func (b *Bernstein) Value(i, n int, xi float64) float64 {
	if i < 0 || i > n {
		return 0
	}
	return b.fact.Binomial(n, i) * utils.POW(xi, i) * utils.POW(1-xi, n-i)
}

// All returns B_{0,n}..B_{n,n} at xi.
func (b *Bernstein) All(n int, xi float64) (B []float64) {
	B = make([]float64, n+1)
	for i := range B {
		B[i] = b.Value(i, n, xi)
	}
	return
}
