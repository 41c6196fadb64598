package utils

import (
	"fmt"
	"sync"
)

// Factorial memoizes n! in a growing table. Computing n! fills every k! for
// k <= n. Safe for concurrent use.
type Factorial struct {
	mu    sync.Mutex
	cache []float64
}

func NewFactorial() *Factorial {
	return &Factorial{cache: []float64{1}}
}

func (f *Factorial) Of(n int) float64 {
	if n < 0 {
		panic(fmt.Errorf("factorial of %d: %w", n, ErrInvalidArgument))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := len(f.cache); k <= n; k++ {
		f.cache = append(f.cache, f.cache[k-1]*float64(k))
	}
	return f.cache[n]
}

// Binomial returns C(n,k), zero when k is outside [0,n].
func (f *Factorial) Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return f.Of(n) / (f.Of(k) * f.Of(n-k))
}

// Len is the number of cached entries.
func (f *Factorial) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cache)
}
