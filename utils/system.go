package utils

import (
	"fmt"
	"math"
	"runtime"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// IsFinite reports whether A holds no NaN or Inf values.
func IsFinite(A any) bool {
	switch v := A.(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case []float64:
		for _, f := range v {
			if !IsFinite(f) {
				return false
			}
		}
	case Matrix:
		nr, _ := v.Dims()
		for i := 0; i < nr; i++ {
			if !IsFinite(v.M.RawRowView(i)) {
				return false
			}
		}
	case RowVector:
		return IsFinite(v.Matrix)
	case ColVector:
		return IsFinite(v.Matrix)
	}
	return true
}
