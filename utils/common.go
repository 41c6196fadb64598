package utils

const (
	NODETOL = 1.e-12 // Knot and parameter coincidence
	EPS     = 1.e-6  // Default tolerance for approximate comparison
)
