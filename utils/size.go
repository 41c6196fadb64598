package utils

import "fmt"

type Size struct {
	Rows, Cols int
}

func (s Size) Equals(o Size) bool { return s.Rows == o.Rows && s.Cols == o.Cols }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Cell addresses a single matrix entry.
type Cell struct {
	Row, Col int
}
