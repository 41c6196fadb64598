package bezier

import (
	"fmt"

	"github.com/carlonluca/isogeometric-analysis/basis"
	"github.com/carlonluca/isogeometric-analysis/types"
	"github.com/carlonluca/isogeometric-analysis/utils"
)

// Surface is a tensor product Bezier patch. ControlPoints[i][j] runs along
// xi with i and along eta with j.
type Surface struct {
	ControlPoints [][]types.Point
	bernstein     *basis.Bernstein
}

func NewSurface(points [][]types.Point) (s *Surface, err error) {
	if _, _, err = types.CheckGrid(points); err != nil {
		err = fmt.Errorf("bezier surface: %w", err)
		return
	}
	s = &Surface{
		ControlPoints: points,
		bernstein:     basis.NewBernstein(),
	}
	return
}

func (s *Surface) DegreeXi() int  { return len(s.ControlPoints) - 1 }
func (s *Surface) DegreeEta() int { return len(s.ControlPoints[0]) - 1 }

func (s *Surface) Evaluate(xi, eta float64) (p types.Point) {
	var (
		n, m = s.DegreeXi(), s.DegreeEta()
		Beta = s.bernstein.All(m, eta)
	)
	for i, row := range s.ControlPoints {
		Bi := s.bernstein.Value(i, n, xi)
		for j, cp := range row {
			p = p.Add(cp.Scale(Bi * Beta[j]))
		}
	}
	return
}

// EvaluateDeCasteljau reduces every row along eta, then the result along xi.
func (s *Surface) EvaluateDeCasteljau(xi, eta float64) types.Point {
	var (
		Q = make([]types.Point, len(s.ControlPoints))
	)
	for i, row := range s.ControlPoints {
		Q[i] = deCasteljau(row, eta)
	}
	return deCasteljau(Q, xi)
}

// FromIndexedPatches builds bicubic patches from 1-based indices into a
// vertex table, each patch listing its 16 points row by row.
func FromIndexedPatches(patches [][16]int, vertices [][3]float64) (S []*Surface, err error) {
	for k, patch := range patches {
		grid := make([][]types.Point, 4)
		for i := range grid {
			grid[i] = make([]types.Point, 4)
			for j := range grid[i] {
				idx := patch[4*i+j] - 1
				if idx < 0 || idx >= len(vertices) {
					err = fmt.Errorf("patch %d references vertex %d of %d: %w",
						k, idx+1, len(vertices), utils.ErrInvalidGeometry)
					return
				}
				v := vertices[idx]
				grid[i][j] = types.NewPoint3D(v[0], v[1], v[2])
			}
		}
		var s *Surface
		if s, err = NewSurface(grid); err != nil {
			return
		}
		S = append(S, s)
	}
	return
}
