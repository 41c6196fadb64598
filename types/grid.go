package types

import (
	"fmt"

	"github.com/carlonluca/isogeometric-analysis/utils"
)

// CoordMatrix gathers one coordinate of a point sequence into a 1xN vector.
func CoordMatrix(points []Point, a Axis) (R utils.RowVector) {
	var (
		data = make([]float64, len(points))
	)
	for i, p := range points {
		data[i] = p.Coord(a)
	}
	return utils.NewRowVector(data)
}

func HomCoordMatrix(points []HomPoint, a Axis) (R utils.RowVector) {
	var (
		data = make([]float64, len(points))
	)
	for i, p := range points {
		data[i] = p.Coord(a)
	}
	return utils.NewRowVector(data)
}

// GridCoordMatrix lays grid[i][j] out at row i, column j.
func GridCoordMatrix(grid [][]Point, a Axis) (R utils.Matrix) {
	var (
		nr, nc = GridDims(grid)
	)
	R = utils.NewMatrix(nr, nc)
	for i := range grid {
		for j, p := range grid[i] {
			R.M.Set(i, j, p.Coord(a))
		}
	}
	return
}

func HomGridCoordMatrix(grid [][]HomPoint, a Axis) (R utils.Matrix) {
	var (
		nr, nc int
	)
	if nr = len(grid); nr != 0 {
		nc = len(grid[0])
	}
	R = utils.NewMatrix(nr, nc)
	for i := range grid {
		for j, p := range grid[i] {
			R.M.Set(i, j, p.Coord(a))
		}
	}
	return
}

func GridDims(grid [][]Point) (nr, nc int) {
	if nr = len(grid); nr != 0 {
		nc = len(grid[0])
	}
	return
}

// CheckGrid verifies the grid is non-empty and rectangular.
func CheckGrid(grid [][]Point) (nr, nc int, err error) {
	nr, nc = GridDims(grid)
	if nr == 0 || nc == 0 {
		err = fmt.Errorf("empty control grid: %w", utils.ErrInvalidGeometry)
		return
	}
	for i, row := range grid {
		if len(row) != nc {
			err = fmt.Errorf("control grid row %d has %d points, expected %d: %w",
				i, len(row), nc, utils.ErrInvalidGeometry)
			return
		}
	}
	return
}

func Homogenize(points []Point, w []float64) (H []HomPoint) {
	H = make([]HomPoint, len(points))
	for i, p := range points {
		H[i] = p.ToHomogeneous(w[i])
	}
	return
}

func Dehomogenize(H []HomPoint) (points []Point, w []float64) {
	points, w = make([]Point, len(H)), make([]float64, len(H))
	for i, h := range H {
		points[i], w[i] = h.ToCartesian(), h.W
	}
	return
}

// HomogenizeGrid weights grid[i][j] with W(i,j).
func HomogenizeGrid(grid [][]Point, W utils.Matrix) (H [][]HomPoint) {
	H = make([][]HomPoint, len(grid))
	for i := range grid {
		H[i] = make([]HomPoint, len(grid[i]))
		for j, p := range grid[i] {
			H[i][j] = p.ToHomogeneous(W.At(i, j))
		}
	}
	return
}

func DehomogenizeGrid(H [][]HomPoint) (grid [][]Point, W utils.Matrix) {
	var (
		nr, nc int
	)
	if nr = len(H); nr != 0 {
		nc = len(H[0])
	}
	grid = make([][]Point, nr)
	W = utils.NewMatrix(nr, nc)
	for i := range H {
		grid[i] = make([]Point, nc)
		for j, h := range H[i] {
			grid[i][j] = h.ToCartesian()
			W.M.Set(i, j, h.W)
		}
	}
	return
}

// PointsMatrix stacks points as the rows of an Nx3 matrix.
func PointsMatrix(points []Point) (R utils.Matrix) {
	R = utils.NewMatrix(len(points), 3)
	for i, p := range points {
		R.M.SetRow(i, []float64{p.X, p.Y, p.Z})
	}
	return
}

// HomPointsMatrix stacks homogeneous points as the rows of an Nx4 matrix.
func HomPointsMatrix(points []HomPoint) (R utils.Matrix) {
	R = utils.NewMatrix(len(points), 4)
	for i, h := range points {
		R.M.SetRow(i, []float64{h.X, h.Y, h.Z, h.W})
	}
	return
}

// SubGrid returns the block of grid within rows and cols, sharing storage.
func SubGrid[T any](grid [][]T, rows, cols utils.Range) (S [][]T) {
	S = make([][]T, 0, rows.Length())
	for i := rows.A; i <= rows.B; i++ {
		S = append(S, grid[i][cols.A:cols.B+1])
	}
	return
}
