package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense, row-major, mutable matrix backed by gonum.
// Methods are marked by whether they change the receiver.
type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v: %w",
				nr, nc, len(dataO[0]), ErrDimensionMismatch)
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, nil)
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Rows() int      { r, _ := m.Dims(); return r }
func (m Matrix) Cols() int      { _, c := m.Dims(); return c }
func (m Matrix) Size() Size     { r, c := m.Dims(); return Size{r, c} }
func (m Matrix) IsSquare() bool { r, c := m.Dims(); return r == c }
func (m Matrix) IsRow() bool    { return m.Rows() == 1 }
func (m Matrix) IsCol() bool    { return m.Cols() == 1 }

// Value is bound checked by gonum and panics on an invalid index.
func (m Matrix) Value(i, j int) float64 { return m.M.At(i, j) }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) SetValue(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Row(i int) RowVector { // Does not change receiver
	return NewRowVector(mat.Row(nil, i, m.M))
}

func (m Matrix) Col(j int) ColVector { // Does not change receiver
	return NewColVector(mat.Col(nil, j, m.M))
}

// Slice extracts rows [I,K) and columns [J,L).
func (m Matrix) Slice(I, K, J, L int) (R Matrix) { // Does not change receiver
	var (
		nrR = K - I
		ncR = L - J
	)
	if I < 0 || J < 0 || nrR <= 0 || ncR <= 0 || K > m.Rows() || L > m.Cols() {
		err := fmt.Errorf("invalid slice [%d:%d, %d:%d] of a %v matrix: %w",
			I, K, J, L, m.Size(), ErrDimensionMismatch)
		panic(err)
	}
	R = NewMatrix(nrR, ncR)
	R.M.Copy(m.M.Slice(I, K, J, L))
	return
}

// Rect extracts the block between two cells, bounds included.
func (m Matrix) Rect(topLeft, bottomRight Cell) Matrix { // Does not change receiver
	return m.Slice(topLeft.Row, bottomRight.Row+1, topLeft.Col, bottomRight.Col+1)
}

// Mid extracts the block spanned by two inclusive ranges.
func (m Matrix) Mid(rows, cols Range) Matrix { // Does not change receiver
	return m.Slice(rows.A, rows.B+1, cols.A, cols.B+1)
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	R = Matrix{M: mat.DenseCopyOf(m.M), name: m.name}
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	R.M.Copy(m.M.T())
	return
}

func (m Matrix) TransposeInPlace() Matrix { // Changes receiver
	m.checkWritable()
	m.M.CloneFrom(mat.DenseCopyOf(m.M.T()))
	return m
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, ncM = m.M.Dims()
		nrA, ncA = A.M.Dims()
	)
	if ncM != nrA {
		err := fmt.Errorf("cannot multiply %dx%d by %dx%d: %w", nrM, ncM, nrA, ncA, ErrDimensionMismatch)
		panic(err)
	}
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	checkSameSize("add", m, A)
	m.M.Add(m.M, A.M)
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix { // Changes receiver
	m.checkWritable()
	checkSameSize("subtract", m, A)
	m.M.Sub(m.M, A.M)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Scale(a, m.M)
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Apply(func(_, _ int, v float64) float64 { return f(v) }, m.M)
	return m
}

func (m Matrix) Round(decimals int) Matrix { // Changes receiver
	return m.Apply(func(v float64) float64 { return RoundTo(v, decimals) })
}

func (m Matrix) AssignCol(j int, c ColVector) Matrix { // Changes receiver
	m.checkWritable()
	if c.Len() != m.Rows() {
		err := fmt.Errorf("column of length %d assigned to a %v matrix: %w", c.Len(), m.Size(), ErrDimensionMismatch)
		panic(err)
	}
	m.M.SetCol(j, c.ToSlice())
	return m
}

func (m Matrix) SwapRows(i, k int) Matrix { // Changes receiver
	m.checkWritable()
	if i == k {
		return m
	}
	var (
		ri = mat.Row(nil, i, m.M)
		rk = mat.Row(nil, k, m.M)
	)
	m.M.SetRow(i, rk)
	m.M.SetRow(k, ri)
	return m
}

// Equals is an exact comparison; shapes must match.
func (m Matrix) Equals(A Matrix) bool {
	return mat.Equal(m.M, A.M)
}

func (m Matrix) ApproxEquals(A Matrix, tol float64) bool {
	return mat.EqualApprox(m.M, A.M, tol)
}

func (m Matrix) IsLowerTriangular() bool {
	var (
		nr, nc = m.Dims()
	)
	for i := 0; i < nr; i++ {
		for j := i + 1; j < nc; j++ {
			if m.M.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

func (m Matrix) IsUpperTriangular() bool {
	var (
		nr, nc = m.Dims()
	)
	for i := 1; i < nr; i++ {
		for j := 0; j < i && j < nc; j++ {
			if m.M.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}

// ConditionNumber is the ratio of extreme singular values, +Inf when the
// matrix is numerically singular.
func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDNone) {
		return math.Inf(1)
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return math.Inf(1)
	}
	// Singular values are in descending order
	minVal, maxVal := values[len(values)-1], values[0]
	if minVal < 1e-16*maxVal || minVal == 0 {
		return math.Inf(1)
	}
	return maxVal / minVal
}

func (m Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}

func (m Matrix) Print(msgI ...string) (o string) {
	var (
		name = ""
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	o = fmt.Sprintf("%s = \n%v\n", name, mat.Formatted(m.M, mat.Squeeze()))
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func checkSameSize(op string, A, B Matrix) {
	if !A.Size().Equals(B.Size()) {
		err := fmt.Errorf("cannot %s a %v and a %v matrix: %w", op, A.Size(), B.Size(), ErrDimensionMismatch)
		panic(err)
	}
}
