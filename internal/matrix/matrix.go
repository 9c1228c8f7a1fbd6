package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Matrix is a dense rows×cols matrix of float64 values backed by gonum
// storage. All numerical work is delegated to gonum; Matrix only adds
// dimension checking and the operations this library needs.
type Matrix struct {
	d *mat.Dense
}

// New creates a zeroed rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: invalid dimensions %dx%d (must be > 0)", rows, cols)
	}
	return &Matrix{d: mat.NewDense(rows, cols, nil)}, nil
}

// NewFromData creates a rows×cols matrix from a row-major buffer.
// The buffer is copied; later changes to data do not affect the matrix.
func NewFromData(data []float64, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: invalid dimensions %dx%d (must be > 0)", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix: data length %d does not match dimensions %dx%d", len(data), rows, cols)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Matrix{d: mat.NewDense(rows, cols, buf)}, nil
}

// NewDiagonal creates an n×n matrix with v on the diagonal and zeros
// elsewhere, where n is the length of v.
func NewDiagonal(v *Vector) *Matrix {
	n := v.Len()
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, v.AtVec(i))
	}
	return &Matrix{d: d}
}

// FromDense adopts an existing gonum matrix without copying.
func FromDense(d *mat.Dense) *Matrix {
	return &Matrix{d: d}
}

// Dense returns the underlying gonum matrix for interop with gonum APIs.
// Mutations through the returned value are visible in the Matrix.
func (m *Matrix) Dense() *mat.Dense {
	return m.d
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	r, _ := m.d.Dims()
	return r
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	_, c := m.d.Dims()
	return c
}

// At returns the element at row i, column j.
// Out-of-range indices panic, matching gonum's access contract.
func (m *Matrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.d.Set(i, j, v)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) *Vector {
	return &Vector{d: mat.NewVecDense(m.Cols(), mat.Row(nil, i, m.d))}
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) *Vector {
	return &Vector{d: mat.NewVecDense(m.Rows(), mat.Col(nil, j, m.d))}
}

// SetRow overwrites row i with the contents of v.
func (m *Matrix) SetRow(i int, v *Vector) error {
	if v.Len() != m.Cols() {
		return fmt.Errorf("matrix: row length %d does not match column count %d", v.Len(), m.Cols())
	}
	m.d.SetRow(i, v.raw())
	return nil
}

// SetCol overwrites column j with the contents of v.
func (m *Matrix) SetCol(j int, v *Vector) error {
	if v.Len() != m.Rows() {
		return fmt.Errorf("matrix: column length %d does not match row count %d", v.Len(), m.Rows())
	}
	m.d.SetCol(j, v.raw())
	return nil
}

// Add adds other to m element-wise, in place.
func (m *Matrix) Add(other *Matrix) error {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return fmt.Errorf("matrix: Add dimension mismatch: %dx%d vs %dx%d",
			m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}
	m.d.Add(m.d, other.d)
	return nil
}

// Mul computes the BLAS-backed product A·Bᵀ, where A is the receiver and B
// is other. Both operands must have the same column count; the result is
// Rows(A)×Rows(B). Multiplying against the transpose is the natural form
// when rows are samples and columns are features.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.Cols() != other.Cols() {
		return nil, fmt.Errorf("matrix: Mul column count mismatch: %d vs %d", m.Cols(), other.Cols())
	}
	out := mat.NewDense(m.Rows(), other.Rows(), nil)
	out.Mul(m.d, other.d.T())
	return &Matrix{d: out}, nil
}

// MulVec computes the matrix-vector product A·v. The length of v must
// equal the column count of A; the result has Rows(A) elements.
func (m *Matrix) MulVec(v *Vector) (*Vector, error) {
	if v.Len() != m.Cols() {
		return nil, fmt.Errorf("matrix: MulVec length mismatch: vector %d vs columns %d", v.Len(), m.Cols())
	}
	out := mat.NewVecDense(m.Rows(), nil)
	out.MulVec(m.d, v.d)
	return &Vector{d: out}, nil
}

// Inverse computes the inverse of a square matrix via LU decomposition.
// Singular or badly conditioned matrices return an error from gonum.
func (m *Matrix) Inverse() (*Matrix, error) {
	r, c := m.d.Dims()
	if r != c {
		return nil, fmt.Errorf("matrix: Inverse requires a square matrix, got %dx%d", r, c)
	}
	out := mat.NewDense(r, c, nil)
	if err := out.Inverse(m.d); err != nil {
		return nil, fmt.Errorf("matrix: Inverse: %w", err)
	}
	return &Matrix{d: out}, nil
}

// Sphere standardizes every column in place: each column has its mean
// subtracted and is divided by its sample standard deviation, giving
// zero-mean, unit-variance columns. Columns with zero variance (and the
// single-row case, where the sample deviation is undefined) are only
// centered.
func (m *Matrix) Sphere() {
	rows, cols := m.d.Dims()
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m.d)
		mean := stat.Mean(col, nil)
		sd := stat.StdDev(col, nil)
		floats.AddConst(-mean, col)
		if sd > 0 {
			floats.Scale(1/sd, col)
		}
		m.d.SetCol(j, col)
	}
}

// Submatrix returns a copy of the rows×cols block whose upper-left corner
// is at row i, column j.
func (m *Matrix) Submatrix(i, j, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: invalid submatrix dimensions %dx%d (must be > 0)", rows, cols)
	}
	if i < 0 || j < 0 || i+rows > m.Rows() || j+cols > m.Cols() {
		return nil, fmt.Errorf("matrix: submatrix %dx%d at (%d,%d) out of bounds for %dx%d",
			rows, cols, i, j, m.Rows(), m.Cols())
	}
	out := mat.NewDense(rows, cols, nil)
	out.Copy(m.d.Slice(i, i+rows, j, j+cols))
	return &Matrix{d: out}, nil
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	out.Copy(m.d)
	return &Matrix{d: out}
}

// Equal reports whether both matrices have identical dimensions and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return mat.Equal(m.d, other.d)
}

// EqualApprox reports element-wise equality within eps.
func (m *Matrix) EqualApprox(other *Matrix, eps float64) bool {
	return mat.EqualApprox(m.d, other.d, eps)
}

// String renders the matrix one row per line with two-decimal elements.
func (m *Matrix) String() string {
	var sb strings.Builder
	rows, cols := m.d.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&sb, "%.2f ", m.d.At(i, j))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
