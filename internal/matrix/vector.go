package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Vector is a dense float64 vector backed by gonum storage.
type Vector struct {
	d *mat.VecDense
}

// NewVector creates a zeroed vector of length n.
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, fmt.Errorf("matrix: invalid vector length %d (must be > 0)", n)
	}
	return &Vector{d: mat.NewVecDense(n, nil)}, nil
}

// NewVectorFromData creates a vector from a copy of data.
func NewVectorFromData(data []float64) (*Vector, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("matrix: empty vector data")
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Vector{d: mat.NewVecDense(len(buf), buf)}, nil
}

// FromVecDense adopts an existing gonum vector without copying. Strided
// vectors, such as column views of a Dense, are copied into contiguous
// storage instead; mutations on the result then do not reach the original
// backing array.
func FromVecDense(d *mat.VecDense) *Vector {
	if d.RawVector().Inc != 1 {
		out := mat.NewVecDense(d.Len(), nil)
		out.CopyVec(d)
		return &Vector{d: out}
	}
	return &Vector{d: d}
}

// Dense returns the underlying gonum vector for interop.
func (v *Vector) Dense() *mat.VecDense {
	return v.d
}

// raw returns the backing slice. Valid because every constructor
// normalizes to unit stride.
func (v *Vector) raw() []float64 {
	return v.d.RawVector().Data
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return v.d.Len()
}

// AtVec returns element i. Out-of-range indices panic.
func (v *Vector) AtVec(i int) float64 {
	return v.d.AtVec(i)
}

// SetVec assigns element i.
func (v *Vector) SetVec(i int, val float64) {
	v.d.SetVec(i, val)
}

// AddVec adds other to v element-wise, in place.
func (v *Vector) AddVec(other *Vector) error {
	if v.Len() != other.Len() {
		return fmt.Errorf("matrix: AddVec length mismatch: %d vs %d", v.Len(), other.Len())
	}
	v.d.AddVec(v.d, other.d)
	return nil
}

// AddConst adds c to every element in place.
func (v *Vector) AddConst(c float64) {
	floats.AddConst(c, v.raw())
}

// Scale multiplies every element by c in place.
func (v *Vector) Scale(c float64) {
	v.d.ScaleVec(c, v.d)
}

// Dot returns the inner product of v and other.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if v.Len() != other.Len() {
		return 0, fmt.Errorf("matrix: Dot length mismatch: %d vs %d", v.Len(), other.Len())
	}
	return mat.Dot(v.d, other.d), nil
}

// Mean returns the arithmetic mean of the elements.
func (v *Vector) Mean() float64 {
	return stat.Mean(v.raw(), nil)
}

// StdDev returns the sample standard deviation of the elements.
func (v *Vector) StdDev() float64 {
	return stat.StdDev(v.raw(), nil)
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	out := mat.NewVecDense(v.Len(), nil)
	out.CopyVec(v.d)
	return &Vector{d: out}
}

// EqualApprox reports element-wise equality within eps.
func (v *Vector) EqualApprox(other *Vector, eps float64) bool {
	return mat.EqualApprox(v.d, other.d, eps)
}

// String renders the vector one element per line in %.5g format.
func (v *Vector) String() string {
	var sb strings.Builder
	for i := 0; i < v.Len(); i++ {
		fmt.Fprintf(&sb, "%.5g\n", v.d.AtVec(i))
	}
	return sb.String()
}
