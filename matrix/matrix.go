// Copyright 2026 Quarry ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"io"

	"github.com/quarry-ml/quarry/internal/matrix"
)

// Matrix is a dense float64 matrix. See the package documentation for an
// overview of the operation set.
type Matrix = matrix.Matrix

// Vector is a dense float64 vector.
type Vector = matrix.Vector

// Creation functions

// New creates a zeroed rows×cols matrix.
//
// Example:
//
//	m, err := matrix.New(3, 4)
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// NewFromData creates a rows×cols matrix from a copy of a row-major buffer.
//
// Example:
//
//	m, err := matrix.NewFromData([]float64{1, 2, 3, 4}, 2, 2)
func NewFromData(data []float64, rows, cols int) (*Matrix, error) {
	return matrix.NewFromData(data, rows, cols)
}

// NewDiagonal creates a square matrix with v on the diagonal and zeros
// elsewhere.
func NewDiagonal(v *Vector) *Matrix {
	return matrix.NewDiagonal(v)
}

// Load reads a whitespace-delimited numeric table from a file. Every
// non-empty line is a row; all rows must have the same number of fields.
//
// Example:
//
//	m, err := matrix.Load("test.dat")
func Load(path string) (*Matrix, error) {
	return matrix.Load(path)
}

// Read parses a whitespace-delimited numeric table from r.
func Read(r io.Reader) (*Matrix, error) {
	return matrix.Read(r)
}

// NewVector creates a zeroed vector of length n.
func NewVector(n int) (*Vector, error) {
	return matrix.NewVector(n)
}

// NewVectorFromData creates a vector from a copy of data.
//
// Example:
//
//	v, err := matrix.NewVectorFromData([]float64{1.5, 2.5, 3.5})
func NewVectorFromData(data []float64) (*Vector, error) {
	return matrix.NewVectorFromData(data)
}
