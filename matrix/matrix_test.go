// Copyright 2026 Quarry ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"strings"
	"testing"

	"github.com/quarry-ml/quarry/matrix"
)

// TestMatrixAPI verifies the facade exposes the expected operation set.
func TestMatrixAPI(t *testing.T) {
	m, err := matrix.NewFromData([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("NewFromData failed: %v", err)
	}

	if m.Rows() != 2 || m.Cols() != 3 {
		t.Errorf("dims = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	if m.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %v, want 6", m.At(1, 2))
	}

	m.Set(0, 0, 10)
	if m.At(0, 0) != 10 {
		t.Errorf("At(0, 0) = %v after Set, want 10", m.At(0, 0))
	}

	row := m.Row(0)
	if row.Len() != 3 {
		t.Errorf("Row(0).Len() = %d, want 3", row.Len())
	}
}

// TestVectorAPI verifies the vector facade round trip.
func TestVectorAPI(t *testing.T) {
	v, err := matrix.NewVectorFromData([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("NewVectorFromData failed: %v", err)
	}

	w := v.Clone()
	dot, err := v.Dot(w)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if dot != 14 {
		t.Errorf("Dot = %v, want 14", dot)
	}
}

// TestReadFacade verifies the io.Reader entry point.
func TestReadFacade(t *testing.T) {
	m, err := matrix.Read(strings.NewReader("1 2\n3 4\n"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		t.Errorf("dims = %dx%d, want 2x2", m.Rows(), m.Cols())
	}
}
