// Copyright 2026 Quarry ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense matrix and vector value types backed by
// gonum.
//
// # Overview
//
// Matrix and Vector are thin wrappers over gonum's dense storage. Every
// numerical operation delegates to gonum: BLAS-backed multiplication,
// LU-based inversion, and descriptive statistics for column
// standardization. The wrappers add construction from whitespace-delimited
// files and raw buffers, dimension checking with descriptive errors, and
// row/column extraction.
//
// # Basic Usage
//
//	m, err := matrix.Load("train.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m.Sphere()                  // zero-mean, unit-variance columns
//	k, err := m.Mul(m)          // kernel-style product m·mᵀ
//	inv, err := k.Inverse()     // LU inversion
//
// Element access follows gonum's contract: At and Set panic on
// out-of-range indices, while operations that can fail for dimensional
// reasons return errors.
package matrix
