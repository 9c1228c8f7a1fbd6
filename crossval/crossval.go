// Copyright 2026 Quarry ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package crossval splits matrix rows into randomized, size-balanced folds
// for cross validation.
//
// # Basic Usage
//
//	m, _ := matrix.Load("train.dat")
//	folds, err := crossval.Split(m, 10, nil)
//
// Fold sizes differ by at most one row, and the folds together contain
// exactly the rows of the input, randomly assigned.
package crossval

import (
	"math/rand"

	"github.com/quarry-ml/quarry/internal/crossval"
	"github.com/quarry-ml/quarry/matrix"
)

// Split partitions the rows of m into k folds whose sizes differ by at
// most one. A nil rng uses the global math/rand source; pass a seeded
// *rand.Rand for reproducible folds.
func Split(m *matrix.Matrix, k int, rng *rand.Rand) ([]*matrix.Matrix, error) {
	return crossval.Split(m, k, rng)
}
