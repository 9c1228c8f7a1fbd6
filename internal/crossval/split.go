// Package crossval partitions matrix rows into randomized, size-balanced
// folds for cross validation.
package crossval

import (
	"fmt"
	"math/rand"

	"github.com/quarry-ml/quarry/internal/matrix"
)

// Split partitions the rows of m into k matrices whose sizes differ by at
// most one: the first rows%k folds get an extra row. Rows are assigned by
// walking the input in consecutive blocks of k rows and shuffling each
// block independently, so every fold receives a uniformly random row from
// each block. The union of fold rows is exactly the input rows.
//
// k must be between 1 and the row count of m. A nil rng uses the global
// math/rand source.
func Split(m *matrix.Matrix, k int, rng *rand.Rand) ([]*matrix.Matrix, error) {
	if k < 1 {
		return nil, fmt.Errorf("crossval: fold count must be >= 1, got %d", k)
	}
	rows, cols := m.Rows(), m.Cols()
	if k > rows {
		return nil, fmt.Errorf("crossval: fold count %d exceeds row count %d", k, rows)
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}

	folds := make([]*matrix.Matrix, k)
	extra := rows % k
	for i := range folds {
		n := rows / k
		if i < extra {
			n++
		}
		f, err := matrix.New(n, cols)
		if err != nil {
			return nil, fmt.Errorf("crossval: allocate fold %d: %w", i, err)
		}
		folds[i] = f
	}

	// Each block of k consecutive input rows fills row start/k of every
	// fold; the final partial block only reaches the folds that carry an
	// extra row.
	block := make([]int, 0, k)
	for start := 0; start < rows; start += k {
		end := start + k
		if end > rows {
			end = rows
		}
		block = block[:0]
		for r := start; r < end; r++ {
			block = append(block, r)
		}
		shuffle(len(block), func(i, j int) {
			block[i], block[j] = block[j], block[i]
		})
		dst := start / k
		for i, src := range block {
			if err := folds[i].SetRow(dst, m.Row(src)); err != nil {
				return nil, fmt.Errorf("crossval: place row %d: %w", src, err)
			}
		}
	}

	return folds, nil
}
