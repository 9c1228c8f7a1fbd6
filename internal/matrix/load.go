package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Load reads a whitespace-delimited numeric table from a file.
//
// Every non-empty line is a row; the number of fields on the first
// non-empty line fixes the column count, and every later row must match it.
// Blank lines are skipped.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: load %s: %w", path, err)
	}
	defer f.Close()

	m, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("matrix: load %s: %w", path, err)
	}
	return m, nil
}

// Read parses a whitespace-delimited numeric table from r. See Load for
// the format.
func Read(r io.Reader) (*Matrix, error) {
	m, err := read(r)
	if err != nil {
		return nil, fmt.Errorf("matrix: read: %w", err)
	}
	return m, nil
}

func read(r io.Reader) (*Matrix, error) {
	var (
		data []float64
		cols int
		rows int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("line %d: got %d columns, want %d", line, len(fields), cols)
		}
		for i, field := range fields {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: invalid number %q", line, i+1, field)
			}
			data = append(data, val)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("no numeric rows found")
	}

	return &Matrix{d: mat.NewDense(rows, cols, data)}, nil
}
