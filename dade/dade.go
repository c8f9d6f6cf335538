package dade

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for DADE parsing.
var (
	// ErrEmptyHeader indicates a missing header line or one without labels.
	ErrEmptyHeader = errors.New("dade: header must carry at least one column label")
	// ErrTooManyRows indicates more data rows than header labels.
	ErrTooManyRows = errors.New("dade: more rows than header labels")
	// ErrRowOverflow indicates a row with values past the matrix edge.
	ErrRowOverflow = errors.New("dade: row carries more values than remaining columns")
)

// maxLineBytes bounds a single input line (dense rows of wide matrices).
const maxLineBytes = 16 << 20

// Load reads a DADE matrix file from path. See Parse.
func Load(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dade: %s: %w", path, err)
	}
	return m, nil
}

// Parse reads a DADE matrix from r and returns the full symmetric matrix
// reconstructed from its upper triangle.
// Complexity: O(n²) time and memory for an n-label header.
func Parse(r io.Reader) (*mat.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyHeader
	}
	header := strings.Fields(sc.Text())
	if len(header) < 2 { // corner label + at least one column label
		return nil, ErrEmptyHeader
	}
	n := len(header) - 1
	m := mat.NewDense(n, n, nil)

	row := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		if row >= n {
			return nil, ErrTooManyRows
		}
		vals := fields[1:] // drop the row label
		if len(vals) > n-row {
			return nil, fmt.Errorf("row %d: %w", row, ErrRowOverflow)
		}
		for j, s := range vals {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %w", row, row+j, err)
			}
			m.Set(row, row+j, x)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// Mirror the upper triangle; the diagonal stays single-counted.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Set(j, i, m.At(i, j))
		}
	}
	return m, nil
}
