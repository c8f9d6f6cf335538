// Package outliers removes rows/columns with outstanding totals from a
// count matrix before binning.
//
// A column is outstanding when the log10 of its total lies more than
// three robust sigmas (1.4826×MAD) from the median of all column totals.
// Filtering is symmetric: the same index set is dropped from both rows
// and columns, so paired matrices stay aligned — compute a mask per
// matrix, combine with Keep, and Apply the result to both.
package outliers

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// robustScale converts a median absolute deviation into a consistent
// estimate of the standard deviation under normality.
const robustScale = 1.4826

// sigmaCutoff is the number of robust sigmas beyond which a column total
// counts as outstanding.
const sigmaCutoff = 3.0

// Sentinel errors for mask application.
var (
	// ErrNonSquare indicates symmetric filtering on a non-square matrix.
	ErrNonSquare = errors.New("outliers: symmetric filtering requires a square matrix")
	// ErrMaskLength indicates a keep-mask that does not match the matrix size.
	ErrMaskLength = errors.New("outliers: mask length must equal the matrix dimension")
	// ErrAllFiltered indicates a keep-mask that drops every index.
	ErrAllFiltered = errors.New("outliers: mask keeps no rows")
)

// median returns the midpoint median of xs (numpy semantics: the mean of
// the two central order statistics for even lengths). xs is not modified.
func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// MAD returns the median absolute deviation of xs: median(|x - median(x)|).
// Complexity: O(n log n).
func MAD(xs []float64) float64 {
	med := median(xs)
	dev := make([]float64, len(xs))
	for i, x := range xs {
		dev[i] = math.Abs(x - med)
	}
	return median(dev)
}

// Mask flags the outstanding columns of m: true means the column's log10
// total is more than sigmaCutoff robust sigmas from the median. Zero
// columns produce -Inf totals and are flagged along with everything else
// that falls outside the band.
// Complexity: O(r·c + c log c).
func Mask(m mat.Matrix) []bool {
	r, c := m.Dims()
	norm := make([]float64, c)
	for j := 0; j < c; j++ {
		var s float64
		for i := 0; i < r; i++ {
			s += m.At(i, j)
		}
		norm[j] = math.Log10(s)
	}
	med := median(norm)
	sigma := robustScale * MAD(norm)

	out := make([]bool, c)
	for j, x := range norm {
		out[j] = x < med-sigmaCutoff*sigma || x > med+sigmaCutoff*sigma
	}
	return out
}

// Keep combines outstanding-masks into a keep-mask: an index survives
// only when no mask flags it. All masks must share one length.
func Keep(masks ...[]bool) []bool {
	if len(masks) == 0 {
		return nil
	}
	keep := make([]bool, len(masks[0]))
	for i := range keep {
		keep[i] = true
		for _, m := range masks {
			if m[i] {
				keep[i] = false
				break
			}
		}
	}
	return keep
}

// Apply drops the rows and columns of a square matrix whose keep entry is
// false, preserving the order of the survivors.
// Errors: ErrNonSquare, ErrMaskLength, ErrAllFiltered.
// Complexity: O(k²) for k kept indices.
func Apply(m mat.Matrix, keep []bool) (*mat.Dense, error) {
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}
	if len(keep) != c {
		return nil, ErrMaskLength
	}
	idx := make([]int, 0, c)
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, ErrAllFiltered
	}
	out := mat.NewDense(len(idx), len(idx), nil)
	for i, ri := range idx {
		for j, cj := range idx {
			out.Set(i, j, m.At(ri, cj))
		}
	}
	return out, nil
}
