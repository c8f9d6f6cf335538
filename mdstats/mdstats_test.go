package mdstats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/serpentine/mdstats"
)

func constDense(r, c int, x float64) *mat.Dense {
	m := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, x)
		}
	}
	return m
}

// TestBefore_FlooredThreshold: identical low-signal inputs give a zero
// trend and fall back to the floor threshold of 25.
func TestBefore_FlooredThreshold(t *testing.T) {
	a := constDense(4, 4, 1)
	sum, err := mdstats.Before(a, a, mdstats.DefaultBins, false)
	require.NoError(t, err)
	assert.Zero(t, sum.Trend, "identical matrices have zero log-ratio trend")
	assert.Equal(t, 25.0, sum.Threshold, "low signal must floor the threshold")
}

// TestBefore_PercentileThreshold: identical high-signal inputs take the
// percentile path — the threshold is the (constant) mean contact number.
func TestBefore_PercentileThreshold(t *testing.T) {
	a := constDense(4, 4, 64)
	sum, err := mdstats.Before(a, a, mdstats.DefaultBins, false)
	require.NoError(t, err)
	assert.Zero(t, sum.Trend)
	assert.InDelta(t, 64.0, sum.Threshold, 1e-9)
}

// TestBefore_ConstantRatio recovers a uniform log2 ratio as the trend.
func TestBefore_ConstantRatio(t *testing.T) {
	a := constDense(5, 5, 64)
	b := constDense(5, 5, 128) // B = 2A ⇒ diff = 1 everywhere
	sum, err := mdstats.Before(a, b, mdstats.DefaultBins, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sum.Trend, 1e-12)
	// mean contact number is (64+128)/2 = 96 everywhere
	assert.InDelta(t, 96.0, sum.Threshold, 1e-9)
}

// TestBefore_TriangularIgnoresUpper: only the lower triangle contributes
// in triangular mode.
func TestBefore_TriangularIgnoresUpper(t *testing.T) {
	const n = 5
	a := constDense(n, n, 64)
	b := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i >= j {
				b.Set(i, j, 128) // ratio 2 below the diagonal
			} else {
				b.Set(i, j, 64) // ratio 1 above — must be ignored
			}
		}
	}
	sum, err := mdstats.Before(a, b, mdstats.DefaultBins, true)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sum.Trend, 1e-12, "upper triangle leaked into the trend")
}

// TestAfter_UsesProvidedDiff: the D matrix is taken verbatim as the diff.
func TestAfter_UsesProvidedDiff(t *testing.T) {
	a := constDense(4, 4, 64)
	d := constDense(4, 4, 0.5)
	sum, err := mdstats.After(a, a, d, mdstats.DefaultBins, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sum.Trend, 1e-12)
}

// TestErrors covers the validation and degenerate-input cases.
func TestErrors(t *testing.T) {
	a := constDense(3, 3, 1)

	_, err := mdstats.Before(a, constDense(2, 2, 1), mdstats.DefaultBins, false)
	assert.ErrorIs(t, err, mdstats.ErrShapeMismatch)

	_, err = mdstats.Before(a, a, 2, false)
	assert.ErrorIs(t, err, mdstats.ErrBadBins)

	// All-zero inputs: every mean is -Inf, every diff NaN — nothing finite.
	z := constDense(3, 3, 0)
	_, err = mdstats.Before(z, z, mdstats.DefaultBins, false)
	assert.ErrorIs(t, err, mdstats.ErrNoFinite)

	_, err = mdstats.After(a, a, constDense(2, 2, 0), mdstats.DefaultBins, false)
	assert.ErrorIs(t, err, mdstats.ErrShapeMismatch)
}
