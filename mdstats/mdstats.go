// Package mdstats computes mean/difference (MD) threshold diagnostics
// for a pair of count matrices, before or after serpentine binning.
//
// The (mean, diff) cloud — log2 mean contact number against log2 ratio —
// is cut into bins over the mean range; per-bin medians and robust sigmas
// (1.4826×MAD) summarize how the ratio spread behaves as signal grows.
// Two numbers come out:
//
//   - Trend: the mean of the last three bin medians of the diff, i.e. the
//     ratio plateau at high signal, used to recenter D.
//   - Threshold: 2^xa, where xa is the last bin whose sigma still deviates
//     more than two standard deviations from the tail plateau — the signal
//     level below which binning is advisable. When no bin deviates, the
//     99th percentile of the positive means is used; either way xa is
//     floored at log2(25).
//
// Rendering is out of scope; these are the numbers the plots are made of.
package mdstats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/serpentine/outliers"
)

// DefaultBins is the default bin count for the diagnostics.
const DefaultBins = 10

// floorThreshold is the minimum usable threshold when the data cannot
// support an estimate.
const floorThreshold = 25.0

// deviationCutoff is the number of tail standard deviations a bin sigma
// must exceed to mark the threshold bin.
const deviationCutoff = 2.0

// tailBins is how many trailing bins define the high-signal plateau.
const tailBins = 3

// Sentinel errors.
var (
	// ErrBadBins indicates a bin count too small for the tail statistics.
	ErrBadBins = errors.New("mdstats: bins must be at least 3")
	// ErrShapeMismatch indicates inputs of differing shape.
	ErrShapeMismatch = errors.New("mdstats: matrices must have identical shape")
	// ErrNoFinite indicates no finite (mean, diff) points to summarize.
	ErrNoFinite = errors.New("mdstats: no finite data points")
)

// Summary is the outcome of an MD diagnostic.
type Summary struct {
	// Trend is the log2-ratio plateau at high signal.
	Trend float64
	// Threshold is the recommended binning threshold (linear scale).
	Threshold float64
}

// Before summarizes the raw matrix pair: diff is the elementwise
// log2(B/A). In triangular mode only the lower triangle (diagonal
// included) contributes.
// Errors: ErrShapeMismatch, ErrBadBins, ErrNoFinite.
func Before(A, B mat.Matrix, bins int, triangular bool) (Summary, error) {
	means, diffs, err := cloud(A, B, nil, triangular)
	if err != nil {
		return Summary{}, err
	}
	return summarize(means, diffs, bins)
}

// After summarizes a binned result: diff comes from the engine's D matrix
// (already a log2 ratio), means from the smoothed pair.
// Errors: ErrShapeMismatch, ErrBadBins, ErrNoFinite.
func After(A, B, D mat.Matrix, bins int, triangular bool) (Summary, error) {
	means, diffs, err := cloud(A, B, D, triangular)
	if err != nil {
		return Summary{}, err
	}
	return summarize(means, diffs, bins)
}

// cloud flattens the matrix pair into (mean, diff) points, keeping only
// finite pairs. With d == nil the diff is computed as log2(b/a).
func cloud(A, B, d mat.Matrix, triangular bool) (means, diffs []float64, err error) {
	ar, ac := A.Dims()
	br, bc := B.Dims()
	if ar != br || ac != bc {
		return nil, nil, ErrShapeMismatch
	}
	if d != nil {
		dr, dc := d.Dims()
		if dr != ar || dc != ac {
			return nil, nil, ErrShapeMismatch
		}
	}
	for i := 0; i < ar; i++ {
		jmax := ac
		if triangular {
			jmax = i + 1 // lower triangle including the diagonal
		}
		for j := 0; j < jmax; j++ {
			a, b := A.At(i, j), B.At(i, j)
			m := math.Log2((a + b) / 2)
			var df float64
			if d != nil {
				df = d.At(i, j)
			} else {
				df = math.Log2(b / a)
			}
			if isFinite(m) && isFinite(df) {
				means = append(means, m)
				diffs = append(diffs, df)
			}
		}
	}
	return means, diffs, nil
}

// summarize bins the cloud and extracts Trend and Threshold.
func summarize(means, diffs []float64, bins int) (Summary, error) {
	if bins < tailBins {
		return Summary{}, ErrBadBins
	}
	if len(means) == 0 {
		return Summary{}, ErrNoFinite
	}

	minm, maxm := means[0], means[0]
	for _, m := range means[1:] {
		minm = math.Min(minm, m)
		maxm = math.Max(maxm, m)
	}
	q := (maxm - minm) / float64(bins)

	x := make([]float64, bins)
	y1 := make([]float64, bins)
	y2 := make([]float64, bins)
	var bucket []float64
	for k := 0; k < bins; k++ {
		lo := minm + q*float64(k)
		hi := lo + q
		bucket = bucket[:0]
		var mx []float64
		for i, m := range means {
			// Degenerate range (all means equal): every bin sees the
			// whole plateau, so the tail statistics stay meaningful.
			inside := q <= 0 || (m > lo && m < hi)
			if inside {
				bucket = append(bucket, diffs[i])
				mx = append(mx, m)
			}
		}
		if len(bucket) == 0 {
			x[k] = lo + q/2
			continue // empty bin contributes flat zeros
		}
		x[k] = medianOf(mx)
		y1[k] = medianOf(bucket)
		y2[k] = 1.4826 * outliers.MAD(bucket)
		if math.IsNaN(y2[k]) {
			y2[k] = 0
		}
	}

	trend := stat.Mean(y1[bins-tailBins:], nil)
	tailSigma := stat.Mean(y2[bins-tailBins:], nil)
	tailSpread := stat.PopStdDev(y2[bins-tailBins:], nil)

	xa := math.NaN()
	for k := 0; k < bins; k++ {
		if math.Abs(y2[k]-tailSigma) > deviationCutoff*tailSpread {
			xa = x[k]
		}
	}
	if math.IsNaN(xa) {
		xa = percentile99(positive(means))
	}
	// The floor returns exactly floorThreshold: exp2(log2(25)) lands one
	// ulp short of 25.
	if math.IsNaN(xa) || math.IsInf(xa, 0) || xa < math.Log2(floorThreshold) {
		return Summary{Trend: trend, Threshold: floorThreshold}, nil
	}
	return Summary{Trend: trend, Threshold: math.Exp2(xa)}, nil
}

// medianOf is the midpoint median; the input is not modified.
func medianOf(xs []float64) float64 {
	n := len(xs)
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// positive filters xs > 0 (log2-mean space: cells with any signal).
func positive(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if x > 0 {
			out = append(out, x)
		}
	}
	return out
}

// percentile99 is the empirical 99th percentile, NaN for empty input.
func percentile99(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return stat.Quantile(0.99, stat.Empirical, s, nil)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
