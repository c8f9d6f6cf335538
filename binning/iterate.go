package binning

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/serpentine/regiongraph"
)

// Iterate performs a single binning trial on the matrix pair (A, B) and
// returns the smoothed matrices (Amod, Bmod) plus their log2 ratio D,
// all shaped like the inputs. The inputs are copied, never mutated.
//
// The trial agglomerates to a fixed point: passes of uniformly random
// visitation order keep merging below-threshold regions into uniformly
// random neighbors until a pass changes nothing. See the package doc for
// the merge predicate and the triangular-mode output contract.
//
// Errors: ErrEmptyMatrix, ErrShapeMismatch, ErrNonSquare,
// ErrThresholdOrder. After validation the trial is total.
func Iterate(A, B mat.Matrix, opts Options) (Amod, Bmod, D *mat.Dense, err error) {
	rows, cols, err := validate(A, B, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	return iterate(A, B, opts, rows, cols, trialRNG(runSeed(opts.Seed), 0))
}

// validate checks shapes and thresholds shared by Iterate and Bin.
func validate(A, B mat.Matrix, opts Options) (rows, cols int, err error) {
	ar, ac := A.Dims()
	br, bc := B.Dims()
	if ar <= 0 || ac <= 0 {
		return 0, 0, ErrEmptyMatrix
	}
	if ar != br || ac != bc {
		return 0, 0, ErrShapeMismatch
	}
	if opts.Triangular && ar != ac {
		return 0, 0, ErrNonSquare
	}
	if opts.MinThreshold >= opts.Threshold {
		return 0, 0, ErrThresholdOrder
	}
	return ar, ac, nil
}

// iterate is the validated single-trial body, parameterized over the
// trial's private random stream.
func iterate(A, B mat.Matrix, opts Options, rows, cols int, rng *rand.Rand) (*mat.Dense, *mat.Dense, *mat.Dense, error) {
	// Working copies in row-major order; the trial owns them exclusively.
	u := flatten(A, rows, cols)
	v := flatten(B, rows, cols)

	var (
		lat regiongraph.Lattice
		err error
	)
	if opts.Triangular {
		lat, err = regiongraph.NewTriLattice(rows)
	} else {
		lat, err = regiongraph.NewFullLattice(rows, cols)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	g := regiongraph.New(lat)

	// Fixed-point agglomeration: keep passing while the alive count drops.
	prev := -1
	for g.Alive() != prev {
		prev = g.Alive()
		for _, id := range rng.Perm(g.Len()) {
			if !g.IsAlive(id) {
				continue
			}
			a, b := g.Aggregate(id, u, v)
			if (a >= opts.Threshold || b >= opts.Threshold) && a >= opts.MinThreshold && b >= opts.MinThreshold {
				continue
			}
			deg := g.Degree(id)
			if deg == 0 {
				// isolated fully-grown region; nothing left to absorb
				continue
			}
			if err = g.Merge(id, g.Neighbor(id, rng.Intn(deg))); err != nil {
				return nil, nil, nil, err // unreachable for validated input
			}
		}
	}

	// Reduction: flatten every alive region to its per-pixel mean.
	for id := 0; id < g.Len(); id++ {
		if !g.IsAlive(id) {
			continue
		}
		mem := g.Members(id)
		var su, sv float64
		for _, off := range mem {
			su += u[off]
			sv += v[off]
		}
		su /= float64(len(mem))
		sv /= float64(len(mem))
		for _, off := range mem {
			u[off] = su
			v[off] = sv
		}
	}

	if opts.Triangular {
		return assembleTriangular(u, v, rows)
	}
	return assembleFull(u, v, rows, cols)
}

// flatten copies m into a fresh row-major slice.
func flatten(m mat.Matrix, rows, cols int) []float64 {
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j] = m.At(i, j)
		}
	}
	return out
}

// assembleFull wraps the mean-filled arrays and computes D elementwise.
func assembleFull(u, v []float64, rows, cols int) (*mat.Dense, *mat.Dense, *mat.Dense, error) {
	d := make([]float64, len(u))
	for i := range u {
		d[i] = math.Log2(v[i] / u[i])
	}
	return mat.NewDense(rows, cols, u), mat.NewDense(rows, cols, v), mat.NewDense(rows, cols, d), nil
}

// assembleTriangular mirrors the mean-filled lower triangle into full
// symmetric matrices (diagonal written once, not doubled). D is filled on
// the lower triangle only; upper strictly-triangular cells stay zero.
func assembleTriangular(u, v []float64, n int) (*mat.Dense, *mat.Dense, *mat.Dense, error) {
	amod := mat.NewDense(n, n, nil)
	bmod := mat.NewDense(n, n, nil)
	d := mat.NewDense(n, n, nil)
	for r := 0; r < n; r++ {
		for c := 0; c <= r; c++ {
			off := r*n + c
			amod.Set(r, c, u[off])
			amod.Set(c, r, u[off])
			bmod.Set(r, c, v[off])
			bmod.Set(c, r, v[off])
			d.Set(r, c, math.Log2(v[off]/u[off]))
		}
	}
	return amod, bmod, d, nil
}
