package binning

import (
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// trialOutput is one completed trial on its way to the accumulator.
type trialOutput struct {
	a, b, d *mat.Dense
	err     error
}

// Bin runs Options.Iterations independent binning trials of (A, B) and
// returns the elementwise average of their outputs. Up to Options.Workers
// trials run concurrently; the inputs are the only shared state and are
// read-only throughout (each trial copies them first).
//
// Trial completion order does not affect the result beyond floating-point
// summation order; run with Workers=1 when bit-exact reproducibility of a
// seeded run is required.
//
// Errors: the validation set of Iterate, plus ErrBadIterations and
// ErrBadWorkers. No partial results are returned on failure.
func Bin(A, B mat.Matrix, opts Options) (Asm, Bsm, Dsm *mat.Dense, err error) {
	rows, cols, err := validate(A, B, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if opts.Iterations <= 0 {
		return nil, nil, nil, ErrBadIterations
	}
	if opts.Workers <= 0 {
		return nil, nil, nil, ErrBadWorkers
	}

	base := runSeed(opts.Seed)
	workers := opts.Workers
	if workers > opts.Iterations {
		workers = opts.Iterations
	}

	trials := make(chan uint64)
	done := make(chan trialOutput, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range trials {
				a, b, d, terr := iterate(A, B, opts, rows, cols, trialRNG(base, k))
				done <- trialOutput{a: a, b: b, d: d, err: terr}
			}
		}()
	}
	go func() {
		for k := uint64(0); k < uint64(opts.Iterations); k++ {
			trials <- k
		}
		close(trials)
		wg.Wait()
		close(done)
	}()

	// Commutative reduction: sum completed triples, then divide by N.
	sa := make([]float64, rows*cols)
	sb := make([]float64, rows*cols)
	sd := make([]float64, rows*cols)
	for out := range done {
		if out.err != nil {
			if err == nil {
				err = out.err // unreachable for validated input; drain anyway
			}
			continue
		}
		floats.Add(sa, out.a.RawMatrix().Data)
		floats.Add(sb, out.b.RawMatrix().Data)
		floats.Add(sd, out.d.RawMatrix().Data)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	inv := 1 / float64(opts.Iterations)
	floats.Scale(inv, sa)
	floats.Scale(inv, sb)
	floats.Scale(inv, sd)
	return mat.NewDense(rows, cols, sa), mat.NewDense(rows, cols, sb), mat.NewDense(rows, cols, sd), nil
}
