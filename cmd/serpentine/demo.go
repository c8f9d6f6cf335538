package main

import (
	"math/rand"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/serpentine/binning"
)

// runDemo bins a randomly generated symmetric matrix pair, a self-check
// that needs no input files.
func runDemo(cmd *cobra.Command, opts binning.Options, size int) error {
	a := randomSymmetric(size, 15)
	b := randomSymmetric(size, 80)
	opts.Triangular = true
	return analyze(cmd, a, b, opts)
}

// randomSymmetric builds R + Rᵀ for a size×size matrix of uniform values
// in [0, 10), from a fixed seed so demo runs are comparable.
func randomSymmetric(size int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			m.Set(i, j, rng.Float64()*10)
		}
	}
	out := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			out.Set(i, j, m.At(i, j)+m.At(j, i))
		}
	}
	return out
}
