package binning_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/serpentine/binning"
)

// ExampleBin smooths a pair of identical above-threshold matrices.
// Nothing merges, so the average over five trials reproduces the input
// and the log-ratio is zero everywhere.
func ExampleBin() {
	data := []float64{
		100, 100,
		100, 100,
	}
	a := mat.NewDense(2, 2, data)
	b := mat.NewDense(2, 2, data)

	opts := binning.Options{
		Threshold:    10,
		MinThreshold: 1,
		Iterations:   5,
		Workers:      2,
		Seed:         1,
	}
	asm, _, d, err := binning.Bin(a, b, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Asm = %v\n", mat.Formatted(asm, mat.FormatMATLAB()))
	fmt.Printf("D   = %v\n", mat.Formatted(d, mat.FormatMATLAB()))

	// Output:
	// Asm = [1e+02 1e+02; 1e+02 1e+02]
	// D   = [0 0; 0 0]
}
