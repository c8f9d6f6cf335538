package binning

import "errors"

// Sentinel errors for input validation. All are raised at the public
// entry points, before any region-graph work begins; once validation
// passes, a trial always terminates and never errors.
var (
	// ErrEmptyMatrix indicates an input with no rows or no columns.
	ErrEmptyMatrix = errors.New("binning: matrices must have at least one row and one column")
	// ErrShapeMismatch indicates inputs of differing shape.
	ErrShapeMismatch = errors.New("binning: matrices must have identical shape")
	// ErrNonSquare indicates triangular mode on a non-square matrix.
	ErrNonSquare = errors.New("binning: triangular mode requires square matrices")
	// ErrThresholdOrder indicates MinThreshold ≥ Threshold.
	ErrThresholdOrder = errors.New("binning: min threshold must be lower than threshold")
	// ErrBadIterations indicates a non-positive trial count.
	ErrBadIterations = errors.New("binning: iterations must be positive")
	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("binning: workers must be positive")
)

// Defaults for Options; the single source of truth for the CLI flags.
const (
	// DefaultThreshold is the aggregate both matrices must reach for a
	// region to stop merging.
	DefaultThreshold = 40.0
	// DefaultMinThreshold forces absorption when either aggregate is
	// starved below it; must stay below Threshold.
	DefaultMinThreshold = 10.0
	// DefaultIterations is the number of independent trials averaged by Bin.
	DefaultIterations = 10
	// DefaultWorkers bounds the number of trials running concurrently.
	DefaultWorkers = 16
)

// Options carries the tunable parameters for Iterate and Bin.
type Options struct {
	// Threshold is the max-threshold T: a region with both aggregates ≥ T
	// no longer merges (unless starved below MinThreshold).
	Threshold float64
	// MinThreshold is the min-threshold M < T bounding pathological
	// regions that would never clear the pair condition.
	MinThreshold float64
	// Iterations is the number of independent trials Bin averages.
	Iterations int
	// Triangular restricts the lattice to the lower triangle of square
	// symmetric inputs and reconstructs symmetric outputs.
	Triangular bool
	// Workers bounds trial concurrency in Bin; 1 means sequential.
	Workers int
	// Seed selects the random stream. 0 seeds from the clock; any other
	// value makes every trial bit-reproducible.
	Seed int64
}

// DefaultOptions returns the documented defaults (clock-seeded,
// non-triangular).
func DefaultOptions() Options {
	return Options{
		Threshold:    DefaultThreshold,
		MinThreshold: DefaultMinThreshold,
		Iterations:   DefaultIterations,
		Workers:      DefaultWorkers,
	}
}
