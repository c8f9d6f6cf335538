// Package binning implements the serpentine binning engine: randomized
// agglomeration of paired count matrices into variable-size regions,
// repeated over independent trials and averaged.
//
// What:
//
//   - Iterate runs a single trial: regions grow by absorbing a random
//     neighbor while their aggregate signal stays below the thresholds,
//     until a full pass performs no merge. Each region is then flattened
//     to its per-pixel mean, and the log2 ratio of the two smoothed
//     matrices is reported alongside them.
//   - Bin runs N independent trials on a bounded worker pool and returns
//     the elementwise average of the three outputs.
//
// Merge predicate, for a region with aggregates (a, b) and thresholds
// T > M:
//
//	(a < T && b < T) || a < M || b < M
//
// Below both max-thresholds the region is still noisy; below either
// min-threshold it is starved and absorption is forced regardless of the
// other side. A region with no remaining neighbors is left as is.
//
// Randomness:
//
//   - Visitation order is a fresh uniform permutation per pass, and the
//     absorbed neighbor is drawn uniformly — both are essential: the
//     Monte-Carlo average over trials is what cancels the order bias.
//   - Options.Seed = 0 seeds from the clock (independent runs); any other
//     value yields bit-reproducible trials. Trial k of Bin uses the same
//     derived stream as Iterate when k = 0, so Bin with Iterations=1
//     matches a direct Iterate call exactly.
//
// Numeric policy:
//
//   - Inputs are never mutated; every trial works on its own copy.
//   - D = log2(Bmod/Amod) follows IEEE semantics: 0/0 ⇒ NaN, x/0 ⇒ +Inf,
//     zero numerator ⇒ -Inf. These are data for downstream consumers,
//     never errors.
//   - In triangular mode Amod and Bmod are reconstructed symmetric, but D
//     is filled on the lower triangle only with zeros elsewhere. That
//     asymmetry is inherited behavior, kept deliberately; callers wanting
//     the mirrored ratio must mirror it themselves.
//
// Errors (validation only, before any graph work):
//
//   - ErrEmptyMatrix, ErrShapeMismatch, ErrNonSquare
//   - ErrThresholdOrder (MinThreshold ≥ Threshold)
//   - ErrBadIterations, ErrBadWorkers (Bin only)
//
// Complexity: one pass visits every alive region and sums its members;
// the alive count strictly decreases on each merge, so a trial performs
// at most P-1 merges over at most P passes for P pixels.
package binning
