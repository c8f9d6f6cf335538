// Package regiongraph models a 2D pixel lattice as a dynamic graph of
// regions, supporting the contraction (merge) operations that drive
// serpentine binning.
//
// What:
//
//   - Lattice enumerates the pixels of a matrix and their 4-connected
//     adjacency. FullLattice covers every cell; TriLattice covers only the
//     lower triangle (row ≥ col) of a square matrix.
//   - Graph is an arena of regions addressed by stable integer ids (the
//     original singleton pixel ordinal). Regions grow by absorbing a
//     neighbor; the absorbed region is tombstoned and never revisited.
//
// Why:
//
//   - Serpentine binning repeatedly contracts a random region into a random
//     neighbor until every region clears a signal threshold. That requires
//     a symmetric adjacency relation that stays consistent across merges
//     without iterator invalidation.
//
// Invariants:
//
//   - Every pixel belongs to exactly one alive region at all times; the
//     union of alive member sets is the full pixel universe.
//   - Neighbor sets are symmetric and evolve only through Merge.
//   - Each Merge strictly decreases the alive count by one.
//
// Complexity:
//
//   - New:       O(P·d)          (P pixels, d ≤ 4 neighbors).
//   - Merge:     O((deg(src)+deg(dst))·log deg) amortized (sorted-slice sets).
//   - Aggregate: O(|members|).
//
// Errors:
//
//   - ErrEmptyLattice: lattice dimensions are not positive.
//   - ErrRegionID:     region id out of arena range.
//   - ErrDeadRegion:   operation on a tombstoned region.
//   - ErrNotNeighbors: merge endpoints share no edge.
//   - ErrSelfMerge:    merge endpoints are the same region.
package regiongraph
