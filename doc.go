// Package serpentine implements serpentine binning — a Monte-Carlo
// procedure that equalizes statistical noise between two paired 2D count
// matrices (e.g. genomic contact maps) by adaptively merging adjacent
// pixels into variable-size regions until every region clears a
// confidence threshold in both matrices.
//
// 🚀 What is serpentine?
//
//	A small, focused library built around a randomized graph-contraction
//	engine, plus the supporting pieces of a complete analysis pipeline:
//		• Region graph: dynamic adjacency over a pixel lattice with merges
//		• Single-trial merger: greedy agglomeration to a fixed point
//		• Trial driver: N independent randomized trials, averaged elementwise
//		• Triangular mode: symmetric-matrix specialization (lower triangle)
//		• DADE loader, outlier filtering and MD threshold diagnostics
//
// Everything is organized under flat subpackages:
//
//	regiongraph/ — pixel lattices (full & triangular) and the mutable region graph
//	binning/     — the merging engine: single trials and the averaging driver
//	dade/        — upper-triangular sparse text matrix loader
//	outliers/    — robust (MAD-based) row/column filtering
//	mdstats/     — mean/difference threshold diagnostics
//	cmd/serpentine — command-line front end
//
// Matrices are carried as gonum mat.Dense values; the log-ratio output
// uses plain IEEE semantics (±Inf and NaN are data, not errors).
//
// Reference: Scolari et al., serpentine binning for Hi-C contact maps.
package serpentine
