// Package dade loads contact matrices from the DADE upper-triangular
// sparse text format.
//
// Format:
//
//   - First line: whitespace-separated column labels; the first token is
//     a corner label and is discarded. The label count fixes the matrix
//     dimension n.
//   - Each following line: a row label, then that row's non-negative
//     values from the diagonal onward (row i carries at most n-i values;
//     missing trailing values stay zero).
//
// The parsed upper triangle is mirrored into a full symmetric matrix
// (M + Mᵀ - diag(diag M)), ready for triangular-mode binning.
//
// Errors:
//
//   - ErrEmptyHeader: missing or label-less header line.
//   - ErrTooManyRows: more data rows than header labels.
//   - ErrRowOverflow: a row carries values past the matrix edge.
//   - Malformed numbers wrap the strconv error with row/column context.
package dade
