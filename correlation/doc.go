// Package correlation reduces a dataset to its labeled Pearson correlation
// table.
//
// Degenerate input never fails: fewer than two customers produce an all-NaN
// table flagged Insufficient, and a constant column produces a NaN row and
// column. Callers decide how loudly to report it; the heatmap prints "nan".
package correlation
