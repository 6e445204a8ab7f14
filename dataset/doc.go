// Package dataset defines the customer-engagement schema and the in-memory
// table of simulated customers.
//
// Fields is the single source of truth for column order: the generator, the
// correlation computer and the heatmap renderer all iterate it, so labels in
// the chart always line up with matrix indices.
package dataset
