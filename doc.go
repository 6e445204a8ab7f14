// Package corrmap turns a synthetic customer-engagement dataset into an
// annotated correlation heatmap.
//
// What it does:
//
//	• Generates N customers with seven engagement metrics from a seeded,
//	  reproducible model (purchase frequency drives most of the others)
//	• Computes the 7×7 Pearson correlation matrix
//	• Lays out a diverging-color heatmap with every cell annotated
//	• Writes it as an exact-size PNG (512×512 by default), atomically
//
// Pipeline and packages:
//
//	dataset/     — field schema, records, bounds, CSV dump
//	builder/     — Engagement generator (functional options, WithSeed/WithRand)
//	matrix/      — Dense matrix + column statistics (center, covariance, correlation)
//	correlation/ — labeled correlation Table with NaN policy
//	heatmap/     — figure layout and drawing on go-chart renderers
//	imagefile/   — rasterize, crop, fit, write PNG
//	config/      — defaults, YAML file, logger setup
//	report/      — one run across all stages, with logging
//	cli/         — cobra command; cmd/corrmap is the binary
//
// Quick start:
//
//	go run ./cmd/corrmap -n 250 --seed 42 -o chart.png --print
package corrmap
